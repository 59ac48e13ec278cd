package vehicle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/safariwheels/fleet-booking-backend/internal/schedule"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Vehicle, error)
	List(ctx context.Context, filter Filter) ([]*Vehicle, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Vehicle, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"v.id", "v.model", "v.category_id", "c.title", "v.registration_number",
		"v.image_url", "v.daily_rate_cents", "v.created_at",
	).
		From("public.vehicles v").
		Join("public.categories c ON v.category_id = c.id").
		Where(squirrel.Eq{"v.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get vehicle query failed: %w", err)
	}

	var v Vehicle
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&v.ID, &v.Model, &v.CategoryID, &v.CategoryTitle, &v.RegistrationNumber,
		&v.ImageURL, &v.DailyRateCents, &v.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get vehicle failed: %w", err)
	}

	entries, err := r.loadSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Schedule = entries
	return &v, nil
}

// loadSchedule returns one entry per non-cancelled reservation, each holding
// the days it occupies. Past days are included; hiding them is the
// calendar's concern.
func (r *pgxRepository) loadSchedule(ctx context.Context, vehicleID string) ([]schedule.Entry, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("rd.reservation_id", "rd.day").
		From("public.reservation_dates rd").
		Join("public.reservations res ON rd.reservation_id = res.id").
		Where(squirrel.Eq{"rd.vehicle_id": vehicleID}).
		Where(squirrel.NotEq{"res.status": "cancelled"}).
		OrderBy("rd.reservation_id", "rd.day").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load schedule query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("load vehicle schedule failed: %w", err)
	}
	defer rows.Close()

	var entries []schedule.Entry
	var currentID string
	for rows.Next() {
		var id string
		var day time.Time
		if err := rows.Scan(&id, &day); err != nil {
			return nil, fmt.Errorf("scan schedule day failed: %w", err)
		}
		if id != currentID {
			entries = append(entries, schedule.Entry{})
			currentID = id
		}
		last := &entries[len(entries)-1]
		last.Dates = append(last.Dates, schedule.DateKeyFromTime(day.UTC()))
	}
	return entries, rows.Err()
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Vehicle, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"v.id", "v.model", "v.category_id", "c.title", "v.registration_number",
		"v.image_url", "v.daily_rate_cents", "v.created_at",
	).
		From("public.vehicles v").
		Join("public.categories c ON v.category_id = c.id").
		OrderBy("c.title", "v.model")

	if filter.CategoryID != "" {
		query = query.Where(squirrel.Eq{"v.category_id": filter.CategoryID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list vehicles query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list vehicles failed: %w", err)
	}
	defer rows.Close()

	var vehicles []*Vehicle
	for rows.Next() {
		var v Vehicle
		if err := rows.Scan(
			&v.ID, &v.Model, &v.CategoryID, &v.CategoryTitle, &v.RegistrationNumber,
			&v.ImageURL, &v.DailyRateCents, &v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan vehicle failed: %w", err)
		}
		vehicles = append(vehicles, &v)
	}
	return vehicles, rows.Err()
}
