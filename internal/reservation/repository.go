package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/safariwheels/fleet-booking-backend/internal/schedule"
)

// Sink is the system of record that arbitrates concurrent reservation
// attempts. Reserve must be atomic: either every requested day is taken
// together, or none is and the conflicting days are reported. A non-nil
// error means the attempt did not reach a decision and may be retried.
type Sink interface {
	Reserve(ctx context.Context, res *Reservation) (*Outcome, error)
}

type Repository interface {
	Sink
	GetByID(ctx context.Context, id string) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)
	UpdateStatus(ctx context.Context, id string, status Status) error

	// CancelStalePending cancels pending reservations created before the
	// cutoff and releases their days. Returns the number cancelled.
	CancelStalePending(ctx context.Context, before time.Time) (int64, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// Reserve inserts the reservation and one row per day into
// reservation_dates, which carries a unique index on (vehicle_id, day).
// Two customers racing for the same day therefore serialize inside
// Postgres: the loser's transaction aborts on the unique violation, nothing
// is partially applied, and the days that were just taken are read back and
// reported as a conflict outcome.
func (r *pgxRepository) Reserve(ctx context.Context, res *Reservation) (*Outcome, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin reserve tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.reservations").
		Columns("vehicle_id", "total_amount_cents", "full_name", "email", "phone", "id_number", "special_requests", "status").
		Values(res.VehicleID, res.TotalAmountCents, res.Customer.FullName, res.Customer.Email,
			res.Customer.Phone, res.Customer.IDNumber, res.SpecialRequests, res.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert reservation query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("insert reservation failed: %w", err)
	}

	dayInsert := psql.Insert("public.reservation_dates").
		Columns("reservation_id", "vehicle_id", "day")
	for _, d := range res.Dates {
		dayInsert = dayInsert.Values(res.ID, res.VehicleID, d.Time())
	}
	query, args, err = dayInsert.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert reservation days query failed: %w", err)
	}

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			// The tx is already aborted; look up the taken days outside it.
			conflicts, lookupErr := r.conflictingDates(ctx, res.VehicleID, res.Dates)
			if lookupErr != nil {
				return nil, lookupErr
			}
			return Conflict(conflicts), nil
		}
		return nil, fmt.Errorf("insert reservation days failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit reserve tx failed: %w", err)
	}
	return Accepted(res), nil
}

// conflictingDates returns which of the requested days are already held for
// the vehicle.
func (r *pgxRepository) conflictingDates(ctx context.Context, vehicleID string, dates []schedule.DateKey) ([]schedule.DateKey, error) {
	days := make([]time.Time, len(dates))
	for i, d := range dates {
		days[i] = d.Time()
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("day").
		From("public.reservation_dates").
		Where(squirrel.Eq{"vehicle_id": vehicleID}).
		Where(squirrel.Eq{"day": days}).
		OrderBy("day").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build conflicting days query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query conflicting days failed: %w", err)
	}
	defer rows.Close()

	var conflicts []schedule.DateKey
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("scan conflicting day failed: %w", err)
		}
		conflicts = append(conflicts, schedule.DateKeyFromTime(day.UTC()))
	}
	return conflicts, rows.Err()
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"r.id", "r.vehicle_id", "v.model", "r.total_amount_cents",
		"r.full_name", "r.email", "r.phone", "r.id_number",
		"r.special_requests", "r.status", "r.created_at", "r.updated_at",
	).
		From("public.reservations r").
		Join("public.vehicles v ON r.vehicle_id = v.id").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get reservation query failed: %w", err)
	}

	var res Reservation
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&res.ID, &res.VehicleID, &res.VehicleModel, &res.TotalAmountCents,
		&res.Customer.FullName, &res.Customer.Email, &res.Customer.Phone, &res.Customer.IDNumber,
		&res.SpecialRequests, &res.Status, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get reservation failed: %w", err)
	}

	days, err := r.loadDays(ctx, []string{res.ID})
	if err != nil {
		return nil, err
	}
	res.Dates = days[res.ID]
	return &res, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"r.id", "r.vehicle_id", "v.model", "r.total_amount_cents",
		"r.full_name", "r.email", "r.phone", "r.id_number",
		"r.special_requests", "r.status", "r.created_at", "r.updated_at",
		"count(*) OVER() as total_count",
	).
		From("public.reservations r").
		Join("public.vehicles v ON r.vehicle_id = v.id")

	if filter.VehicleID != "" {
		query = query.Where(squirrel.Eq{"r.vehicle_id": filter.VehicleID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"r.status": filter.Status})
	}

	query = query.OrderBy("r.created_at DESC")

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list reservations query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reservations failed: %w", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	var ids []string
	var total int

	for rows.Next() {
		var res Reservation
		if err := rows.Scan(
			&res.ID, &res.VehicleID, &res.VehicleModel, &res.TotalAmountCents,
			&res.Customer.FullName, &res.Customer.Email, &res.Customer.Phone, &res.Customer.IDNumber,
			&res.SpecialRequests, &res.Status, &res.CreatedAt, &res.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan reservation failed: %w", err)
		}
		reservations = append(reservations, &res)
		ids = append(ids, res.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list reservations failed: %w", err)
	}

	if len(ids) > 0 {
		days, err := r.loadDays(ctx, ids)
		if err != nil {
			return nil, 0, err
		}
		for _, res := range reservations {
			res.Dates = days[res.ID]
		}
	}

	return reservations, total, nil
}

// loadDays fetches the day sets for a batch of reservations in one query.
func (r *pgxRepository) loadDays(ctx context.Context, reservationIDs []string) (map[string][]schedule.DateKey, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("reservation_id", "day").
		From("public.reservation_dates").
		Where(squirrel.Eq{"reservation_id": reservationIDs}).
		OrderBy("reservation_id", "day").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build load days query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("load reservation days failed: %w", err)
	}
	defer rows.Close()

	days := make(map[string][]schedule.DateKey)
	for rows.Next() {
		var id string
		var day time.Time
		if err := rows.Scan(&id, &day); err != nil {
			return nil, fmt.Errorf("scan reservation day failed: %w", err)
		}
		days[id] = append(days[id], schedule.DateKeyFromTime(day.UTC()))
	}
	return days, rows.Err()
}

// UpdateStatus changes a reservation's status. Cancelling releases the day
// rows in the same transaction so the days return to the pool atomically.
func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin status tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update status query failed: %w", err)
	}

	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update reservation status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	if status == StatusCancelled {
		query, args, err = psql.Delete("public.reservation_dates").
			Where(squirrel.Eq{"reservation_id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build release days query failed: %w", err)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("release reservation days failed: %w", err)
		}
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) CancelStalePending(ctx context.Context, before time.Time) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin stale-pending tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.reservations").
		Set("status", StatusCancelled).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"status": StatusPending}).
		Where(squirrel.Lt{"created_at": before}).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build stale-pending query failed: %w", err)
	}

	rows, err := tx.Query(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("cancel stale pending failed: %w", err)
	}

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan stale pending id failed: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("cancel stale pending failed: %w", err)
	}

	if len(ids) == 0 {
		return 0, tx.Commit(ctx)
	}

	query, args, err = psql.Delete("public.reservation_dates").
		Where(squirrel.Eq{"reservation_id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build release stale days query failed: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("release stale days failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit stale-pending tx failed: %w", err)
	}
	return int64(len(ids)), nil
}
