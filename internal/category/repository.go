package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context) ([]*Category, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Category, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "title", "description", "price_from_cents", "features", "popular", "created_at").
		From("public.categories").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get category query failed: %w", err)
	}

	var c Category
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&c.ID, &c.Title, &c.Description, &c.PriceFromCents, &c.Features, &c.Popular, &c.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get category failed: %w", err)
	}
	return &c, nil
}

func (r *pgxRepository) List(ctx context.Context) ([]*Category, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("id", "title", "description", "price_from_cents", "features", "popular", "created_at").
		From("public.categories").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list categories query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories failed: %w", err)
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.PriceFromCents, &c.Features, &c.Popular, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category failed: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}
