package venue

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	GetByID(ctx context.Context, id int64) (*Box, error)
	List(ctx context.Context, filter Filter) ([]*Box, int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Box, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "title", "address", "description",
		"latitude", "longitude", "opening", "created_at",
	).
		From("public.boxes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get box query failed: %w", err)
	}

	row := r.pool.QueryRow(ctx, query, args...)

	var b Box
	var lat, long *string
	if err := row.Scan(
		&b.ID, &b.Title, &b.Address, &b.Description,
		&lat, &long, &b.Opening, &b.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get box failed: %w", err)
	}
	b.Latitude = parseCoord(lat)
	b.Longitude = parseCoord(long)
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Box, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"id", "title", "address", "description",
		"latitude", "longitude", "opening", "created_at",
		"count(*) OVER() as total_count",
	).
		From("public.boxes")

	if filter.Keyword != "" {
		pattern := "%" + filter.Keyword + "%"
		query = query.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"address": pattern},
		})
	}

	query = query.OrderBy("title ASC")

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
		return nil, 0, fmt.Errorf("build list boxes query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list boxes failed: %w", err)
	}
	defer rows.Close()

	var boxes []*Box
	var total int

	for rows.Next() {
		var b Box
		var lat, long *string
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Address, &b.Description,
			&lat, &long, &b.Opening, &b.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan box failed: %w", err)
		}
		b.Latitude = parseCoord(lat)
		b.Longitude = parseCoord(long)
		boxes = append(boxes, &b)
	}

	return boxes, total, nil
}

// parseCoord converts a feed coordinate string to a float, degrading to 0
// on missing or malformed input.
func parseCoord(s *string) float64 {
	if s == nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(*s), 64)
	if err != nil {
		return 0
	}
	return v
}
