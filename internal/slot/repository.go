package slot

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads a court's slot catalogue from storage.
type Repository interface {
	ListByCourt(ctx context.Context, courtID int64) ([]RawSlot, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) ListByCourt(ctx context.Context, courtID int64) ([]RawSlot, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(
		"id", "slot_id", "rate", "name", "start_time", "end_time",
	).
		From("public.court_slots").
		Where(squirrel.Eq{"box_court_id": courtID}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list slots query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list slots failed: %w", err)
	}
	defer rows.Close()

	var slots []RawSlot
	for rows.Next() {
		var (
			rowID, slotID int64
			rate          string
			info          TimeInfo
		)
		if err := rows.Scan(
			&rowID, &slotID, &rate, &info.Name, &info.StartTime, &info.EndTime,
		); err != nil {
			return nil, fmt.Errorf("scan slot failed: %w", err)
		}

		// Rows go out in the feed's own shape so the same normalization
		// path covers both stored and upstream slots.
		slots = append(slots, RawSlot{
			BoxCourtSlotID: IDFromInt(rowID),
			SlotID:         IDFromInt(slotID),
			Rate:           ParseRate(rate),
			Info:           &info,
		})
	}

	return slots, nil
}
