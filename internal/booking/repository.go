package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/playbox/box-booking-backend/internal/slot"
)

type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)

	// List returns the user's bookings with their detail groups attached.
	// Page/PageSize of zero disables pagination, which callers bucketing by
	// derived status rely on.
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// Cancel soft-deletes the booking. It reports ErrNotFound when the row
	// is missing or already cancelled.
	Cancel(ctx context.Context, id string) error

	// BookedSlotIDs returns the slot ids of non-cancelled bookings for one
	// court on one date.
	BookedSlotIDs(ctx context.Context, courtID int64, date string) ([]slot.ID, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create booking failed: %w", err)
	}
	defer tx.Rollback(ctx)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Insert("public.bookings").
		Columns("user_id", "box_id", "booking_date", "booking_status", "total_amount").
		Values(b.UserID, b.BoxID, b.BookingDate, b.BookingStatus, b.TotalAmount).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}
	if err := tx.QueryRow(ctx, query, args...).Scan(&b.ID, &b.CreatedAt); err != nil {
		return fmt.Errorf("create booking failed: %w", err)
	}

	for di := range b.Details {
		d := &b.Details[di]

		query, args, err := psql.Insert("public.booking_details").
			Columns("booking_id", "booking_date", "court_id").
			Values(b.ID, d.BookingDate, d.CourtID).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return fmt.Errorf("build create booking detail query failed: %w", err)
		}
		if err := tx.QueryRow(ctx, query, args...).Scan(&d.ID); err != nil {
			return fmt.Errorf("create booking detail failed: %w", err)
		}

		if len(d.Slots) == 0 {
			continue
		}

		insert := psql.Insert("public.booking_slot_details").
			Columns("booking_detail_id", "slot_id", "name", "start_time", "end_time", "rate")
		for _, s := range d.Slots {
			insert = insert.Values(d.ID, string(s.SlotID), s.Label, s.StartTime, s.EndTime, s.Rate)
		}
		query, args, err = insert.ToSql()
		if err != nil {
			return fmt.Errorf("build create slot details query failed: %w", err)
		}
		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("create slot details failed: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create booking failed: %w", err)
	}
	return nil
}

const bookingColumns = `b.id, b.user_id, b.box_id, bx.title,
	to_char(b.booking_date, 'YYYY-MM-DD'), b.booking_status,
	b.deleted_at, b.created_at, b.total_amount`

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns).
		From("public.bookings b").
		Join("public.boxes bx ON b.box_id = bx.id").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	var b Booking
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&b.ID, &b.UserID, &b.BoxID, &b.BoxTitle,
		&b.BookingDate, &b.BookingStatus,
		&b.DeletedAt, &b.CreatedAt, &b.TotalAmount,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}

	details, err := r.loadDetails(ctx, []string{b.ID})
	if err != nil {
		return nil, err
	}
	b.Details = details[b.ID]
	return &b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(bookingColumns + ", count(*) OVER() as total_count").
		From("public.bookings b").
		Join("public.boxes bx ON b.box_id = bx.id").
		OrderBy("b.created_at DESC")

	if filter.UserID != "" {
		query = query.Where(squirrel.Eq{"b.user_id": filter.UserID})
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var ids []string
	var total int

	for rows.Next() {
		var b Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.BoxID, &b.BoxTitle,
			&b.BookingDate, &b.BookingStatus,
			&b.DeletedAt, &b.CreatedAt, &b.TotalAmount, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, &b)
		ids = append(ids, b.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}

	if len(ids) > 0 {
		details, err := r.loadDetails(ctx, ids)
		if err != nil {
			return nil, 0, err
		}
		for _, b := range bookings {
			b.Details = details[b.ID]
		}
	}

	return bookings, total, nil
}

// loadDetails fetches detail groups and their slots for a batch of booking
// ids in two queries, keyed by booking id.
func (r *pgxRepository) loadDetails(ctx context.Context, bookingIDs []string) (map[string][]Detail, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	query, args, err := psql.Select(
		"bd.id", "bd.booking_id", "to_char(bd.booking_date, 'YYYY-MM-DD')",
		"bd.court_id", "c.name",
	).
		From("public.booking_details bd").
		Join("public.box_courts c ON bd.court_id = c.id").
		Where(squirrel.Eq{"bd.booking_id": bookingIDs}).
		OrderBy("bd.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list booking details query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list booking details failed: %w", err)
	}
	defer rows.Close()

	byBooking := make(map[string][]Detail)
	owner := make(map[int64]string) // detail id -> booking id
	index := make(map[int64]int)    // detail id -> index within its booking
	var detailIDs []int64

	for rows.Next() {
		var (
			d         Detail
			bookingID string
		)
		if err := rows.Scan(&d.ID, &bookingID, &d.BookingDate, &d.CourtID, &d.CourtName); err != nil {
			return nil, fmt.Errorf("scan booking detail failed: %w", err)
		}
		owner[d.ID] = bookingID
		index[d.ID] = len(byBooking[bookingID])
		byBooking[bookingID] = append(byBooking[bookingID], d)
		detailIDs = append(detailIDs, d.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list booking details failed: %w", err)
	}

	if len(detailIDs) == 0 {
		return byBooking, nil
	}

	query, args, err = psql.Select(
		"booking_detail_id", "slot_id", "name",
		"coalesce(start_time::text, '')", "coalesce(end_time::text, '')", "rate",
	).
		From("public.booking_slot_details").
		Where(squirrel.Eq{"booking_detail_id": detailIDs}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list slot details query failed: %w", err)
	}

	slotRows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list slot details failed: %w", err)
	}
	defer slotRows.Close()

	for slotRows.Next() {
		var (
			detailID int64
			rawID    string
			sd       SlotDetail
		)
		if err := slotRows.Scan(&detailID, &rawID, &sd.Label, &sd.StartTime, &sd.EndTime, &sd.Rate); err != nil {
			return nil, fmt.Errorf("scan slot detail failed: %w", err)
		}
		sd.SlotID = slot.ID(rawID)

		bookingID := owner[detailID]
		byBooking[bookingID][index[detailID]].Slots = append(byBooking[bookingID][index[detailID]].Slots, sd)
	}
	if err := slotRows.Err(); err != nil {
		return nil, fmt.Errorf("list slot details failed: %w", err)
	}

	return byBooking, nil
}

func (r *pgxRepository) Cancel(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("booking_status", string(StatusCancelled)).
		Set("deleted_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Expr("deleted_at IS NULL")).
		ToSql()
	if err != nil {
		return fmt.Errorf("build cancel booking query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("cancel booking failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) BookedSlotIDs(ctx context.Context, courtID int64, date string) ([]slot.ID, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("bsd.slot_id").
		From("public.booking_slot_details bsd").
		Join("public.booking_details bd ON bsd.booking_detail_id = bd.id").
		Join("public.bookings b ON bd.booking_id = b.id").
		Where(squirrel.Eq{"bd.court_id": courtID}).
		Where(squirrel.Expr("bd.booking_date = ?::date", date)).
		Where(squirrel.NotEq{"b.booking_status": string(StatusCancelled)}).
		Where(squirrel.Expr("b.deleted_at IS NULL")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build booked slots query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list booked slots failed: %w", err)
	}
	defer rows.Close()

	var ids []slot.ID
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan booked slot failed: %w", err)
		}
		ids = append(ids, slot.ID(raw))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list booked slots failed: %w", err)
	}
	return ids, nil
}
