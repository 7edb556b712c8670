package selection

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/playbox/box-booking-backend/internal/court"
	"github.com/playbox/box-booking-backend/internal/pkg/apperror"
	"github.com/playbox/box-booking-backend/internal/slot"
)

var (
	ErrSlotNotInFeed = apperror.New(http.StatusNotFound, "slot not found for this court and date")
	ErrCourtMismatch = apperror.New(http.StatusBadRequest, "court does not belong to this box")
)

type Service interface {
	// Get returns the user's current selection for one box.
	Get(ctx context.Context, userID string, boxID int64) (*Set, error)

	// Toggle flips one slot in the user's selection and returns the updated
	// set. The slot is resolved against the live feed for (court, date), so
	// a slot booked since the last refresh is rejected rather than queued.
	Toggle(ctx context.Context, userID string, boxID, courtID int64, date string, id slot.ID) (*Set, error)

	// Clear drops the user's selection for one box.
	Clear(ctx context.Context, userID string, boxID int64) error
}

type service struct {
	store        *Store
	slotService  slot.Service
	courtService court.Service
}

func NewService(store *Store, slotService slot.Service, courtService court.Service) Service {
	return &service{
		store:        store,
		slotService:  slotService,
		courtService: courtService,
	}
}

func (s *service) Get(ctx context.Context, userID string, boxID int64) (*Set, error) {
	return s.store.Get(ctx, userID, boxID)
}

func (s *service) Toggle(ctx context.Context, userID string, boxID, courtID int64, date string, id slot.ID) (*Set, error) {
	if !id.Valid() {
		return nil, ErrMissingIdentifier
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, slot.ErrInvalidDate
	}

	c, err := s.courtService.GetByID(ctx, courtID)
	if err != nil {
		if errors.Is(err, court.ErrNotFound) {
			return nil, slot.ErrCourtNotFound
		}
		return nil, err
	}
	if c.BoxID != boxID {
		return nil, ErrCourtMismatch
	}

	feed, err := s.slotService.GetFeed(ctx, courtID, date)
	if err != nil {
		return nil, err
	}

	raw, ok := feed.FindByID(id)
	if !ok {
		return nil, ErrSlotNotInFeed
	}

	set, err := s.store.Get(ctx, userID, boxID)
	if err != nil {
		return nil, err
	}

	if err := set.Toggle(slot.Normalize(raw), date, courtID, feed.BookedIndex()); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, userID, boxID, set); err != nil {
		return nil, err
	}
	return set, nil
}

func (s *service) Clear(ctx context.Context, userID string, boxID int64) error {
	return s.store.Clear(ctx, userID, boxID)
}
