package booking

import (
	"context"
	"errors"
	"log"
	"sort"
	"time"

	"github.com/playbox/box-booking-backend/internal/court"
	"github.com/playbox/box-booking-backend/internal/selection"
	"github.com/playbox/box-booking-backend/internal/slot"
	"github.com/playbox/box-booking-backend/internal/venue"
)

// SelectionClearer drops a user's selection session once it has been turned
// into a booking. The selection module implements this.
type SelectionClearer interface {
	Clear(ctx context.Context, userID string, boxID int64) error
}

// Classified pairs a booking with its derived temporal bucket.
type Classified struct {
	*Booking
	Status Status
}

type Service interface {
	// Create turns a grouped submission into a confirmed booking. Every
	// slot is re-validated against the live feed, so a slot taken since the
	// client last refreshed fails the whole submission.
	Create(ctx context.Context, userID string, p selection.Payload) (*Booking, error)

	// GetByID returns one of the user's bookings with its derived status.
	GetByID(ctx context.Context, userID, id string) (*Classified, error)

	// List returns the user's bookings, each classified against now.
	// Filter.Bucket narrows the result to one bucket.
	List(ctx context.Context, filter Filter, now time.Time) ([]*Classified, int, error)

	// Cancel soft-deletes one of the user's bookings.
	Cancel(ctx context.Context, userID, id string) error
}

type service struct {
	repo            Repository
	boxService      venue.Service
	courtService    court.Service
	slotService     slot.Service
	selectionSource SelectionClearer
}

func NewService(repo Repository, boxService venue.Service, courtService court.Service, slotService slot.Service, selectionSource SelectionClearer) Service {
	return &service{
		repo:            repo,
		boxService:      boxService,
		courtService:    courtService,
		slotService:     slotService,
		selectionSource: selectionSource,
	}
}

func (s *service) Create(ctx context.Context, userID string, p selection.Payload) (*Booking, error) {
	if len(p.SelectedSlots) == 0 {
		return nil, ErrEmptySelection
	}

	if _, err := s.boxService.GetByID(ctx, p.BoxID); err != nil {
		return nil, ErrBoxNotFound
	}

	// Walk dates in order so detail groups and the earliest-date pick are
	// deterministic.
	dates := make([]string, 0, len(p.SelectedSlots))
	for date := range p.SelectedSlots {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	b := &Booking{
		UserID:        userID,
		BoxID:         p.BoxID,
		BookingStatus: "confirmed",
	}

	for _, date := range dates {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return nil, ErrInvalidDate
		}

		byCourt := p.SelectedSlots[date]
		courtIDs := make([]int64, 0, len(byCourt))
		for courtID := range byCourt {
			courtIDs = append(courtIDs, courtID)
		}
		sort.Slice(courtIDs, func(i, j int) bool { return courtIDs[i] < courtIDs[j] })

		for _, courtID := range courtIDs {
			ids := byCourt[courtID]
			if len(ids) == 0 {
				continue
			}

			c, err := s.courtService.GetByID(ctx, courtID)
			if err != nil {
				if errors.Is(err, court.ErrNotFound) {
					return nil, ErrCourtMismatch
				}
				return nil, err
			}
			if c.BoxID != p.BoxID {
				return nil, ErrCourtMismatch
			}

			feed, err := s.slotService.GetFeed(ctx, courtID, date)
			if err != nil {
				return nil, err
			}
			index := feed.BookedIndex()

			d := Detail{
				BookingDate: date,
				CourtID:     courtID,
				CourtName:   c.Name,
			}
			for _, id := range ids {
				raw, ok := feed.FindByID(id)
				if !ok {
					return nil, ErrUnknownSlot
				}
				ns := slot.Normalize(raw)
				if index.IsBooked(ns.NormalizedID) {
					return nil, ErrSlotTaken
				}
				d.Slots = append(d.Slots, SlotDetail{
					SlotID:    ns.SlotID,
					Label:     ns.Label,
					StartTime: ns.StartTime,
					EndTime:   ns.EndTime,
					Rate:      ns.Rate,
				})
				b.TotalAmount += ns.Rate
			}
			b.Details = append(b.Details, d)
		}
	}

	if len(b.Details) == 0 {
		return nil, ErrEmptySelection
	}
	b.BookingDate = b.Details[0].BookingDate

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	// The feed for each touched (court, date) now has a stale booked set.
	for _, d := range b.Details {
		s.slotService.InvalidateFeed(ctx, d.CourtID, d.BookingDate)
	}

	if s.selectionSource != nil {
		if err := s.selectionSource.Clear(ctx, userID, p.BoxID); err != nil {
			log.Printf("failed to clear selection session for user %s box %d: %v", userID, p.BoxID, err)
		}
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, userID, id string) (*Classified, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrPermissionDenied
	}
	return &Classified{Booking: b, Status: Classify(b, time.Now())}, nil
}

func (s *service) List(ctx context.Context, filter Filter, now time.Time) ([]*Classified, int, error) {
	repoFilter := filter
	if filter.Bucket != "" {
		// Buckets are derived from now, so the cut cannot happen in SQL.
		// Fetch everything and page after classifying.
		repoFilter.Page = 0
		repoFilter.PageSize = 0
	}

	bookings, total, err := s.repo.List(ctx, repoFilter)
	if err != nil {
		return nil, 0, err
	}

	classified := make([]*Classified, 0, len(bookings))
	for _, b := range bookings {
		cb := &Classified{Booking: b, Status: Classify(b, now)}
		if filter.Bucket != "" && cb.Status != filter.Bucket {
			continue
		}
		classified = append(classified, cb)
	}

	if filter.Bucket != "" {
		total = len(classified)
		if filter.Page > 0 && filter.PageSize > 0 {
			start := (filter.Page - 1) * filter.PageSize
			if start > len(classified) {
				start = len(classified)
			}
			end := start + filter.PageSize
			if end > len(classified) {
				end = len(classified)
			}
			classified = classified[start:end]
		}
	}

	return classified, total, nil
}

func (s *service) Cancel(ctx context.Context, userID, id string) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.UserID != userID {
		return ErrPermissionDenied
	}
	if b.DeletedAt != nil || b.BookingStatus == string(StatusCancelled) {
		return ErrAlreadyCancelled
	}

	if err := s.repo.Cancel(ctx, id); err != nil {
		return err
	}

	// Cancelled slots become bookable again, so the cached feeds for the
	// affected courts and dates are stale.
	for _, d := range b.Details {
		s.slotService.InvalidateFeed(ctx, d.CourtID, d.BookingDate)
	}
	return nil
}
