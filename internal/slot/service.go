package slot

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/playbox/box-booking-backend/internal/court"
)

// BookedSource supplies the ids already booked for one court on one date.
// The booking module implements this; accepting a narrow interface keeps
// the dependency one-directional.
type BookedSource interface {
	BookedSlotIDs(ctx context.Context, courtID int64, date string) ([]ID, error)
}

type Service interface {
	// GetFeed returns the slot feed for a court on a date, served from
	// cache when possible.
	GetFeed(ctx context.Context, courtID int64, date string) (*Feed, error)

	// InvalidateFeed drops the cached feed so the next read reflects a
	// fresh booked set.
	InvalidateFeed(ctx context.Context, courtID int64, date string)
}

type service struct {
	repo         Repository
	courtService court.Service
	bookedSource BookedSource
	cache        *FeedCache
}

func NewService(repo Repository, courtService court.Service, bookedSource BookedSource, cache *FeedCache) Service {
	return &service{
		repo:         repo,
		courtService: courtService,
		bookedSource: bookedSource,
		cache:        cache,
	}
}

func (s *service) GetFeed(ctx context.Context, courtID int64, date string) (*Feed, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalidDate
	}

	if _, err := s.courtService.GetByID(ctx, courtID); err != nil {
		if errors.Is(err, court.ErrNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, courtID, date); err == nil && cached != nil {
			return cached, nil
		}
	}

	raws, err := s.repo.ListByCourt(ctx, courtID)
	if err != nil {
		return nil, err
	}

	bookedIDs, err := s.bookedSource.BookedSlotIDs(ctx, courtID, date)
	if err != nil {
		return nil, err
	}

	booked := make(BookedList, 0, len(bookedIDs))
	for _, id := range bookedIDs {
		booked = append(booked, BookedEntryFromID(id))
	}

	feed := &Feed{
		AllSlots: raws,
		Booked:   booked,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, courtID, date, feed); err != nil {
			// Cache failures degrade to uncached reads.
			log.Printf("failed to cache slot feed for court %d on %s: %v", courtID, date, err)
		}
	}

	return feed, nil
}

func (s *service) InvalidateFeed(ctx context.Context, courtID int64, date string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, courtID, date); err != nil {
		log.Printf("failed to invalidate slot feed for court %d on %s: %v", courtID, date, err)
	}
}
