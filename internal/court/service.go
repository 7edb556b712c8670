package court

import (
	"context"

	"github.com/playbox/box-booking-backend/internal/venue"
)

type Service interface {
	GetByID(ctx context.Context, id int64) (*Court, error)
	ListByBox(ctx context.Context, boxID int64) ([]*Court, error)
}

type service struct {
	repo       Repository
	boxService venue.Service
}

func NewService(repo Repository, boxService venue.Service) Service {
	return &service{
		repo:       repo,
		boxService: boxService,
	}
}

func (s *service) GetByID(ctx context.Context, id int64) (*Court, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByBox(ctx context.Context, boxID int64) ([]*Court, error) {
	// Validation: the box must exist before listing its courts.
	if _, err := s.boxService.GetByID(ctx, boxID); err != nil {
		return nil, ErrInvalidBox
	}
	return s.repo.ListByBox(ctx, boxID)
}
