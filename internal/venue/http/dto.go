package http

import (
	"github.com/playbox/box-booking-backend/internal/pkg/request"
	"github.com/playbox/box-booking-backend/internal/venue"
)

// ListBoxesRequest defines query parameters for listing boxes.
type ListBoxesRequest struct {
	request.ListParams
	Keyword string `form:"keyword"`
}

type BoxResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Address     string  `json:"address"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Opening     bool    `json:"opening"`
}

func NewBoxResponse(b *venue.Box) BoxResponse {
	return BoxResponse{
		ID:          b.ID,
		Title:       b.Title,
		Address:     b.Address,
		Description: b.Description,
		Latitude:    b.Latitude,
		Longitude:   b.Longitude,
		Opening:     b.Opening,
	}
}
