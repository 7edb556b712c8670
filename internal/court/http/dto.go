package http

import "github.com/playbox/box-booking-backend/internal/court"

type CourtResponse struct {
	ID    int64  `json:"id"`
	BoxID int64  `json:"box_id"`
	Name  string `json:"name"`
}

func NewCourtResponse(ct *court.Court) CourtResponse {
	return CourtResponse{
		ID:    ct.ID,
		BoxID: ct.BoxID,
		Name:  ct.Name,
	}
}
