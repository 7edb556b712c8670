package http

import (
	"time"

	"github.com/playbox/box-booking-backend/internal/booking"
	"github.com/playbox/box-booking-backend/internal/pkg/request"
	"github.com/playbox/box-booking-backend/internal/selection"
	"github.com/playbox/box-booking-backend/internal/slot"
)

// CreateBookingRequest is the grouped submission body: box id plus slot ids
// nested by date and court.
type CreateBookingRequest struct {
	BoxID         int64                 `json:"box_id" binding:"required,min=1"`
	SelectedSlots selection.SlotsByDate `json:"selectedSlots" binding:"required"`
}

// ListBookingsQuery filters the caller's booking history.
type ListBookingsQuery struct {
	request.ListParams
	Status string `form:"status" binding:"omitempty,oneof=upcoming completed cancelled"`
}

type SlotDetailResponse struct {
	SlotID    slot.ID `json:"slot_id"`
	Name      string  `json:"name"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Rate      float64 `json:"rate"`
}

type DetailResponse struct {
	BookingDate string               `json:"booking_date"`
	CourtID     int64                `json:"court_id"`
	CourtName   string               `json:"court_name"`
	Slots       []SlotDetailResponse `json:"slots"`
}

// BookingResponse is one booking with its derived status bucket.
type BookingResponse struct {
	ID          string           `json:"id"`
	BoxID       int64            `json:"box_id"`
	BoxTitle    string           `json:"box_title"`
	BookingDate string           `json:"booking_date"`
	Status      booking.Status   `json:"status"`
	TotalAmount float64          `json:"total_amount"`
	SlotCount   int              `json:"slot_count"`
	CreatedAt   time.Time        `json:"created_at"`
	Details     []DetailResponse `json:"details"`
}

func NewBookingResponse(b *booking.Booking, status booking.Status) BookingResponse {
	details := make([]DetailResponse, 0, len(b.Details))
	for _, d := range b.Details {
		slots := make([]SlotDetailResponse, 0, len(d.Slots))
		for _, s := range d.Slots {
			slots = append(slots, SlotDetailResponse{
				SlotID:    s.SlotID,
				Name:      s.Label,
				StartTime: s.StartTime,
				EndTime:   s.EndTime,
				Rate:      s.Rate,
			})
		}
		details = append(details, DetailResponse{
			BookingDate: d.BookingDate,
			CourtID:     d.CourtID,
			CourtName:   d.CourtName,
			Slots:       slots,
		})
	}

	return BookingResponse{
		ID:          b.ID,
		BoxID:       b.BoxID,
		BoxTitle:    b.BoxTitle,
		BookingDate: b.BookingDate,
		Status:      status,
		TotalAmount: b.TotalAmount,
		SlotCount:   b.SlotCount(),
		CreatedAt:   b.CreatedAt,
		Details:     details,
	}
}
