package booking

import (
	"net/http"
	"time"

	"github.com/playbox/box-booking-backend/internal/pkg/apperror"
	"github.com/playbox/box-booking-backend/internal/slot"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrEmptySelection   = apperror.New(http.StatusBadRequest, "no slots selected")
	ErrBoxNotFound      = apperror.New(http.StatusNotFound, "box not found")
	ErrCourtMismatch    = apperror.New(http.StatusBadRequest, "court does not belong to this box")
	ErrInvalidDate      = apperror.New(http.StatusBadRequest, "invalid booking date")
	ErrSlotTaken        = apperror.New(http.StatusConflict, "one or more slots are already booked")
	ErrUnknownSlot      = apperror.New(http.StatusBadRequest, "unknown slot id")
	ErrAlreadyCancelled = apperror.New(http.StatusConflict, "booking is already cancelled")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

// Status is the derived temporal bucket of a booking. It is never stored;
// Classify recomputes it from "now" every time a list is rendered.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ValidStatus reports whether s names one of the three buckets.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusUpcoming, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Booking is one confirmed reservation. A booking spans one box but may
// cover several dates and courts through its detail groups.
type Booking struct {
	ID            string // UUID
	UserID        string
	BoxID         int64
	BoxTitle      string
	BookingDate   string // earliest selected date, YYYY-MM-DD
	BookingStatus string // stored status: confirmed or cancelled
	DeletedAt     *time.Time
	CreatedAt     time.Time
	TotalAmount   float64
	Details       []Detail
}

// SlotCount is the number of booked slots across all detail groups.
func (b *Booking) SlotCount() int {
	n := 0
	for _, d := range b.Details {
		n += len(d.Slots)
	}
	return n
}

// Detail groups the booked slots of one date on one court.
type Detail struct {
	ID          int64
	BookingDate string // YYYY-MM-DD
	CourtID     int64
	CourtName   string
	Slots       []SlotDetail
}

// SlotDetail is one booked slot with its time info snapshotted at booking
// time. StartTime/EndTime may be empty when the feed had no time block for
// the slot.
type SlotDetail struct {
	SlotID    slot.ID
	Label     string
	StartTime string // HH:mm:ss
	EndTime   string // HH:mm:ss
	Rate      float64
}

// Filter defines parameters for listing a user's bookings.
type Filter struct {
	UserID   string
	Bucket   Status // empty means all buckets
	Page     int
	PageSize int
}
