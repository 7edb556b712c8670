package http

import (
	"github.com/playbox/box-booking-backend/internal/selection"
	"github.com/playbox/box-booking-backend/internal/slot"
)

// ToggleRequest flips one slot in the selection. The id is the slot's
// normalized identity as served by the feed endpoint.
type ToggleRequest struct {
	CourtID int64   `json:"court_id" binding:"required,min=1"`
	Date    string  `json:"date" binding:"required"`
	SlotID  slot.ID `json:"slot_id" binding:"required"`
}

// ContextQuery narrows the time-range summary to the tab the client is
// looking at. Both are optional; without them only totals are returned.
type ContextQuery struct {
	Date    string `form:"date"`
	CourtID int64  `form:"court_id"`
}

// SelectionResponse is the selection session as the booking screen renders
// it: entries, per-date badge counts, the running total and, when a
// (date, court) context is given, the summarized time window.
type SelectionResponse struct {
	Slots        []selection.SelectedSlot `json:"selected_slots"`
	CountsByDate map[string]int           `json:"slot_counts_by_date"`
	TotalAmount  float64                  `json:"total_amount"`
	TimeRange    string                   `json:"time_range,omitempty"`
}

func NewSelectionResponse(set *selection.Set, date string, courtID int64) SelectionResponse {
	resp := SelectionResponse{
		Slots:        set.Entries(),
		CountsByDate: set.CountsByDate(),
		TotalAmount:  set.TotalAmount(),
	}
	if date != "" && courtID > 0 {
		resp.TimeRange = set.TimeRange(date, courtID)
	}
	return resp
}
