package http

import "github.com/playbox/box-booking-backend/internal/slot"

// SlotView is one normalized slot as the client renders it: identity,
// price, time window, day/night period and whether it is already booked.
type SlotView struct {
	NormalizedID slot.ID     `json:"normalized_id"`
	SlotID       slot.ID     `json:"slot_id"`
	Rate         float64     `json:"rate"`
	Name         string      `json:"name"`
	StartTime    string      `json:"start_time"`
	EndTime      string      `json:"end_time"`
	Period       slot.Period `json:"period"`
	Booked       bool        `json:"booked"`
}

// FeedResponse is the per-(date, court) slot page.
type FeedResponse struct {
	Date    string     `json:"date"`
	CourtID int64      `json:"court_id"`
	Slots   []SlotView `json:"slots"`
}

// NewFeedResponse normalizes a feed and marks each slot against the booked
// index.
func NewFeedResponse(f *slot.Feed, courtID int64, date string) FeedResponse {
	index := f.BookedIndex()

	views := make([]SlotView, 0, len(f.AllSlots))
	for _, ns := range slot.NormalizeAll(f.AllSlots) {
		views = append(views, SlotView{
			NormalizedID: ns.NormalizedID,
			SlotID:       ns.SlotID,
			Rate:         ns.Rate,
			Name:         ns.Label,
			StartTime:    ns.StartTime,
			EndTime:      ns.EndTime,
			Period:       slot.PeriodOf(ns.Label),
			Booked:       index.IsBooked(ns.NormalizedID),
		})
	}

	return FeedResponse{
		Date:    date,
		CourtID: courtID,
		Slots:   views,
	}
}
