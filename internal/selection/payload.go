package selection

import "github.com/playbox/box-booking-backend/internal/slot"

// SlotsByDate is the nested submission grouping: date -> court -> slot ids.
type SlotsByDate map[string]map[int64][]slot.ID

// Payload is the body the booking-creation boundary expects.
type Payload struct {
	BoxID         int64       `json:"box_id"`
	SelectedSlots SlotsByDate `json:"selectedSlots"`
}

// BuildPayload projects the selection into the grouped submission shape.
// Entries missing a date or court fall back to the provided values, so a
// selection assembled before multi-date support still submits correctly.
// Entries without a raw slot id are skipped: the backend contract requires
// dense id arrays, never null holes.
func (s *Set) BuildPayload(boxID int64, fallbackDate string, fallbackCourtID int64) Payload {
	grouped := make(SlotsByDate)

	for _, e := range s.entries {
		date := e.Date
		if date == "" {
			date = fallbackDate
		}
		courtID := e.CourtID
		if courtID == 0 {
			courtID = fallbackCourtID
		}

		if !e.SlotID.Valid() {
			continue
		}

		byCourt, ok := grouped[date]
		if !ok {
			byCourt = make(map[int64][]slot.ID)
			grouped[date] = byCourt
		}
		byCourt[courtID] = append(byCourt[courtID], e.SlotID)
	}

	return Payload{
		BoxID:         boxID,
		SelectedSlots: grouped,
	}
}
