package selection

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/playbox/box-booking-backend/internal/pkg/apperror"
	"github.com/playbox/box-booking-backend/internal/slot"
)

var (
	ErrMissingIdentifier = apperror.New(http.StatusBadRequest, "cannot select this slot: missing identifier")
	ErrAlreadyBooked     = apperror.New(http.StatusConflict, "this slot is already booked, please select another")
)

// SelectedSlot is one entry of a selection set: a slot pinned to a date and
// a court. SlotID keeps the raw backend id, which the submission boundary
// expects; NormalizedID is the identity used for matching in the UI.
type SelectedSlot struct {
	NormalizedID slot.ID `json:"normalized_id"`
	SlotID       slot.ID `json:"slot_id"`
	Rate         float64 `json:"rate"`
	Label        string  `json:"name"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Date         string  `json:"date"`
	CourtID      int64   `json:"court_id"`
}

// key is the composite selection identity. The same slot id selected on two
// different dates or courts is two distinct entries.
func (s SelectedSlot) key() entryKey {
	return entryKey{id: s.NormalizedID, date: s.Date, courtID: s.CourtID}
}

type entryKey struct {
	id      slot.ID
	date    string
	courtID int64
}

// Set is an ordered collection of selected slots, unique by the composite
// (normalized id, date, court) key. The zero value is an empty set.
type Set struct {
	entries []SelectedSlot
}

// NewSet returns an empty selection set.
func NewSet() *Set {
	return &Set{}
}

// Toggle adds the slot for the given date and court, or removes it if the
// same composite key is already selected. Slots without an identifier and
// slots present in the booked index are rejected and never change the set.
func (s *Set) Toggle(ns slot.NormalizedSlot, date string, courtID int64, booked *slot.BookedIndex) error {
	if !ns.NormalizedID.Valid() {
		return ErrMissingIdentifier
	}
	if booked != nil && booked.IsBooked(ns.NormalizedID) {
		return ErrAlreadyBooked
	}

	k := entryKey{id: ns.NormalizedID, date: date, courtID: courtID}
	for i, e := range s.entries {
		if e.key() == k {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}

	s.entries = append(s.entries, SelectedSlot{
		NormalizedID: ns.NormalizedID,
		SlotID:       ns.SlotID,
		Rate:         ns.Rate,
		Label:        ns.Label,
		StartTime:    ns.StartTime,
		EndTime:      ns.EndTime,
		Date:         date,
		CourtID:      courtID,
	})
	return nil
}

// IsSelected reports whether the composite key is currently in the set.
func (s *Set) IsSelected(id slot.ID, date string, courtID int64) bool {
	k := entryKey{id: id, date: date, courtID: courtID}
	for _, e := range s.entries {
		if e.key() == k {
			return true
		}
	}
	return false
}

// Len returns the number of selected slots across all dates and courts.
func (s *Set) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the selection in insertion order.
func (s *Set) Entries() []SelectedSlot {
	out := make([]SelectedSlot, len(s.entries))
	copy(out, s.entries)
	return out
}

// CountForDate counts entries on the given date across all courts. Date
// chips are badged with everything queued that day, regardless of which
// court tab is active.
func (s *Set) CountForDate(date string) int {
	n := 0
	for _, e := range s.entries {
		if e.Date == date {
			n++
		}
	}
	return n
}

// CountsByDate returns the per-date entry counts for every date that has
// at least one selection, the shape date chips are badged from.
func (s *Set) CountsByDate() map[string]int {
	counts := make(map[string]int)
	for _, e := range s.entries {
		counts[e.Date]++
	}
	return counts
}

// HasForCourt reports whether any entry targets the given date and court,
// used to dot the court tab.
func (s *Set) HasForCourt(date string, courtID int64) bool {
	for _, e := range s.entries {
		if e.Date == date && e.CourtID == courtID {
			return true
		}
	}
	return false
}

// TotalAmount sums rates over the whole set. Rounding is left to the
// presentation layer.
func (s *Set) TotalAmount() float64 {
	var total float64
	for _, e := range s.entries {
		total += e.Rate
	}
	return total
}

// TimeRange summarizes the selection for one date on one court as
// "hh:mm AM to hh:mm PM". Unlike CountForDate it is scoped to both date and
// court, so two courts' windows are never blended into one range. It
// returns "" when nothing matches, which callers must treat as "nothing to
// show".
func (s *Set) TimeRange(date string, courtID int64) string {
	var matched []SelectedSlot
	for _, e := range s.entries {
		if e.Date == date && e.CourtID == courtID {
			matched = append(matched, e)
		}
	}
	if len(matched) == 0 {
		return ""
	}

	// Lexicographic order is chronological for zero-padded HH:mm:ss.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].StartTime < matched[j].StartTime
	})

	first := matched[0]
	last := matched[len(matched)-1]
	return formatClock(first.StartTime) + " to " + formatClock(last.EndTime)
}

// formatClock renders HH:mm:ss as hh:mm AM/PM, falling back to the raw
// string when it does not parse.
func formatClock(hms string) string {
	t, err := time.Parse("15:04:05", hms)
	if err != nil {
		return hms
	}
	return t.Format("03:04 PM")
}

// MarshalJSON encodes the set as its entry list, which is also the wire and
// session-store representation.
func (s *Set) MarshalJSON() ([]byte, error) {
	if s.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.entries)
}

// UnmarshalJSON restores a set from its entry list.
func (s *Set) UnmarshalJSON(data []byte) error {
	var entries []SelectedSlot
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	s.entries = entries
	return nil
}
