package slot

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// TimeInfo is the nested time block attached to a feed slot.
// Times are zero-padded HH:mm:ss strings.
type TimeInfo struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// RawSlot is one bookable time window exactly as the feed delivers it.
// Every field is optional; different endpoints populate different subsets,
// which is why identity resolution lives in ResolveID rather than in the
// callers.
type RawSlot struct {
	ID             ID        `json:"id"`
	SlotID         ID        `json:"slot_id"`
	BoxCourtSlotID ID        `json:"box_court_slot_id"`
	Rate           Rate      `json:"rate"`
	Info           *TimeInfo `json:"get_single_slot"`
}

// NormalizedSlot is the engine's canonical slot shape. It is produced once
// per RawSlot at ingestion; the normalized id is never re-derived from a
// NormalizedSlot afterwards.
type NormalizedSlot struct {
	NormalizedID ID      `json:"normalized_id"`
	SlotID       ID      `json:"slot_id"`
	Rate         float64 `json:"rate"`
	Label        string  `json:"name"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
}

// ResolveID returns the slot's stable identifier, trying slot_id,
// box_court_slot_id and id in that priority order. It returns the empty ID
// when none are present.
func ResolveID(raw RawSlot) ID {
	switch {
	case raw.SlotID.Valid():
		return raw.SlotID
	case raw.BoxCourtSlotID.Valid():
		return raw.BoxCourtSlotID
	case raw.ID.Valid():
		return raw.ID
	default:
		return ""
	}
}

// Normalize converts a feed slot into the canonical shape. Missing fields
// degrade to zero values; it never fails.
func Normalize(raw RawSlot) NormalizedSlot {
	ns := NormalizedSlot{
		NormalizedID: ResolveID(raw),
		SlotID:       raw.SlotID,
		Rate:         float64(raw.Rate),
	}
	if raw.Info != nil {
		ns.Label = raw.Info.Name
		ns.StartTime = raw.Info.StartTime
		ns.EndTime = raw.Info.EndTime
	}
	return ns
}

// NormalizeAll normalizes a whole feed page, preserving order.
func NormalizeAll(raws []RawSlot) []NormalizedSlot {
	out := make([]NormalizedSlot, len(raws))
	for i, raw := range raws {
		out[i] = Normalize(raw)
	}
	return out
}

// Rate is a price that may arrive as a JSON number or a numeric string.
// Malformed input parses to 0; rates never abort feed ingestion.
type Rate float64

// ParseRate converts a feed rate string to a Rate, degrading to 0 on
// malformed input.
func ParseRate(s string) Rate {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return Rate(v)
}

// UnmarshalJSON accepts a number, a string, or null.
func (r *Rate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = 0
		return nil
	}

	s := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			*r = 0
			return nil
		}
	}

	*r = ParseRate(s)
	return nil
}
