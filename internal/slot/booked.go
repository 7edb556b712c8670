package slot

import (
	"bytes"
	"encoding/json"
)

// BookedEntry is one element of the feed's "already booked" collection.
// Depending on the endpoint it is either a bare id (number or string) or an
// object exposing some subset of id fields. The backend is not consistent
// about which field identifies a booked slot, so matching checks all of
// them.
type BookedEntry struct {
	scalar ID

	ID             ID `json:"id"`
	SlotID         ID `json:"slot_id"`
	BoxCourtSlotID ID `json:"box_court_slot_id"`
	BoxCourtID     ID `json:"box_court_id"`
}

// BookedEntryFromID builds a scalar entry, used when the booked side is
// assembled locally from known slot ids.
func BookedEntryFromID(id ID) BookedEntry {
	return BookedEntry{scalar: id}
}

// Matches reports whether the entry refers to the given normalized id.
// Comparison is by canonical string form on every field the entry carries.
func (e BookedEntry) Matches(id ID) bool {
	if !id.Valid() {
		return false
	}
	if e.scalar.Valid() {
		return e.scalar == id
	}
	return e.ID == id || e.SlotID == id || e.BoxCourtSlotID == id || e.BoxCourtID == id
}

// UnmarshalJSON accepts an object, a bare number or string, or null.
func (e *BookedEntry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*e = BookedEntry{}
		return nil
	}

	if data[0] == '{' {
		type plain BookedEntry
		var p plain
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		*e = BookedEntry(p)
		return nil
	}

	var id ID
	if err := id.UnmarshalJSON(data); err != nil {
		return err
	}
	*e = BookedEntry{scalar: id}
	return nil
}

// MarshalJSON round-trips scalar entries as bare ids and object entries as
// objects, so a cached feed decodes to the same index it was built from.
func (e BookedEntry) MarshalJSON() ([]byte, error) {
	if e.scalar.Valid() {
		return e.scalar.MarshalJSON()
	}
	type plain BookedEntry
	return json.Marshal(plain(e))
}

// BookedList is the feed's booked collection. The feed sometimes sends an
// array, sometimes a single object, sometimes nothing at all; all three
// decode into a flat list.
type BookedList []BookedEntry

// UnmarshalJSON accepts an array, a single entry, or null.
func (l *BookedList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if data[0] == '[' {
		var entries []BookedEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return err
		}
		*l = entries
		return nil
	}

	var e BookedEntry
	if err := json.Unmarshal(data, &e); err != nil {
		return err
	}
	*l = BookedList{e}
	return nil
}

// BookedIndex answers booked/not-booked queries over a booked collection.
type BookedIndex struct {
	entries BookedList
}

// NewBookedIndex builds an index over the given entries. A nil list is a
// valid, always-empty index.
func NewBookedIndex(entries BookedList) *BookedIndex {
	return &BookedIndex{entries: entries}
}

// IsBooked reports whether the id appears in the booked collection.
// An empty id is never booked: a slot without an identifier is unselectable,
// not reserved.
func (x *BookedIndex) IsBooked(id ID) bool {
	if !id.Valid() {
		return false
	}
	for _, e := range x.entries {
		if e.Matches(id) {
			return true
		}
	}
	return false
}
