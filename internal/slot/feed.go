package slot

import (
	"net/http"

	"github.com/playbox/box-booking-backend/internal/pkg/apperror"
)

var (
	ErrInvalidDate   = apperror.New(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	ErrCourtNotFound = apperror.New(http.StatusNotFound, "court not found")
)

// Feed is one court's slot page for one date: every slot the court offers
// plus the collection of already-booked entries. This is also the cache
// representation, so decoding a cached feed goes through the same tolerant
// types as decoding the live one.
type Feed struct {
	AllSlots []RawSlot  `json:"all_slots"`
	Booked   BookedList `json:"booked_slot"`
}

// BookedIndex builds the booked/not-booked index over the feed.
func (f *Feed) BookedIndex() *BookedIndex {
	return NewBookedIndex(f.Booked)
}

// FindByID returns the feed slot whose resolved identity matches id.
func (f *Feed) FindByID(id ID) (RawSlot, bool) {
	if !id.Valid() {
		return RawSlot{}, false
	}
	for _, raw := range f.AllSlots {
		if ResolveID(raw) == id {
			return raw, true
		}
	}
	return RawSlot{}, false
}
