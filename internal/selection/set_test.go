package selection

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playbox/box-booking-backend/internal/slot"
)

func ns(id slot.ID, rate float64, label, start, end string) slot.NormalizedSlot {
	return slot.NormalizedSlot{
		NormalizedID: id,
		SlotID:       id,
		Rate:         rate,
		Label:        label,
		StartTime:    start,
		EndTime:      end,
	}
}

func TestToggle(t *testing.T) {
	t.Run("Add then remove restores the set", func(t *testing.T) {
		s := NewSet()
		slot7 := ns("7", 100, "7-8 AM", "07:00:00", "08:00:00")

		require.NoError(t, s.Toggle(slot7, "2026-09-01", 1, nil))
		assert.True(t, s.IsSelected("7", "2026-09-01", 1))
		assert.Equal(t, 1, s.Len())

		require.NoError(t, s.Toggle(slot7, "2026-09-01", 1, nil))
		assert.False(t, s.IsSelected("7", "2026-09-01", 1))
		assert.Equal(t, 0, s.Len(), "toggling the same slot twice must leave the set as it was")
	})

	t.Run("Same slot on two dates is two entries", func(t *testing.T) {
		s := NewSet()
		slot7 := ns("7", 100, "7-8 AM", "07:00:00", "08:00:00")

		require.NoError(t, s.Toggle(slot7, "2026-09-01", 1, nil))
		require.NoError(t, s.Toggle(slot7, "2026-09-02", 1, nil))
		assert.Equal(t, 2, s.Len())

		// Removing one date leaves the other untouched.
		require.NoError(t, s.Toggle(slot7, "2026-09-01", 1, nil))
		assert.False(t, s.IsSelected("7", "2026-09-01", 1))
		assert.True(t, s.IsSelected("7", "2026-09-02", 1))
	})

	t.Run("Same slot on two courts is two entries", func(t *testing.T) {
		s := NewSet()
		slot7 := ns("7", 100, "7-8 AM", "07:00:00", "08:00:00")

		require.NoError(t, s.Toggle(slot7, "2026-09-01", 1, nil))
		require.NoError(t, s.Toggle(slot7, "2026-09-01", 2, nil))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("Missing identifier is rejected", func(t *testing.T) {
		s := NewSet()
		err := s.Toggle(ns("", 100, "", "", ""), "2026-09-01", 1, nil)
		assert.ErrorIs(t, err, ErrMissingIdentifier)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("Booked slot is rejected", func(t *testing.T) {
		s := NewSet()
		booked := slot.NewBookedIndex(slot.BookedList{slot.BookedEntryFromID("7")})

		err := s.Toggle(ns("7", 100, "7-8 AM", "07:00:00", "08:00:00"), "2026-09-01", 1, booked)
		assert.ErrorIs(t, err, ErrAlreadyBooked)
		assert.Equal(t, 0, s.Len())
	})
}

func TestCounts(t *testing.T) {
	s := NewSet()
	require.NoError(t, s.Toggle(ns("1", 100, "7-8 AM", "07:00:00", "08:00:00"), "2026-09-01", 1, nil))
	require.NoError(t, s.Toggle(ns("2", 100, "8-9 AM", "08:00:00", "09:00:00"), "2026-09-01", 2, nil))
	require.NoError(t, s.Toggle(ns("3", 100, "9-10 AM", "09:00:00", "10:00:00"), "2026-09-02", 1, nil))

	t.Run("Date count spans courts", func(t *testing.T) {
		assert.Equal(t, 2, s.CountForDate("2026-09-01"), "the date badge counts every court's entries")
		assert.Equal(t, 1, s.CountForDate("2026-09-02"))
		assert.Equal(t, 0, s.CountForDate("2026-09-03"))
	})

	t.Run("CountsByDate mirrors CountForDate", func(t *testing.T) {
		counts := s.CountsByDate()
		assert.Equal(t, map[string]int{"2026-09-01": 2, "2026-09-02": 1}, counts)
	})

	t.Run("HasForCourt is date and court scoped", func(t *testing.T) {
		assert.True(t, s.HasForCourt("2026-09-01", 1))
		assert.True(t, s.HasForCourt("2026-09-01", 2))
		assert.False(t, s.HasForCourt("2026-09-02", 2))
	})
}

func TestTotalAmount(t *testing.T) {
	s := NewSet()
	assert.Equal(t, 0.0, s.TotalAmount())

	require.NoError(t, s.Toggle(ns("1", 150, "7-8 AM", "07:00:00", "08:00:00"), "2026-09-01", 1, nil))
	require.NoError(t, s.Toggle(ns("2", 200.5, "8-9 AM", "08:00:00", "09:00:00"), "2026-09-02", 2, nil))
	assert.Equal(t, 350.5, s.TotalAmount())

	// Removing an entry subtracts its rate.
	require.NoError(t, s.Toggle(ns("1", 150, "7-8 AM", "07:00:00", "08:00:00"), "2026-09-01", 1, nil))
	assert.Equal(t, 200.5, s.TotalAmount())
}

func TestTimeRange(t *testing.T) {
	s := NewSet()
	require.NoError(t, s.Toggle(ns("2", 100, "9-10 AM", "09:00:00", "10:00:00"), "2026-09-01", 1, nil))
	require.NoError(t, s.Toggle(ns("1", 100, "7-8 AM", "07:00:00", "08:00:00"), "2026-09-01", 1, nil))
	require.NoError(t, s.Toggle(ns("3", 100, "8-9 PM", "20:00:00", "21:00:00"), "2026-09-01", 2, nil))

	t.Run("Range is ordered by start time", func(t *testing.T) {
		assert.Equal(t, "07:00 AM to 10:00 AM", s.TimeRange("2026-09-01", 1))
	})

	t.Run("Other court is not blended in", func(t *testing.T) {
		assert.Equal(t, "08:00 PM to 09:00 PM", s.TimeRange("2026-09-01", 2))
	})

	t.Run("No match yields empty string", func(t *testing.T) {
		assert.Equal(t, "", s.TimeRange("2026-09-02", 1))
	})
}

func TestSetJSONRoundTrip(t *testing.T) {
	s := NewSet()
	require.NoError(t, s.Toggle(ns("1", 150, "7-8 AM", "07:00:00", "08:00:00"), "2026-09-01", 1, nil))
	require.NoError(t, s.Toggle(ns("2", 200, "8-9 AM", "08:00:00", "09:00:00"), "2026-09-02", 2, nil))

	data, err := json.Marshal(s)
	require.NoError(t, err)

	restored := NewSet()
	require.NoError(t, json.Unmarshal(data, restored))

	assert.Equal(t, s.Entries(), restored.Entries(), "a stored session must restore to the same selection")
	assert.Equal(t, s.TotalAmount(), restored.TotalAmount())
}
