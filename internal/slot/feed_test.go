package slot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeedDecode(t *testing.T) {
	t.Run("Booked object form", func(t *testing.T) {
		var f Feed
		require.NoError(t, json.Unmarshal([]byte(`{
			"all_slots": [{"slot_id": 1}, {"box_court_slot_id": "2"}],
			"booked_slot": {"slot_id": 2}
		}`), &f))

		index := f.BookedIndex()
		assert.False(t, index.IsBooked("1"))
		assert.True(t, index.IsBooked("2"))
	})

	t.Run("Missing booked collection", func(t *testing.T) {
		var f Feed
		require.NoError(t, json.Unmarshal([]byte(`{"all_slots": []}`), &f))
		assert.False(t, f.BookedIndex().IsBooked("1"))
	})
}

func TestFeedFindByID(t *testing.T) {
	f := Feed{
		AllSlots: []RawSlot{
			{SlotID: "1"},
			{ID: "9", BoxCourtSlotID: "2"},
			{}, // no identifier
		},
	}

	t.Run("Matches resolved identity", func(t *testing.T) {
		raw, ok := f.FindByID("2")
		require.True(t, ok)
		assert.Equal(t, ID("2"), ResolveID(raw))
	})

	t.Run("Non-priority field does not match", func(t *testing.T) {
		_, ok := f.FindByID("9")
		assert.False(t, ok, "box_court_slot_id outranks id, so the slot resolves to 2, not 9")
	})

	t.Run("Empty id never matches", func(t *testing.T) {
		_, ok := f.FindByID("")
		assert.False(t, ok)
	})
}
