package slot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookedListUnmarshal(t *testing.T) {
	t.Run("Array of mixed entries", func(t *testing.T) {
		var l BookedList
		require.NoError(t, json.Unmarshal([]byte(`[3, "4", {"slot_id": 5}]`), &l))
		require.Len(t, l, 3)

		index := NewBookedIndex(l)
		assert.True(t, index.IsBooked("3"))
		assert.True(t, index.IsBooked("4"))
		assert.True(t, index.IsBooked("5"))
		assert.False(t, index.IsBooked("6"))
	})

	t.Run("Single object", func(t *testing.T) {
		var l BookedList
		require.NoError(t, json.Unmarshal([]byte(`{"box_court_slot_id": "9"}`), &l))
		require.Len(t, l, 1)
		assert.True(t, NewBookedIndex(l).IsBooked("9"))
	})

	t.Run("Single scalar", func(t *testing.T) {
		var l BookedList
		require.NoError(t, json.Unmarshal([]byte(`12`), &l))
		require.Len(t, l, 1)
		assert.True(t, NewBookedIndex(l).IsBooked("12"))
	})

	t.Run("Null is empty", func(t *testing.T) {
		var l BookedList
		require.NoError(t, json.Unmarshal([]byte(`null`), &l))
		assert.Empty(t, l)
		assert.False(t, NewBookedIndex(l).IsBooked("1"))
	})
}

func TestBookedEntryMatches(t *testing.T) {
	t.Run("Object entry matches on any id field", func(t *testing.T) {
		var e BookedEntry
		require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "slot_id": "2", "box_court_id": 3}`), &e))

		assert.True(t, e.Matches("1"))
		assert.True(t, e.Matches("2"))
		assert.True(t, e.Matches("3"))
		assert.False(t, e.Matches("4"))
	})

	t.Run("Number and string ids compare equal", func(t *testing.T) {
		var e BookedEntry
		require.NoError(t, json.Unmarshal([]byte(`{"slot_id": 42}`), &e))
		assert.True(t, e.Matches("42"), "a numeric booked id must match the same id seen as a string")
	})

	t.Run("Empty id never matches", func(t *testing.T) {
		e := BookedEntryFromID("7")
		assert.False(t, e.Matches(""), "a slot without an identifier is unselectable, not reserved")
	})
}

func TestBookedIndexEmptyID(t *testing.T) {
	index := NewBookedIndex(BookedList{BookedEntryFromID("1"), {}})
	assert.False(t, index.IsBooked(""), "the empty id must never read as booked, even against empty entries")
}

func TestBookedListRoundTrip(t *testing.T) {
	// A cached feed must decode to the same index it was built from.
	original := BookedList{
		BookedEntryFromID("3"),
		{SlotID: "5", BoxCourtID: "8"},
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var restored BookedList
	require.NoError(t, json.Unmarshal(data, &restored))

	index := NewBookedIndex(restored)
	assert.True(t, index.IsBooked("3"))
	assert.True(t, index.IsBooked("5"))
	assert.True(t, index.IsBooked("8"))
	assert.False(t, index.IsBooked("4"))
}
