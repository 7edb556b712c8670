package selection

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playbox/box-booking-backend/internal/slot"
)

func TestBuildPayload(t *testing.T) {
	t.Run("Groups by date then court", func(t *testing.T) {
		s := NewSet()
		require.NoError(t, s.Toggle(ns("1", 100, "7-8 AM", "07:00:00", "08:00:00"), "2026-09-01", 1, nil))
		require.NoError(t, s.Toggle(ns("2", 100, "8-9 AM", "08:00:00", "09:00:00"), "2026-09-01", 1, nil))
		require.NoError(t, s.Toggle(ns("3", 100, "9-10 AM", "09:00:00", "10:00:00"), "2026-09-01", 2, nil))
		require.NoError(t, s.Toggle(ns("4", 100, "7-8 AM", "07:00:00", "08:00:00"), "2026-09-02", 1, nil))

		p := s.BuildPayload(10, "2026-09-01", 1)
		assert.Equal(t, int64(10), p.BoxID)
		assert.Equal(t, SlotsByDate{
			"2026-09-01": {
				1: []slot.ID{"1", "2"},
				2: []slot.ID{"3"},
			},
			"2026-09-02": {
				1: []slot.ID{"4"},
			},
		}, p.SelectedSlots)
	})

	t.Run("Entries without a raw slot id are skipped", func(t *testing.T) {
		s := NewSet()
		withRaw := slot.NormalizedSlot{NormalizedID: "1", SlotID: "1", Rate: 100}
		withoutRaw := slot.NormalizedSlot{NormalizedID: "2", Rate: 100} // resolved from another field

		require.NoError(t, s.Toggle(withRaw, "2026-09-01", 1, nil))
		require.NoError(t, s.Toggle(withoutRaw, "2026-09-01", 1, nil))

		p := s.BuildPayload(10, "2026-09-01", 1)
		assert.Equal(t, []slot.ID{"1"}, p.SelectedSlots["2026-09-01"][1],
			"the submission arrays must stay dense, never carry null holes")
	})

	t.Run("Empty set submits empty grouping", func(t *testing.T) {
		p := NewSet().BuildPayload(10, "2026-09-01", 1)
		assert.Empty(t, p.SelectedSlots)
	})

	t.Run("Wire shape", func(t *testing.T) {
		s := NewSet()
		require.NoError(t, s.Toggle(ns("5", 100, "7-8 AM", "07:00:00", "08:00:00"), "2026-09-01", 3, nil))

		data, err := json.Marshal(s.BuildPayload(10, "2026-09-01", 3))
		require.NoError(t, err)
		assert.JSONEq(t, `{"box_id": 10, "selectedSlots": {"2026-09-01": {"3": ["5"]}}}`, string(data))
	})
}
