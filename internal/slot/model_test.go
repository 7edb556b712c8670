package slot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveID(t *testing.T) {
	t.Run("Prefers slot_id", func(t *testing.T) {
		raw := RawSlot{ID: "1", SlotID: "2", BoxCourtSlotID: "3"}
		assert.Equal(t, ID("2"), ResolveID(raw))
	})

	t.Run("Falls back to box_court_slot_id", func(t *testing.T) {
		raw := RawSlot{ID: "1", BoxCourtSlotID: "3"}
		assert.Equal(t, ID("3"), ResolveID(raw))
	})

	t.Run("Falls back to id", func(t *testing.T) {
		raw := RawSlot{ID: "1"}
		assert.Equal(t, ID("1"), ResolveID(raw))
	})

	t.Run("No identifier at all", func(t *testing.T) {
		raw := RawSlot{}
		assert.False(t, ResolveID(raw).Valid(), "slot without any id field should resolve to the empty ID")
	})
}

func TestIDUnmarshal(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want ID
	}{
		{"Number", `42`, "42"},
		{"Numeric string", `"42"`, "42"},
		{"Large number keeps digits", `9007199254740993`, "9007199254740993"},
		{"Null", `null`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tc.in), &id))
			assert.Equal(t, tc.want, id)
		})
	}

	t.Run("Number and string forms compare equal", func(t *testing.T) {
		var a, b ID
		require.NoError(t, json.Unmarshal([]byte(`7`), &a))
		require.NoError(t, json.Unmarshal([]byte(`"7"`), &b))
		assert.Equal(t, a, b, "42 and \"42\" style ids must identify the same slot")
	})
}

func TestIDMarshal(t *testing.T) {
	t.Run("Empty id emits null", func(t *testing.T) {
		data, err := json.Marshal(ID(""))
		require.NoError(t, err)
		assert.Equal(t, "null", string(data))
	})

	t.Run("Present id emits string", func(t *testing.T) {
		data, err := json.Marshal(ID("42"))
		require.NoError(t, err)
		assert.Equal(t, `"42"`, string(data))
	})
}

func TestRate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Rate
	}{
		{"Number", `150`, 150},
		{"Decimal string", `"150.50"`, 150.5},
		{"Padded string", `" 99 "`, 99},
		{"Malformed string", `"abc"`, 0},
		{"Null", `null`, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var r Rate
			require.NoError(t, json.Unmarshal([]byte(tc.in), &r), "rate parsing must never abort ingestion")
			assert.Equal(t, tc.want, r)
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Run("Full slot", func(t *testing.T) {
		raw := RawSlot{
			SlotID: "10",
			Rate:   200,
			Info: &TimeInfo{
				Name:      "7-8 AM",
				StartTime: "07:00:00",
				EndTime:   "08:00:00",
			},
		}

		ns := Normalize(raw)
		assert.Equal(t, ID("10"), ns.NormalizedID)
		assert.Equal(t, ID("10"), ns.SlotID)
		assert.Equal(t, 200.0, ns.Rate)
		assert.Equal(t, "7-8 AM", ns.Label)
		assert.Equal(t, "07:00:00", ns.StartTime)
		assert.Equal(t, "08:00:00", ns.EndTime)
	})

	t.Run("Missing time block degrades to zero values", func(t *testing.T) {
		ns := Normalize(RawSlot{BoxCourtSlotID: "5"})
		assert.Equal(t, ID("5"), ns.NormalizedID)
		assert.Empty(t, ns.Label)
		assert.Empty(t, ns.StartTime)
		assert.Empty(t, ns.EndTime)
	})

	t.Run("NormalizeAll preserves order", func(t *testing.T) {
		raws := []RawSlot{{SlotID: "1"}, {SlotID: "2"}, {SlotID: "3"}}
		out := NormalizeAll(raws)
		require.Len(t, out, 3)
		for i, ns := range out {
			assert.Equal(t, ResolveID(raws[i]), ns.NormalizedID)
		}
	})
}
