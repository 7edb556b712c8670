package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Fixed classification instant: 2026-09-01 15:00 local.
var classifyNow = time.Date(2026, 9, 1, 15, 0, 0, 0, time.Local)

func detail(date string, slots ...SlotDetail) Detail {
	return Detail{BookingDate: date, CourtID: 1, Slots: slots}
}

func slotEnding(end string) SlotDetail {
	return SlotDetail{SlotID: "1", EndTime: end}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		booking Booking
		want    Status
	}{
		{
			name: "Future slot is upcoming",
			booking: Booking{
				Details: []Detail{detail("2026-09-01", slotEnding("16:00:00"))},
			},
			want: StatusUpcoming,
		},
		{
			name: "Ended slot today is completed",
			booking: Booking{
				Details: []Detail{detail("2026-09-01", slotEnding("14:00:00"))},
			},
			want: StatusCompleted,
		},
		{
			name: "Past date is completed",
			booking: Booking{
				Details: []Detail{detail("2026-08-30", slotEnding("16:00:00"))},
			},
			want: StatusCompleted,
		},
		{
			name: "One future slot lifts a multi-date booking",
			booking: Booking{
				Details: []Detail{
					detail("2026-08-30", slotEnding("16:00:00")),
					detail("2026-09-03", slotEnding("08:00:00")),
				},
			},
			want: StatusUpcoming,
		},
		{
			name: "Slot without end time falls back to the day rule",
			booking: Booking{
				Details: []Detail{detail("2026-09-01", SlotDetail{SlotID: "1"})},
			},
			want: StatusUpcoming, // same-day without a clock stays active
		},
		{
			name: "Unparseable end time degrades to the day rule",
			booking: Booking{
				Details: []Detail{detail("2026-09-01", slotEnding("four pm"))},
			},
			want: StatusUpcoming,
		},
		{
			name: "Detail group without slots uses the day rule",
			booking: Booking{
				Details: []Detail{detail("2026-09-02")},
			},
			want: StatusUpcoming,
		},
		{
			name: "Past group without slots is completed",
			booking: Booking{
				Details: []Detail{detail("2026-08-31")},
			},
			want: StatusCompleted,
		},
		{
			name: "Cancelled status dominates future dates",
			booking: Booking{
				BookingStatus: "cancelled",
				Details:       []Detail{detail("2026-09-03", slotEnding("16:00:00"))},
			},
			want: StatusCancelled,
		},
		{
			name: "Soft delete dominates future dates",
			booking: Booking{
				DeletedAt: &classifyNow,
				Details:   []Detail{detail("2026-09-03", slotEnding("16:00:00"))},
			},
			want: StatusCancelled,
		},
		{
			name: "No details falls back to record date, same-day is upcoming",
			booking: Booking{
				BookingDate: "2026-09-01",
			},
			want: StatusUpcoming,
		},
		{
			name: "No details with past record date is completed",
			booking: Booking{
				BookingDate: "2026-08-15",
			},
			want: StatusCompleted,
		},
		{
			name: "No details with unparseable record date is completed",
			booking: Booking{
				BookingDate: "soon",
			},
			want: StatusCompleted,
		},
		{
			name: "Details with empty dates are skipped",
			booking: Booking{
				Details: []Detail{detail("", slotEnding("16:00:00"))},
			},
			want: StatusCompleted,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(&tc.booking, classifyNow))
		})
	}
}

func TestSlotCount(t *testing.T) {
	b := Booking{
		Details: []Detail{
			detail("2026-09-01", slotEnding("08:00:00"), slotEnding("09:00:00")),
			detail("2026-09-02", slotEnding("08:00:00")),
		},
	}
	assert.Equal(t, 3, b.SlotCount())
}
