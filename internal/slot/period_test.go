package slot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeriodOf(t *testing.T) {
	cases := []struct {
		label string
		want  Period
	}{
		{"7-8 AM", PeriodDay},
		{"7 AM", PeriodDay},
		{"10AM", PeriodDay},
		{"11-12 AM", PeriodDay},
		{"12 PM", PeriodDay},
		{"6-7 PM", PeriodDay}, // 18:00 is still daytime
		{"7-8 PM", PeriodNight},
		{"11 PM", PeriodNight},
		{"12 AM", PeriodNight}, // midnight
		{"6 AM", PeriodNight},
		{"am/pm lowercase 8 pm", PeriodNight},
		{"", PeriodNight},
		{"Morning Session", PeriodNight}, // no hour token defaults to night
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			assert.Equal(t, tc.want, PeriodOf(tc.label), "label %q", tc.label)
		})
	}
}
