package slot

import (
	"regexp"
	"strconv"
	"strings"
)

// Period marks a slot as a daytime or nighttime window, used by clients to
// pick a sun or moon marker.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodNight Period = "night"
)

// Matches a leading hour token like "7 AM", "7-9 PM" or "10AM" in a slot
// label.
var labelHourPattern = regexp.MustCompile(`(?i)(\d{1,2})(?:-\d{1,2})?\s*(AM|PM)`)

// PeriodOf derives a period from a slot's human label by parsing its hour
// token. Hours in [07:00, 19:00) are day; everything else, including labels
// that do not parse, is night.
func PeriodOf(label string) Period {
	m := labelHourPattern.FindStringSubmatch(label)
	if m == nil {
		return PeriodNight
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour > 12 {
		return PeriodNight
	}

	switch strings.ToUpper(m[2]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	return periodOfHour(hour)
}

func periodOfHour(hour int) Period {
	if hour >= 7 && hour < 19 {
		return PeriodDay
	}
	return PeriodNight
}
