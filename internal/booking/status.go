package booking

import "time"

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
)

// Classify derives the temporal bucket of a booking at the given instant.
//
// Rules, first match wins:
//  1. A deleted or cancelled booking is cancelled, regardless of its dates.
//  2. Each booked slot with an end time is compared as a full instant:
//     end after now means upcoming, otherwise completed.
//  3. A detail group (or slot) without time info falls back to whole-day
//     comparison; a group dated today counts as upcoming so that same-day
//     reservations stay on the active list.
//  4. If any observation is upcoming the whole booking is upcoming; a
//     multi-date booking with one future slot must not sink into the
//     completed bucket.
func Classify(b *Booking, now time.Time) Status {
	if b.DeletedAt != nil || b.BookingStatus == string(StatusCancelled) {
		return StatusCancelled
	}

	today := dayOf(now)

	// Bookings without detail groups only carry a record-level date.
	if len(b.Details) == 0 {
		d, err := time.ParseInLocation(dateLayout, b.BookingDate, now.Location())
		if err == nil && !d.Before(today) {
			return StatusUpcoming
		}
		return StatusCompleted
	}

	hasUpcoming := false

	for _, detail := range b.Details {
		if detail.BookingDate == "" {
			continue
		}
		day, err := time.ParseInLocation(dateLayout, detail.BookingDate, now.Location())
		if err != nil {
			continue
		}

		if len(detail.Slots) == 0 {
			if upcomingByDay(day, today) {
				hasUpcoming = true
			}
			continue
		}

		for _, s := range detail.Slots {
			if s.EndTime != "" {
				end, err := time.ParseInLocation(dateTimeLayout, detail.BookingDate+" "+s.EndTime, now.Location())
				if err == nil {
					if end.After(now) {
						hasUpcoming = true
					}
					continue
				}
				// Unparseable end time degrades to the day rule.
			}
			if upcomingByDay(day, today) {
				hasUpcoming = true
			}
		}
	}

	if hasUpcoming {
		return StatusUpcoming
	}
	return StatusCompleted
}

// upcomingByDay applies the whole-day rule: strictly future and same-day
// groups are upcoming, strictly past groups are completed.
func upcomingByDay(day, today time.Time) bool {
	return !day.Before(today)
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
