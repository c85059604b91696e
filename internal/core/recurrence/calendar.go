package recurrence

import "time"

// DateRange is a closed interval [Start, End].
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies within the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Overlaps reports whether [start, end] shares at least one instant with r.
func (r DateRange) Overlaps(start, end time.Time) bool {
	return !start.After(r.End) && !end.Before(r.Start)
}

// IsSameDay reports whether a and b fall on the same calendar date. Each value
// is read in its own location; time-of-day is ignored.
func IsSameDay(a, b time.Time) bool {
	return compareDates(a, b) == 0
}

// IsMultiDayEvent reports whether end falls on a later calendar date than start.
func IsMultiDayEvent(start, end time.Time) bool {
	return compareDates(end, start) > 0
}

// GenerateMultiDaySpan lists every calendar day from start's date through
// end's date, each at midnight in start's location. An end before start
// yields start's day alone.
func GenerateMultiDaySpan(start, end time.Time) []time.Time {
	day := StartOfDay(start)
	days := []time.Time{day}
	for {
		day = day.AddDate(0, 0, 1)
		if compareDates(day, end) > 0 {
			return days
		}
		days = append(days, day)
	}
}

// StartOfDay returns midnight of t's date in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// compareDates orders the calendar dates of a and b: -1, 0 or 1.
func compareDates(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	switch {
	case ay != by:
		return sign(ay - by)
	case am != bm:
		return sign(int(am) - int(bm))
	default:
		return sign(ad - bd)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
