package calendar

import (
	"time"

	"github.com/tandem-app/tandem/internal/core/recurrence"
)

// windowSpec turns a viewport query into a closed time range in the calendar timezone.
type windowSpec struct {
	loc        *time.Location
	weekStart  time.Weekday
	agendaDays int
}

func (w windowSpec) resolve(q OccurrenceQuery, now time.Time) (View, recurrence.DateRange, error) {
	view := q.View
	if view == "" {
		view = ViewMonth
	}

	if view == ViewRange {
		if q.Start == "" || q.End == "" {
			return view, recurrence.DateRange{}, invalidRequestf("start and end are required for the range view")
		}
		r, err := w.dateRange(q.Start, q.End)
		return view, r, err
	}

	anchor := recurrence.StartOfDay(now.In(w.loc))
	if q.Date != "" {
		d, _, err := w.parse(q.Date)
		if err != nil {
			return view, recurrence.DateRange{}, invalidRequestf("invalid date: %v", err)
		}
		anchor = recurrence.StartOfDay(d)
	}

	var start time.Time
	var days, months int
	switch view {
	case ViewDay:
		start, days = anchor, 1
	case ViewWeek:
		offset := (int(anchor.Weekday()) - int(w.weekStart) + 7) % 7
		start, days = anchor.AddDate(0, 0, -offset), 7
	case ViewMonth:
		start, months = anchor.AddDate(0, 0, 1-anchor.Day()), 1
	case ViewAgenda:
		start, days = anchor, w.agendaDays
	default:
		return view, recurrence.DateRange{}, invalidRequestf("invalid view: %s (must be day, week, month, agenda, or range)", view)
	}

	// AddDate on calendar fields keeps day boundaries correct across DST.
	next := start.AddDate(0, months, days)
	return view, recurrence.DateRange{Start: start, End: next.Add(-time.Nanosecond)}, nil
}

// dateRange parses explicit bounds. A date-only end covers that whole day.
func (w windowSpec) dateRange(startStr, endStr string) (recurrence.DateRange, error) {
	start, startIsDate, err := w.parse(startStr)
	if err != nil {
		return recurrence.DateRange{}, invalidRequestf("invalid start: %v", err)
	}
	end, endIsDate, err := w.parse(endStr)
	if err != nil {
		return recurrence.DateRange{}, invalidRequestf("invalid end: %v", err)
	}
	if startIsDate {
		start = recurrence.StartOfDay(start)
	}
	if endIsDate {
		end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	if end.Before(start) {
		return recurrence.DateRange{}, invalidRequestf("end must not be before start")
	}
	return recurrence.DateRange{Start: start, End: end}, nil
}

// parse reads YYYY-MM-DD as midnight in the calendar timezone, or an RFC 3339
// instant converted to it. The bool reports the date-only form.
func (w windowSpec) parse(s string) (time.Time, bool, error) {
	if t, err := time.ParseInLocation(recurrence.DateLayout, s, w.loc); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false, err
	}
	return t.In(w.loc), false, nil
}
