// Package recurrence expands recurring events into concrete occurrences.
// Everything here is a pure function of its inputs and safe for concurrent use.
package recurrence

import (
	"sort"
	"time"

	"github.com/samber/mo"
)

// DefaultMaxOccurrences caps how many occurrences a single expansion returns,
// roughly one year of a daily event.
const DefaultMaxOccurrences = 365

// Event is the recurrence-relevant view of a stored event.
type Event struct {
	ID    string
	Start time.Time
	End   mo.Option[time.Time]
	Rule  *Rule
}

// Occurrence is one concrete instance of an Event. SeriesID is empty when the
// occurrence is a non-recurring event passed through unchanged.
type Occurrence struct {
	Event
	SeriesID    string
	InstanceKey string
}

// Expansion is the result of ExpandWithStats.
type Expansion struct {
	Occurrences []Occurrence
	// Truncated is true when the occurrence cap stopped the expansion while
	// the series still had occurrences inside the window.
	Truncated bool
}

// Options configures an Engine.
type Options struct {
	// MaxOccurrences caps the occurrences of one expansion. Zero means
	// DefaultMaxOccurrences.
	MaxOccurrences int
}

func (o Options) normalized() Options {
	if o.MaxOccurrences <= 0 {
		o.MaxOccurrences = DefaultMaxOccurrences
	}
	return o
}

// Engine expands recurring events. The zero value is not usable; use NewEngine.
type Engine struct {
	opts Options
}

// NewEngine creates an engine with the given options.
func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts.normalized()}
}

// MaxOccurrences returns the engine's occurrence cap.
func (e *Engine) MaxOccurrences() int {
	return e.opts.MaxOccurrences
}

var defaultEngine = NewEngine(Options{})

// Expand expands base with the default engine.
func Expand(base Event, windowStart, windowEnd time.Time) []Occurrence {
	return defaultEngine.Expand(base, windowStart, windowEnd)
}

// Expand returns the occurrences of base that start within
// [max(base.Start, windowStart), windowEnd], ascending.
//
// A base without a rule is returned as its own single occurrence whatever the
// window. The rule is not validated; see Validate.
func (e *Engine) Expand(base Event, windowStart, windowEnd time.Time) []Occurrence {
	return e.ExpandWithStats(base, windowStart, windowEnd).Occurrences
}

// ExpandWithStats is Expand plus truncation reporting.
func (e *Engine) ExpandWithStats(base Event, windowStart, windowEnd time.Time) Expansion {
	if base.Rule == nil {
		return Expansion{Occurrences: []Occurrence{{
			Event:       base,
			InstanceKey: instanceKey(base.ID, base.Start),
		}}}
	}

	rule := *base.Rule
	lower := windowStart
	if base.Start.After(lower) {
		lower = base.Start
	}

	var (
		out     []Occurrence
		walked  int // series occurrences seen so far, counted against rule.Count
		st      = newStepper(base.Start, rule)
		current = st.first()
	)
	for {
		if current.After(windowEnd) {
			break
		}
		if end, ok := rule.EndDate.Get(); ok && compareDates(current, end) > 0 {
			break
		}
		if count, ok := rule.Count.Get(); ok && walked >= count {
			break
		}
		if len(out) >= e.opts.MaxOccurrences {
			return Expansion{Occurrences: out, Truncated: true}
		}

		if !current.Before(lower) && !rule.HasException(current) {
			out = append(out, occurrenceAt(base, current))
		}
		walked++

		next := st.next(current)
		if !next.After(current) {
			// A non-positive interval never advances.
			break
		}
		current = next
	}
	return Expansion{Occurrences: out}
}

func occurrenceAt(base Event, start time.Time) Occurrence {
	occ := Occurrence{
		Event:       base,
		SeriesID:    base.ID,
		InstanceKey: instanceKey(base.ID, start),
	}
	occ.Start = start
	if end, ok := base.End.Get(); ok {
		occ.End = mo.Some(end.Add(start.Sub(base.Start)))
	}
	return occ
}

func instanceKey(id string, start time.Time) string {
	return id + "@" + start.Format(time.RFC3339)
}

// stepper walks the occurrence dates of one series before exception filtering.
type stepper struct {
	anchor   time.Time
	interval int
	pattern  Pattern
	weekdays []int // sorted, distinct, all within 0..6
	pinDay   int   // monthly day-of-month, 0 when unpinned
}

func newStepper(anchor time.Time, rule Rule) stepper {
	s := stepper{anchor: anchor, interval: rule.Interval, pattern: rule.Pattern}
	switch p := rule.Pattern.(type) {
	case Weekly:
		s.weekdays = normalizeWeekdays(p.Days)
	case Monthly:
		// Out-of-range days fall back to the unpinned branch.
		if day, ok := p.Day.Get(); ok && day >= 1 && day <= 31 {
			s.pinDay = day
		}
	}
	return s
}

// first returns the first series date on or after the anchor. The anchor
// itself is used unless a weekday set or pinned day excludes it.
func (s stepper) first() time.Time {
	switch s.pattern.(type) {
	case Weekly:
		if len(s.weekdays) > 0 && !containsInt(s.weekdays, int(s.anchor.Weekday())) {
			return s.next(s.anchor)
		}
	case Monthly:
		if s.pinDay > 0 {
			candidate := s.monthsFromAnchor(0, s.pinDay)
			if candidate.Before(s.anchor) {
				return s.monthsFromAnchor(s.interval, s.pinDay)
			}
			return candidate
		}
	}
	return s.anchor
}

// next returns the series date following current.
func (s stepper) next(current time.Time) time.Time {
	switch s.pattern.(type) {
	case Weekly:
		if len(s.weekdays) == 0 {
			return current.AddDate(0, 0, 7*s.interval)
		}
		wd := int(current.Weekday())
		for _, d := range s.weekdays {
			if d > wd {
				return current.AddDate(0, 0, d-wd)
			}
		}
		// Last configured weekday of this week: jump interval weeks and land
		// on the first configured weekday.
		return current.AddDate(0, 0, 7*s.interval+s.weekdays[0]-wd)
	case Monthly:
		day := s.pinDay
		if day == 0 {
			day = s.anchor.Day()
		}
		return s.monthsFromAnchor(s.monthsSinceAnchor(current)+s.interval, day)
	case Yearly:
		return s.monthsFromAnchor(s.monthsSinceAnchor(current)+12*s.interval, s.anchor.Day())
	default:
		// Daily, Custom and a missing pattern step in days.
		return current.AddDate(0, 0, s.interval)
	}
}

// monthsFromAnchor returns the date months after the anchor's month, on day
// clamped to that month's length, at the anchor's time of day. The day is
// re-clamped on every cycle, so Jan 31 steps to Feb 29 and then Mar 31.
func (s stepper) monthsFromAnchor(months, day int) time.Time {
	firstOfMonth := time.Date(s.anchor.Year(), s.anchor.Month()+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	y, m := firstOfMonth.Year(), firstOfMonth.Month()
	if last := daysIn(y, m); day > last {
		day = last
	}
	return time.Date(y, m, day,
		s.anchor.Hour(), s.anchor.Minute(), s.anchor.Second(), s.anchor.Nanosecond(),
		s.anchor.Location())
}

func (s stepper) monthsSinceAnchor(t time.Time) int {
	return (t.Year()-s.anchor.Year())*12 + int(t.Month()) - int(s.anchor.Month())
}

func normalizeWeekdays(days []time.Weekday) []int {
	var out []int
	for _, d := range days {
		if d < time.Sunday || d > time.Saturday || containsInt(out, int(d)) {
			continue
		}
		out = append(out, int(d))
	}
	sort.Ints(out)
	return out
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
