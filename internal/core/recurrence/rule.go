package recurrence

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/samber/mo"
)

// Frequency is the unit a rule steps in.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
	FrequencyCustom  Frequency = "custom"
)

// DateLayout is the wire format of calendar dates (end date, exceptions).
const DateLayout = "2006-01-02"

// Pattern is the frequency-specific part of a rule. Only Weekly carries weekdays
// and only Monthly carries a day-of-month.
type Pattern interface {
	Frequency() Frequency
	isPattern()
}

// Daily steps Interval days.
type Daily struct{}

// Weekly steps Interval weeks. When Days is non-empty occurrences land only on
// those weekdays.
type Weekly struct {
	Days []time.Weekday
}

// Monthly steps Interval months. Day pins the day-of-month; when absent the
// start date's day-of-month is kept. Both are clamped to the month length.
type Monthly struct {
	Day mo.Option[int]
}

// Yearly steps Interval years on the start date's month and day.
type Yearly struct{}

// Custom behaves like Daily; the distinction only matters to the edit form.
type Custom struct{}

func (Daily) Frequency() Frequency   { return FrequencyDaily }
func (Weekly) Frequency() Frequency  { return FrequencyWeekly }
func (Monthly) Frequency() Frequency { return FrequencyMonthly }
func (Yearly) Frequency() Frequency  { return FrequencyYearly }
func (Custom) Frequency() Frequency  { return FrequencyCustom }

func (Daily) isPattern()   {}
func (Weekly) isPattern()  {}
func (Monthly) isPattern() {}
func (Yearly) isPattern()  {}
func (Custom) isPattern()  {}

// PatternFor returns the empty pattern for a frequency.
func PatternFor(freq Frequency) (Pattern, bool) {
	switch freq {
	case FrequencyDaily:
		return Daily{}, true
	case FrequencyWeekly:
		return Weekly{}, true
	case FrequencyMonthly:
		return Monthly{}, true
	case FrequencyYearly:
		return Yearly{}, true
	case FrequencyCustom:
		return Custom{}, true
	default:
		return nil, false
	}
}

// Rule describes how an event repeats. Rules are values: nothing in this
// package mutates a Rule it is handed.
type Rule struct {
	Pattern  Pattern
	Interval int

	// EndDate and Count are mutually exclusive termination conditions.
	EndDate mo.Option[time.Time]
	Count   mo.Option[int]

	// Exceptions are calendar dates whose occurrence is suppressed.
	Exceptions []time.Time
}

// Type returns the rule's frequency, or "" when no pattern is set.
func (r Rule) Type() Frequency {
	if r.Pattern == nil {
		return ""
	}
	return r.Pattern.Frequency()
}

// HasException reports whether t falls on one of the rule's exception dates.
func (r Rule) HasException(t time.Time) bool {
	for _, ex := range r.Exceptions {
		if IsSameDay(t, ex) {
			return true
		}
	}
	return false
}

// WithException returns a copy of r with date added to its exceptions.
// Dates already excepted are not added twice.
func (r Rule) WithException(date time.Time) Rule {
	if r.HasException(date) {
		return r
	}
	exceptions := make([]time.Time, 0, len(r.Exceptions)+1)
	exceptions = append(exceptions, r.Exceptions...)
	exceptions = append(exceptions, DateOf(date))
	sort.Slice(exceptions, func(i, j int) bool { return exceptions[i].Before(exceptions[j]) })
	r.Exceptions = exceptions
	return r
}

// Fields is the flat wire shape of a Rule, shared by JSON bodies, the JSONB
// column and preset YAML files.
type Fields struct {
	Type       Frequency `json:"type" yaml:"type"`
	Interval   int       `json:"interval" yaml:"interval"`
	EndDate    *string   `json:"end_date,omitempty" yaml:"end_date,omitempty"`
	Count      *int      `json:"count,omitempty" yaml:"count,omitempty"`
	DaysOfWeek []int     `json:"days_of_week,omitempty" yaml:"days_of_week,omitempty"`
	DayOfMonth *int      `json:"day_of_month,omitempty" yaml:"day_of_month,omitempty"`
	Exceptions []string  `json:"exceptions,omitempty" yaml:"exceptions,omitempty"`
}

// Fields flattens r.
func (r Rule) Fields() Fields {
	f := Fields{
		Type:     r.Type(),
		Interval: r.Interval,
	}
	if end, ok := r.EndDate.Get(); ok {
		s := end.Format(DateLayout)
		f.EndDate = &s
	}
	if count, ok := r.Count.Get(); ok {
		f.Count = &count
	}
	switch p := r.Pattern.(type) {
	case Weekly:
		for _, d := range p.Days {
			f.DaysOfWeek = append(f.DaysOfWeek, int(d))
		}
	case Monthly:
		if day, ok := p.Day.Get(); ok {
			f.DayOfMonth = &day
		}
	}
	for _, ex := range r.Exceptions {
		f.Exceptions = append(f.Exceptions, ex.Format(DateLayout))
	}
	return f
}

// Rule builds the variant form. Fields that do not belong to the type are
// ignored; range checks are left to Validate.
func (f Fields) Rule() (Rule, error) {
	pattern, ok := PatternFor(f.Type)
	if !ok {
		return Rule{}, fmt.Errorf("unknown recurrence type %q", f.Type)
	}

	switch pattern.(type) {
	case Weekly:
		w := Weekly{}
		for _, d := range f.DaysOfWeek {
			w.Days = append(w.Days, time.Weekday(d))
		}
		pattern = w
	case Monthly:
		m := Monthly{}
		if f.DayOfMonth != nil {
			m.Day = mo.Some(*f.DayOfMonth)
		}
		pattern = m
	}

	r := Rule{Pattern: pattern, Interval: f.Interval}
	if f.EndDate != nil {
		end, err := ParseDate(*f.EndDate)
		if err != nil {
			return Rule{}, fmt.Errorf("invalid end_date: %w", err)
		}
		r.EndDate = mo.Some(end)
	}
	if f.Count != nil {
		r.Count = mo.Some(*f.Count)
	}
	for _, s := range f.Exceptions {
		ex, err := ParseDate(s)
		if err != nil {
			return Rule{}, fmt.Errorf("invalid exception date: %w", err)
		}
		r.Exceptions = append(r.Exceptions, ex)
	}
	return r, nil
}

func (r Rule) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Fields())
}

func (r *Rule) UnmarshalJSON(data []byte) error {
	var f Fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	parsed, err := f.Rule()
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp and returns the
// calendar date it names at midnight UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q must be YYYY-MM-DD or RFC 3339", s)
	}
	return DateOf(t), nil
}

// DateOf returns the calendar date of t (in t's own location) at midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
