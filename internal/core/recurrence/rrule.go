package recurrence

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

var rruleWeekdays = [...]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// ToROption translates a rule anchored at dtstart into rrule-go options that
// produce the same series (exceptions excluded; those become EXDATEs).
//
// Month-end clamping has no direct RRULE form, so a day d > 28 is written as
// BYMONTHDAY=28..d;BYSETPOS=-1: the last existing day not after d.
func ToROption(rule Rule, dtstart time.Time) (rrule.ROption, error) {
	if errs := Validate(rule); len(errs) > 0 {
		return rrule.ROption{}, fmt.Errorf("invalid rule: %s", errs[0])
	}

	opt := rrule.ROption{
		Dtstart:  dtstart,
		Interval: rule.Interval,
		Wkst:     rrule.SU,
	}
	if count, ok := rule.Count.Get(); ok {
		opt.Count = count
	}
	if end, ok := rule.EndDate.Get(); ok {
		y, m, d := end.Date()
		opt.Until = time.Date(y, m, d, 23, 59, 59, 0, dtstart.Location())
	}

	switch p := rule.Pattern.(type) {
	case Daily, Custom:
		opt.Freq = rrule.DAILY
	case Weekly:
		opt.Freq = rrule.WEEKLY
		for _, d := range normalizeWeekdays(p.Days) {
			opt.Byweekday = append(opt.Byweekday, rruleWeekdays[d])
		}
	case Monthly:
		opt.Freq = rrule.MONTHLY
		day := dtstart.Day()
		if pinned, ok := p.Day.Get(); ok {
			day = pinned
			opt.Bymonthday = []int{day}
		}
		if day > 28 {
			opt.Bymonthday = clampDays(day)
			opt.Bysetpos = []int{-1}
		}
	case Yearly:
		opt.Freq = rrule.YEARLY
		if dtstart.Month() == time.February && dtstart.Day() == 29 {
			opt.Bymonth = []int{2}
			opt.Bymonthday = clampDays(29)
			opt.Bysetpos = []int{-1}
		}
	}
	return opt, nil
}

// ToRRULE renders the RRULE value (without DTSTART) for a rule anchored at dtstart.
func ToRRULE(rule Rule, dtstart time.Time) (string, error) {
	opt, err := ToROption(rule, dtstart)
	if err != nil {
		return "", err
	}
	if _, err := rrule.NewRRule(opt); err != nil {
		return "", fmt.Errorf("build rrule: %w", err)
	}
	return opt.RRuleString(), nil
}

func clampDays(day int) []int {
	days := make([]int, 0, day-27)
	for d := 28; d <= day; d++ {
		days = append(days, d)
	}
	return days
}
