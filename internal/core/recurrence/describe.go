package recurrence

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/mo"
)

// DefaultRule returns a minimal valid rule for freq with interval 1. Weekly
// rules are seeded with now's weekday and monthly rules with now's
// day-of-month. Unknown frequencies fall back to daily.
func DefaultRule(freq Frequency, now time.Time) Rule {
	pattern, ok := PatternFor(freq)
	if !ok {
		pattern = Daily{}
	}
	switch pattern.(type) {
	case Weekly:
		pattern = Weekly{Days: []time.Weekday{now.Weekday()}}
	case Monthly:
		pattern = Monthly{Day: mo.Some(now.Day())}
	}
	return Rule{Pattern: pattern, Interval: 1}
}

// Describe renders a rule as an English phrase such as
// "every 2 weeks on Mon, Wed" or "monthly on the 15th".
func Describe(rule Rule) string {
	var b strings.Builder

	switch p := rule.Pattern.(type) {
	case Daily, Custom:
		b.WriteString(every(rule.Interval, "daily", "day"))
	case Weekly:
		b.WriteString(every(rule.Interval, "weekly", "week"))
		if days := normalizeWeekdays(p.Days); len(days) > 0 {
			names := make([]string, len(days))
			for i, d := range days {
				names[i] = time.Weekday(d).String()[:3]
			}
			b.WriteString(" on " + strings.Join(names, ", "))
		}
	case Monthly:
		b.WriteString(every(rule.Interval, "monthly", "month"))
		if day, ok := p.Day.Get(); ok {
			b.WriteString(" on the " + ordinal(day))
		}
	case Yearly:
		b.WriteString(every(rule.Interval, "yearly", "year"))
	default:
		return "does not repeat"
	}

	if end, ok := rule.EndDate.Get(); ok {
		b.WriteString(", until " + end.Format("Jan 2, 2006"))
	}
	if count, ok := rule.Count.Get(); ok {
		if count == 1 {
			b.WriteString(", once")
		} else {
			b.WriteString(fmt.Sprintf(", %d times", count))
		}
	}
	return b.String()
}

func every(interval int, adverb, unit string) string {
	if interval == 1 {
		return adverb
	}
	return fmt.Sprintf("every %d %ss", interval, unit)
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
