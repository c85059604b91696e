package recurrence

import (
	"fmt"
	"time"
)

// Validate checks the shape of a rule and returns one message per problem.
// A nil result means the rule is valid. Validate never fails hard; callers
// decide how to surface the messages.
func Validate(rule Rule) []string {
	var errs []string

	if rule.Pattern == nil {
		errs = append(errs, "recurrence type is required")
	}
	if rule.Interval <= 0 {
		errs = append(errs, fmt.Sprintf("interval must be greater than 0, got %d", rule.Interval))
	}

	switch p := rule.Pattern.(type) {
	case Weekly:
		for _, d := range p.Days {
			if d < time.Sunday || d > time.Saturday {
				errs = append(errs, fmt.Sprintf("days_of_week contains invalid weekday %d (must be 0-6)", int(d)))
			}
		}
	case Monthly:
		if day, ok := p.Day.Get(); ok && (day < 1 || day > 31) {
			errs = append(errs, fmt.Sprintf("day_of_month must be between 1 and 31, got %d", day))
		}
	}

	if rule.EndDate.IsPresent() && rule.Count.IsPresent() {
		errs = append(errs, "end_date and count are mutually exclusive")
	}
	if count, ok := rule.Count.Get(); ok && count <= 0 {
		errs = append(errs, fmt.Sprintf("count must be greater than 0, got %d", count))
	}

	return errs
}
