package recurrence

import (
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		rule Rule
		want string
	}{
		{Rule{}, "does not repeat"},
		{Rule{Pattern: Daily{}, Interval: 1}, "daily"},
		{Rule{Pattern: Custom{}, Interval: 3}, "every 3 days"},
		{Rule{Pattern: Weekly{Days: []time.Weekday{time.Wednesday, time.Monday}}, Interval: 2}, "every 2 weeks on Mon, Wed"},
		{Rule{Pattern: Weekly{}, Interval: 1}, "weekly"},
		{Rule{Pattern: Monthly{Day: mo.Some(15)}, Interval: 1}, "monthly on the 15th"},
		{Rule{Pattern: Monthly{Day: mo.Some(22)}, Interval: 1}, "monthly on the 22nd"},
		{Rule{Pattern: Monthly{}, Interval: 6, Count: mo.Some(4)}, "every 6 months, 4 times"},
		{Rule{Pattern: Yearly{}, Interval: 1, Count: mo.Some(1)}, "yearly, once"},
		{Rule{Pattern: Daily{}, Interval: 1, EndDate: mo.Some(day(2024, 6, 30))}, "daily, until Jun 30, 2024"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			require.Equal(t, tc.want, Describe(tc.rule))
		})
	}
}

func TestOrdinal(t *testing.T) {
	for n, want := range map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 23: "23rd", 31: "31st"} {
		require.Equal(t, want, ordinal(n))
	}
}

func TestDefaultRule(t *testing.T) {
	// Thursday the 14th.
	now := at(2024, 3, 14, 10, 0)

	tests := []struct {
		freq Frequency
		want Rule
	}{
		{FrequencyDaily, Rule{Pattern: Daily{}, Interval: 1}},
		{FrequencyWeekly, Rule{Pattern: Weekly{Days: []time.Weekday{time.Thursday}}, Interval: 1}},
		{FrequencyMonthly, Rule{Pattern: Monthly{Day: mo.Some(14)}, Interval: 1}},
		{FrequencyYearly, Rule{Pattern: Yearly{}, Interval: 1}},
		{FrequencyCustom, Rule{Pattern: Custom{}, Interval: 1}},
		{"fortnightly", Rule{Pattern: Daily{}, Interval: 1}},
	}

	for _, tc := range tests {
		t.Run(string(tc.freq), func(t *testing.T) {
			got := DefaultRule(tc.freq, now)
			require.Equal(t, tc.want, got)
			require.Empty(t, Validate(got))
		})
	}
}
