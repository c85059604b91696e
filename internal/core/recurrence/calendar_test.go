package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIsMultiDayEvent(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"crosses midnight", at(2024, 1, 1, 23, 0), at(2024, 1, 2, 0, 30), true},
		{"same day", at(2024, 1, 1, 10, 0), at(2024, 1, 1, 23, 59), false},
		{"equal instants", at(2024, 1, 1, 10, 0), at(2024, 1, 1, 10, 0), false},
		{"spans a month boundary", at(2024, 1, 31, 20, 0), at(2024, 2, 1, 8, 0), true},
		{"end before start", at(2024, 1, 2, 10, 0), at(2024, 1, 1, 10, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, IsMultiDayEvent(tc.start, tc.end))
		})
	}
}

func TestIsSameDay(t *testing.T) {
	require.True(t, IsSameDay(at(2024, 3, 5, 0, 0), at(2024, 3, 5, 23, 59)))
	require.False(t, IsSameDay(at(2024, 3, 5, 23, 59), at(2024, 3, 6, 0, 0)))
	require.False(t, IsSameDay(at(2023, 3, 5, 12, 0), at(2024, 3, 5, 12, 0)))

	// Each value is read in its own location.
	plus9 := time.FixedZone("UTC+9", 9*60*60)
	require.True(t, IsSameDay(time.Date(2024, 3, 6, 1, 0, 0, 0, plus9), day(2024, 3, 6)))
}

func TestGenerateMultiDaySpan(t *testing.T) {
	t.Run("inclusive of both ends", func(t *testing.T) {
		got := GenerateMultiDaySpan(at(2024, 1, 30, 22, 0), at(2024, 2, 2, 1, 0))
		require.Equal(t, []time.Time{
			day(2024, 1, 30),
			day(2024, 1, 31),
			day(2024, 2, 1),
			day(2024, 2, 2),
		}, got)
	})

	t.Run("single day", func(t *testing.T) {
		got := GenerateMultiDaySpan(at(2024, 1, 30, 9, 0), at(2024, 1, 30, 17, 0))
		require.Equal(t, []time.Time{day(2024, 1, 30)}, got)
	})

	t.Run("end before start", func(t *testing.T) {
		got := GenerateMultiDaySpan(at(2024, 1, 30, 9, 0), at(2024, 1, 28, 9, 0))
		require.Equal(t, []time.Time{day(2024, 1, 30)}, got)
	})

	t.Run("days are in the start location", func(t *testing.T) {
		loc := time.FixedZone("UTC-5", -5*60*60)
		got := GenerateMultiDaySpan(time.Date(2024, 1, 1, 20, 0, 0, 0, loc), time.Date(2024, 1, 2, 8, 0, 0, 0, loc))
		require.Len(t, got, 2)
		for _, d := range got {
			require.Equal(t, loc, d.Location())
			require.Zero(t, d.Hour())
		}
	})
}

func TestDateRange(t *testing.T) {
	r := DateRange{Start: day(2024, 1, 1), End: day(2024, 1, 31)}

	require.True(t, r.Contains(day(2024, 1, 1)))
	require.True(t, r.Contains(day(2024, 1, 31)))
	require.False(t, r.Contains(day(2024, 2, 1)))

	require.True(t, r.Overlaps(day(2023, 12, 30), day(2024, 1, 1)))
	require.True(t, r.Overlaps(day(2024, 1, 31), day(2024, 2, 3)))
	require.False(t, r.Overlaps(day(2023, 12, 1), day(2023, 12, 31)))
}
