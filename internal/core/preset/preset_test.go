package preset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/require"

	"github.com/tandem-app/tandem/internal/core/recurrence"
)

// writePreset is a test helper that writes a single preset YAML file into dir.
func writePreset(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestFileSystemRepository_LoadAndList(t *testing.T) {
	dir := t.TempDir()
	writePreset(t, dir, "valentines.yaml", `
name: "valentines"
title: "Valentine's Day"
start: "2024-02-14"
all_day: true
color: "#e11d48"
recurrence:
  type: yearly
  interval: 1
`)
	writePreset(t, dir, "date_night.yml", `
name: "date_night"
start: "2024-01-05T19:00:00Z"
end: "2024-01-05T22:00:00Z"
recurrence:
  type: weekly
  interval: 2
  days_of_week: [5]
`)
	writePreset(t, dir, "notes.txt", "ignored")
	writePreset(t, dir, "empty.yaml", "# nothing here\n")

	loc := time.FixedZone("UTC+2", 2*60*60)
	repo, err := NewFileSystemRepository(dir, loc)
	require.NoError(t, err)

	presets := repo.GetPresets()
	require.Len(t, presets, 2)
	require.Equal(t, "date_night", presets[0].Name)
	require.Equal(t, "valentines", presets[1].Name)

	dateNight := presets[0]
	require.Equal(t, "date_night", dateNight.Title, "title defaults to the name")
	require.NotNil(t, dateNight.End)
	require.Equal(t, 3*time.Hour, dateNight.End.Sub(dateNight.Start))
	require.Equal(t, &recurrence.Rule{
		Pattern:  recurrence.Weekly{Days: []time.Weekday{time.Friday}},
		Interval: 2,
	}, dateNight.Recurrence)
	require.NotEmpty(t, dateNight.Fingerprint)

	valentines, err := repo.Get(context.Background(), "valentines")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, 2, 14, 0, 0, 0, 0, loc), valentines.Start)
	require.True(t, valentines.AllDay)

	_, err = repo.Get(context.Background(), "missing")
	require.Error(t, err)
}

func TestFileSystemRepository_MissingDirIsEmpty(t *testing.T) {
	repo, err := NewFileSystemRepository(filepath.Join(t.TempDir(), "nope"), nil)
	require.NoError(t, err)
	require.Empty(t, repo.GetPresets())
}

func TestFileSystemRepository_InvalidFiles(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{
			name: "invalid recurrence",
			files: map[string]string{"bad.yaml": `
name: "bad"
start: "2024-01-01"
recurrence:
  type: monthly
  interval: 0
`},
			wantErr: "interval must be greater than 0",
		},
		{
			name: "unknown recurrence type",
			files: map[string]string{"bad.yaml": `
name: "bad"
start: "2024-01-01"
recurrence:
  type: hourly
  interval: 1
`},
			wantErr: `unknown recurrence type "hourly"`,
		},
		{
			name:    "missing start",
			files:   map[string]string{"bad.yaml": "name: \"bad\"\n"},
			wantErr: "start must not be empty",
		},
		{
			name: "end before start",
			files: map[string]string{"bad.yaml": `
name: "bad"
start: "2024-01-02"
end: "2024-01-01"
`},
			wantErr: "end must not be before start",
		},
		{
			name: "duplicate names",
			files: map[string]string{
				"a.yaml": "name: \"dup\"\nstart: \"2024-01-01\"\n",
				"b.yaml": "name: \"dup\"\nstart: \"2024-01-02\"\n",
			},
			wantErr: "duplicate preset name",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			for name, content := range tc.files {
				writePreset(t, dir, name, content)
			}
			_, err := NewFileSystemRepository(dir, time.UTC)
			require.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestPreset_Event(t *testing.T) {
	rule := &recurrence.Rule{Pattern: recurrence.Yearly{}, Interval: 1, Count: mo.Some(3)}
	p := Preset{
		Name:       "anniversary",
		Title:      "Anniversary",
		Start:      time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC),
		AllDay:     true,
		Recurrence: rule,
	}

	evt := p.Event("couple-1")
	require.Equal(t, "preset:anniversary", evt.ID)
	require.Equal(t, "couple-1", evt.CoupleID)
	require.True(t, evt.ReadOnly)
	require.True(t, evt.IsRecurring())
	require.NoError(t, evt.Validate())
}
