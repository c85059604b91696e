package v1

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/shopspring/decimal"

	"github.com/tandem-app/tandem/internal/core/recurrence"
)

func TestEvent_Validation(t *testing.T) {
	now := time.Now()
	earlier := now.Add(-time.Hour)
	later := now.Add(time.Hour)

	tests := []struct {
		name    string
		event   Event
		wantErr string
	}{
		{
			name: "valid event with all fields",
			event: Event{
				ID:       "evt_123",
				CoupleID: "couple_abc",
				Title:    "Dinner",
				Start:    now,
				End:      &later,
			},
		},
		{
			name: "valid event without end",
			event: Event{
				ID:       "evt_123",
				CoupleID: "couple_abc",
				Title:    "Dinner",
				Start:    now,
			},
		},
		{
			name:    "missing id",
			event:   Event{CoupleID: "couple_abc", Title: "Dinner", Start: now},
			wantErr: "id is required",
		},
		{
			name:    "missing couple_id",
			event:   Event{ID: "evt_123", Title: "Dinner", Start: now},
			wantErr: "couple_id is required",
		},
		{
			name:    "missing title",
			event:   Event{ID: "evt_123", CoupleID: "couple_abc", Start: now},
			wantErr: "title is required",
		},
		{
			name:    "missing start",
			event:   Event{ID: "evt_123", CoupleID: "couple_abc", Title: "Dinner"},
			wantErr: "start is required",
		},
		{
			name: "amount with cents",
			event: Event{
				ID: "evt_123", CoupleID: "couple_abc", Title: "Rent", Start: now,
				Amount: decimalPtr("1200.50"),
			},
		},
		{
			name: "amount with more than two decimal places",
			event: Event{
				ID: "evt_123", CoupleID: "couple_abc", Title: "Rent", Start: now,
				Amount: decimalPtr("9.999"),
			},
			wantErr: "amount must have at most 2 decimal places",
		},
		{
			name: "amount too large for storage",
			event: Event{
				ID: "evt_123", CoupleID: "couple_abc", Title: "Rent", Start: now,
				Amount: decimalPtr("1000000000000"),
			},
			wantErr: "amount must be less than 1000000000000 in magnitude",
		},
		{
			name:    "end before start",
			event:   Event{ID: "evt_123", CoupleID: "couple_abc", Title: "Dinner", Start: now, End: &earlier},
			wantErr: "end must not be before start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Event.Validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil || err.Error() != tt.wantErr {
				t.Errorf("Event.Validate() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestEvent_JSONWithRecurrence(t *testing.T) {
	jsonData := `{
		"id": "evt_789",
		"couple_id": "couple_1",
		"title": "Rent",
		"start": "2024-01-31T09:00:00Z",
		"amount": "1250.00",
		"recurrence": {"type": "monthly", "interval": 1, "exceptions": ["2024-03-31"]}
	}`

	var evt Event
	if err := json.Unmarshal([]byte(jsonData), &evt); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if err := evt.Validate(); err != nil {
		t.Fatalf("Validation failed: %v", err)
	}
	if !evt.IsRecurring() {
		t.Fatal("event with a recurrence rule should be recurring")
	}
	if evt.Recurrence.Type() != recurrence.FrequencyMonthly {
		t.Errorf("rule type = %q, want monthly", evt.Recurrence.Type())
	}
	if len(evt.Recurrence.Exceptions) != 1 {
		t.Errorf("exceptions = %v, want one date", evt.Recurrence.Exceptions)
	}
	if evt.Amount == nil || !evt.Amount.Equal(decimal.RequireFromString("1250")) {
		t.Errorf("amount = %v, want 1250", evt.Amount)
	}
}

func TestEvent_Base(t *testing.T) {
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	rule := &recurrence.Rule{Pattern: recurrence.Daily{}, Interval: 1}

	evt := Event{ID: "evt_1", Start: start, End: &end, Recurrence: rule}
	base := evt.Base()

	if base.ID != "evt_1" || !base.Start.Equal(start) || base.Rule != rule {
		t.Errorf("unexpected base: %+v", base)
	}
	if got, ok := base.End.Get(); !ok || !got.Equal(end) {
		t.Errorf("base end = %v, want %v", base.End, end)
	}

	evt.End = nil
	if evt.Base().End.IsPresent() {
		t.Error("base end should be absent when the event has no end")
	}
}

func TestNewOccurrence(t *testing.T) {
	start := time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 2, 1, 0, 0, 0, time.UTC)
	base := &Event{ID: "evt_1", CoupleID: "c1", Title: "Night train", Start: start, End: &end}

	occStart := start.AddDate(0, 0, 7)
	occ := NewOccurrence(base, recurrence.Occurrence{
		Event: recurrence.Event{
			ID:    "evt_1",
			Start: occStart,
			End:   mo.Some(occStart.Add(3 * time.Hour)),
		},
		SeriesID:    "evt_1",
		InstanceKey: "evt_1@2024-01-08T22:00:00Z",
	})

	if !occ.Start.Equal(occStart) {
		t.Errorf("start = %v, want %v", occ.Start, occStart)
	}
	if occ.End == nil || !occ.End.Equal(occStart.Add(3*time.Hour)) {
		t.Errorf("end = %v, want %v", occ.End, occStart.Add(3*time.Hour))
	}
	if !occ.IsMultiDay {
		t.Error("occurrence crossing midnight should be multi-day")
	}
	want := []string{"2024-01-08", "2024-01-09"}
	if len(occ.SpanDays) != len(want) || occ.SpanDays[0] != want[0] || occ.SpanDays[1] != want[1] {
		t.Errorf("span days = %v, want %v", occ.SpanDays, want)
	}
	if !base.End.Equal(end) || !base.Start.Equal(start) {
		t.Error("base event must not be modified")
	}
}

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}
