package v1

import (
	"fmt"
	"time"

	"github.com/samber/mo"
	"github.com/shopspring/decimal"

	"github.com/tandem-app/tandem/internal/core/recurrence"
)

const amountScale = 2

var maxAmount = decimal.New(1, 12)

// Event is a calendar entry shared by a couple. A non-nil Recurrence makes it
// the base of a series; its occurrences are derived on read and never stored.
type Event struct {
	// ID is unique per CoupleID. Assigned by the service on create when empty.
	ID string `json:"id"`

	// CoupleID scopes every event to one shared calendar.
	CoupleID string `json:"couple_id"`

	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Color       string `json:"color,omitempty"`

	// Start is the first occurrence of a series. End, when set, fixes the
	// duration every occurrence inherits.
	Start  time.Time  `json:"start"`
	End    *time.Time `json:"end,omitempty"`
	AllDay bool       `json:"all_day"`

	// Amount marks the event as an expense (rent, subscriptions) for the forecast.
	Amount *decimal.Decimal `json:"amount,omitempty"`

	Recurrence *recurrence.Rule `json:"recurrence,omitempty"`

	// ReadOnly is set on preset events, which come from configuration and
	// cannot be edited through the API. Not persisted.
	ReadOnly bool `json:"read_only,omitempty"`

	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate ensures the event has all required attributes. The recurrence rule
// is checked separately with recurrence.Validate so every problem can be reported.
func (e *Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("id is required")
	}

	if e.CoupleID == "" {
		return fmt.Errorf("couple_id is required")
	}

	if e.Title == "" {
		return fmt.Errorf("title is required")
	}

	if e.Start.IsZero() {
		return fmt.Errorf("start is required")
	}

	if e.End != nil && e.End.Before(e.Start) {
		return fmt.Errorf("end must not be before start")
	}

	// amount is stored as NUMERIC(14, 2).
	if e.Amount != nil {
		if !e.Amount.Equal(e.Amount.Round(amountScale)) {
			return fmt.Errorf("amount must have at most %d decimal places", amountScale)
		}
		if e.Amount.Abs().GreaterThanOrEqual(maxAmount) {
			return fmt.Errorf("amount must be less than %s in magnitude", maxAmount)
		}
	}

	return nil
}

// IsRecurring reports whether the event is the base of a series.
func (e *Event) IsRecurring() bool {
	return e.Recurrence != nil
}

// Base returns the recurrence engine's view of the event.
func (e *Event) Base() recurrence.Event {
	base := recurrence.Event{
		ID:    e.ID,
		Start: e.Start,
		Rule:  e.Recurrence,
	}
	if e.End != nil {
		base.End = mo.Some(*e.End)
	}
	return base
}

// Occurrence is one concrete instance of an Event inside a viewport. It is
// computed on read and never persisted.
type Occurrence struct {
	Event

	// SeriesID references the base event; empty for non-recurring events.
	SeriesID string `json:"series_id,omitempty"`

	// InstanceKey is unique per occurrence: "<event id>@<start RFC 3339>".
	InstanceKey string `json:"instance_key"`

	IsMultiDay bool `json:"is_multi_day"`

	// SpanDays lists every calendar day (YYYY-MM-DD) the occurrence touches.
	SpanDays []string `json:"span_days"`
}

// NewOccurrence materializes an engine occurrence of base.
func NewOccurrence(base *Event, occ recurrence.Occurrence) Occurrence {
	out := Occurrence{
		Event:       *base,
		SeriesID:    occ.SeriesID,
		InstanceKey: occ.InstanceKey,
	}
	out.Start = occ.Start
	out.End = nil

	spanEnd := occ.Start
	if end, ok := occ.End.Get(); ok {
		out.End = &end
		spanEnd = end
		out.IsMultiDay = recurrence.IsMultiDayEvent(occ.Start, end)
	}
	for _, d := range recurrence.GenerateMultiDaySpan(occ.Start, spanEnd) {
		out.SpanDays = append(out.SpanDays, d.Format(recurrence.DateLayout))
	}
	return out
}
