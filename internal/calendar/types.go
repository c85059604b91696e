package calendar

import (
	"time"

	"github.com/shopspring/decimal"

	v1 "github.com/tandem-app/tandem/internal/api/v1"
	"github.com/tandem-app/tandem/internal/core/recurrence"
)

// View selects how the occurrence window is derived from the query.
type View string

const (
	ViewDay    View = "day"
	ViewWeek   View = "week"
	ViewMonth  View = "month"
	ViewAgenda View = "agenda"
	ViewRange  View = "range"
)

// OccurrenceQuery asks for the occurrences of one couple inside a viewport.
// Date anchors day, week, month and agenda views and defaults to today.
// Start and End are required for the range view. All three accept
// YYYY-MM-DD (read in the calendar timezone) or RFC 3339.
type OccurrenceQuery struct {
	CoupleID string
	View     View
	Date     string
	Start    string
	End      string
}

// OccurrenceResponse is the expanded viewport.
type OccurrenceResponse struct {
	CoupleID    string          `json:"couple_id"`
	View        View            `json:"view"`
	Timezone    string          `json:"timezone"`
	Start       time.Time       `json:"start"`
	End         time.Time       `json:"end"`
	Occurrences []v1.Occurrence `json:"occurrences"`

	// MarkedDates are the distinct days (YYYY-MM-DD) inside the window that
	// any occurrence touches, for dot markers on a month grid.
	MarkedDates []string `json:"marked_dates"`

	// Truncated is set when at least one series hit the occurrence cap.
	Truncated bool `json:"truncated"`
}

// ForecastQuery asks for the expense total of a couple over a date range.
type ForecastQuery struct {
	CoupleID string
	Start    string
	End      string
}

// ForecastLine is the contribution of one event to a forecast.
type ForecastLine struct {
	EventID     string          `json:"event_id"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Occurrences int             `json:"occurrences"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// ForecastResponse sums the amounts of every occurrence in the window.
type ForecastResponse struct {
	CoupleID string          `json:"couple_id"`
	Start    time.Time       `json:"start"`
	End      time.Time       `json:"end"`
	Lines    []ForecastLine  `json:"lines"`
	Total    decimal.Decimal `json:"total"`
}

// RuleRequest carries a rule for the describe and validate helpers. Start
// is optional; when present the RRULE form is rendered as well.
type RuleRequest struct {
	Recurrence recurrence.Rule `json:"recurrence"`
	Start      *time.Time      `json:"start,omitempty"`
}

// RuleResponse is returned by the describe, validate and default helpers.
type RuleResponse struct {
	Recurrence  *recurrence.Rule `json:"recurrence,omitempty"`
	Description string           `json:"description,omitempty"`
	RRule       string           `json:"rrule,omitempty"`
	Valid       bool             `json:"valid"`
	Errors      []string         `json:"errors,omitempty"`
}

// ExceptionRequest removes a single occurrence from a series.
type ExceptionRequest struct {
	Date string `json:"date" binding:"required"`
}
