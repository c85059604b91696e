// Package calendar serves a couple's shared calendar: event CRUD, viewport
// expansion of recurring events, the expense forecast and the iCalendar feed.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/mo"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"

	v1 "github.com/tandem-app/tandem/internal/api/v1"
	"github.com/tandem-app/tandem/internal/core/preset"
	"github.com/tandem-app/tandem/internal/core/recurrence"
	"github.com/tandem-app/tandem/internal/core/storage"
)

const (
	defaultAgendaDays = 30
	maxForecastYears  = 10
)

// Options configures a Service.
type Options struct {
	// Location is the display timezone. Viewport boundaries and recurrence
	// stepping are computed in it. Nil means UTC.
	Location       *time.Location
	WeekStart      time.Weekday
	AgendaDays     int
	MaxOccurrences int
	FeedName       string
}

// Service implements the calendar read and write paths. It keeps no state
// besides the singleflight group; events live in the store.
type Service struct {
	store    storage.EventStore
	presets  preset.Repository
	engine   *recurrence.Engine
	window   windowSpec
	feedName string

	// group collapses concurrent identical viewport queries.
	group singleflight.Group
	nowFn func() time.Time
}

// NewService creates a new calendar service. presets may be nil.
func NewService(store storage.EventStore, presets preset.Repository, opts Options) *Service {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.AgendaDays <= 0 {
		opts.AgendaDays = defaultAgendaDays
	}
	if opts.FeedName == "" {
		opts.FeedName = "Tandem"
	}

	return &Service{
		store:   store,
		presets: presets,
		engine:  recurrence.NewEngine(recurrence.Options{MaxOccurrences: opts.MaxOccurrences}),
		window: windowSpec{
			loc:        opts.Location,
			weekStart:  opts.WeekStart,
			agendaDays: opts.AgendaDays,
		},
		feedName: opts.FeedName,
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// ListOccurrences expands every event of the couple into the occurrences
// visible in the requested viewport, ordered by start.
func (s *Service) ListOccurrences(ctx context.Context, q OccurrenceQuery) (*OccurrenceResponse, error) {
	if strings.TrimSpace(q.CoupleID) == "" {
		return nil, invalidRequestf("couple_id is required")
	}

	view, window, err := s.window.resolve(q, s.nowFn())
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s|%s|%d|%d", q.CoupleID, view, window.Start.UnixNano(), window.End.UnixNano())
	// The shared call outlives any single caller's cancellation.
	ch := s.group.DoChan(key, func() (interface{}, error) {
		return s.expandWindow(context.WithoutCancel(ctx), q.CoupleID, view, window)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*OccurrenceResponse), nil
	}
}

func (s *Service) expandWindow(ctx context.Context, coupleID string, view View, window recurrence.DateRange) (*OccurrenceResponse, error) {
	events, err := s.store.ListEventsInRange(ctx, coupleID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	events = append(events, s.presetEvents(coupleID)...)

	resp := &OccurrenceResponse{
		CoupleID:    coupleID,
		View:        view,
		Timezone:    s.window.loc.String(),
		Start:       window.Start,
		End:         window.End,
		Occurrences: []v1.Occurrence{},
		MarkedDates: []string{},
	}

	for _, evt := range events {
		base := s.localBase(evt)

		// Occurrences that start before the window may still run into it.
		from := window.Start
		if end, ok := base.End.Get(); ok && base.Rule != nil {
			from = from.Add(-end.Sub(base.Start))
		}

		exp := s.engine.ExpandWithStats(base, from, window.End)
		if exp.Truncated {
			resp.Truncated = true
			slog.Warn("[Calendar] Occurrence cap reached, series truncated",
				"couple_id", coupleID,
				"event_id", evt.ID,
				"max_occurrences", s.engine.MaxOccurrences())
		}

		for _, occ := range exp.Occurrences {
			if !window.Overlaps(occ.Start, occ.End.OrElse(occ.Start)) {
				continue
			}
			resp.Occurrences = append(resp.Occurrences, v1.NewOccurrence(evt, occ))
		}
	}

	sort.SliceStable(resp.Occurrences, func(i, j int) bool {
		a, b := resp.Occurrences[i], resp.Occurrences[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		return a.InstanceKey < b.InstanceKey
	})
	resp.MarkedDates = markedDates(resp.Occurrences, window)
	return resp, nil
}

// localBase moves the event into the display timezone so weekdays and
// day-of-month are read the way the couple sees them.
func (s *Service) localBase(evt *v1.Event) recurrence.Event {
	base := evt.Base()
	base.Start = base.Start.In(s.window.loc)
	if end, ok := base.End.Get(); ok {
		base.End = mo.Some(end.In(s.window.loc))
	}
	return base
}

func (s *Service) presetEvents(coupleID string) []*v1.Event {
	if s.presets == nil {
		return nil
	}
	presets := s.presets.GetPresets()
	out := make([]*v1.Event, 0, len(presets))
	for _, p := range presets {
		out = append(out, p.Event(coupleID))
	}
	return out
}

// markedDates returns the distinct days covered by occs, clipped to window.
func markedDates(occs []v1.Occurrence, window recurrence.DateRange) []string {
	first := window.Start.Format(recurrence.DateLayout)
	last := window.End.Format(recurrence.DateLayout)

	seen := make(map[string]struct{})
	out := []string{}
	for _, occ := range occs {
		for _, d := range occ.SpanDays {
			if d < first || d > last {
				continue
			}
			if _, ok := seen[d]; ok {
				continue
			}
			seen[d] = struct{}{}
			out = append(out, d)
		}
	}
	sort.Strings(out)
	return out
}

// CreateEvent validates and stores a new event for the couple. An empty ID
// is replaced with a random UUID.
func (s *Service) CreateEvent(ctx context.Context, coupleID, userID string, evt *v1.Event) (*v1.Event, error) {
	evt.CoupleID = coupleID
	if evt.ID == "" {
		evt.ID = uuid.NewString()
	}
	if isPresetID(evt.ID) {
		return nil, invalidRequestf("event id must not start with %q", preset.IDPrefix)
	}

	now := s.nowFn()
	evt.CreatedBy = userID
	evt.CreatedAt = now
	evt.UpdatedAt = now
	evt.ReadOnly = false

	if err := validateEvent(evt); err != nil {
		return nil, err
	}

	if err := s.store.SaveEvent(ctx, evt); err != nil {
		return nil, fmt.Errorf("save event: %w", err)
	}

	slog.Info("[Calendar] Event created",
		"couple_id", coupleID,
		"event_id", evt.ID,
		"recurring", evt.IsRecurring())
	return evt, nil
}

// GetEvent returns one stored or preset event.
func (s *Service) GetEvent(ctx context.Context, coupleID, eventID string) (*v1.Event, error) {
	if isPresetID(eventID) {
		return s.getPreset(ctx, coupleID, eventID)
	}

	evt, err := s.store.GetEvent(ctx, coupleID, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	return evt, nil
}

// UpdateEvent replaces a stored event. The creator and creation time of the
// existing record are kept.
func (s *Service) UpdateEvent(ctx context.Context, coupleID, eventID string, evt *v1.Event) (*v1.Event, error) {
	if isPresetID(eventID) {
		return nil, ErrReadOnly
	}

	existing, err := s.store.GetEvent(ctx, coupleID, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	evt.ID = eventID
	evt.CoupleID = coupleID
	evt.CreatedBy = existing.CreatedBy
	evt.CreatedAt = existing.CreatedAt
	evt.UpdatedAt = s.nowFn()
	evt.ReadOnly = false

	if err := validateEvent(evt); err != nil {
		return nil, err
	}

	if err := s.store.UpdateEvent(ctx, evt); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return evt, nil
}

// DeleteEvent removes a stored event and with it every occurrence of its series.
func (s *Service) DeleteEvent(ctx context.Context, coupleID, eventID string) error {
	if isPresetID(eventID) {
		return ErrReadOnly
	}

	if err := s.store.DeleteEvent(ctx, coupleID, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	slog.Info("[Calendar] Event deleted", "couple_id", coupleID, "event_id", eventID)
	return nil
}

// AddException removes the occurrence on date from a recurring event. Adding
// a date that is already excepted leaves the event untouched.
func (s *Service) AddException(ctx context.Context, coupleID, eventID, date string) (*v1.Event, error) {
	if isPresetID(eventID) {
		return nil, ErrReadOnly
	}

	day, err := recurrence.ParseDate(date)
	if err != nil {
		return nil, invalidRequestf("%v", err)
	}

	evt, err := s.store.GetEvent(ctx, coupleID, eventID)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	if !evt.IsRecurring() {
		return nil, ErrNotRecurring
	}
	if evt.Recurrence.HasException(day) {
		return evt, nil
	}

	rule := evt.Recurrence.WithException(day)
	evt.Recurrence = &rule
	evt.UpdatedAt = s.nowFn()

	if err := s.store.UpdateEvent(ctx, evt); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	slog.Info("[Calendar] Occurrence removed",
		"couple_id", coupleID,
		"event_id", eventID,
		"date", day.Format(recurrence.DateLayout))
	return evt, nil
}

// Forecast sums the amount of every expense occurrence that starts in the
// requested range.
func (s *Service) Forecast(ctx context.Context, q ForecastQuery) (*ForecastResponse, error) {
	if strings.TrimSpace(q.CoupleID) == "" {
		return nil, invalidRequestf("couple_id is required")
	}
	if q.Start == "" || q.End == "" {
		return nil, invalidRequestf("start and end are required")
	}
	window, err := s.window.dateRange(q.Start, q.End)
	if err != nil {
		return nil, err
	}
	if window.Start.AddDate(maxForecastYears, 0, 0).Before(window.End) {
		return nil, invalidRequestf("forecast range must not exceed %d years", maxForecastYears)
	}

	events, err := s.store.ListEventsInRange(ctx, q.CoupleID, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	resp := &ForecastResponse{
		CoupleID: q.CoupleID,
		Start:    window.Start,
		End:      window.End,
		Lines:    []ForecastLine{},
		Total:    decimal.Zero,
	}
	for _, evt := range events {
		if evt.Amount == nil {
			continue
		}

		n := s.countOccurrences(s.localBase(evt), window)
		if n == 0 {
			continue
		}

		subtotal := evt.Amount.Mul(decimal.NewFromInt(int64(n)))
		resp.Lines = append(resp.Lines, ForecastLine{
			EventID:     evt.ID,
			Title:       evt.Title,
			Amount:      *evt.Amount,
			Occurrences: n,
			Subtotal:    subtotal,
		})
		resp.Total = resp.Total.Add(subtotal)
	}
	return resp, nil
}

// countOccurrences counts every occurrence of base starting inside window.
// The engine cap bounds a single expansion, so a truncated expansion is
// resumed just after the last occurrence it returned.
func (s *Service) countOccurrences(base recurrence.Event, window recurrence.DateRange) int {
	n := 0
	from := window.Start
	for {
		exp := s.engine.ExpandWithStats(base, from, window.End)
		for _, occ := range exp.Occurrences {
			if window.Contains(occ.Start) {
				n++
			}
		}
		if !exp.Truncated || len(exp.Occurrences) == 0 {
			return n
		}
		from = exp.Occurrences[len(exp.Occurrences)-1].Start.Add(time.Nanosecond)
	}
}

// DefaultRule returns the rule an edit form starts from for the given type.
func (s *Service) DefaultRule(freq string) (*RuleResponse, error) {
	if freq == "" {
		freq = string(recurrence.FrequencyWeekly)
	}
	if _, ok := recurrence.PatternFor(recurrence.Frequency(freq)); !ok {
		return nil, invalidRequestf("unknown recurrence type %q", freq)
	}

	rule := recurrence.DefaultRule(recurrence.Frequency(freq), s.nowFn().In(s.window.loc))
	return &RuleResponse{
		Recurrence:  &rule,
		Description: recurrence.Describe(rule),
		Valid:       true,
	}, nil
}

// DescribeRule renders a valid rule as text and, when a start is given, as
// an RRULE.
func (s *Service) DescribeRule(req RuleRequest) (*RuleResponse, error) {
	if errs := recurrence.Validate(req.Recurrence); len(errs) > 0 {
		return nil, &ValidationError{Errors: errs}
	}

	resp := &RuleResponse{
		Recurrence:  &req.Recurrence,
		Description: recurrence.Describe(req.Recurrence),
		Valid:       true,
	}
	if req.Start != nil {
		rrule, err := recurrence.ToRRULE(req.Recurrence, req.Start.In(s.window.loc))
		if err != nil {
			return nil, invalidRequestf("%v", err)
		}
		resp.RRule = rrule
	}
	return resp, nil
}

// ValidateRule reports every problem with a rule without failing.
func (s *Service) ValidateRule(req RuleRequest) *RuleResponse {
	errs := recurrence.Validate(req.Recurrence)
	return &RuleResponse{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

func (s *Service) getPreset(ctx context.Context, coupleID, eventID string) (*v1.Event, error) {
	if s.presets == nil {
		return nil, fmt.Errorf("get preset %s: %w", eventID, storage.ErrNotFound)
	}
	p, err := s.presets.Get(ctx, strings.TrimPrefix(eventID, preset.IDPrefix))
	if err != nil {
		return nil, fmt.Errorf("get preset %s: %w", eventID, storage.ErrNotFound)
	}
	return p.Event(coupleID), nil
}

func validateEvent(evt *v1.Event) error {
	if err := evt.Validate(); err != nil {
		return invalidRequestf("%v", err)
	}
	if evt.Recurrence != nil {
		if errs := recurrence.Validate(*evt.Recurrence); len(errs) > 0 {
			return &ValidationError{Errors: errs}
		}
	}
	return nil
}

func isPresetID(id string) bool {
	return strings.HasPrefix(id, preset.IDPrefix)
}

// asValidationError unwraps a *ValidationError from err.
func asValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}
