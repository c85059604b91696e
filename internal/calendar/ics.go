package calendar

import (
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	v1 "github.com/tandem-app/tandem/internal/api/v1"
	"github.com/tandem-app/tandem/internal/core/recurrence"
)

const (
	icsProductID    = "-//Tandem//Shared Calendar//EN"
	icsDateLayout   = "20060102"
	icsLocalLayout  = "20060102T150405"
	icsPropColor    = ics.ComponentProperty("COLOR")
	icsPropAmount   = ics.ComponentProperty("X-TANDEM-AMOUNT")
	icsPropReadOnly = ics.ComponentProperty("X-TANDEM-PRESET")
)

// ExportICS renders every event of the couple, presets included, as an
// iCalendar feed. Recurring events are written once with RRULE and EXDATE
// so subscribing clients expand them.
func (s *Service) ExportICS(ctx context.Context, coupleID string) ([]byte, error) {
	if coupleID == "" {
		return nil, invalidRequestf("couple_id is required")
	}

	events, err := s.store.ListEvents(ctx, coupleID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	events = append(events, s.presetEvents(coupleID)...)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetXWRCalName(s.feedName)
	cal.SetXWRTimezone(s.window.loc.String())

	stamp := s.nowFn().UTC()
	for _, evt := range events {
		if err := s.addVEvent(cal, evt, stamp); err != nil {
			return nil, fmt.Errorf("event %s: %w", evt.ID, err)
		}
	}
	return []byte(cal.Serialize()), nil
}

func (s *Service) addVEvent(cal *ics.Calendar, evt *v1.Event, stamp time.Time) error {
	ve := cal.AddEvent(fmt.Sprintf("%s@%s", evt.ID, evt.CoupleID))
	ve.SetDtStampTime(stamp)
	ve.SetSummary(evt.Title)
	if evt.Description != "" {
		ve.SetDescription(evt.Description)
	}
	if evt.Location != "" {
		ve.SetLocation(evt.Location)
	}
	if evt.Color != "" {
		ve.SetProperty(icsPropColor, evt.Color)
	}
	if evt.Amount != nil {
		ve.SetProperty(icsPropAmount, evt.Amount.String())
	}
	if evt.ReadOnly {
		ve.SetProperty(icsPropReadOnly, "TRUE")
	}
	if !evt.CreatedAt.IsZero() {
		ve.SetCreatedTime(evt.CreatedAt)
	}
	if !evt.UpdatedAt.IsZero() {
		ve.SetModifiedAt(evt.UpdatedAt)
	}

	start := evt.Start.In(s.window.loc)
	end := start
	if evt.End != nil {
		end = evt.End.In(s.window.loc)
	}

	if evt.AllDay {
		// DTEND of an all-day event is exclusive.
		ve.SetAllDayStartAt(start)
		ve.SetAllDayEndAt(recurrence.StartOfDay(end).AddDate(0, 0, 1))
	} else {
		s.setTimed(ve, ics.ComponentPropertyDtStart, start)
		if evt.End != nil {
			s.setTimed(ve, ics.ComponentPropertyDtEnd, end)
		}
	}

	if !evt.IsRecurring() {
		return nil
	}

	rrule, err := recurrence.ToRRULE(*evt.Recurrence, start)
	if err != nil {
		return err
	}
	ve.AddProperty(ics.ComponentPropertyRrule, rrule)

	for _, ex := range evt.Recurrence.Exceptions {
		// EXDATE must match the instance's DTSTART, so the time of day is taken from start.
		y, m, d := ex.Date()
		if evt.AllDay {
			ve.AddProperty(ics.ComponentPropertyExdate, ex.Format(icsDateLayout), valueDate())
			continue
		}
		exStart := time.Date(y, m, d, start.Hour(), start.Minute(), start.Second(), 0, s.window.loc)
		s.addTimed(ve, ics.ComponentPropertyExdate, exStart)
	}
	return nil
}

// setTimed writes a DATE-TIME property in UTC form when the calendar runs in
// UTC and as local time with TZID otherwise.
func (s *Service) setTimed(ve *ics.VEvent, prop ics.ComponentProperty, t time.Time) {
	if s.window.loc == time.UTC {
		ve.SetProperty(prop, t.UTC().Format(icsLocalLayout)+"Z")
		return
	}
	ve.SetProperty(prop, t.Format(icsLocalLayout), s.tzid())
}

func (s *Service) addTimed(ve *ics.VEvent, prop ics.ComponentProperty, t time.Time) {
	if s.window.loc == time.UTC {
		ve.AddProperty(prop, t.UTC().Format(icsLocalLayout)+"Z")
		return
	}
	ve.AddProperty(prop, t.Format(icsLocalLayout), s.tzid())
}

func (s *Service) tzid() ics.PropertyParameter {
	return &ics.KeyValues{Key: string(ics.ParameterTzid), Value: []string{s.window.loc.String()}}
}

func valueDate() ics.PropertyParameter {
	return &ics.KeyValues{Key: string(ics.ParameterValue), Value: []string{"DATE"}}
}
