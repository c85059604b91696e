package postgres

import (
	"database/sql"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	v1 "github.com/tandem-app/tandem/internal/api/v1"
	"github.com/tandem-app/tandem/internal/core/recurrence"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// marshalRule encodes an event's recurrence rule for the JSONB column.
// A nil rule produces nil (SQL NULL) rather than JSON "null"; the range query
// relies on NULL to tell one-off events from series.
func marshalRule(event *v1.Event) ([]byte, error) {
	if event.Recurrence == nil {
		return nil, nil
	}
	ruleJSON, err := json.Marshal(event.Recurrence)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal recurrence: %w", err)
	}
	return ruleJSON, nil
}

// eventArgs returns the column values in eventColumns order.
func eventArgs(event *v1.Event, ruleJSON []byte) []interface{} {
	return []interface{}{
		event.CoupleID,
		event.ID,
		event.Title,
		event.Description,
		event.Location,
		event.Color,
		event.Start,
		nullTime(event),
		event.AllDay,
		nullAmount(event),
		ruleArg(ruleJSON),
		event.CreatedBy,
		event.CreatedAt,
		event.UpdatedAt,
	}
}

func nullTime(event *v1.Event) sql.NullTime {
	if event.End == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *event.End, Valid: true}
}

func nullAmount(event *v1.Event) decimal.NullDecimal {
	if event.Amount == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *event.Amount, Valid: true}
}

// ruleArg binds the encoded rule as text so the JSONB column receives JSON
// rather than bytea, and an absent rule as NULL.
func ruleArg(ruleJSON []byte) interface{} {
	if ruleJSON == nil {
		return nil
	}
	return string(ruleJSON)
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanEventRow scans a database row into an Event struct.
// Compatible with both sql.Row (single) and sql.Rows (multiple).
func scanEventRow(row scanner) (*v1.Event, error) {
	var (
		evt      v1.Event
		end      sql.NullTime
		amount   decimal.NullDecimal
		ruleJSON []byte
	)

	err := row.Scan(
		&evt.CoupleID,
		&evt.ID,
		&evt.Title,
		&evt.Description,
		&evt.Location,
		&evt.Color,
		&evt.Start,
		&end,
		&evt.AllDay,
		&amount,
		&ruleJSON,
		&evt.CreatedBy,
		&evt.CreatedAt,
		&evt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if end.Valid {
		evt.End = &end.Time
	}
	if amount.Valid {
		evt.Amount = &amount.Decimal
	}
	if len(ruleJSON) > 0 {
		var rule recurrence.Rule
		if err := json.Unmarshal(ruleJSON, &rule); err != nil {
			return nil, fmt.Errorf("failed to unmarshal recurrence for event %s: %w", evt.ID, err)
		}
		evt.Recurrence = &rule
	}

	return &evt, nil
}

func scanEventRows(rows *sql.Rows) ([]*v1.Event, error) {
	defer rows.Close()

	var events []*v1.Event
	for rows.Next() {
		event, err := scanEventRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}
