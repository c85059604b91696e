package storage

import (
	"context"
	"errors"
	"time"

	v1 "github.com/tandem-app/tandem/internal/api/v1"
)

// ErrDuplicate is returned when an event with the same (couple_id, id) already exists.
var ErrDuplicate = errors.New("event already exists")

// ErrNotFound is returned when no event matches (couple_id, id).
var ErrNotFound = errors.New("event not found")

// EventStore defines the interface for storing and retrieving events.
// Only base events are stored; occurrences are derived on read.
type EventStore interface {
	SaveEvent(ctx context.Context, event *v1.Event) error
	UpdateEvent(ctx context.Context, event *v1.Event) error
	GetEvent(ctx context.Context, coupleID, eventID string) (*v1.Event, error)
	DeleteEvent(ctx context.Context, coupleID, eventID string) error

	// ListEventsInRange returns every event of the couple that may produce an
	// occurrence in [start, end]: recurring events starting on or before end,
	// and non-recurring events overlapping the range. Ordered by start.
	ListEventsInRange(ctx context.Context, coupleID string, start, end time.Time) ([]*v1.Event, error)

	// ListEvents returns all events of the couple ordered by start.
	ListEvents(ctx context.Context, coupleID string) ([]*v1.Event, error)
}
