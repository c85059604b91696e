package calendar

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRequest marks request validation errors that should return HTTP 400.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrReadOnly is returned when a preset event is modified.
	ErrReadOnly = errors.New("preset events are read-only")

	// ErrNotRecurring is returned when an exception is added to a one-off event.
	ErrNotRecurring = errors.New("event is not recurring")
)

// ValidationError carries every problem found in a recurrence rule.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "invalid recurrence rule: " + strings.Join(e.Errors, "; ")
}

func invalidRequestf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}
