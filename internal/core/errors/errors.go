package errors

const (
	HttpInternalError          = "internal_error"
	HttpInvalidJsonError       = "invalid_json"
	HttpInvalidRequestError    = "invalid_request"
	HttpRuleValidationError    = "recurrence_validation_failed"
	HttpEventNotFoundError     = "event_not_found"
	HttpDuplicateEventError    = "duplicate_event"
	HttpReadOnlyEventError     = "read_only_event"
	HttpNotRecurringEventError = "event_not_recurring"
)

// ErrorResponse is the error response body for every API error.
type ErrorResponse struct {
	ErrorType string      `json:"error_type"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
}
