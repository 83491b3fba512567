package errors

import (
	"fmt"
	"strings"
)

// HTTPError is a transport-facing error carrying an HTTP status code.
// Delivery-layer mapError functions translate domain errors into these.
type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given status code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// FieldViolation is a single failed field rule.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violated field rule of a request, in
// declaration order, so callers see all problems at once instead of the first.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = fmt.Sprintf("%s: %s", v.Field, v.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewValidationError creates an empty ValidationError ready to collect violations.
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// Add appends a field violation and returns the error for chaining.
func (e *ValidationError) Add(field, message string) *ValidationError {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
	return e
}

// HasViolations reports whether any rule failed.
func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}
