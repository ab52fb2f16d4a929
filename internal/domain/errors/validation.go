package errors

import (
	"net/http"
	"sort"
	"strings"
)

// ValidationError rejects input before it is sent upstream, implementing the AppError interface
type ValidationError struct {
	fields map[string]string
}

// NewValidationError creates a validation error from per-field messages
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error lists the failing fields in a stable order
func (e *ValidationError) Error() string {
	if len(e.fields) == 0 {
		return ErrValidationFailed.Message()
	}

	return ErrValidationFailed.Message() + ": " + e.Details()
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

// Details concatenates the per-field messages
func (e *ValidationError) Details() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.fields[k])
	}

	return strings.Join(parts, "; ")
}

// FieldErrors returns the per-field validation messages
func (e *ValidationError) FieldErrors() map[string]string {
	return e.fields
}

// Is makes every ValidationError match ErrValidationFailed
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
