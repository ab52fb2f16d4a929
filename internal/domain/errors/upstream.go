package errors

import (
	"net/http"
	"sort"
	"strings"

	"marketdash/internal/errors"
)

// UpstreamError is a failure reported by the marketplace API, either through a
// non-2xx status or a success=false / status="error" envelope.
type UpstreamError struct {
	StatusCode int
	Msg        string
	Fields     map[string]string
}

// Error concatenates the message with any per-field messages, sorted by field.
func (e *UpstreamError) Error() string {
	var b strings.Builder
	b.WriteString("marketplace api")
	if e.StatusCode != 0 {
		b.WriteString(" (")
		b.WriteString(http.StatusText(e.StatusCode))
		b.WriteString(")")
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}

	if len(e.Fields) > 0 {
		keys := make([]string, 0, len(e.Fields))
		for k := range e.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+": "+e.Fields[k])
		}
		b.WriteString(" [")
		b.WriteString(strings.Join(parts, "; "))
		b.WriteString("]")
	}

	return b.String()
}

// HTTPCode maps the upstream status onto what the dashboard answers with.
func (e *UpstreamError) HTTPCode() int {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound, http.StatusConflict:
		return e.StatusCode
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

// ErrorCode returns the business error code
func (e *UpstreamError) ErrorCode() string {
	switch e.HTTPCode() {
	case http.StatusUnauthorized:
		return ErrSessionExpired.ErrorCode()
	case http.StatusForbidden:
		return ErrForbidden.ErrorCode()
	case http.StatusNotFound:
		return ErrNotFound.ErrorCode()
	case http.StatusBadRequest:
		return ErrValidationFailed.ErrorCode()
	default:
		return ErrUpstreamRejected.ErrorCode()
	}
}

// Message returns the upstream message, falling back to a generic one.
func (e *UpstreamError) Message() string {
	if e.Msg != "" {
		return e.Msg
	}

	return ErrUpstreamRejected.Message()
}

// Details returns detailed error information
func (e *UpstreamError) Details() string {
	return e.Error()
}

// FieldErrors returns the per-field validation messages.
func (e *UpstreamError) FieldErrors() map[string]string {
	return e.Fields
}

// IsUnauthorized reports whether err means the session itself is no longer valid.
func IsUnauthorized(err error) bool {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream.StatusCode == http.StatusUnauthorized
	}

	return errors.Is(err, ErrSessionExpired) || errors.Is(err, ErrNotAuthenticated)
}

// IsNotFound reports whether err is a 404 from the API or a local not-found.
func IsNotFound(err error) bool {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream.StatusCode == http.StatusNotFound
	}

	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrStoreNotFound)
}
