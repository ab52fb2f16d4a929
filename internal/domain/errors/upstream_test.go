package errors

import (
	"net/http"
	"testing"

	"marketdash/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestUpstreamError_ErrorIncludesSortedFields(t *testing.T) {
	err := &UpstreamError{
		StatusCode: http.StatusUnprocessableEntity,
		Msg:        "Validation failed",
		Fields:     map[string]string{"price": "must be positive", "name": "is required"},
	}

	assert.Equal(t, "marketplace api (Unprocessable Entity): Validation failed [name: is required; price: must be positive]", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", err.ErrorCode())
}

func TestUpstreamError_StatusMapping(t *testing.T) {
	tests := []struct {
		status   int
		wantHTTP int
		wantCode string
	}{
		{http.StatusUnauthorized, http.StatusUnauthorized, "SESSION_EXPIRED"},
		{http.StatusForbidden, http.StatusForbidden, "FORBIDDEN"},
		{http.StatusNotFound, http.StatusNotFound, "NOT_FOUND"},
		{http.StatusInternalServerError, http.StatusBadGateway, "UPSTREAM_REJECTED"},
		{http.StatusOK, http.StatusBadGateway, "UPSTREAM_REJECTED"},
	}

	for _, tt := range tests {
		err := &UpstreamError{StatusCode: tt.status}
		assert.Equal(t, tt.wantHTTP, err.HTTPCode(), "status %d", tt.status)
		assert.Equal(t, tt.wantCode, err.ErrorCode(), "status %d", tt.status)
	}
}

func TestIsUnauthorized(t *testing.T) {
	wrapped := errors.Wrap(&UpstreamError{StatusCode: http.StatusUnauthorized}, "my store")

	assert.True(t, IsUnauthorized(wrapped))
	assert.True(t, IsUnauthorized(ErrSessionExpired.WithDetails("token expired")))
	assert.False(t, IsUnauthorized(&UpstreamError{StatusCode: http.StatusForbidden}))
	assert.False(t, IsUnauthorized(errors.New("dial tcp: connection refused")))
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&UpstreamError{StatusCode: http.StatusNotFound}))
	assert.True(t, IsNotFound(ErrStoreNotFound))
	assert.False(t, IsNotFound(&UpstreamError{StatusCode: http.StatusBadGateway}))
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(map[string]string{"name": "is required", "email": "must be a valid email"})

	assert.Equal(t, "Input validation failed: email must be a valid email; name is required", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.ErrorIs(t, errors.WithStack(err), ErrValidationFailed)
	assert.Equal(t, "is required", err.FieldErrors()["name"])
}
