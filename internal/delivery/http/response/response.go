// Package response renders the dashboard's unified JSON envelope.
package response

import (
	"net/http"

	deliverycontext "marketdash/internal/delivery/context"
	domainerrors "marketdash/internal/domain/errors"
	"marketdash/internal/errors"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success   bool       `json:"success"`
	Code      int        `json:"code"`    // HTTP status code
	Message   string     `json:"message"` // User-friendly message
	Data      any        `json:"data,omitempty"`
	Error     *ErrorInfo `json:"error,omitempty"`
	RequestID string     `json:"requestId,omitempty"`
}

// ErrorInfo detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Business error code, e.g. "STORE_ACCESS_BLOCKED"
	Details any    `json:"details,omitempty"` // Field errors or a reason, 4xx only
}

// fieldErrorer is implemented by errors that carry per-field messages.
type fieldErrorer interface {
	FieldErrors() map[string]string
}

// Success successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Response{
		Success:   true,
		Code:      statusCode,
		Message:   http.StatusText(statusCode),
		Data:      data,
		RequestID: deliverycontext.RequestID(c),
	})
}

// Pending tells a view that the answer is not known yet and it should render a
// loading state and ask again.
func Pending(c echo.Context, reason string) error {
	return Success(c, http.StatusAccepted, map[string]any{"pending": true, "reason": reason})
}

// Error error response
func Error(c echo.Context, statusCode int, errorCode, message string, details any) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	if statusCode >= http.StatusInternalServerError {
		details = nil
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
		RequestID: deliverycontext.RequestID(c),
	})
}

// BindingError binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// HandleAppError renders a domain error; anything else goes to the echo error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if !errors.As(err, &appErr) {
		return errors.WithStack(err)
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details(appErr))
}

func details(appErr domainerrors.AppError) any {
	var withFields fieldErrorer
	if errors.As(appErr, &withFields) && len(withFields.FieldErrors()) > 0 {
		return withFields.FieldErrors()
	}
	if d := appErr.Details(); d != "" {
		return d
	}

	return nil
}
