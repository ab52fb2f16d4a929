package handler

import (
	"log/slog"
	"net/http"

	"marketdash/internal/delivery/http/response"
	"marketdash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	Auth    usecase.AuthUsecase
	Session usecase.SessionUsecase
	Logger  *slog.Logger
}

// SessionHandler serves sign in, sign out and the session snapshot.
type SessionHandler struct {
	auth    usecase.AuthUsecase
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		auth:    params.Auth,
		session: params.Session,
		logger:  params.Logger,
	}
}

// HealthCheck reports that the process is serving.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// Login signs in and returns the resulting session snapshot.
func (h *SessionHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	snap, err := h.auth.Login(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snap)
}

// Logout signs out.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.auth.Logout(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.session.Snapshot())
}

// GetSession returns the current snapshot, including the store access verdict.
func (h *SessionHandler) GetSession(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.session.Snapshot())
}

// ResolveStore re-runs store resolution for the signed-in merchant.
func (h *SessionHandler) ResolveStore(c echo.Context) error {
	snap, err := h.auth.RefreshStore(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snap)
}
