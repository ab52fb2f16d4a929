package middleware

import (
	"slices"

	"marketdash/internal/delivery/http/response"
	"marketdash/internal/domain/entity"
	domainerrors "marketdash/internal/domain/errors"
	"marketdash/internal/usecase"

	"github.com/labstack/echo/v4"
)

const snapshotKey = "session_snapshot"

// SessionMiddleware guards routes with the shared session state.
type SessionMiddleware struct {
	session usecase.SessionUsecase
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(session usecase.SessionUsecase) *SessionMiddleware {
	return &SessionMiddleware{session: session}
}

// RequireSession rejects requests while nobody is signed in and stores the
// snapshot it checked for the later guards and handlers.
func (m *SessionMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		snap := m.session.Snapshot()
		if !snap.Authenticated() {
			return response.HandleAppError(c, domainerrors.ErrNotAuthenticated)
		}
		c.Set(snapshotKey, snap)

		return next(c)
	}
}

// RequireRole admits only the given roles. It must run after RequireSession.
func (m *SessionMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			snap, ok := GetSnapshot(c)
			if !ok || !slices.Contains(roles, snap.Session.Role) {
				return response.HandleAppError(c, domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

// RequireStore applies the store access verdict: pending answers 202 so the view
// shows a loading state, blocked answers 403 with the reason.
func (m *SessionMiddleware) RequireStore(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		snap, ok := GetSnapshot(c)
		if !ok {
			return response.HandleAppError(c, domainerrors.ErrNotAuthenticated)
		}

		switch snap.Verdict.Kind {
		case entity.VerdictPending:
			return response.Pending(c, snap.Verdict.Reason)
		case entity.VerdictBlocked:
			return response.HandleAppError(c, domainerrors.ErrStoreAccessBlocked.WithDetails(snap.Verdict.Reason))
		}

		return next(c)
	}
}

// GetSnapshot returns the snapshot stored by RequireSession.
func GetSnapshot(c echo.Context) (usecase.SessionSnapshot, bool) {
	snap, ok := c.Get(snapshotKey).(usecase.SessionSnapshot)

	return snap, ok
}
