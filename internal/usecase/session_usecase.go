// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "marketdash/internal/domain/entity"

// SessionSnapshot is an immutable view of the session state at one point in time.
type SessionSnapshot struct {
	Session    *entity.Session   `json:"session"`
	Store      *entity.Store     `json:"store"`
	Resolution entity.Resolution `json:"resolution"`
	Verdict    entity.Verdict    `json:"verdict"`

	// Generation changes whenever the session itself is replaced or cleared.
	Generation uint64 `json:"-"`
	// Version changes on every mutation.
	Version uint64 `json:"version"`
}

// Authenticated reports whether a session is present.
func (s SessionSnapshot) Authenticated() bool {
	return s.Session != nil
}

// SessionUsecase owns the session and resolved store shared by every view.
// Only its mutation methods change that state; observers are told after each change.
type SessionUsecase interface {
	Snapshot() SessionSnapshot
	Subscribe(fn func(SessionSnapshot)) (unsubscribe func())

	SetSession(session *entity.Session)
	ClearSession()
	SetResolvedStore(store *entity.Store)
	// SetResolutionState records a resolution for the session of the given
	// generation. It returns false and changes nothing when the session moved on.
	SetResolutionState(generation uint64, resolution entity.Resolution) bool
}
