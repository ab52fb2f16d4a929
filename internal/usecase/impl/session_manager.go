// Package impl contains the implementation of the application's business logic.
package impl

import (
	"log/slog"
	"sync"

	"marketdash/internal/domain/entity"
	"marketdash/internal/usecase"
)

// sessionManager implements the SessionUsecase interface.
type sessionManager struct {
	logger *slog.Logger

	mu         sync.RWMutex
	session    *entity.Session
	store      *entity.Store
	resolution entity.Resolution
	generation uint64
	version    uint64

	observers map[uint64]func(usecase.SessionSnapshot)
	nextID    uint64
}

// NewSessionManager is the constructor for sessionManager.
func NewSessionManager(logger *slog.Logger) usecase.SessionUsecase {
	return &sessionManager{
		logger:     logger,
		resolution: entity.Resolution{Outcome: entity.OutcomeUnresolved},
		observers:  map[uint64]func(usecase.SessionSnapshot){},
	}
}

// Snapshot returns a copy of the current state; callers may keep it.
func (m *sessionManager) Snapshot() usecase.SessionSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.snapshotLocked()
}

// Subscribe registers fn to be called after every mutation.
func (m *sessionManager) Subscribe(fn func(usecase.SessionSnapshot)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.observers[id] = fn

	var once sync.Once

	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()

			delete(m.observers, id)
		})
	}
}

// SetSession replaces the principal. A different user, or a role other than
// merchant, drops the resolved store.
func (m *sessionManager) SetSession(session *entity.Session) {
	m.mutate(func() bool {
		sameUser := m.session != nil && session != nil && m.session.ID == session.ID
		if !sameUser || !session.IsMerchant() {
			m.store = nil
			m.resolution = entity.Resolution{Outcome: entity.OutcomeUnresolved}
		}
		if !sameUser {
			m.generation++
		}
		m.session = session.Clone()

		return true
	})
}

// ClearSession forgets the principal and everything derived from it.
func (m *sessionManager) ClearSession() {
	m.mutate(func() bool {
		m.session = nil
		m.store = nil
		m.resolution = entity.Resolution{Outcome: entity.OutcomeUnresolved}
		m.generation++

		return true
	})
}

// SetResolvedStore replaces the store record, e.g. after the merchant edited it.
func (m *sessionManager) SetResolvedStore(store *entity.Store) {
	m.mutate(func() bool {
		if !m.session.IsMerchant() {
			m.store = nil
		} else {
			m.store = store.Clone()
		}

		return true
	})
}

// SetResolutionState records a resolution for the given session generation and
// reports whether it applied. Pending leaves the current store in place.
func (m *sessionManager) SetResolutionState(generation uint64, resolution entity.Resolution) bool {
	applied := m.mutate(func() bool {
		if generation != m.generation {
			return false
		}

		m.resolution = resolution
		m.resolution.Store = resolution.Store.Clone()

		switch resolution.Outcome {
		case entity.OutcomeResolved:
			m.store = resolution.Store.Clone()
		case entity.OutcomePending:
			// undecided: a store resolved earlier stays in force
		default:
			if resolution.Outcome.Terminal() {
				m.store = nil
			}
		}

		return true
	})

	if !applied {
		m.logger.Debug("Dropped resolution for a replaced session",
			slog.String("outcome", string(resolution.Outcome)))
	}

	return applied
}

// mutate applies fn under the lock and, when fn reports a change, notifies
// observers with the new state. Observers run without the lock held, so they may
// call Snapshot or mutate again.
func (m *sessionManager) mutate(fn func() bool) bool {
	m.mu.Lock()
	if !fn() {
		m.mu.Unlock()

		return false
	}

	m.version++
	snap := m.snapshotLocked()
	observers := make([]func(usecase.SessionSnapshot), 0, len(m.observers))
	for _, obs := range m.observers {
		observers = append(observers, obs)
	}
	m.mu.Unlock()

	for _, obs := range observers {
		obs(snap)
	}

	return true
}

func (m *sessionManager) snapshotLocked() usecase.SessionSnapshot {
	resolution := m.resolution
	resolution.Store = resolution.Store.Clone()

	return usecase.SessionSnapshot{
		Session:    m.session.Clone(),
		Store:      m.store.Clone(),
		Resolution: resolution,
		Verdict:    entity.EvaluateStoreAccess(m.session, m.store, m.resolution.Outcome),
		Generation: m.generation,
		Version:    m.version,
	}
}
