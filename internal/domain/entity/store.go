package entity

import "time"

// StoreStatus is the lifecycle state of a merchant store.
type StoreStatus string

const (
	StoreStatusPending   StoreStatus = "pending"
	StoreStatusActive    StoreStatus = "active"
	StoreStatusSuspended StoreStatus = "suspended"
	StoreStatusInactive  StoreStatus = "inactive"
	StoreStatusClosed    StoreStatus = "closed"
)

// IsValid checks if the status is one the API is known to return.
func (s StoreStatus) IsValid() bool {
	switch s {
	case StoreStatusPending, StoreStatusActive, StoreStatusSuspended, StoreStatusInactive, StoreStatusClosed:
		return true
	default:
		return false
	}
}

// Store is the authoritative store record returned by the API.
type Store struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Slug        string      `json:"slug,omitempty"`
	Description string      `json:"description,omitempty"`
	Status      StoreStatus `json:"status"`
	OwnerID     Ref         `json:"owner,omitempty"`
	CreatedAt   time.Time   `json:"createdAt,omitzero"`
	UpdatedAt   time.Time   `json:"updatedAt,omitzero"`
}

// IsActive reports whether the store may be operated.
func (s *Store) IsActive() bool {
	return s != nil && s.Status == StoreStatusActive
}

// Clone returns a copy of the store, nil-safe.
func (s *Store) Clone() *Store {
	if s == nil {
		return nil
	}
	cloned := *s

	return &cloned
}
