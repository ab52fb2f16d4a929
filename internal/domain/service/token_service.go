package service

import "time"

// TokenInspector reads claims out of access tokens the API issued. It never
// verifies signatures: the API stays the authority, this only avoids sending
// requests with a token that has visibly expired.
type TokenInspector interface {
	// ExpiresAt returns the token's exp claim; ok is false when absent or unreadable.
	ExpiresAt(token string) (expiresAt time.Time, ok bool)

	// Expired reports whether the token's exp lies before now plus leeway.
	Expired(token string, leeway time.Duration) bool
}
