// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"marketdash/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
)

// jwtInspector reads registered claims from API-issued JWTs without verifying them.
type jwtInspector struct {
	parser *jwt.Parser
	now    func() time.Time
}

// NewJWTInspector is the constructor for jwtInspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{
		parser: jwt.NewParser(),
		now:    time.Now,
	}
}

// ExpiresAt returns the exp claim of token.
func (i *jwtInspector) ExpiresAt(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := i.parser.ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}

	return claims.ExpiresAt.Time, true
}

// Expired reports whether token visibly expired. Opaque tokens and tokens
// without exp are never considered expired; the API decides for those.
func (i *jwtInspector) Expired(token string, leeway time.Duration) bool {
	expiresAt, ok := i.ExpiresAt(token)
	if !ok {
		return false
	}

	return !expiresAt.After(i.now().Add(leeway))
}
