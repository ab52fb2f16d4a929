package usecase

import (
	"context"

	"marketdash/internal/domain/entity"
)

// StoreResolver finds the authoritative store record of a merchant session.
type StoreResolver interface {
	// Resolve runs the fallback chain. It never returns an error: every failure
	// is folded into the resolution's outcome.
	Resolve(ctx context.Context, session *entity.Session) entity.Resolution
}
