package repository

import (
	"context"

	"marketdash/internal/domain/entity"
)

// Keys under which the client state is persisted.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyUser         = "user"
)

// CredentialRepository persists the signed-in client's tokens and user between runs.
type CredentialRepository interface {
	// Load returns the stored credentials, or empty credentials when nothing is stored.
	Load(ctx context.Context) (*entity.Credentials, error)

	// Save replaces all stored credentials in one transaction.
	Save(ctx context.Context, creds *entity.Credentials) error

	// Clear removes every stored key.
	Clear(ctx context.Context) error
}
