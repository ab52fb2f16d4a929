package usecase

import "context"

// LoginInput defines the data required for an operator to sign in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthUsecase drives the session lifecycle against the marketplace API.
type AuthUsecase interface {
	SessionInvalidator

	Login(ctx context.Context, input *LoginInput) (SessionSnapshot, error)
	// Restore brings back the persisted session at startup, refreshing or
	// dropping it depending on what the API says about the stored token.
	Restore(ctx context.Context) (SessionSnapshot, error)
	Logout(ctx context.Context) error
	RefreshStore(ctx context.Context) (SessionSnapshot, error)
}

// SessionInvalidator ends the session after the API rejected its token.
type SessionInvalidator interface {
	Invalidate(ctx context.Context, cause error)
}
