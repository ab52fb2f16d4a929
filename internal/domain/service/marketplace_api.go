// Package service declares the outbound ports the usecases depend on.
package service

import (
	"context"

	"marketdash/internal/domain/entity"
)

// AuthResult is what the API answers to a login or refresh.
type AuthResult struct {
	AccessToken  string
	RefreshToken string
	User         *entity.Session
}

// Pagination is the list metadata returned alongside list payloads.
type Pagination struct {
	Total int
	Page  int
	Limit int
}

// TokenHolder carries the bearer tokens attached to outgoing requests.
type TokenHolder interface {
	SetTokens(accessToken, refreshToken string)
	ClearTokens()
	AccessToken() string
}

// AuthAPI covers the marketplace authentication endpoints.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	Me(ctx context.Context) (*entity.Session, error)
	Logout(ctx context.Context) error
}

// StoreAPI covers the endpoints that answer "which store does this merchant own".
// Each lookup returns the domain NotFound error when the API has no store to give.
type StoreAPI interface {
	MyStore(ctx context.Context) (*entity.Store, error)
	MerchantStore(ctx context.Context) (*entity.Store, error)
	StoreByID(ctx context.Context, id string) (*entity.Store, error)
	// FixStore asks the server to re-link the merchant to its store; nil means it reported success.
	FixStore(ctx context.Context) error
}

// ResourceAPI is the generic CRUD surface used by every dashboard list/form page.
// out arguments are decoded from the envelope's data field.
type ResourceAPI interface {
	List(ctx context.Context, path string, query entity.ListQuery, out any) (*Pagination, error)
	Get(ctx context.Context, path, id string, out any) error
	Create(ctx context.Context, path string, body, out any) error
	Update(ctx context.Context, path, id string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path, id string) error
}

// MarketplaceAPI is the full client.
type MarketplaceAPI interface {
	TokenHolder
	AuthAPI
	StoreAPI
	ResourceAPI
}
