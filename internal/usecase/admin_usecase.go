package usecase

import (
	"context"

	"marketdash/internal/domain/entity"
)

// ShippingZoneUsecase manages the platform shipping configuration.
type ShippingZoneUsecase = ResourceUsecase[entity.ShippingZone]

// UserAdminUsecase manages accounts; admins only.
type UserAdminUsecase interface {
	List(ctx context.Context, query entity.ListQuery) (*entity.Page[entity.User], error)
	Get(ctx context.Context, id string) (*entity.User, error)
	SetRole(ctx context.Context, id string, role entity.Role) (*entity.User, error)
	SetActive(ctx context.Context, id string, active bool) (*entity.User, error)
}

// StoreAdminUsecase reviews merchant stores; admins only.
type StoreAdminUsecase interface {
	List(ctx context.Context, query entity.ListQuery) (*entity.Page[entity.Store], error)
	Get(ctx context.Context, id string) (*entity.Store, error)
	SetStatus(ctx context.Context, id string, status entity.StoreStatus) (*entity.Store, error)
}

// SettingsUsecase reads and writes platform settings; admins only.
type SettingsUsecase interface {
	Get(ctx context.Context) (*entity.PlatformSettings, error)
	Update(ctx context.Context, settings *entity.PlatformSettings) (*entity.PlatformSettings, error)
}
