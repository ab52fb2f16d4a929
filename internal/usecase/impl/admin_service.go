package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketdash/internal/delivery/context"
	"marketdash/internal/domain/entity"
	domainerrors "marketdash/internal/domain/errors"
	"marketdash/internal/errors"
	"marketdash/internal/usecase"
)

// userAdminService implements the UserAdminUsecase interface.
type userAdminService struct {
	*resourceService[entity.User]
}

// NewUserAdminService is the constructor for userAdminService.
func NewUserAdminService(params ResourceServiceParams) usecase.UserAdminUsecase {
	return &userAdminService{
		resourceService: newResourceService[entity.User](params, "/admin/users", "user", gateAdmin),
	}
}

// SetRole changes an account's role.
func (srv *userAdminService) SetRole(ctx context.Context, id string, role entity.Role) (*entity.User, error) {
	if !role.IsValid() {
		return nil, errors.WithStack(domainerrors.NewValidationError(map[string]string{
			"role": "must be one of: customer merchant admin",
		}))
	}

	return srv.patch(ctx, id, "role", map[string]entity.Role{"role": role})
}

// SetActive activates or deactivates an account.
func (srv *userAdminService) SetActive(ctx context.Context, id string, active bool) (*entity.User, error) {
	return srv.patch(ctx, id, "status", map[string]bool{"isActive": active})
}

// storeAdminService implements the StoreAdminUsecase interface.
type storeAdminService struct {
	*resourceService[entity.Store]

	session usecase.SessionUsecase
}

// NewStoreAdminService is the constructor for storeAdminService.
func NewStoreAdminService(params ResourceServiceParams) usecase.StoreAdminUsecase {
	return &storeAdminService{
		resourceService: newResourceService[entity.Store](params, "/admin/stores", "store", gateAdmin),
		session:         params.Session,
	}
}

// SetStatus approves, suspends or closes a store.
func (srv *storeAdminService) SetStatus(ctx context.Context, id string, status entity.StoreStatus) (*entity.Store, error) {
	if !status.IsValid() {
		return nil, errors.WithStack(domainerrors.NewValidationError(map[string]string{
			"status": "must be one of: pending active suspended inactive closed",
		}))
	}

	store, err := srv.patch(ctx, id, "status", map[string]entity.StoreStatus{"status": status})
	if err != nil {
		return nil, err
	}

	// keep the gate in step when the signed-in merchant's own store changed
	if current := srv.session.Snapshot().Store; current != nil && current.ID == store.ID {
		srv.session.SetResolvedStore(store)
	}

	return store, nil
}

const settingsPath = "/admin/settings"

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	base   *resourceService[entity.PlatformSettings]
	logger *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(params ResourceServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		base:   newResourceService[entity.PlatformSettings](params, settingsPath, "settings", gateAdmin),
		logger: params.Logger,
	}
}

// Get returns the platform settings.
func (srv *settingsService) Get(ctx context.Context) (*entity.PlatformSettings, error) {
	if err := srv.base.authorize(); err != nil {
		return nil, err
	}

	var settings entity.PlatformSettings
	if err := srv.base.api.Get(ctx, "/admin", "settings", &settings); err != nil {
		return nil, srv.base.fail(ctx, "get", err)
	}

	return &settings, nil
}

// Update validates and saves the platform settings.
func (srv *settingsService) Update(ctx context.Context, settings *entity.PlatformSettings) (*entity.PlatformSettings, error) {
	updated, err := srv.base.mutate(ctx, "update", "", settings, func(out *entity.PlatformSettings) error {
		return srv.base.api.Patch(ctx, settingsPath, settings, out)
	})
	if err != nil {
		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Platform settings updated",
		slog.Bool("maintenance_mode", updated.MaintenanceMode))

	return updated, nil
}
