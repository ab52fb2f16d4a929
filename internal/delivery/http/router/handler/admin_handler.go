package handler

import (
	"net/http"

	"marketdash/internal/delivery/http/response"
	"marketdash/internal/domain/entity"
	"marketdash/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds the admin usecases, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	Users         usecase.UserAdminUsecase
	Stores        usecase.StoreAdminUsecase
	ShippingZones usecase.ShippingZoneUsecase
	Settings      usecase.SettingsUsecase
}

// AdminHandler serves the platform administration pages.
type AdminHandler struct {
	users         usecase.UserAdminUsecase
	stores        usecase.StoreAdminUsecase
	shippingZones *ResourceHandler[entity.ShippingZone]
	settings      usecase.SettingsUsecase
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		users:         params.Users,
		stores:        params.Stores,
		shippingZones: NewResourceHandler(params.ShippingZones),
		settings:      params.Settings,
	}
}

// Register mounts the admin routes under g.
func (h *AdminHandler) Register(g *echo.Group) {
	users := g.Group("/users")
	users.GET("", h.ListUsers)
	users.GET("/:id", h.GetUser)
	users.PATCH("/:id/role", h.SetUserRole)
	users.PATCH("/:id/status", h.SetUserActive)

	stores := g.Group("/stores")
	stores.GET("", h.ListStores)
	stores.GET("/:id", h.GetStore)
	stores.PATCH("/:id/status", h.SetStoreStatus)

	h.shippingZones.Mount(g.Group("/shipping-zones"))

	g.GET("/settings", h.GetSettings)
	g.PUT("/settings", h.UpdateSettings)
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	query, err := listQuery(c)
	if err != nil {
		return response.BindingError(c, "Invalid list query")
	}

	page, err := h.users.List(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

func (h *AdminHandler) GetUser(c echo.Context) error {
	user, err := h.users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// SetUserRoleRequest is the body of a role change.
type SetUserRoleRequest struct {
	Role entity.Role `json:"role" validate:"required"`
}

func (h *AdminHandler) SetUserRole(c echo.Context) error {
	var req SetUserRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.users.SetRole(c.Request().Context(), c.Param("id"), req.Role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

// SetUserActiveRequest is the body of an activation change.
type SetUserActiveRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

func (h *AdminHandler) SetUserActive(c echo.Context) error {
	var req SetUserActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.users.SetActive(c.Request().Context(), c.Param("id"), *req.IsActive)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user)
}

func (h *AdminHandler) ListStores(c echo.Context) error {
	query, err := listQuery(c)
	if err != nil {
		return response.BindingError(c, "Invalid list query")
	}

	page, err := h.stores.List(c.Request().Context(), query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, page)
}

func (h *AdminHandler) GetStore(c echo.Context) error {
	store, err := h.stores.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store)
}

// SetStoreStatusRequest is the body of a store review decision.
type SetStoreStatusRequest struct {
	Status entity.StoreStatus `json:"status" validate:"required"`
}

func (h *AdminHandler) SetStoreStatus(c echo.Context) error {
	var req SetStoreStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid store status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	store, err := h.stores.SetStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, store)
}

func (h *AdminHandler) GetSettings(c echo.Context) error {
	settings, err := h.settings.Get(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, settings)
}

func (h *AdminHandler) UpdateSettings(c echo.Context) error {
	var settings entity.PlatformSettings
	if err := c.Bind(&settings); err != nil {
		return response.BindingError(c, "Invalid settings input")
	}

	updated, err := h.settings.Update(c.Request().Context(), &settings)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, updated)
}
