// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketdash/internal/delivery/http/middleware"
	"marketdash/internal/delivery/http/router/handler"
	"marketdash/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler    *handler.SessionHandler
	MerchantHandler   *handler.MerchantHandler
	AdminHandler      *handler.AdminHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler    *handler.SessionHandler
	merchantHandler   *handler.MerchantHandler
	adminHandler      *handler.AdminHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:    params.SessionHandler,
		merchantHandler:   params.MerchantHandler,
		adminHandler:      params.AdminHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the routes of the dashboard.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.sessionHandler.Login)
		authGroup.POST("/logout", r.sessionHandler.Logout)
	}

	e.GET("/session", r.sessionHandler.GetSession)
	e.POST("/session/store/resolve", r.sessionHandler.ResolveStore, r.sessionMiddleware.RequireSession)

	// Store pages: signed-in merchants whose store verdict permits, and admins
	merchantGroup := e.Group("/merchant",
		r.sessionMiddleware.RequireSession,
		r.sessionMiddleware.RequireRole(entity.RoleMerchant, entity.RoleAdmin),
		r.sessionMiddleware.RequireStore,
	)
	r.merchantHandler.Register(merchantGroup)

	adminGroup := e.Group("/admin",
		r.sessionMiddleware.RequireSession,
		r.sessionMiddleware.RequireRole(entity.RoleAdmin),
	)
	r.adminHandler.Register(adminGroup)
}
