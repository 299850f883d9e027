// Package router wires handlers onto echo routes.
package router

import (
	"profilemap/config"
	"profilemap/internal/delivery/api/middleware"
	"profilemap/internal/delivery/api/router/handler"
	"profilemap/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler    *handler.HealthHandler
	ProfileHandler   *handler.ProfileHandler
	DirectoryHandler *handler.DirectoryHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Metrics          *metrics.Metrics `optional:"true"`
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler    *handler.HealthHandler
	profileHandler   *handler.ProfileHandler
	directoryHandler *handler.DirectoryHandler
	authMiddleware   *middleware.AuthMiddleware
	metrics          *metrics.Metrics
	config           *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:    params.HealthHandler,
		profileHandler:   params.ProfileHandler,
		directoryHandler: params.DirectoryHandler,
		authMiddleware:   params.AuthMiddleware,
		metrics:          params.Metrics,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	if r.config.Metrics.Enabled && r.metrics != nil {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	apiV1 := e.Group("/api/v1")

	profilesGroup := apiV1.Group("/profiles")
	{
		profilesGroup.GET("", r.profileHandler.ListProfiles)
		profilesGroup.GET("/:id", r.profileHandler.GetProfile)
		profilesGroup.GET("/:id/qr", r.profileHandler.GetProfileQR)

		// Mutations require the admin capability
		profilesGroup.POST("", r.profileHandler.CreateProfile, r.authMiddleware.RequireAdmin)
		profilesGroup.PATCH("/:id", r.profileHandler.UpdateProfile, r.authMiddleware.RequireAdmin)
		profilesGroup.DELETE("/:id", r.profileHandler.DeleteProfile, r.authMiddleware.RequireAdmin)
	}

	apiV1.GET("/locations", r.profileHandler.ListLocations)
	apiV1.GET("/directory", r.directoryHandler.Derive)

	viewsGroup := apiV1.Group("/views")
	{
		viewsGroup.POST("", r.directoryHandler.OpenView)
		viewsGroup.GET("/:id", r.directoryHandler.GetView)
		viewsGroup.PUT("/:id/search", r.directoryHandler.SetSearch)
		viewsGroup.PUT("/:id/location", r.directoryHandler.SetLocationFilter)
		viewsGroup.PUT("/:id/name", r.directoryHandler.SetNameFilter)
		viewsGroup.PUT("/:id/selection", r.directoryHandler.Select)
		viewsGroup.DELETE("/:id", r.directoryHandler.CloseView)
	}
}
