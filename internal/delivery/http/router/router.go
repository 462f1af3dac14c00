// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nexstock/internal/delivery/http/middleware"
	"nexstock/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	InventoryHandler *handler.InventoryHandler
	UserHandler      *handler.UserHandler
	UploadHandler    *handler.UploadHandler
	ConfigHandler    *handler.ConfigHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	inventoryHandler *handler.InventoryHandler
	userHandler      *handler.UserHandler
	uploadHandler    *handler.UploadHandler
	configHandler    *handler.ConfigHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		inventoryHandler: params.InventoryHandler,
		userHandler:      params.UserHandler,
		uploadHandler:    params.UploadHandler,
		configHandler:    params.ConfigHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)

	// Session and user routes
	api.POST("/auth/session", r.userHandler.SyncSession)
	api.GET("/users/me", r.userHandler.Me)
	api.PATCH("/users/:id/role", r.userHandler.SetRole, r.authMiddleware.RequireAdmin)

	// UI configuration
	api.GET("/ui-config", r.configHandler.UIConfig)

	// Inventory read routes
	inventoryGroup := api.Group("/inventory")
	{
		inventoryGroup.GET("", r.inventoryHandler.ListItems)
		inventoryGroup.GET("/low-stock", r.inventoryHandler.LowStock)
		inventoryGroup.GET("/stream", r.inventoryHandler.StreamItems)
		inventoryGroup.GET("/:id/history", r.inventoryHandler.ItemHistory)
	}

	// Inventory mutation routes require the admin or manager role
	inventoryGroup.POST("", r.inventoryHandler.CreateItem, r.authMiddleware.RequireMutator)
	inventoryGroup.PATCH("/:id", r.inventoryHandler.UpdateItem, r.authMiddleware.RequireMutator)
	inventoryGroup.DELETE("/:id", r.inventoryHandler.DeleteItem, r.authMiddleware.RequireMutator)

	// Image uploads
	api.POST("/uploads", r.uploadHandler.Upload, r.authMiddleware.RequireMutator)
}
