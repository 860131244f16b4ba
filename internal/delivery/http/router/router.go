// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"luxe/internal/delivery/http/middleware"
	"luxe/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	OrderHandler   *handler.OrderHandler
	UploadHandler  *handler.UploadHandler

	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	productHandler *handler.ProductHandler
	cartHandler    *handler.CartHandler
	orderHandler   *handler.OrderHandler
	uploadHandler  *handler.UploadHandler

	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		productHandler:      params.ProductHandler,
		cartHandler:         params.CartHandler,
		orderHandler:        params.OrderHandler,
		uploadHandler:       params.UploadHandler,
		authMiddleware:      params.AuthMiddleware,
		rateLimitMiddleware: params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	// Health check endpoint
	api.GET("/health", handler.HealthCheck)

	// Auth routes; login carries a per-IP throttle against brute force
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login, r.rateLimitMiddleware.Limit)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Catalog routes; reads are public, writes require an admin token
	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.POST("", r.productHandler.Create,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		productGroup.PATCH("/:id", r.productHandler.Update,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		productGroup.DELETE("/:id", r.productHandler.Delete,
			r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	}

	// Cart routes, all scoped to the authenticated user
	cartGroup := api.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.Get)
		cartGroup.POST("", r.cartHandler.Add)
		cartGroup.PATCH("/:id", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/:id", r.cartHandler.Remove)
		cartGroup.DELETE("", r.cartHandler.Clear)
	}

	// Order routes
	orderGroup := api.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/:id", r.orderHandler.Get)
	}

	// Image upload, admin only
	api.POST("/upload", r.uploadHandler.Upload,
		r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
}
