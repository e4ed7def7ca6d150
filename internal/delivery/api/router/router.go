// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"catalog/internal/delivery/api/middleware"
	"catalog/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RoleEditor is required on every catalog write.
const RoleEditor = "editor"

type RouterParams struct {
	fx.In

	ProductHandler *handler.ProductHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler *handler.ProductHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler: params.ProductHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog reads
	e.GET("/products/:id", r.productHandler.GetProduct)
	e.GET("/products/:id/variants/:variantId/features/:featureId/quote", r.productHandler.QuoteFeature)
	e.GET("/businesses/:businessId/products", r.productHandler.ListBusinessProducts, r.authMiddleware.OptionalAuthenticate)

	// Catalog writes act on behalf of the business in the token
	productsGroup := e.Group("/products")
	productsGroup.Use(r.authMiddleware.Authenticate)
	productsGroup.Use(r.authMiddleware.RequireRole(RoleEditor))
	{
		productsGroup.POST("", r.productHandler.CreateProduct)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct)
		productsGroup.POST("/:id/restore", r.productHandler.RestoreProduct)
		productsGroup.PATCH("/:id/description", r.productHandler.UpdateDescription)
		productsGroup.PUT("/:id/content", r.productHandler.UpdateContent)
		productsGroup.PATCH("/:id/category", r.productHandler.ChangeCategory)
		productsGroup.POST("/:id/variants", r.productHandler.AddVariant)
		productsGroup.PATCH("/:id/variants/:variantId/status", r.productHandler.ChangeVariantStatus)
		productsGroup.PATCH("/:id/variants/:variantId/price", r.productHandler.ChangeVariantPrice)
	}
}
