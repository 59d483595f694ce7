// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/northwind/dataservice/internal/handler"
	"github.com/northwind/dataservice/internal/middleware"
)

// New assembles the echo application: global middlewares, the central error
// handler, and every route group.
func New(mws *middleware.Middlewares, h *handler.Handlers) *echo.Echo {
	r := echo.New()
	r.HideBanner = true
	r.HidePort = true

	r.HTTPErrorHandler = mws.Global.GlobalErrorHandler

	r.Use(middleware.RequestID())
	r.Use(mws.ContextEnhancer.EnhanceContext())
	r.Use(mws.Global.RequestLogger())
	r.Use(mws.Global.Recover())
	r.Use(mws.Global.Secure())
	r.Use(mws.Global.CORS())

	registerSystemRoutes(r, h)
	registerAPIRoutes(r, h)

	return r
}

func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	api := r.Group("/api")

	categories := api.Group("/categories")
	categories.GET("", h.Categories.List)
	categories.GET("/:id", h.Categories.Get)
	categories.POST("", h.Categories.Create)
	categories.PUT("/:id", h.Categories.Update)
	categories.DELETE("/:id", h.Categories.Delete)

	products := api.Group("/products")
	products.GET("", h.Products.List)
	products.GET("/:id", h.Products.Get)
	products.GET("/:id/sales", h.Products.Sales)

	orders := api.Group("/orders")
	orders.GET("", h.Orders.List)
	orders.GET("/:id", h.Orders.Get)
	orders.GET("/:id/tree", h.Orders.Tree)
	orders.GET("/:id/details", h.Orders.Details)
}
