package router

import (
	"github.com/labstack/echo/v4"

	"github.com/northwind/dataservice/internal/handler"
)

// registerSystemRoutes registers endpoints that are not part of the business
// API: health checking and the request-envelope gateway.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	// The gateway accepts the structured request envelope and routes it
	// internally, independent of the REST routes above.
	r.POST("/request", h.Gateway.Handle)
}
