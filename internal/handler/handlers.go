package handler

import (
	"github.com/northwind/dataservice/internal/server"
	"github.com/northwind/dataservice/internal/service"
)

// Handlers is a container for all handler instances.
type Handlers struct {
	Health     *HealthHandler
	Categories *CategoryHandler
	Products   *ProductHandler
	Orders     *OrderHandler
	Gateway    *GatewayHandler
}

// NewHandlers constructs the handler container on top of the services.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(s),
		Categories: NewCategoryHandler(s, services.Catalog),
		Products:   NewProductHandler(s, services.Catalog, services.Orders),
		Orders:     NewOrderHandler(s, services.Orders),
		Gateway:    NewGatewayHandler(s, services.Catalog, services.Orders),
	}
}
