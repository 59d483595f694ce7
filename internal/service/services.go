package service

import (
	"github.com/northwind/dataservice/internal/repository"
	"github.com/northwind/dataservice/internal/server"
)

// Services is a container for all service instances.
type Services struct {
	Catalog *CatalogService
	Orders  *OrderService
}

// NewServices constructs the service container on top of the repositories.
func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Catalog: NewCatalogService(repos.Categories, repos.Products),
		Orders:  NewOrderService(repos.Orders, repos.OrderDetails),
	}, nil
}
