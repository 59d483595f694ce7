// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch, persist,
// or update data, abstracting SQL logic away from the service layer.
package repository

import (
	"github.com/northwind/dataservice/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Categories   *CategoryRepository
	Products     *ProductRepository
	Orders       *OrderRepository
	OrderDetails *OrderDetailRepository
}

// NewRepositories constructs the repository container from the shared
// application dependencies.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Categories:   NewCategoryRepository(s.DB.Pool),
		Products:     NewProductRepository(s.DB.Pool),
		Orders:       NewOrderRepository(s.DB.Pool),
		OrderDetails: NewOrderDetailRepository(s.DB.Pool),
	}
}
