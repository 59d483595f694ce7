// Package middleware contains the HTTP middlewares applied by the router:
// request correlation, request-scoped logging, and the global error handler.
package middleware

import (
	"github.com/northwind/dataservice/internal/server"
)

// Middlewares is a container for all middleware instances.
type Middlewares struct {
	Global          *GlobalMiddlewares
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs the middleware container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
