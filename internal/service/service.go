// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated data from the handler, applies business rules, and
// calls the store to interact with the data.
//
// Services depend on small store interfaces rather than concrete
// repositories so tests can substitute in-memory fakes.
package service
