package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/northwind/dataservice/internal/errs"
	"github.com/northwind/dataservice/internal/server"
)

// Handler is the base handler type that holds shared application
// dependencies. Concrete handlers embed it to reach the server container.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// intParam reads a path parameter as an integer, returning a 400 HTTPError
// when it is not one.
func intParam(c echo.Context, name string) (int, error) {
	value, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, errs.NewBadRequestError("Invalid "+name+" parameter", true, nil, []errs.FieldError{
			{Field: name, Error: "must be an integer"},
		})
	}
	return value, nil
}
