package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/northwind/dataservice/internal/errs"
	"github.com/northwind/dataservice/internal/server"
	"github.com/northwind/dataservice/internal/service"
)

// OrderHandler exposes the order endpoints.
type OrderHandler struct {
	Handler
	orders *service.OrderService
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(s *server.Server, orders *service.OrderService) *OrderHandler {
	return &OrderHandler{
		Handler: NewHandler(s),
		orders:  orders,
	}
}

// List returns order summaries. With a ship_name query parameter the result
// is filtered by a case-insensitive substring match; a blank value matches
// every order.
func (h *OrderHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if shipName, ok := c.QueryParams()["ship_name"]; ok && len(shipName) > 0 {
		orders, err := h.orders.FindOrdersByShipName(ctx, shipName[0])
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, orders)
	}

	orders, err := h.orders.ListOrders(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get returns the order summary with its detail lines, or 404.
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orders.GetOrderWithDetails(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if order == nil {
		return errs.NewNotFoundError("Order not found", true, nil)
	}

	return c.JSON(http.StatusOK, order)
}

// Tree returns the order with details resolved down to each product's
// category, or 404.
func (h *OrderHandler) Tree(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orders.GetOrder(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if order == nil {
		return errs.NewNotFoundError("Order not found", true, nil)
	}

	return c.JSON(http.StatusOK, order)
}

// Details returns the detail lines of an order.
func (h *OrderHandler) Details(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}

	details, err := h.orders.ListOrderDetailsByOrder(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, details)
}
