package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/northwind/dataservice/internal/errs"
	"github.com/northwind/dataservice/internal/server"
	"github.com/northwind/dataservice/internal/service"
)

// ProductHandler exposes the product endpoints.
type ProductHandler struct {
	Handler
	catalog *service.CatalogService
	orders  *service.OrderService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(s *server.Server, catalog *service.CatalogService, orders *service.OrderService) *ProductHandler {
	return &ProductHandler{
		Handler: NewHandler(s),
		catalog: catalog,
		orders:  orders,
	}
}

// Get returns one product with its category nested, or 404.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}

	product, err := h.catalog.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if product == nil {
		return errs.NewNotFoundError("Product not found", true, nil)
	}

	return c.JSON(http.StatusOK, product)
}

// List filters products by the category or name query parameter. Exactly one
// filter is required: a full product dump is not an exposed operation.
func (h *ProductHandler) List(c echo.Context) error {
	if categoryParam := c.QueryParam("category"); categoryParam != "" {
		categoryID, err := strconv.Atoi(categoryParam)
		if err != nil {
			return errs.NewBadRequestError("Invalid category parameter", true, nil, []errs.FieldError{
				{Field: "category", Error: "must be an integer"},
			})
		}

		products, err := h.catalog.ListProductsByCategory(c.Request().Context(), categoryID)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, products)
	}

	if name := c.QueryParam("name"); name != "" {
		products, err := h.catalog.SearchProductsByName(c.Request().Context(), name)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, products)
	}

	return errs.NewBadRequestError("Either category or name must be provided", true, nil, nil)
}

// Sales returns every sale of a product, ordered by order date then order id.
func (h *ProductHandler) Sales(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}

	sales, err := h.orders.ListOrderDetailsByProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sales)
}
