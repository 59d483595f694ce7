package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/northwind/dataservice/internal/errs"
	"github.com/northwind/dataservice/internal/protocol"
	"github.com/northwind/dataservice/internal/server"
	"github.com/northwind/dataservice/internal/service"
)

// GatewayHandler serves the request-envelope endpoint: a structured
// {method, path, date, body} request is validated, its path is parsed, and
// the operation is dispatched to the services. The outcome always comes back
// as a protocol.Response with HTTP status 200; only transport-level problems
// surface as HTTP errors.
type GatewayHandler struct {
	Handler
	catalog *service.CatalogService
	orders  *service.OrderService
}

// NewGatewayHandler constructs a GatewayHandler.
func NewGatewayHandler(s *server.Server, catalog *service.CatalogService, orders *service.OrderService) *GatewayHandler {
	return &GatewayHandler{
		Handler: NewHandler(s),
		catalog: catalog,
		orders:  orders,
	}
}

// Handle processes one request envelope.
func (h *GatewayHandler) Handle(c echo.Context) error {
	var req protocol.Request
	if err := c.Bind(&req); err != nil {
		return errs.NewBadRequestError("Malformed request envelope", false, nil, nil)
	}

	if resp := protocol.Validate(req); resp.Status != protocol.StatusOK {
		return c.JSON(http.StatusOK, resp)
	}

	method := strings.ToLower(req.Method)

	// echo bounces the body back without touching any resource.
	if method == "echo" {
		return c.JSON(http.StatusOK, protocol.Response{
			Status: protocol.StatusOK,
			Body:   req.Body,
		})
	}

	parsed, ok := protocol.ParseURL(req.Path)
	if !ok {
		return c.JSON(http.StatusOK, protocol.Response{Status: protocol.StatusBadRequest})
	}

	resp, err := h.dispatch(c.Request().Context(), method, parsed, req.Body)
	if err != nil {
		// Client-input rejections become envelope statuses; anything else
		// (store failures) propagates to the global error handler.
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) && httpErr.Status < http.StatusInternalServerError {
			return c.JSON(http.StatusOK, protocol.Response{Status: protocol.StatusBadRequest})
		}
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *GatewayHandler) dispatch(ctx context.Context, method string, parsed protocol.ParsedURL, body string) (protocol.Response, error) {
	switch parsed.Path {
	case "/api/categories":
		return h.dispatchCategories(ctx, method, parsed, body)
	case "/api/products":
		return h.dispatchProducts(ctx, method, parsed)
	case "/api/orders":
		return h.dispatchOrders(ctx, method, parsed)
	default:
		return protocol.Response{Status: protocol.StatusNotFound}, nil
	}
}

// categoryBody is the JSON body shape for category create/update.
type categoryBody struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (h *GatewayHandler) dispatchCategories(ctx context.Context, method string, parsed protocol.ParsedURL, body string) (protocol.Response, error) {
	switch method {
	case "read":
		if !parsed.HasID {
			categories, err := h.catalog.ListCategories(ctx)
			if err != nil {
				return protocol.Response{}, err
			}
			return protocol.Response{Status: protocol.StatusOK, Body: categories}, nil
		}

		id, ok := parseID(parsed.ID)
		if !ok {
			return protocol.Response{Status: protocol.StatusBadRequest}, nil
		}
		category, err := h.catalog.GetCategory(ctx, id)
		if err != nil {
			return protocol.Response{}, err
		}
		if category == nil {
			return protocol.Response{Status: protocol.StatusNotFound}, nil
		}
		return protocol.Response{Status: protocol.StatusOK, Body: category}, nil

	case "create":
		if parsed.HasID {
			return protocol.Response{Status: protocol.StatusBadRequest}, nil
		}
		var payload categoryBody
		if err := json.Unmarshal([]byte(body), &payload); err != nil {
			return protocol.Response{Status: protocol.StatusBadRequest}, nil
		}
		category, err := h.catalog.CreateCategory(ctx, payload.Name, payload.Description)
		if err != nil {
			return protocol.Response{}, err
		}
		return protocol.Response{Status: protocol.StatusOK, Body: category}, nil

	case "update":
		id, ok := parseID(parsed.ID)
		if !parsed.HasID || !ok {
			return protocol.Response{Status: protocol.StatusBadRequest}, nil
		}
		var payload categoryBody
		if err := json.Unmarshal([]byte(body), &payload); err != nil {
			return protocol.Response{Status: protocol.StatusBadRequest}, nil
		}
		found, err := h.catalog.UpdateCategory(ctx, id, payload.Name, payload.Description)
		if err != nil {
			return protocol.Response{}, err
		}
		if !found {
			return protocol.Response{Status: protocol.StatusNotFound}, nil
		}
		return protocol.Response{Status: protocol.StatusOK}, nil

	case "delete":
		id, ok := parseID(parsed.ID)
		if !parsed.HasID || !ok {
			return protocol.Response{Status: protocol.StatusBadRequest}, nil
		}
		found, err := h.catalog.DeleteCategory(ctx, id)
		if err != nil {
			return protocol.Response{}, err
		}
		if !found {
			return protocol.Response{Status: protocol.StatusNotFound}, nil
		}
		return protocol.Response{Status: protocol.StatusOK}, nil

	default:
		return protocol.Response{Status: protocol.StatusBadRequest}, nil
	}
}

func (h *GatewayHandler) dispatchProducts(ctx context.Context, method string, parsed protocol.ParsedURL) (protocol.Response, error) {
	if method != "read" || !parsed.HasID {
		return protocol.Response{Status: protocol.StatusBadRequest}, nil
	}

	id, ok := parseID(parsed.ID)
	if !ok {
		return protocol.Response{Status: protocol.StatusBadRequest}, nil
	}

	product, err := h.catalog.GetProduct(ctx, id)
	if err != nil {
		return protocol.Response{}, err
	}
	if product == nil {
		return protocol.Response{Status: protocol.StatusNotFound}, nil
	}

	return protocol.Response{Status: protocol.StatusOK, Body: product}, nil
}

func (h *GatewayHandler) dispatchOrders(ctx context.Context, method string, parsed protocol.ParsedURL) (protocol.Response, error) {
	if method != "read" {
		return protocol.Response{Status: protocol.StatusBadRequest}, nil
	}

	if !parsed.HasID {
		orders, err := h.orders.ListOrders(ctx)
		if err != nil {
			return protocol.Response{}, err
		}
		return protocol.Response{Status: protocol.StatusOK, Body: orders}, nil
	}

	id, ok := parseID(parsed.ID)
	if !ok {
		return protocol.Response{Status: protocol.StatusBadRequest}, nil
	}

	order, err := h.orders.GetOrderWithDetails(ctx, id)
	if err != nil {
		return protocol.Response{}, err
	}
	if order == nil {
		return protocol.Response{Status: protocol.StatusNotFound}, nil
	}

	return protocol.Response{Status: protocol.StatusOK, Body: order}, nil
}

func parseID(raw string) (int, bool) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}
