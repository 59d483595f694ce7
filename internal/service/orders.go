package service

import (
	"context"
	"strings"

	"github.com/northwind/dataservice/internal/dto"
)

// OrderStore is the order persistence surface the order service depends on.
type OrderStore interface {
	GetTree(ctx context.Context, id int) (*dto.OrderTree, error)
	GetWithDetails(ctx context.Context, id int) (*dto.OrderWithDetails, error)
	FindByShipName(ctx context.Context, pattern string) ([]dto.OrderSummary, error)
	List(ctx context.Context) ([]dto.OrderSummary, error)
}

// OrderDetailStore is the order detail persistence surface the order service
// depends on.
type OrderDetailStore interface {
	ListByOrder(ctx context.Context, orderID int) ([]dto.OrderDetailLine, error)
	ListByProduct(ctx context.Context, productID int) ([]dto.ProductSale, error)
}

// OrderService implements the order and order detail operations.
type OrderService struct {
	orders  OrderStore
	details OrderDetailStore
}

// NewOrderService constructs an OrderService over the given stores.
func NewOrderService(orders OrderStore, details OrderDetailStore) *OrderService {
	return &OrderService{
		orders:  orders,
		details: details,
	}
}

// GetOrder returns the order with details resolved down to each product's
// category, or nil when it does not exist.
func (s *OrderService) GetOrder(ctx context.Context, id int) (*dto.OrderTree, error) {
	return s.orders.GetTree(ctx, id)
}

// GetOrderWithDetails returns the order summary with its detail lines, or
// nil when it does not exist.
//
// Every line whose product has a category reports the category name of the
// order's FIRST detail line, not its own. Lines whose product has no
// category stay null. This mirrors the upstream projection exactly; callers
// depend on it.
func (s *OrderService) GetOrderWithDetails(ctx context.Context, id int) (*dto.OrderWithDetails, error) {
	order, err := s.orders.GetWithDetails(ctx, id)
	if err != nil || order == nil {
		return order, err
	}

	if len(order.Details) > 0 {
		first := order.Details[0].CategoryName
		for i := range order.Details {
			if order.Details[i].CategoryName != nil {
				order.Details[i].CategoryName = first
			}
		}
	}

	return order, nil
}

// FindOrdersByShipName returns order summaries whose ship name contains the
// substring, case-insensitively. A blank substring matches every order.
func (s *OrderService) FindOrdersByShipName(ctx context.Context, shipName string) ([]dto.OrderSummary, error) {
	pattern := "%" + strings.TrimSpace(shipName) + "%"
	return s.orders.FindByShipName(ctx, pattern)
}

// ListOrders returns every order as a summary.
func (s *OrderService) ListOrders(ctx context.Context) ([]dto.OrderSummary, error) {
	return s.orders.List(ctx)
}

// ListOrderDetailsByOrder returns the detail lines of an order.
func (s *OrderService) ListOrderDetailsByOrder(ctx context.Context, orderID int) ([]dto.OrderDetailLine, error) {
	return s.details.ListByOrder(ctx, orderID)
}

// ListOrderDetailsByProduct returns every sale of a product ordered
// ascending by order date, tie-broken by order id.
func (s *OrderService) ListOrderDetailsByProduct(ctx context.Context, productID int) ([]dto.ProductSale, error) {
	return s.details.ListByProduct(ctx, productID)
}
