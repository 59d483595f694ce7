package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/northwind/dataservice/internal/dto"
	"github.com/northwind/dataservice/internal/model"
)

// OrderRepository provides access to order storage.
type OrderRepository struct {
	pool *pgxpool.Pool
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// GetTree returns the order with its detail lines resolved down to each
// product's category, or nil when no such order exists. Detail lines are
// ordered ascending by product id so the first line is deterministic.
func (r *OrderRepository) GetTree(ctx context.Context, id int) (*dto.OrderTree, error) {
	var order dto.OrderTree
	err := r.pool.QueryRow(ctx, `
		SELECT order_id
		FROM orders
		WHERE order_id = $1
	`, id).Scan(&order.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT p.product_name,
		       c.category_id, c.category_name, c.description
		FROM order_details od
		JOIN products p ON p.product_id = od.product_id
		LEFT JOIN categories c ON c.category_id = p.category_id
		WHERE od.order_id = $1
		ORDER BY od.product_id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list order details: %w", err)
	}
	defer rows.Close()

	order.Details = []dto.OrderTreeDetail{}
	for rows.Next() {
		var (
			detail      dto.OrderTreeDetail
			categoryID  *int
			name        *string
			description *string
		)
		err := rows.Scan(&detail.Product.Name, &categoryID, &name, &description)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order detail: %w", err)
		}
		if categoryID != nil && name != nil {
			detail.Product.Category = dto.Category{
				ID:          *categoryID,
				Name:        *name,
				Description: description,
			}
		}
		order.Details = append(order.Details, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read order details: %w", err)
	}

	return &order, nil
}

// GetWithDetails returns the order summary plus its detail lines, or nil when
// no such order exists. Each line carries its own product's category name;
// the service layer decides what ends up in the projection.
func (r *OrderRepository) GetWithDetails(ctx context.Context, id int) (*dto.OrderWithDetails, error) {
	var o model.Order
	err := r.pool.QueryRow(ctx, `
		SELECT order_id, order_date, ship_name, ship_city
		FROM orders
		WHERE order_id = $1
	`, id).Scan(&o.ID, &o.OrderDate, &o.ShipName, &o.ShipCity)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT od.product_id, p.product_name, od.unit_price, od.quantity,
		       od.discount, c.category_name
		FROM order_details od
		JOIN products p ON p.product_id = od.product_id
		LEFT JOIN categories c ON c.category_id = p.category_id
		WHERE od.order_id = $1
		ORDER BY od.product_id
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list order details: %w", err)
	}
	defer rows.Close()

	lines := []dto.OrderDetailLine{}
	for rows.Next() {
		var (
			d            model.OrderDetail
			productName  string
			categoryName *string
		)
		err := rows.Scan(
			&d.ProductID, &productName, &d.UnitPrice,
			&d.Quantity, &d.Discount, &categoryName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order detail: %w", err)
		}
		lines = append(lines, orderDetailLineDTO(d, productName, categoryName))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read order details: %w", err)
	}

	order := orderWithDetailsDTO(o, lines)
	return &order, nil
}

// FindByShipName returns order summaries whose ship name matches the ILIKE
// pattern. No ordering is imposed.
func (r *OrderRepository) FindByShipName(ctx context.Context, pattern string) ([]dto.OrderSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT order_id, order_date, ship_name, ship_city
		FROM orders
		WHERE ship_name ILIKE $1
	`, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to find orders: %w", err)
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

// List returns every order as a summary. No ordering is imposed.
func (r *OrderRepository) List(ctx context.Context) ([]dto.OrderSummary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT order_id, order_date, ship_name, ship_city
		FROM orders
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	return scanOrderSummaries(rows)
}

func scanOrderSummaries(rows pgx.Rows) ([]dto.OrderSummary, error) {
	orders := []dto.OrderSummary{}
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(&o.ID, &o.OrderDate, &o.ShipName, &o.ShipCity); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, orderSummaryDTO(o))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}

	return orders, nil
}
