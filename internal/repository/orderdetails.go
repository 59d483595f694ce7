package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/northwind/dataservice/internal/dto"
	"github.com/northwind/dataservice/internal/model"
)

// OrderDetailRepository provides access to order detail storage.
type OrderDetailRepository struct {
	pool *pgxpool.Pool
}

// NewOrderDetailRepository creates a new order detail repository.
func NewOrderDetailRepository(pool *pgxpool.Pool) *OrderDetailRepository {
	return &OrderDetailRepository{pool: pool}
}

// ListByOrder returns the detail lines of an order with product and category
// names. No ordering is imposed beyond the store default.
func (r *OrderDetailRepository) ListByOrder(ctx context.Context, orderID int) ([]dto.OrderDetailLine, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT od.product_id, p.product_name, od.unit_price, od.quantity,
		       od.discount, c.category_name
		FROM order_details od
		JOIN products p ON p.product_id = od.product_id
		LEFT JOIN categories c ON c.category_id = p.category_id
		WHERE od.order_id = $1
	`, orderID)
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

	return lines, nil
}

// ListByProduct returns every sale of a product, ordered ascending by the
// parent order's date with the order id as tiebreaker. The ordering is part
// of the contract: callers inspect first and last elements.
func (r *OrderDetailRepository) ListByProduct(ctx context.Context, productID int) ([]dto.ProductSale, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT o.order_date, od.unit_price, od.quantity
		FROM order_details od
		JOIN orders o ON o.order_id = od.order_id
		WHERE od.product_id = $1
		ORDER BY o.order_date, od.order_id
	`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order details by product: %w", err)
	}
	defer rows.Close()

	sales := []dto.ProductSale{}
	for rows.Next() {
		var s dto.ProductSale
		if err := rows.Scan(&s.OrderDate, &s.UnitPrice, &s.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan product sale: %w", err)
		}
		sales = append(sales, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read product sales: %w", err)
	}

	return sales, nil
}
