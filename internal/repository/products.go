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

// ProductRepository provides access to product storage.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository creates a new product repository.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// GetByID returns the product with its category nested, or nil when no such
// row exists. Products without a category get a null category.
func (r *ProductRepository) GetByID(ctx context.Context, id int) (*dto.Product, error) {
	var (
		p           model.Product
		categoryID  *int
		name        *string
		description *string
	)
	err := r.pool.QueryRow(ctx, `
		SELECT p.product_id, p.product_name, p.category_id, p.unit_price,
		       p.quantity_per_unit, p.units_in_stock, p.discontinued,
		       c.category_id, c.category_name, c.description
		FROM products p
		LEFT JOIN categories c ON c.category_id = p.category_id
		WHERE p.product_id = $1
	`, id).Scan(
		&p.ID, &p.Name, &p.CategoryID, &p.UnitPrice,
		&p.QuantityPerUnit, &p.UnitsInStock, &p.Discontinued,
		&categoryID, &name, &description,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	var category *model.Category
	if categoryID != nil && name != nil {
		category = &model.Category{
			ID:          *categoryID,
			Name:        *name,
			Description: description,
		}
	}

	product := productDTO(p, category)
	return &product, nil
}

// ListByCategory returns the products of a category, ordered ascending by
// product id. The ordering is part of the contract: callers inspect first
// and last elements.
func (r *ProductRepository) ListByCategory(ctx context.Context, categoryID int) ([]dto.ProductInCategory, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.product_id, p.product_name, p.unit_price, p.quantity_per_unit,
		       p.units_in_stock, c.category_name
		FROM products p
		LEFT JOIN categories c ON c.category_id = p.category_id
		WHERE p.category_id = $1
		ORDER BY p.product_id
	`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products by category: %w", err)
	}
	defer rows.Close()

	products := []dto.ProductInCategory{}
	for rows.Next() {
		var p dto.ProductInCategory
		err := rows.Scan(
			&p.ID, &p.Name, &p.UnitPrice, &p.QuantityPerUnit,
			&p.UnitsInStock, &p.CategoryName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	return products, nil
}

// SearchByName returns products whose name matches the ILIKE pattern,
// ordered ascending by product id.
func (r *ProductRepository) SearchByName(ctx context.Context, pattern string) ([]dto.ProductName, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.product_name, c.category_name
		FROM products p
		LEFT JOIN categories c ON c.category_id = p.category_id
		WHERE p.product_name ILIKE $1
		ORDER BY p.product_id
	`, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	defer rows.Close()

	products := []dto.ProductName{}
	for rows.Next() {
		var p dto.ProductName
		if err := rows.Scan(&p.ProductName, &p.CategoryName); err != nil {
			return nil, fmt.Errorf("failed to scan product name: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read products: %w", err)
	}

	return products, nil
}
