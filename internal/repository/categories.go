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

// CategoryRepository provides access to category storage.
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

// List returns every category. No ordering is imposed; callers must not rely
// on a specific row order.
func (r *CategoryRepository) List(ctx context.Context) ([]dto.Category, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT category_id, category_name, description
		FROM categories
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []dto.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, categoryDTO(c))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	return categories, nil
}

// GetByID returns the matching category, or nil when no such row exists.
func (r *CategoryRepository) GetByID(ctx context.Context, id int) (*dto.Category, error) {
	var c model.Category
	err := r.pool.QueryRow(ctx, `
		SELECT category_id, category_name, description
		FROM categories
		WHERE category_id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	category := categoryDTO(c)
	return &category, nil
}

// Create inserts a new category and returns its projection including the
// store-generated identifier.
func (r *CategoryRepository) Create(ctx context.Context, name string, description *string) (*dto.Category, error) {
	var c model.Category
	err := r.pool.QueryRow(ctx, `
		INSERT INTO categories (category_name, description)
		VALUES ($1, $2)
		RETURNING category_id, category_name, description
	`, name, description).Scan(&c.ID, &c.Name, &c.Description)
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	category := categoryDTO(c)
	return &category, nil
}

// Update overwrites name and description of the category. It reports whether
// a row existed; when it did not, no write occurs.
func (r *CategoryRepository) Update(ctx context.Context, id int, name string, description *string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE categories
		SET category_name = $2, description = $3
		WHERE category_id = $1
	`, id, name, description)
	if err != nil {
		return false, fmt.Errorf("failed to update category: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete removes the category and reports whether a row existed.
// Deleting a nonexistent id is not an error.
func (r *CategoryRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		DELETE FROM categories
		WHERE category_id = $1
	`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete category: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}
