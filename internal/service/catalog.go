package service

import (
	"context"
	"strings"

	"github.com/northwind/dataservice/internal/dto"
	"github.com/northwind/dataservice/internal/errs"
)

// CategoryStore is the category persistence surface the catalog service
// depends on.
type CategoryStore interface {
	List(ctx context.Context) ([]dto.Category, error)
	GetByID(ctx context.Context, id int) (*dto.Category, error)
	Create(ctx context.Context, name string, description *string) (*dto.Category, error)
	Update(ctx context.Context, id int, name string, description *string) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

// ProductStore is the product persistence surface the catalog service
// depends on.
type ProductStore interface {
	GetByID(ctx context.Context, id int) (*dto.Product, error)
	ListByCategory(ctx context.Context, categoryID int) ([]dto.ProductInCategory, error)
	SearchByName(ctx context.Context, pattern string) ([]dto.ProductName, error)
}

// CatalogService implements the category and product operations.
type CatalogService struct {
	categories CategoryStore
	products   ProductStore
}

// NewCatalogService constructs a CatalogService over the given stores.
func NewCatalogService(categories CategoryStore, products ProductStore) *CatalogService {
	return &CatalogService{
		categories: categories,
		products:   products,
	}
}

// ListCategories returns every category.
func (s *CatalogService) ListCategories(ctx context.Context) ([]dto.Category, error) {
	return s.categories.List(ctx)
}

// GetCategory returns the category, or nil when it does not exist.
// Absence is not an error.
func (s *CatalogService) GetCategory(ctx context.Context, id int) (*dto.Category, error) {
	return s.categories.GetByID(ctx, id)
}

// CreateCategory persists a new category. A blank name is rejected before
// any row is written.
func (s *CatalogService) CreateCategory(ctx context.Context, name string, description *string) (*dto.Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.NewBadRequestError("Name is required", true, nil, []errs.FieldError{
			{Field: "name", Error: "is required"},
		})
	}

	return s.categories.Create(ctx, name, description)
}

// UpdateCategory overwrites name and description of the category and reports
// whether it existed. When it did not, no write occurs.
func (s *CatalogService) UpdateCategory(ctx context.Context, id int, name string, description *string) (bool, error) {
	return s.categories.Update(ctx, id, name, description)
}

// DeleteCategory removes the category and reports whether it existed.
func (s *CatalogService) DeleteCategory(ctx context.Context, id int) (bool, error) {
	return s.categories.Delete(ctx, id)
}

// GetProduct returns the product with its category nested, or nil when it
// does not exist.
func (s *CatalogService) GetProduct(ctx context.Context, id int) (*dto.Product, error) {
	return s.products.GetByID(ctx, id)
}

// ListProductsByCategory returns the category's products ordered ascending
// by product id.
func (s *CatalogService) ListProductsByCategory(ctx context.Context, categoryID int) ([]dto.ProductInCategory, error) {
	return s.products.ListByCategory(ctx, categoryID)
}

// SearchProductsByName returns products whose name contains the substring,
// case-insensitively, ordered ascending by product id. A blank substring
// short-circuits to an empty result without querying the store.
func (s *CatalogService) SearchProductsByName(ctx context.Context, substring string) ([]dto.ProductName, error) {
	trimmed := strings.TrimSpace(substring)
	if trimmed == "" {
		return []dto.ProductName{}, nil
	}

	return s.products.SearchByName(ctx, "%"+trimmed+"%")
}
