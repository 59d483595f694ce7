package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepository_GetByID(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewProductRepository(pool)
	ctx := context.Background()

	categoryID := seedCategory(t, pool, "Beverages", "Soft drinks, coffees, teas, beers, and ales")
	productID := seedProduct(t, pool, "Chai", &categoryID, 18)

	product, err := repo.GetByID(ctx, productID)
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, "Chai", product.Name)
	require.NotNil(t, product.Category)
	assert.Equal(t, categoryID, product.Category.ID)
	assert.Equal(t, "Beverages", product.Category.Name)
}

func TestProductRepository_GetByIDWithoutCategory(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewProductRepository(pool)

	productID := seedProduct(t, pool, "Mystery Item", nil, 10)

	product, err := repo.GetByID(context.Background(), productID)
	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Nil(t, product.Category)
}

func TestProductRepository_GetMissingReturnsNil(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewProductRepository(pool)

	product, err := repo.GetByID(context.Background(), 424242)
	require.NoError(t, err)
	assert.Nil(t, product)
}

func TestProductRepository_ListByCategoryOrdering(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewProductRepository(pool)
	ctx := context.Background()

	categoryID := seedCategory(t, pool, "Beverages", "Soft drinks, coffees, teas, beers, and ales")
	otherID := seedCategory(t, pool, "Seafood", "Seaweed and fish")

	// Seed out of name order so only the id ordering can explain the result.
	lakkaID := seedProduct(t, pool, "Lakkalikööri", &categoryID, 18)
	chaiID := seedProduct(t, pool, "Chai", &categoryID, 18)
	seedProduct(t, pool, "Ikura", &otherID, 31)

	products, err := repo.ListByCategory(ctx, categoryID)
	require.NoError(t, err)
	require.Len(t, products, 2)

	// Ascending by product id: the earlier insert comes first.
	assert.Equal(t, lakkaID, products[0].ID)
	assert.Equal(t, chaiID, products[1].ID)
	require.NotNil(t, products[0].CategoryName)
	assert.Equal(t, "Beverages", *products[0].CategoryName)

	// Stable across repeated calls.
	again, err := repo.ListByCategory(ctx, categoryID)
	require.NoError(t, err)
	assert.Equal(t, products, again)
}

func TestProductRepository_SearchByNameCaseInsensitive(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewProductRepository(pool)
	ctx := context.Background()

	categoryID := seedCategory(t, pool, "Confections", "Desserts, candies, and sweet breads")
	seedProduct(t, pool, "Chocolade", &categoryID, 12.75)
	seedProduct(t, pool, "Schoggi Schokolade", &categoryID, 43.9)
	seedProduct(t, pool, "Chai", &categoryID, 18)

	products, err := repo.SearchByName(ctx, "%choc%")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Chocolade", products[0].ProductName)

	products, err = repo.SearchByName(ctx, "%chO%")
	require.NoError(t, err)
	assert.Len(t, products, 2)
}
