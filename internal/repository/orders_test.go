package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_GetTree(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewOrderRepository(pool)
	ctx := context.Background()

	beveragesID := seedCategory(t, pool, "Beverages", "Soft drinks, coffees, teas, beers, and ales")
	dairyID := seedCategory(t, pool, "Dairy Products", "Cheeses")

	chaiID := seedProduct(t, pool, "Chai", &beveragesID, 18)
	quesoID := seedProduct(t, pool, "Queso Cabrales", &dairyID, 21)

	orderID := seedOrder(t, pool, "Vins et alcools Chevalier", time.Date(1996, 7, 4, 0, 0, 0, 0, time.UTC))
	// Seed the higher product id first; the read must still order by
	// product id ascending.
	seedOrderDetail(t, pool, orderID, quesoID, 21, 5)
	seedOrderDetail(t, pool, orderID, chaiID, 18, 10)

	order, err := repo.GetTree(ctx, orderID)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, orderID, order.ID)
	require.Len(t, order.Details, 2)

	assert.Equal(t, "Chai", order.Details[0].Product.Name)
	assert.Equal(t, "Beverages", order.Details[0].Product.Category.Name)
	assert.Equal(t, "Queso Cabrales", order.Details[1].Product.Name)
	assert.Equal(t, "Dairy Products", order.Details[1].Product.Category.Name)
}

func TestOrderRepository_GetTreeMissingReturnsNil(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewOrderRepository(pool)

	order, err := repo.GetTree(context.Background(), 424242)
	require.NoError(t, err)
	assert.Nil(t, order)
}

func TestOrderRepository_GetWithDetails(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewOrderRepository(pool)
	ctx := context.Background()

	dairyID := seedCategory(t, pool, "Dairy Products", "Cheeses")
	quesoID := seedProduct(t, pool, "Queso Cabrales", &dairyID, 21)

	orderDate := time.Date(1996, 7, 4, 0, 0, 0, 0, time.UTC)
	orderID := seedOrder(t, pool, "Vins et alcools Chevalier", orderDate)
	seedOrderDetail(t, pool, orderID, quesoID, 14, 12)

	order, err := repo.GetWithDetails(ctx, orderID)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, "Vins et alcools Chevalier", order.ShipName)
	assert.Equal(t, "Reims", order.ShipCity)
	require.NotNil(t, order.OrderDate)
	assert.True(t, orderDate.Equal(*order.OrderDate))

	require.Len(t, order.Details, 1)
	line := order.Details[0]
	assert.Equal(t, quesoID, line.ProductID)
	assert.Equal(t, "Queso Cabrales", line.ProductName)
	assert.Equal(t, 12, line.Quantity)
	require.NotNil(t, line.CategoryName)
	assert.Equal(t, "Dairy Products", *line.CategoryName)
}

func TestOrderRepository_FindByShipName(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewOrderRepository(pool)
	ctx := context.Background()

	when := time.Date(1996, 7, 4, 0, 0, 0, 0, time.UTC)
	seedOrder(t, pool, "Vins et alcools Chevalier", when)
	seedOrder(t, pool, "Toms Spezialitäten", when)

	orders, err := repo.FindByShipName(ctx, "%chev%")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "Vins et alcools Chevalier", orders[0].ShipName)

	// The match-all pattern returns every order.
	orders, err = repo.FindByShipName(ctx, "%%")
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestOrderRepository_List(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewOrderRepository(pool)

	when := time.Date(1996, 7, 5, 0, 0, 0, 0, time.UTC)
	seedOrder(t, pool, "Hanari Carnes", when)
	seedOrder(t, pool, "Suprêmes délices", when)

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
