package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_CreateAndGet(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCategoryRepository(pool)
	ctx := context.Background()

	desc := "Sweet and savory sauces"
	created, err := repo.Create(ctx, "Condiments", &desc)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Condiments", created.Name)

	found, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	require.NotNil(t, found.Description)
	assert.Equal(t, desc, *found.Description)
}

func TestCategoryRepository_GetMissingReturnsNil(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCategoryRepository(pool)

	found, err := repo.GetByID(context.Background(), 424242)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestCategoryRepository_DeleteTwice(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCategoryRepository(pool)
	ctx := context.Background()

	id := seedCategory(t, pool, "Confections", "Desserts, candies, and sweet breads")

	deleted, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	// The second delete on the same id reports absence, not an error.
	deleted, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCategoryRepository_Update(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCategoryRepository(pool)
	ctx := context.Background()

	id := seedCategory(t, pool, "Seafod", "typo")

	newDesc := "Seaweed and fish"
	found, err := repo.Update(ctx, id, "Seafood", &newDesc)
	require.NoError(t, err)
	assert.True(t, found)

	updated, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Seafood", updated.Name)
	require.NotNil(t, updated.Description)
	assert.Equal(t, newDesc, *updated.Description)

	found, err = repo.Update(ctx, 424242, "Nope", nil)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCategoryRepository_List(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCategoryRepository(pool)
	ctx := context.Background()

	seedCategory(t, pool, "Beverages", "Soft drinks, coffees, teas, beers, and ales")
	seedCategory(t, pool, "Produce", "Dried fruit and bean curd")

	categories, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 2)

	names := []string{categories[0].Name, categories[1].Name}
	assert.ElementsMatch(t, []string{"Beverages", "Produce"}, names)
}
