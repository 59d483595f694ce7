package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northwind/dataservice/internal/dto"
	"github.com/northwind/dataservice/internal/errs"
)

type fakeCategoryStore struct {
	CategoryStore

	createCalled bool
	created      dto.Category
	byID         map[int]dto.Category
}

func (f *fakeCategoryStore) GetByID(_ context.Context, id int) (*dto.Category, error) {
	if c, ok := f.byID[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (f *fakeCategoryStore) Create(_ context.Context, name string, description *string) (*dto.Category, error) {
	f.createCalled = true
	f.created = dto.Category{ID: 9, Name: name, Description: description}
	return &f.created, nil
}

type fakeProductStore struct {
	ProductStore

	searchCalled  bool
	searchPattern string
	searchResult  []dto.ProductName
}

func (f *fakeProductStore) SearchByName(_ context.Context, pattern string) ([]dto.ProductName, error) {
	f.searchCalled = true
	f.searchPattern = pattern
	return f.searchResult, nil
}

func TestCreateCategoryRejectsBlankName(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace only", input: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeCategoryStore{}
			svc := NewCatalogService(store, &fakeProductStore{})

			created, err := svc.CreateCategory(context.Background(), tt.input, nil)

			require.Error(t, err)
			var httpErr *errs.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, 400, httpErr.Status)

			assert.Nil(t, created)
			// The store must not be touched: no partial write can occur.
			assert.False(t, store.createCalled)
		})
	}
}

func TestCreateCategoryPersists(t *testing.T) {
	store := &fakeCategoryStore{}
	svc := NewCatalogService(store, &fakeProductStore{})

	desc := "Soft drinks, coffees, teas"
	created, err := svc.CreateCategory(context.Background(), "Beverages", &desc)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, 9, created.ID)
	assert.Equal(t, "Beverages", created.Name)
}

func TestGetCategoryAbsenceIsNotAnError(t *testing.T) {
	store := &fakeCategoryStore{byID: map[int]dto.Category{1: {ID: 1, Name: "Beverages"}}}
	svc := NewCatalogService(store, &fakeProductStore{})

	category, err := svc.GetCategory(context.Background(), 42)

	require.NoError(t, err)
	assert.Nil(t, category)
}

func TestSearchProductsByName(t *testing.T) {
	t.Run("blank input short-circuits without querying", func(t *testing.T) {
		for _, input := range []string{"", "  ", "\t"} {
			store := &fakeProductStore{}
			svc := NewCatalogService(&fakeCategoryStore{}, store)

			result, err := svc.SearchProductsByName(context.Background(), input)

			require.NoError(t, err)
			assert.Empty(t, result)
			assert.False(t, store.searchCalled)
		}
	})

	t.Run("input is trimmed and wrapped into a contains pattern", func(t *testing.T) {
		store := &fakeProductStore{searchResult: []dto.ProductName{{ProductName: "Chocolade"}}}
		svc := NewCatalogService(&fakeCategoryStore{}, store)

		result, err := svc.SearchProductsByName(context.Background(), "  choc ")

		require.NoError(t, err)
		assert.Equal(t, "%choc%", store.searchPattern)
		require.Len(t, result, 1)
		assert.Equal(t, "Chocolade", result[0].ProductName)
	})
}
