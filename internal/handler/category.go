package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/northwind/dataservice/internal/errs"
	"github.com/northwind/dataservice/internal/server"
	"github.com/northwind/dataservice/internal/service"
	"github.com/northwind/dataservice/internal/validation"
)

// CategoryHandler exposes the category endpoints.
type CategoryHandler struct {
	Handler
	catalog *service.CatalogService
}

// NewCategoryHandler constructs a CategoryHandler.
func NewCategoryHandler(s *server.Server, catalog *service.CatalogService) *CategoryHandler {
	return &CategoryHandler{
		Handler: NewHandler(s),
		catalog: catalog,
	}
}

// CategoryRequest is the payload for creating or updating a category.
type CategoryRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

// Validate implements validation.Validatable.
func (r *CategoryRequest) Validate() error {
	return validation.Validator.Struct(r)
}

// List returns every category.
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.catalog.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// Get returns one category, or 404 when it does not exist.
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}

	category, err := h.catalog.GetCategory(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if category == nil {
		return errs.NewNotFoundError("Category not found", true, nil)
	}

	return c.JSON(http.StatusOK, category)
}

// Create persists a new category and returns its projection with the
// store-generated id.
func (h *CategoryHandler) Create(c echo.Context) error {
	req := new(CategoryRequest)
	if err := validation.BindAndValidate(c, req); err != nil {
		return err
	}

	category, err := h.catalog.CreateCategory(c.Request().Context(), req.Name, req.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, category)
}

// Update overwrites a category, or 404 when it does not exist.
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}

	req := new(CategoryRequest)
	if err := validation.BindAndValidate(c, req); err != nil {
		return err
	}

	found, err := h.catalog.UpdateCategory(c.Request().Context(), id, req.Name, req.Description)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewNotFoundError("Category not found", true, nil)
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete removes a category, or 404 when it does not exist.
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := intParam(c, "id")
	if err != nil {
		return err
	}

	found, err := h.catalog.DeleteCategory(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !found {
		return errs.NewNotFoundError("Category not found", true, nil)
	}

	return c.NoContent(http.StatusNoContent)
}
