package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"shopadmin/internal/service"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	categoryService service.CategoryService
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest represents a category create/update request.
type CategoryRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=50"`
	Color string `json:"color" validate:"max=20"`
	Image string `json:"image"`
}

// List godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} model.Category
// @Failure 500 {object} errors.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body CategoryRequest true "Category data"
// @Success 201 {object} model.Category
// @Failure 400 {object} errors.ErrorResponse
// @Router /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.categoryService.Create(c.Request().Context(), service.CategoryInput{
		Name:  req.Name,
		Color: req.Color,
		Image: req.Image,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, category)
}

// Update godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body CategoryRequest true "Category data"
// @Success 200 {object} model.Category
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category id")
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.categoryService.Update(c.Request().Context(), id, service.CategoryInput{
		Name:  req.Name,
		Color: req.Color,
		Image: req.Image,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, category)
}

// Delete godoc
// @Summary Delete a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category id")
	}

	if err := h.categoryService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "category deleted"})
}
