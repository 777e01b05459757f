package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"shopadmin/internal/service"
)

// ProductHandler handles product catalog endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// ProductRequest represents a product create/update request.
type ProductRequest struct {
	Name          string          `json:"name" validate:"required,min=2,max=100"`
	Description   string          `json:"description" validate:"max=1000"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	Categories    []string        `json:"categories"`
	Stock         int             `json:"stock" validate:"gte=0"`
	FrontImage    string          `json:"frontImage"`
	BackImage     string          `json:"backImage"`
	GalleryImages []string        `json:"galleryImages"`
}

func (r *ProductRequest) toInput() service.ProductInput {
	return service.ProductInput{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		Categories:    r.Categories,
		Stock:         r.Stock,
		FrontImage:    r.FrontImage,
		BackImage:     r.BackImage,
		GalleryImages: r.GalleryImages,
	}
}

// List godoc
// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} model.Product
// @Failure 500 {object} errors.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

// Create godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Param request body ProductRequest true "Product data"
// @Success 201 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, product)
}

// Get godoc
// @Summary Get one product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} model.Product
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	product, err := h.productService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

// Update godoc
// @Summary Update a product
// @Tags products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body ProductRequest true "Product data"
// @Success 200 {object} model.Product
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.productService.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

// Delete godoc
// @Summary Delete a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	if err := h.productService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "product deleted"})
}
