package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"shopadmin/internal/service"
)

// GalleryHandler handles media gallery endpoints.
type GalleryHandler struct {
	galleryService service.GalleryService
}

// NewGalleryHandler creates a new gallery handler.
func NewGalleryHandler(galleryService service.GalleryService) *GalleryHandler {
	return &GalleryHandler{galleryService: galleryService}
}

// GalleryAddRequest represents a gallery image registration request.
type GalleryAddRequest struct {
	URL      string `json:"url" validate:"required,url"`
	Name     string `json:"name"`
	PublicID string `json:"publicId"`
}

// GalleryRenameRequest represents a rename request.
type GalleryRenameRequest struct {
	Name string `json:"name" validate:"required"`
}

// List godoc
// @Summary List gallery images
// @Tags gallery
// @Produce json
// @Success 200 {array} model.GalleryImage
// @Failure 500 {object} errors.ErrorResponse
// @Router /gallery [get]
func (h *GalleryHandler) List(c echo.Context) error {
	images, err := h.galleryService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, images)
}

// Add godoc
// @Summary Register an uploaded CDN image
// @Tags gallery
// @Accept json
// @Produce json
// @Param request body GalleryAddRequest true "Image data"
// @Success 201 {object} model.GalleryImage
// @Failure 400 {object} errors.ErrorResponse
// @Router /gallery [post]
func (h *GalleryHandler) Add(c echo.Context) error {
	var req GalleryAddRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	image, err := h.galleryService.Add(c.Request().Context(), service.GalleryInput{
		URL:      req.URL,
		Name:     req.Name,
		PublicID: req.PublicID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, image)
}

// Rename godoc
// @Summary Rename a gallery image
// @Tags gallery
// @Accept json
// @Produce json
// @Param id path string true "Image ID"
// @Param request body GalleryRenameRequest true "New name"
// @Success 200 {object} model.GalleryImage
// @Failure 404 {object} errors.ErrorResponse
// @Router /gallery/{id} [put]
func (h *GalleryHandler) Rename(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image id")
	}

	var req GalleryRenameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	image, err := h.galleryService.Rename(c.Request().Context(), id, req.Name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, image)
}

// Remove godoc
// @Summary Remove a gallery image record
// @Tags gallery
// @Produce json
// @Param id path string true "Image ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /gallery/{id} [delete]
func (h *GalleryHandler) Remove(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image id")
	}

	if err := h.galleryService.Remove(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "image removed"})
}
