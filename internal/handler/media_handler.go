package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopadmin/internal/service"
)

// MediaHandler issues CDN request signatures so the browser can talk to the
// image host directly.
type MediaHandler struct {
	signer *service.MediaSigner
}

// NewMediaHandler creates a new media signature handler.
func NewMediaHandler(signer *service.MediaSigner) *MediaHandler {
	return &MediaHandler{signer: signer}
}

// UploadSignatureRequest represents an upload signature request.
type UploadSignatureRequest struct {
	Timestamp int64  `json:"timestamp" validate:"required"`
	Folder    string `json:"folder"`
}

// DeleteSignatureRequest represents a delete signature request.
type DeleteSignatureRequest struct {
	PublicID  string `json:"public_id" validate:"required"`
	Timestamp int64  `json:"timestamp" validate:"required"`
}

// UploadSignature godoc
// @Summary Sign a CDN upload request
// @Tags media
// @Accept json
// @Produce json
// @Param request body UploadSignatureRequest true "Upload parameters"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /media/upload-signature [post]
func (h *MediaHandler) UploadSignature(c echo.Context) error {
	var req UploadSignatureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Folder == "" {
		req.Folder = "products"
	}

	signature := h.signer.UploadSignature(req.Folder, req.Timestamp)
	return c.JSON(http.StatusOK, map[string]string{"signature": signature})
}

// DeleteSignature godoc
// @Summary Sign a CDN delete request
// @Tags media
// @Accept json
// @Produce json
// @Param request body DeleteSignatureRequest true "Delete parameters"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /media/delete-signature [post]
func (h *MediaHandler) DeleteSignature(c echo.Context) error {
	var req DeleteSignatureRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	signature := h.signer.DeleteSignature(req.PublicID, req.Timestamp)
	return c.JSON(http.StatusOK, map[string]string{"signature": signature})
}
