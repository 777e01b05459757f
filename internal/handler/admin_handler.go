package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"shopadmin/internal/model"
	"shopadmin/internal/service"
)

// AdminHandler handles admin account management endpoints.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// CreateAdminRequest represents an admin creation request.
type CreateAdminRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=super_admin sub_admin viewer"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// UpdateAdminRequest represents an admin update request. Empty fields are
// left unchanged.
type UpdateAdminRequest struct {
	Name     string `json:"name" validate:"omitempty,min=2"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=super_admin sub_admin viewer"`
	Status   string `json:"status" validate:"omitempty,oneof=active inactive"`
}

// List godoc
// @Summary List admins with pagination
// @Tags admins
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} service.AdminList
// @Failure 500 {object} errors.ErrorResponse
// @Router /admins [get]
func (h *AdminHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	list, err := h.adminService.List(c.Request().Context(), page, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// Create godoc
// @Summary Create a new admin
// @Tags admins
// @Accept json
// @Produce json
// @Param request body CreateAdminRequest true "Admin data"
// @Success 201 {object} model.AdminInfo
// @Failure 400 {object} errors.ErrorResponse
// @Router /admins [post]
func (h *AdminHandler) Create(c echo.Context) error {
	var req CreateAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	info, err := h.adminService.Create(c.Request().Context(), service.AdminInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.Role(req.Role),
		Status:   req.Status,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, info)
}

// Get godoc
// @Summary Get one admin
// @Tags admins
// @Produce json
// @Param id path string true "Admin ID"
// @Success 200 {object} model.AdminInfo
// @Failure 404 {object} errors.ErrorResponse
// @Router /admins/{id} [get]
func (h *AdminHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid admin id")
	}

	info, err := h.adminService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, info)
}

// Update godoc
// @Summary Update an admin
// @Tags admins
// @Accept json
// @Produce json
// @Param id path string true "Admin ID"
// @Param request body UpdateAdminRequest true "Fields to change"
// @Success 200 {object} model.AdminInfo
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /admins/{id} [put]
func (h *AdminHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid admin id")
	}

	var req UpdateAdminRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	info, err := h.adminService.Update(c.Request().Context(), id, service.AdminInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.Role(req.Role),
		Status:   req.Status,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, info)
}

// Delete godoc
// @Summary Delete an admin
// @Tags admins
// @Produce json
// @Param id path string true "Admin ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /admins/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid admin id")
	}

	if err := h.adminService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "admin deleted"})
}
