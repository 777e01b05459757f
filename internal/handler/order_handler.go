package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"shopadmin/internal/model"
	"shopadmin/internal/service"
)

// OrderHandler handles order tracking endpoints.
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// OrderStatusRequest represents a status change request.
type OrderStatusRequest struct {
	Status    string `json:"status" validate:"required"`
	Notes     string `json:"notes"`
	UpdatedBy string `json:"updatedBy"`
}

// List godoc
// @Summary List orders as summaries
// @Tags orders
// @Produce json
// @Success 200 {array} model.OrderSummary
// @Failure 500 {object} errors.ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	summaries, err := h.orderService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, summaries)
}

// Create godoc
// @Summary Create an order
// @Tags orders
// @Accept json
// @Produce json
// @Param request body model.Order true "Order data"
// @Success 201 {object} model.Order
// @Failure 400 {object} errors.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var order model.Order
	if err := c.Bind(&order); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if order.CustomerName == "" || order.CustomerEmail == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "customer name and email are required")
	}

	created, err := h.orderService.Create(c.Request().Context(), &order)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Get godoc
// @Summary Get one order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} model.Order
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	order, err := h.orderService.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

// Update godoc
// @Summary Replace an order
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body model.Order true "Order data"
// @Success 200 {object} model.Order
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var order model.Order
	if err := c.Bind(&order); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.orderService.Update(c.Request().Context(), id, &order)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// UpdateStatus godoc
// @Summary Change an order's status, appending a timeline event
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body OrderStatusRequest true "New status"
// @Success 200 {object} model.Order
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	var req OrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.orderService.UpdateStatus(c.Request().Context(), id, req.Status, req.Notes, req.UpdatedBy)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

// Delete godoc
// @Summary Delete an order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid order id")
	}

	if err := h.orderService.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "order deleted"})
}
