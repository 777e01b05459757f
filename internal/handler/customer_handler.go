package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"shopadmin/internal/service"
)

// CustomerHandler handles the derived customer views.
type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List godoc
// @Summary List customers aggregated from order history
// @Tags customers
// @Produce json
// @Success 200 {array} service.Customer
// @Failure 500 {object} errors.ErrorResponse
// @Router /customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.customerService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, customers)
}

// Orders godoc
// @Summary List one customer's orders
// @Tags customers
// @Produce json
// @Param email query string true "Customer email"
// @Success 200 {array} model.OrderSummary
// @Failure 400 {object} errors.ErrorResponse
// @Router /customers/orders [get]
func (h *CustomerHandler) Orders(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email query parameter is required")
	}

	summaries, err := h.customerService.OrdersFor(c.Request().Context(), email)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, summaries)
}
