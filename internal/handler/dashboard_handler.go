package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"shopadmin/internal/service"
)

// DashboardHandler handles dashboard aggregation endpoints.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats godoc
// @Summary Dashboard headline stats
// @Tags dashboard
// @Produce json
// @Success 200 {object} service.DashboardStats
// @Failure 500 {object} errors.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.dashboardService.Stats(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// Chart godoc
// @Summary Monthly revenue chart series
// @Tags dashboard
// @Produce json
// @Param year query int false "Calendar year, defaults to current"
// @Success 200 {array} service.ChartPoint
// @Failure 500 {object} errors.ErrorResponse
// @Router /dashboard/chart [get]
func (h *DashboardHandler) Chart(c echo.Context) error {
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil || year < 2000 {
		year = time.Now().Year()
	}

	points, err := h.dashboardService.Chart(c.Request().Context(), year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, points)
}
