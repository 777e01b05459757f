package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "shopadmin/internal/errors"
	"shopadmin/internal/middleware"
	"shopadmin/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService   service.AuthService
	dsnConfigured bool
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, dsnConfigured bool) *AuthHandler {
	return &AuthHandler{authService: authService, dsnConfigured: dsnConfigured}
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login response.
type LoginResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    interface{} `json:"user"`
	Token   string      `json:"token"`
}

// Login godoc
// @Summary Authenticate an admin
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		Message: "Login successful",
		User:    result.User,
		Token:   result.Token,
	})
}

// Verify godoc
// @Summary Check whether the session cookie holds a valid token
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 401 {object} errors.ErrorResponse
// @Router /auth/verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	token := ""
	if cookie, err := c.Cookie(middleware.AuthCookieName); err == nil {
		token = cookie.Value
	}

	// Only validity crosses the wire; the decoded claims stay server-side.
	if _, err := h.authService.VerifyToken(token); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"valid": true})
}

// CheckConfig godoc
// @Summary Report whether the datastore is configured
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /auth/check-config [get]
func (h *AuthHandler) CheckConfig(c echo.Context) error {
	message := "Database DSN is configured"
	if !h.dsnConfigured {
		message = "Database DSN is not configured"
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"isConfigured": h.dsnConfigured,
		"message":      message,
	})
}

// respondError maps domain errors onto the wire error shape.
func respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return c.JSON(httpErr.StatusCode, httpErr.ToErrorResponse())
}
