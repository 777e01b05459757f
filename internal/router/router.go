package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"shopadmin/internal/config"
	"shopadmin/internal/handler"
	"shopadmin/internal/middleware"
)

// Register wires routes and middleware. Page navigations pass through the
// cookie gate and get redirects; the JSON API carries its own token
// middleware and answers 401s.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	gate *middleware.Gate,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	productHandler *handler.ProductHandler,
	categoryHandler *handler.CategoryHandler,
	orderHandler *handler.OrderHandler,
	galleryHandler *handler.GalleryHandler,
	customerHandler *handler.CustomerHandler,
	dashboardHandler *handler.DashboardHandler,
	mediaHandler *handler.MediaHandler,
	pageHandler *handler.PageHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(gate.Enforce)

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/verify", authHandler.Verify)
	api.GET("/auth/check-config", authHandler.CheckConfig)

	// Secured routes: token read from the session cookie.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "cookie:" + middleware.AuthCookieName,
	}))

	// Admin account routes
	secured.GET("/admins", adminHandler.List)
	secured.POST("/admins", adminHandler.Create)
	secured.GET("/admins/:id", adminHandler.Get)
	secured.PUT("/admins/:id", adminHandler.Update)
	secured.DELETE("/admins/:id", adminHandler.Delete)

	// Product routes
	secured.GET("/products", productHandler.List)
	secured.POST("/products", productHandler.Create)
	secured.GET("/products/:id", productHandler.Get)
	secured.PUT("/products/:id", productHandler.Update)
	secured.DELETE("/products/:id", productHandler.Delete)

	// Category routes
	secured.GET("/categories", categoryHandler.List)
	secured.POST("/categories", categoryHandler.Create)
	secured.PUT("/categories/:id", categoryHandler.Update)
	secured.DELETE("/categories/:id", categoryHandler.Delete)

	// Order routes
	secured.GET("/orders", orderHandler.List)
	secured.POST("/orders", orderHandler.Create)
	secured.GET("/orders/:id", orderHandler.Get)
	secured.PUT("/orders/:id", orderHandler.Update)
	secured.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	secured.DELETE("/orders/:id", orderHandler.Delete)

	// Gallery routes
	secured.GET("/gallery", galleryHandler.List)
	secured.POST("/gallery", galleryHandler.Add)
	secured.PUT("/gallery/:id", galleryHandler.Rename)
	secured.DELETE("/gallery/:id", galleryHandler.Remove)

	// Customer aggregation routes
	secured.GET("/customers", customerHandler.List)
	secured.GET("/customers/orders", customerHandler.Orders)

	// Dashboard routes
	secured.GET("/dashboard", dashboardHandler.Stats)
	secured.GET("/dashboard/chart", dashboardHandler.Chart)

	// Media signature routes
	secured.POST("/media/upload-signature", mediaHandler.UploadSignature)
	secured.POST("/media/delete-signature", mediaHandler.DeleteSignature)

	// Static assets and the app shell for everything else. The gate decides
	// whether a page navigation is allowed before this handler runs.
	e.Static("/assets", "web/assets")
	e.GET("/*", pageHandler.ServeApp)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
