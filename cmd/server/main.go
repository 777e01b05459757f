package main

import (
	"log"
	"net/http"

	_ "shopadmin/docs" // swagger docs

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"shopadmin/internal/auth"
	"shopadmin/internal/cache"
	"shopadmin/internal/config"
	"shopadmin/internal/db"
	"shopadmin/internal/handler"
	appmw "shopadmin/internal/middleware"
	"shopadmin/internal/model"
	"shopadmin/internal/repository"
	"shopadmin/internal/router"
	"shopadmin/internal/service"
)

// @title Shop Admin API
// @version 1.0
// @description Small-business admin dashboard API with cookie-based session authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(echomw.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Admin{},
		&model.Product{},
		&model.Category{},
		&model.Order{},
		&model.GalleryImage{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	adminRepo := repository.NewAdminRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	orderRepo := repository.NewOrderRepository(gormDB)
	galleryRepo := repository.NewGalleryRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	gate := appmw.NewGate(jwtService, cfg.SecureCookies)

	// Initialize services
	authService := service.NewAuthService(adminRepo, jwtService)
	adminService := service.NewAdminService(adminRepo)
	productService := service.NewProductService(productRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	orderService := service.NewOrderService(orderRepo)
	galleryService := service.NewGalleryService(galleryRepo)
	customerService := service.NewCustomerService(orderRepo)
	dashboardService := service.NewDashboardService(orderRepo, productRepo, cacheClient)
	mediaSigner := service.NewMediaSigner(cfg.MediaAPISecret)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.MySQLDSN != "")
	adminHandler := handler.NewAdminHandler(adminService)
	productHandler := handler.NewProductHandler(productService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	orderHandler := handler.NewOrderHandler(orderService)
	galleryHandler := handler.NewGalleryHandler(galleryService)
	customerHandler := handler.NewCustomerHandler(customerService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	mediaHandler := handler.NewMediaHandler(mediaSigner)
	pageHandler := handler.NewPageHandler("web")

	// Register routes
	router.Register(
		e,
		cfg,
		gate,
		authHandler,
		adminHandler,
		productHandler,
		categoryHandler,
		orderHandler,
		galleryHandler,
		customerHandler,
		dashboardHandler,
		mediaHandler,
		pageHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
