package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"yabaMarket/app/echo-server/metrics"
	"yabaMarket/app/echo-server/router"
	"yabaMarket/business/category"
	"yabaMarket/business/distribution"
	"yabaMarket/business/product"
	"yabaMarket/business/storefront"
	"yabaMarket/internal/middleware"
	psqlRepo "yabaMarket/internal/repository/postgres"
	redisRepo "yabaMarket/internal/repository/redis"
	"yabaMarket/internal/rest"
	"yabaMarket/pkg/config"
	"yabaMarket/pkg/database"
	redisdb "yabaMarket/pkg/database/redis"
	"yabaMarket/pkg/logger"
	storefrontMetrics "yabaMarket/pkg/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting YaBa Market storefront", "version", cfg.App.Version)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	// Redis is optional; without it every storefront read loads the catalog from postgres
	var (
		redisClient     *goredis.Client
		catalogSnapshot storefront.CatalogCache
		invalidator     product.CatalogInvalidator
	)
	if cfg.Redis.Enabled {
		redisClient, err = redisdb.NewRedisClient(cfg)
		if err != nil {
			logger.Fatal("Failed to connect to redis", "error", err)
		}
		cache := redisRepo.NewCatalogCache(redisClient, cfg.Redis.CatalogTTL)
		catalogSnapshot = cache
		invalidator = cache
		logger.Info("Catalog cache enabled", "ttl", cfg.Redis.CatalogTTL.String())
	}

	metrics.Init()
	storefrontMetrics.Init()

	engine := distribution.NewEngine(distribution.Config{
		FeaturedLimit:         cfg.Distribution.FeaturedLimit,
		FeaturedLimitFiltered: cfg.Distribution.FeaturedLimitFiltered,
		FilteredGeneralCap:    cfg.Distribution.FilteredGeneralCap,
		BalancedTarget:        cfg.Distribution.BalancedTarget,
		BannerSize:            cfg.Distribution.BannerSize,
	}, nil)

	// Init repo
	productsRepo := psqlRepo.NewProductRepository(db)
	categoryRepo := psqlRepo.NewCategoryRepository(db)

	// Init service
	storefrontService := storefront.NewService(productsRepo, categoryRepo, catalogSnapshot, engine)
	productService := product.NewProductService(productsRepo, invalidator)
	categoryService := category.NewCategoryService(categoryRepo)

	// Init handler
	storefrontHandler := rest.NewStorefrontHandler(storefrontService, cfg.Server.RequestTimeout)
	productHandler := rest.NewProductHandler(productService, cfg.Server.RequestTimeout)
	categoryHandler := rest.NewCategoryHandler(categoryService, cfg.Server.RequestTimeout)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(metrics.Middleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddleware(cfg.JWT.SecretKey)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupStorefrontRoutes(api, storefrontHandler)
	router.SetupProductRoutes(api, productHandler, authRequired, adminOnly)
	router.SetupCategoryRoutes(api, categoryHandler, authRequired, adminOnly)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := redisdb.CloseRedisClient(redisClient); err != nil {
		logger.Error("Redis close error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("Database close error", "error", err)
		}
	}

	logger.Info("Server stopped")
}
