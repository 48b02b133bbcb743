package main

import (
	"context"
	"log"
	"net/http"

	"catalog/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"catalog/internal/auth"
	"catalog/internal/cache"
	"catalog/internal/config"
	"catalog/internal/db"
	"catalog/internal/handler"
	"catalog/internal/logging"
	"catalog/internal/model"
	"catalog/internal/repository"
	"catalog/internal/router"
	"catalog/internal/seed"
	"catalog/internal/service"
)

// @title Product Catalog API
// @version 1.0
// @description Product and category management with JWT-based registration and login.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal("database init", zap.Error(err))
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Role{},
		&model.Category{},
		&model.Product{},
	); err != nil {
		logger.Fatal("auto-migrate", zap.Error(err))
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)

	// Auth components. A missing or short signing secret is a configuration
	// fault; refuse to start rather than issue weak tokens.
	tokenIssuer, err := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, auth.TokenValidity)
	if err != nil {
		logger.Fatal("token issuer init", zap.Error(err))
	}
	resolver := auth.NewResolver(userRepo)

	// Services
	authService := service.NewAuthService(userRepo, roleRepo, tokenIssuer, logger)
	productService := service.NewProductService(productRepo, cacheClient, logger)
	categoryService := service.NewCategoryService(categoryRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService, resolver)
	categoryHandler := handler.NewCategoryHandler(categoryService)

	if err := seed.Run(context.Background(), userRepo, roleRepo, categoryRepo, logger); err != nil {
		logger.Fatal("seed", zap.Error(err))
	}

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	router.Register(e, cfg, authHandler, productHandler, categoryHandler)

	addr := ":" + cfg.ServerPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server start", zap.Error(err))
	}
}
