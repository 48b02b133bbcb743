package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	"catalog/internal/config"
	"catalog/internal/db"
	"catalog/internal/logging"
	"catalog/internal/model"
	"catalog/internal/repository"
	"catalog/internal/seed"
)

// Standalone seeder: migrates the schema and bootstraps roles, the default
// admin and starter categories without starting the HTTP server.
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

	userRepo := repository.NewUserRepository(gormDB)
	roleRepo := repository.NewRoleRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)

	if err := seed.Run(context.Background(), userRepo, roleRepo, categoryRepo, logger); err != nil {
		logger.Fatal("seed", zap.Error(err))
	}
	logger.Info("seeding complete")
}
