package main

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	_ "propfinder/docs" // swagger docs

	"propfinder/internal/cache"
	"propfinder/internal/config"
	"propfinder/internal/db"
	"propfinder/internal/handler"
	"propfinder/internal/model"
	"propfinder/internal/repository"
	"propfinder/internal/router"
	"propfinder/internal/service"
	"propfinder/internal/storage"
)

// @title Property Finder API
// @version 1.0
// @description Property listing API with media uploads and token rewards.
// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	cfg := config.Load()

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logrus.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		logrus.Warn("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.TokenTransaction{},
			&model.MediaUpload{},
			&model.Property{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				logrus.Warnf("failed to drop table (may not exist): %v", err)
			}
		}
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Property{},
		&model.MediaUpload{},
		&model.TokenTransaction{},
	); err != nil {
		logrus.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	store, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		logrus.Fatalf("storage init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	propertyRepo := repository.NewPropertyRepository(gormDB)
	mediaRepo := repository.NewMediaRepository(gormDB)
	tokenRepo := repository.NewTokenRepository(gormDB)

	// Initialize services
	userService := service.NewUserService(userRepo, cacheClient)
	propertyService := service.NewPropertyService(propertyRepo, cacheClient)
	uploadService := service.NewUploadService(userRepo, propertyRepo, mediaRepo, tokenRepo, store, cacheClient)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	// Register routes
	router.Register(e, cfg, userHandler, propertyHandler, uploadHandler)

	logrus.WithFields(logrus.Fields{
		"port":       cfg.ServerPort,
		"upload_dir": cfg.UploadDir,
		"static_dir": cfg.StaticDir,
	}).Info("server starting")

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logrus.Fatalf("server start: %v", err)
	}
}
