package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkralj/heating-cms/internal/config"
	"github.com/mkralj/heating-cms/internal/model"
	"github.com/mkralj/heating-cms/internal/router"
	"github.com/mkralj/heating-cms/internal/seed"
	"github.com/mkralj/heating-cms/migrations"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// @title           Heating CMS API
// @version         1.0
// @description     Client, device and service task management for a heating maintenance business.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg := config.Load()
	log.Printf("Starting Heating CMS API server [env=%s]", cfg.App.Env)

	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.App.Env == "production" {
		gormLogger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to PostgreSQL")

	if err := migrations.Run(cfg.DB.URL()); err != nil {
		log.Printf("Migration warning: %v", err)
		log.Println("Falling back to GORM AutoMigrate...")
		if err := db.AutoMigrate(
			&model.User{},
			&model.Client{},
			&model.DeviceType{},
			&model.Brand{},
			&model.CatalogModel{},
			&model.Device{},
			&model.Task{},
			&model.NotificationSettings{},
		); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
	}
	log.Println("Database migrated successfully")

	// A failed seed must not serve traffic over a half-initialized store
	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}
	log.Println("Reference data seeded")

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router.New(db, cfg),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	log.Printf("Heating CMS API running on http://0.0.0.0:%s", cfg.App.Port)
	log.Printf("API docs: http://0.0.0.0:%s/swagger/index.html", cfg.App.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Give ongoing requests 5 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("Server exited gracefully")
}
