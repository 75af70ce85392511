package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lexdata-backend/config"
	_ "lexdata-backend/docs" // Important for Swagger
	v1 "lexdata-backend/internal/delivery/http/v1"
	"lexdata-backend/internal/usecase"
	"lexdata-backend/pkg/database"
	"lexdata-backend/pkg/email"
	"lexdata-backend/pkg/logger"
)

// @title           LexData & Finance Solutions API
// @version         1.0.0
// @description     API para integração entre direito, dados e finanças - LexData & Finance Solutions
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting LexData backend", "port", cfg.Port)

	// 3. Setup Database (optional, reserved for upcoming persistence work)
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()
	}

	// 4. Setup Email Service
	emailService := email.NewService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email credentials not set - contact submissions will be simulated")
	}

	// 5. Setup UseCases
	contactUC := usecase.NewContactUsecase(emailService)
	catalog := usecase.NewServiceCatalog()

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		Catalog:   catalog,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
