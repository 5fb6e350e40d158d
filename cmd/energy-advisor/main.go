package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"home-energy-advisor/internal/api"
	"home-energy-advisor/internal/api/handlers"
	"home-energy-advisor/internal/llm"
	"home-energy-advisor/internal/repository"
	"home-energy-advisor/internal/service"
	"home-energy-advisor/pkg/config"
	"home-energy-advisor/pkg/logger"
	"home-energy-advisor/pkg/postgres"

	"go.uber.org/zap"
)

// @title Home Energy Advisor API
// @version 1.0
// @description AI-powered home energy efficiency advisor API

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Home Energy Advisor service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repository
	homeRepo := repository.NewHomeRepository(db, appLogger)
	if err := homeRepo.EnsureSchema(ctx); err != nil {
		appLogger.Fatal("Failed to ensure database schema", zap.Error(err))
	}

	// Initialize completion backend and services
	ollamaClient := llm.NewClient(cfg.Ollama, appLogger)

	homeService := service.NewHomeService(homeRepo, appLogger)
	adviceService := service.NewAdviceService(homeRepo, ollamaClient, &cfg.Ollama, appLogger)

	if !ollamaClient.Healthy(ctx) {
		appLogger.Warn("Completion backend is not responding, advice requests will fail until it is up",
			zap.String("base_url", cfg.Ollama.BaseURL),
			zap.String("model", cfg.Ollama.Model),
		)
	}

	// Initialize handlers
	homeHandler := handlers.NewHomeHandler(homeService, appLogger)
	adviceHandler := handlers.NewAdviceHandler(adviceService, appLogger)

	// Setup router
	app := api.SetupRouter(homeHandler, adviceHandler)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
