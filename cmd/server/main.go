package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lixing-Zhang/meal-storefront/internal/config"
	"github.com/Lixing-Zhang/meal-storefront/internal/handlers"
	"github.com/Lixing-Zhang/meal-storefront/internal/models"
	"github.com/Lixing-Zhang/meal-storefront/internal/repository"
	"github.com/Lixing-Zhang/meal-storefront/internal/service"
	"github.com/Lixing-Zhang/meal-storefront/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting meal storefront server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	seed, err := loadSeed(cfg.Catalog)
	if err != nil {
		log.Error("failed to load seed catalog", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	// Initialize repositories
	menuRepo := repository.NewInMemoryMenuRepository()
	cartRepo := repository.NewInMemoryCartRepository()

	// Initialize services
	catalog, err := service.NewCatalogService(ctx, menuRepo, cartRepo, log, seed)
	if err != nil {
		log.Error("failed to initialize catalog", "error", err)
		os.Exit(1)
	}

	filters, err := service.NewFilterService(cfg.Catalog.DefaultFilter, log)
	if err != nil {
		log.Error("failed to initialize filter state", "error", err)
		os.Exit(1)
	}

	router := handlers.NewRouter(handlers.Dependencies{
		Catalog:        catalog,
		Filters:        filters,
		Login:          service.NewLoginService(log),
		Logger:         log,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RequestTimeout: time.Duration(cfg.Server.RequestTimeout) * time.Second,
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// loadSeed assembles the startup catalog from the built-in menu and an optional seed file
func loadSeed(cfg config.CatalogConfig) ([]models.MenuItem, error) {
	var seed []models.MenuItem
	if cfg.SeedDefaults {
		seed = append(seed, repository.DefaultMenu()...)
	}

	if cfg.SeedFile != "" {
		items, err := repository.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		seed = append(seed, items...)
	}

	return seed, nil
}
