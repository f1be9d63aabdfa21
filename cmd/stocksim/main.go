package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmanzanog/stock-sim/internal/application"
	"github.com/jmanzanog/stock-sim/internal/domain"
	"github.com/jmanzanog/stock-sim/internal/infrastructure/config"
	"github.com/jmanzanog/stock-sim/internal/infrastructure/seed"
	httpHandler "github.com/jmanzanog/stock-sim/internal/interfaces/http"
	"github.com/joho/godotenv"
)

// setupLogger configures and returns a structured logger with source information
func setupLogger(level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, opts))
	slog.SetDefault(logger)
	return logger
}

// loadInstruments resolves the instrument catalog: a configured seed file
// when present, the built-in demo catalog otherwise.
func loadInstruments(cfg *config.Config) ([]domain.Instrument, error) {
	if cfg.SeedFile == "" {
		slog.Info("No seed file configured, using built-in catalog")
		return seed.Default(), nil
	}

	instruments, err := seed.Load(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load seed file: %w", err)
	}
	slog.Info("Loaded instrument catalog", "file", cfg.SeedFile, "instruments", len(instruments))
	return instruments, nil
}

// buildServer creates and configures the HTTP server with all routes and handlers
func buildServer(cfg *config.Config, tradingService *application.TradingService) *http.Server {
	router := gin.Default()
	handler := httpHandler.NewHandler(tradingService)
	httpHandler.SetupRoutes(router, handler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return server
}

// run contains the main application logic without os.Exit calls
// This makes it testeable
func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level, err := config.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	setupLogger(level)

	instruments, err := loadInstruments(cfg)
	if err != nil {
		return err
	}

	registry, err := domain.NewRegistry(instruments)
	if err != nil {
		return fmt.Errorf("failed to build registry: %w", err)
	}

	tradingService := application.NewTradingService(registry)
	server := buildServer(cfg, tradingService)

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("Server starting", "host", cfg.ServerHost, "port", cfg.ServerPort, "instruments", registry.Len())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	// Wait for termination signal or server error
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-quit:
		slog.Info("Received shutdown signal")
	}

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	slog.Info("Server exited gracefully")
	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error("Application error", "error", err)
		os.Exit(1)
	}
}
