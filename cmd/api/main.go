// Command api is the Impostor Football API server.
//
// Usage:
//
//	impostor-api
//	API_PORT=8080 impostor-api

// @title Impostor Football API
// @version 1.0.0
// @description Random footballer and top-5 league census for the impostor guessing game. Data is fetched live from API-Football on every request.
// @host localhost:8000
// @BasePath /
// @schemes http https
// @contact.name Impostor
// @license.name MIT
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/impostor-data/internal/api"
	"github.com/albapepper/impostor-data/internal/config"
	"github.com/albapepper/impostor-data/internal/game"

	_ "github.com/albapepper/impostor-data/docs" // swagger docs
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Load .env if present
	_ = godotenv.Load(".env")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Debug {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
		slog.SetDefault(logger)
	}

	// Context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	// Wire the API-Football client, resolver and pipeline
	pipeline, err := game.Build(cfg, logger)
	if err != nil {
		logger.Error("Failed to build game pipeline", "error", err)
		os.Exit(1)
	}
	logger.Info("Game pipeline ready",
		"base_url", cfg.APISportsBaseURL,
		"player_seasons", cfg.PlayerSeasons,
		"census_season", cfg.CensusSeason,
		"cache_first", cfg.CacheFirst,
		"partial_results", cfg.PartialResults)

	// Create router
	router := api.NewRouter(pipeline, cfg, logger)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 120 * time.Second, // census walks several paginated listings
		IdleTimeout:  60 * time.Second,
	}

	// Start server in background
	go func() {
		logger.Info("Starting Impostor Football API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	<-ctx.Done()
	logger.Info("Shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}
