// Package handler provides HTTP handlers for all API endpoints.
// Handlers call the game pipeline directly with no extra service layer.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/albapepper/impostor-data/internal/api/respond"
	"github.com/albapepper/impostor-data/internal/config"
	"github.com/albapepper/impostor-data/internal/game"
	"github.com/albapepper/impostor-data/internal/resolve"
)

// Game is the pipeline surface the handlers use.
type Game interface {
	RandomPlayer(ctx context.Context) (*game.PlayerPick, error)
	Census(ctx context.Context) (*game.Census, error)
	ResolveClub(ctx context.Context, name string) (resolve.Result, error)
}

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	game   Game
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a Handler with shared dependencies.
func New(g Game, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{game: g, cfg: cfg, logger: logger}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status and the available endpoints.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]interface{}{
		"name":    "Impostor Football API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs/index.html",
		"endpoints": []string{
			"/api/get-footballer",
			"/api/census",
			"/api/resolve/{name}",
		},
		"mcp": "/mcp",
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status, timestamp and the configured seasons.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	body := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if h.cfg != nil {
		body["environment"] = h.cfg.Environment
		body["player_seasons"] = h.cfg.PlayerSeasons
		body["census_season"] = h.cfg.CensusSeason
	}
	respond.WriteJSONObject(w, http.StatusOK, body)
}
