package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/impostor-data/internal/api/respond"
	"github.com/albapepper/impostor-data/internal/config"
	"github.com/albapepper/impostor-data/internal/game"
	"github.com/albapepper/impostor-data/internal/provider/apisports"
)

// FootballerResponse is the player sent to the guessing game frontend.
type FootballerResponse struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Age         *int    `json:"age"`
	Nationality *string `json:"nationality"`
	Position    *string `json:"position"`
	Team        int     `json:"team"`
	TeamName    string  `json:"team_name"`
	Season      int     `json:"season"`
}

// GetFootballer returns one random player from a famous club.
// @Summary Get a random footballer
// @Description Picks a famous club, resolves its identifier, walks the configured seasons until one has a roster and returns one of its players.
// @Tags game
// @Produce json
// @Success 200 {object} FootballerResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/get-footballer [get]
func (h *Handler) GetFootballer(w http.ResponseWriter, r *http.Request) {
	pick, err := h.game.RandomPlayer(r.Context())
	if err != nil {
		h.writeGameError(w, r, err)
		return
	}

	respond.WriteJSONObject(w, http.StatusOK, NewFootballerResponse(pick))
}

// NewFootballerResponse flattens a pick into the frontend shape.
func NewFootballerResponse(pick *game.PlayerPick) FootballerResponse {
	return FootballerResponse{
		ID:          pick.Player.ID,
		Name:        pick.Player.Name,
		Age:         pick.Player.Age,
		Nationality: optional(pick.Player.Nationality),
		Position:    optional(pick.Player.Position),
		Team:        pick.Club.ID,
		TeamName:    pick.Club.Name,
		Season:      pick.Season,
	}
}

// GetCensus returns the top-5 league census with one random club checked.
// @Summary Top-5 league census
// @Description Resolves the five major leagues, lists their teams for the census season, and checks whether a randomly drawn club plays in one of them.
// @Tags game
// @Produce json
// @Success 200 {object} game.Census
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/census [get]
func (h *Handler) GetCensus(w http.ResponseWriter, r *http.Request) {
	census, err := h.game.Census(r.Context())
	if err != nil {
		h.writeGameError(w, r, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, census)
}

// ResolveClub resolves a club name to its identifier.
// @Summary Resolve a club name
// @Description Runs the club resolver (static table and live search) for a name.
// @Tags game
// @Produce json
// @Param name path string true "Club name"
// @Success 200 {object} resolve.Result
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Failure 502 {object} respond.ErrorResponse
// @Router /api/resolve/{name} [get]
func (h *Handler) ResolveClub(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))
	if name == "" {
		respond.WriteError(w, http.StatusBadRequest, "MISSING_NAME", "club name is required")
		return
	}

	res, err := h.game.ResolveClub(r.Context(), name)
	if err != nil {
		h.writeGameError(w, r, err)
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, res)
}

// writeGameError maps pipeline errors to structured responses. Upstream
// payloads stay in the logs.
func (h *Handler) writeGameError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("game request failed", "path", r.URL.Path, "error", err)

	var (
		cfgErr   *config.ConfigError
		httpErr  *apisports.HTTPError
		emptyErr *game.EmptyResultError
	)
	switch {
	case errors.As(err, &cfgErr):
		respond.WriteError(w, http.StatusInternalServerError, "NOT_CONFIGURED", "Server is not configured: "+cfgErr.Key+" is missing")
	case errors.As(err, &emptyErr):
		respond.WriteErrorDetail(w, http.StatusNotFound, "NO_RECORDS", "No records found", emptyErr.Error())
	case errors.Is(err, game.ErrClubNotResolved):
		respond.WriteError(w, http.StatusNotFound, "CLUB_NOT_RESOLVED", "Could not resolve club")
	case errors.As(err, &httpErr) && httpErr.Rejected():
		respond.WriteError(w, http.StatusBadGateway, "UPSTREAM_REJECTED", "Upstream data provider rejected the request")
	case errors.As(err, &httpErr):
		respond.WriteError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "Upstream data provider request failed")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		respond.WriteError(w, http.StatusServiceUnavailable, "TIMEOUT", "Request was cancelled or timed out")
	default:
		respond.WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to complete request")
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
