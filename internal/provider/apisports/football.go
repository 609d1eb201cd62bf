package apisports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/albapepper/impostor-data/internal/provider"
)

// FootballHandler fetches and normalizes league, team and player data.
type FootballHandler struct {
	client *Client
	logger *slog.Logger
}

// NewFootballHandler creates a Football handler on top of an existing client.
func NewFootballHandler(client *Client, logger *slog.Logger) *FootballHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FootballHandler{client: client, logger: logger}
}

// --------------------------------------------------------------------------
// Leagues
// --------------------------------------------------------------------------

type leagueRaw struct {
	League *struct {
		ID   *int   `json:"id"`
		Name string `json:"name"`
	} `json:"league"`
	Seasons []struct {
		Year    int  `json:"year"`
		Current bool `json:"current"`
	} `json:"seasons"`
}

// FindLeague resolves a league display name to its identifier. When several
// leagues share the name, the first one with a current season wins, otherwise
// the first listed. An unresolvable name returns a League with a nil ID.
func (h *FootballHandler) FindLeague(ctx context.Context, name string) (provider.League, error) {
	result := provider.League{Name: name}

	items, err := h.single(ctx, "/leagues", url.Values{"name": {name}})
	if err != nil {
		return result, fmt.Errorf("fetch league %q: %w", name, err)
	}

	for _, raw := range items {
		var lr leagueRaw
		if err := json.Unmarshal(raw, &lr); err != nil {
			h.logger.Warn("decode league", "name", name, "error", err)
			continue
		}
		if lr.League == nil || lr.League.ID == nil {
			continue
		}
		current := false
		for _, s := range lr.Seasons {
			if s.Current {
				current = true
				break
			}
		}
		if result.ID == nil || (current && !result.Current) {
			id := *lr.League.ID
			result.ID = &id
			result.Current = current
		}
	}
	return result, nil
}

// --------------------------------------------------------------------------
// Teams
// --------------------------------------------------------------------------

type teamRaw struct {
	Team *struct {
		ID      int    `json:"id"`
		Name    string `json:"name"`
		Code    string `json:"code"`
		Country string `json:"country"`
	} `json:"team"`
	Venue *struct {
		Name string `json:"name"`
	} `json:"venue"`
}

// GetTeams fetches every team in a league for a season, in upstream order.
func (h *FootballHandler) GetTeams(ctx context.Context, leagueID, season int) ([]provider.Team, error) {
	rawItems, err := h.client.collect(ctx, "/teams", url.Values{
		"league": {strconv.Itoa(leagueID)},
		"season": {strconv.Itoa(season)},
	})
	if err != nil {
		return nil, fmt.Errorf("fetch teams for league %d: %w", leagueID, err)
	}

	teams := make([]provider.Team, 0, len(rawItems))
	for _, raw := range rawItems {
		var tr teamRaw
		if err := json.Unmarshal(raw, &tr); err != nil {
			h.logger.Warn("decode team", "league_id", leagueID, "error", err)
			continue
		}
		if tr.Team == nil {
			continue
		}
		team := provider.Team{
			ID:      tr.Team.ID,
			Name:    tr.Team.Name,
			Code:    tr.Team.Code,
			Country: tr.Team.Country,
		}
		if tr.Venue != nil {
			team.Venue = tr.Venue.Name
		}
		teams = append(teams, team)
	}
	return teams, nil
}

// SearchTeams looks clubs up by name. An upstream errors payload is treated
// as no matches.
func (h *FootballHandler) SearchTeams(ctx context.Context, name string) ([]provider.TeamRef, error) {
	items, err := h.single(ctx, "/teams", url.Values{"name": {name}})
	if err != nil {
		return nil, fmt.Errorf("search teams %q: %w", name, err)
	}

	refs := make([]provider.TeamRef, 0, len(items))
	for _, raw := range items {
		var tr teamRaw
		if err := json.Unmarshal(raw, &tr); err != nil {
			h.logger.Warn("decode team search result", "name", name, "error", err)
			continue
		}
		if tr.Team == nil || tr.Team.ID <= 0 {
			continue
		}
		refs = append(refs, provider.TeamRef{ID: tr.Team.ID, Name: tr.Team.Name})
	}
	return refs, nil
}

// PickTeamRef prefers a case-insensitive exact name match, else the first ref.
func PickTeamRef(refs []provider.TeamRef, name string) (provider.TeamRef, bool) {
	if len(refs) == 0 {
		return provider.TeamRef{}, false
	}
	for _, ref := range refs {
		if strings.EqualFold(ref.Name, name) {
			return ref, true
		}
	}
	return refs[0], true
}

// --------------------------------------------------------------------------
// Players
// --------------------------------------------------------------------------

type playerRaw struct {
	Player *struct {
		ID          int    `json:"id"`
		Name        string `json:"name"`
		Age         *int   `json:"age"`
		Nationality string `json:"nationality"`
	} `json:"player"`
	Statistics []struct {
		Team *struct {
			ID int `json:"id"`
		} `json:"team"`
		League *struct {
			Season *int `json:"season"`
		} `json:"league"`
		Games *struct {
			Position *string `json:"position"`
		} `json:"games"`
	} `json:"statistics"`
}

// GetPlayers fetches a club's roster for one season. Every returned player is
// tagged with the queried season.
func (h *FootballHandler) GetPlayers(ctx context.Context, teamID, season int) ([]provider.Player, error) {
	rawItems, err := h.client.collect(ctx, "/players", url.Values{
		"team":   {strconv.Itoa(teamID)},
		"season": {strconv.Itoa(season)},
	})
	if err != nil {
		return nil, fmt.Errorf("fetch players for team %d season %d: %w", teamID, season, err)
	}

	players := make([]provider.Player, 0, len(rawItems))
	for _, raw := range rawItems {
		var pr playerRaw
		if err := json.Unmarshal(raw, &pr); err != nil {
			h.logger.Warn("decode player", "team_id", teamID, "season", season, "error", err)
			continue
		}
		if pr.Player == nil {
			continue
		}
		players = append(players, provider.Player{
			ID:          pr.Player.ID,
			Name:        pr.Player.Name,
			Age:         pr.Player.Age,
			Nationality: pr.Player.Nationality,
			Position:    pr.position(teamID, season),
			TeamID:      teamID,
			Season:      season,
		})
	}
	return players, nil
}

// position reads games.position from the statistics entry for this club and
// season, falling back to the first entry that has one.
func (pr playerRaw) position(teamID, season int) string {
	fallback := ""
	for _, st := range pr.Statistics {
		if st.Games == nil || st.Games.Position == nil || *st.Games.Position == "" {
			continue
		}
		pos := *st.Games.Position
		sameTeam := st.Team != nil && st.Team.ID == teamID
		sameSeason := st.League == nil || st.League.Season == nil || *st.League.Season == season
		if sameTeam && sameSeason {
			return pos
		}
		if fallback == "" {
			fallback = pos
		}
	}
	return fallback
}

// --------------------------------------------------------------------------
// Shared
// --------------------------------------------------------------------------

// single performs a non-paginated request and returns its items. An upstream
// errors payload is logged and yields no items.
func (h *FootballHandler) single(ctx context.Context, path string, params url.Values) ([]json.RawMessage, error) {
	items, _, err := h.client.fetchPage(ctx, path, params)
	if err != nil {
		var protoErr *ProtocolError
		if errors.As(err, &protoErr) {
			h.logger.Warn("upstream reported errors", "path", path, "errors", protoErr.Messages)
			return nil, nil
		}
		return nil, err
	}
	return items, nil
}
