package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/albapepper/impostor-data/internal/provider"
	"github.com/albapepper/impostor-data/internal/resolve"
)

// PlayerPick is one randomly chosen player with the club and season it came from.
type PlayerPick struct {
	Player provider.Player `json:"player"`
	Club   resolve.Result  `json:"club"`
	Season int             `json:"season"`
}

// RandomPlayer picks a club from the player pool, resolves it, and walks the
// configured seasons in order until one has a roster, then picks a player
// from that roster. A run commits to the club it picked: if no season has
// players the run fails with *EmptyResultError.
func (p *Pipeline) RandomPlayer(ctx context.Context) (*PlayerPick, error) {
	if len(p.opts.PlayerPool) == 0 {
		return nil, errors.New("player club pool is empty")
	}
	if len(p.opts.Seasons) == 0 {
		return nil, errors.New("no seasons configured")
	}

	club := p.pick(p.opts.PlayerPool)
	p.logger.Info("Picked club", "club", club)

	res, err := p.ResolveClub(ctx, club)
	if err != nil {
		var resErr *ResolutionError
		if errors.As(err, &resErr) {
			return nil, err
		}
		return nil, fmt.Errorf("resolve club %q: %w", club, err)
	}
	if res.Name == "" {
		res.Name = club
	}

	for _, season := range p.opts.Seasons {
		players, err := p.source.GetPlayers(ctx, res.ID, season)
		if err != nil {
			return nil, fmt.Errorf("fetch players for %s season %d: %w", club, season, err)
		}
		if len(players) == 0 {
			p.logger.Info("No players for season, trying next", "club", club, "team_id", res.ID, "season", season)
			continue
		}

		player := players[p.opts.Picker.IntN(len(players))]
		if player.Season != season {
			return nil, fmt.Errorf("player %d tagged season %d, queried %d", player.ID, player.Season, season)
		}
		p.logger.Info("Picked player",
			"club", club, "team_id", res.ID, "season", season,
			"player_id", player.ID, "roster_size", len(players))
		return &PlayerPick{Player: player, Club: res, Season: season}, nil
	}

	return nil, &EmptyResultError{
		Club:    club,
		ClubID:  res.ID,
		Seasons: append([]int(nil), p.opts.Seasons...),
	}
}
