package game

import (
	"context"
	"fmt"

	"github.com/albapepper/impostor-data/internal/provider"
	"github.com/albapepper/impostor-data/internal/provider/apisports"
)

// Census is the top-5 league roster report plus one randomly checked club.
type Census struct {
	Season     int            `json:"season"`
	Leagues    []LeagueRoster `json:"leagues"`
	RandomTeam *RandomTeam    `json:"random_team"`
}

// LeagueRoster is every team collected for one league and season.
type LeagueRoster struct {
	Name  string          `json:"name"`
	ID    *int            `json:"id"`
	Teams []provider.Team `json:"teams"`
	Count int             `json:"count"`
}

// RandomTeam is the club drawn from the census pool and where it was found.
type RandomTeam struct {
	RequestedName string       `json:"requested_name"`
	Resolved      ResolvedTeam `json:"resolved"`
}

// ResolvedTeam has nil ID and Name when search found nothing. League is nil
// when the club is not in any collected top-5 roster.
type ResolvedTeam struct {
	ID     *int                       `json:"id"`
	Name   *string                    `json:"name"`
	League *provider.LeagueMembership `json:"league"`
	InTop5 bool                       `json:"in_top5"`
}

// Census resolves each top-5 league, collects its teams for the census
// season, then draws a club from the census pool, resolves it through live
// search only, and checks it against the collected rosters.
func (p *Pipeline) Census(ctx context.Context) (*Census, error) {
	season := p.opts.CensusSeason
	result := &Census{Season: season, Leagues: make([]LeagueRoster, 0, len(p.opts.Leagues))}

	for _, name := range p.opts.Leagues {
		league, err := p.source.FindLeague(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("census league %q: %w", name, err)
		}

		roster := LeagueRoster{Name: name, ID: league.ID, Teams: []provider.Team{}}
		if league.ID != nil {
			teams, err := p.source.GetTeams(ctx, *league.ID, season)
			if err != nil {
				return nil, fmt.Errorf("census teams for %q: %w", name, err)
			}
			if teams != nil {
				roster.Teams = teams
			}
		} else {
			p.logger.Warn("League not resolved", "league", name)
		}
		roster.Count = len(roster.Teams)
		p.logger.Info("League collected", "league", name, "season", season, "teams", roster.Count)
		result.Leagues = append(result.Leagues, roster)
	}

	if len(p.opts.CensusPool) == 0 {
		return result, nil
	}

	candidate := p.pick(p.opts.CensusPool)
	refs, err := p.source.SearchTeams(ctx, candidate)
	if err != nil {
		return nil, fmt.Errorf("census search %q: %w", candidate, err)
	}

	random := &RandomTeam{RequestedName: candidate}
	if ref, ok := apisports.PickTeamRef(refs, candidate); ok {
		id, name := ref.ID, ref.Name
		random.Resolved.ID = &id
		random.Resolved.Name = &name
		random.Resolved.League = membership(result.Leagues, id)
		random.Resolved.InTop5 = random.Resolved.League != nil
	}
	p.logger.Info("Census club checked",
		"club", candidate, "resolved", random.Resolved.ID != nil, "in_top5", random.Resolved.InTop5)

	result.RandomTeam = random
	return result, nil
}

// membership returns the first league whose roster contains teamID.
func membership(leagues []LeagueRoster, teamID int) *provider.LeagueMembership {
	for _, lg := range leagues {
		if lg.ID == nil {
			continue
		}
		for _, t := range lg.Teams {
			if t.ID == teamID {
				return &provider.LeagueMembership{LeagueID: *lg.ID, LeagueName: lg.Name}
			}
		}
	}
	return nil
}
