// Package game implements the selection pipeline behind the guessing game:
// a league census with a top-5 membership check, and a random player drawn
// from a famous club's current roster.
//
// Each call is one sequential run. A club identifier is resolved once per run
// and used for every per-club query that follows.
package game

import (
	"context"
	"log/slog"

	"github.com/albapepper/impostor-data/internal/config"
	"github.com/albapepper/impostor-data/internal/football"
	"github.com/albapepper/impostor-data/internal/provider"
	"github.com/albapepper/impostor-data/internal/provider/apisports"
	"github.com/albapepper/impostor-data/internal/resolve"
)

// Source is the upstream data the pipeline needs.
type Source interface {
	FindLeague(ctx context.Context, name string) (provider.League, error)
	GetTeams(ctx context.Context, leagueID, season int) ([]provider.Team, error)
	SearchTeams(ctx context.Context, name string) ([]provider.TeamRef, error)
	GetPlayers(ctx context.Context, teamID, season int) ([]provider.Player, error)
}

// ClubResolver maps a club name to its identifier.
type ClubResolver interface {
	Resolve(ctx context.Context, name string) (resolve.Result, bool, error)
}

// Options fixes the pools, seasons and randomness for a pipeline.
type Options struct {
	Leagues      []string
	CensusPool   []string
	PlayerPool   []string
	Seasons      []int // tried in order for the random player
	CensusSeason int
	Picker       Picker
}

// DefaultOptions uses the football registry and the configured seasons.
func DefaultOptions(cfg *config.Config) Options {
	return Options{
		Leagues:      football.TopLeagueNames,
		CensusPool:   football.CensusPool,
		PlayerPool:   football.FamousClubs,
		Seasons:      cfg.PlayerSeasons,
		CensusSeason: cfg.CensusSeason,
		Picker:       NewPicker(cfg.RandomSeed),
	}
}

// Pipeline orchestrates resolution, collection and random selection.
type Pipeline struct {
	source   Source
	resolver ClubResolver
	opts     Options
	logger   *slog.Logger
}

// New creates a pipeline from explicit collaborators.
func New(source Source, resolver ClubResolver, opts Options, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Picker == nil {
		opts.Picker = NewPicker(0)
	}
	return &Pipeline{source: source, resolver: resolver, opts: opts, logger: logger}
}

// Build wires the API-Football client, the club resolver and the pipeline
// from configuration. It fails before any request if the API key is missing.
func Build(cfg *config.Config, logger *slog.Logger) (*Pipeline, error) {
	client, err := apisports.NewClient(apisports.OptionsFromConfig(cfg), logger)
	if err != nil {
		return nil, err
	}
	handler := apisports.NewFootballHandler(client, logger)
	resolver := resolve.NewClubResolver(handler, cfg.CacheFirst, logger)
	return New(handler, resolver, DefaultOptions(cfg), logger), nil
}

// ResolveClub runs the club resolver directly.
func (p *Pipeline) ResolveClub(ctx context.Context, name string) (resolve.Result, error) {
	res, ok, err := p.resolver.Resolve(ctx, name)
	if err != nil {
		return resolve.Result{}, err
	}
	if !ok {
		return resolve.Result{}, &ResolutionError{Club: name}
	}
	return res, nil
}

func (p *Pipeline) pick(pool []string) string {
	return pool[p.opts.Picker.IntN(len(pool))]
}
