// Command impostor runs the game pipeline once from the terminal.
//
// Usage:
//
//	impostor census
//	impostor player --seasons 2024,2023
//	impostor resolve "Real Madrid"
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/albapepper/impostor-data/internal/config"
	"github.com/albapepper/impostor-data/internal/game"
)

// Logs go to stderr so stdout stays pipeable JSON.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:          "impostor",
		Short:        "Impostor football data CLI",
		SilenceUsage: true,
	}

	root.AddCommand(censusCmd())
	root.AddCommand(playerCmd())
	root.AddCommand(resolveCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// census command
// --------------------------------------------------------------------------

func censusCmd() *cobra.Command {
	var season int
	cmd := &cobra.Command{
		Use:   "census",
		Short: "List top-5 league teams and check one random club",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(func(cfg *config.Config) {
				if season > 0 {
					cfg.CensusSeason = season
				}
			}, func(ctx context.Context, p *game.Pipeline) error {
				start := time.Now()
				census, err := p.Census(ctx)
				if err != nil {
					return err
				}
				logger.Info("Census finished", "leagues", len(census.Leagues), "duration", time.Since(start).Round(time.Millisecond))
				return printJSON(census)
			})
		},
	}
	cmd.Flags().IntVar(&season, "season", 0, "Census season (default CENSUS_SEASON)")
	return cmd
}

// --------------------------------------------------------------------------
// player command
// --------------------------------------------------------------------------

func playerCmd() *cobra.Command {
	var (
		seasons []int
		seed    uint64
	)
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Draw a random player from a famous club",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(func(cfg *config.Config) {
				if len(seasons) > 0 {
					cfg.PlayerSeasons = seasons
				}
				if seed != 0 {
					cfg.RandomSeed = seed
				}
			}, func(ctx context.Context, p *game.Pipeline) error {
				pick, err := p.RandomPlayer(ctx)
				if err != nil {
					return err
				}
				logger.Info("Player drawn", "club", pick.Club.Name, "club_id", pick.Club.ID, "season", pick.Season)
				return printJSON(pick)
			})
		},
	}
	cmd.Flags().IntSliceVar(&seasons, "seasons", nil, "Seasons to try in order (default PLAYER_SEASONS)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed; 0 seeds from the clock")
	return cmd
}

// --------------------------------------------------------------------------
// resolve command
// --------------------------------------------------------------------------

func resolveCmd() *cobra.Command {
	var live bool
	cmd := &cobra.Command{
		Use:   "resolve <club name>",
		Short: "Resolve a club name to its API-Football team id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(func(cfg *config.Config) {
				if live {
					cfg.CacheFirst = false
				}
			}, func(ctx context.Context, p *game.Pipeline) error {
				res, err := p.ResolveClub(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(res)
			})
		},
	}
	cmd.Flags().BoolVar(&live, "live", false, "Query the live search before the static table")
	return cmd
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runGame handles config loading, flag overrides, pipeline wiring and
// context cancellation.
func runGame(override func(cfg *config.Config), fn func(ctx context.Context, p *game.Pipeline) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if override != nil {
		override(cfg)
	}

	p, err := game.Build(cfg, logger)
	if err != nil {
		return fmt.Errorf("build pipeline: %w", err)
	}
	return fn(ctx, p)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
