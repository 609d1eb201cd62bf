// Package resolve maps human-readable club names to API-Football team
// identifiers through an ordered chain of lookup strategies.
//
// With cache-first ordering the static table answers known clubs without a
// network call, and live search only runs for names the table lacks. With
// live-first ordering a live match always wins and the table is the last
// resort when search comes back empty or fails. A cache-first table entry wins
// even if upstream has since renumbered the club.
package resolve

import (
	"context"
	"log/slog"

	"github.com/albapepper/impostor-data/internal/football"
	"github.com/albapepper/impostor-data/internal/provider"
	"github.com/albapepper/impostor-data/internal/provider/apisports"
)

// Strategy names reported in Result.Source.
const (
	SourceStatic = "static"
	SourceLive   = "live"
)

// Result is a resolved club.
type Result struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Source string `json:"source"`
}

// Strategy is one lookup step. ok=false with a nil error means "not found
// here, try the next one".
type Strategy interface {
	Name() string
	Lookup(ctx context.Context, name string) (Result, bool, error)
}

// --------------------------------------------------------------------------
// Static table
// --------------------------------------------------------------------------

// StaticTable resolves names from a fixed name → ID table.
type StaticTable struct {
	ids map[string]int
}

// NewStaticTable builds a table; keys are normalized on the way in.
func NewStaticTable(ids map[string]int) *StaticTable {
	t := &StaticTable{ids: make(map[string]int, len(ids))}
	for k, v := range ids {
		t.ids[football.NormalizeName(k)] = v
	}
	return t
}

func (t *StaticTable) Name() string { return SourceStatic }

func (t *StaticTable) Lookup(_ context.Context, name string) (Result, bool, error) {
	id, ok := t.ids[football.NormalizeName(name)]
	if !ok {
		return Result{}, false, nil
	}
	return Result{ID: id, Name: name, Source: SourceStatic}, true, nil
}

// --------------------------------------------------------------------------
// Live search
// --------------------------------------------------------------------------

// Searcher is the upstream "search teams by name" operation.
type Searcher interface {
	SearchTeams(ctx context.Context, name string) ([]provider.TeamRef, error)
}

// LiveSearch resolves names through the upstream search endpoint.
type LiveSearch struct {
	searcher Searcher
}

func NewLiveSearch(s Searcher) *LiveSearch {
	return &LiveSearch{searcher: s}
}

func (l *LiveSearch) Name() string { return SourceLive }

func (l *LiveSearch) Lookup(ctx context.Context, name string) (Result, bool, error) {
	refs, err := l.searcher.SearchTeams(ctx, name)
	if err != nil {
		return Result{}, false, err
	}
	ref, ok := apisports.PickTeamRef(refs, name)
	if !ok {
		return Result{}, false, nil
	}
	return Result{ID: ref.ID, Name: ref.Name, Source: SourceLive}, true, nil
}

// --------------------------------------------------------------------------
// Resolver
// --------------------------------------------------------------------------

// Resolver tries its strategies in order; the first hit wins.
type Resolver struct {
	strategies []Strategy
	logger     *slog.Logger
}

// New creates a resolver over an explicit strategy order.
func New(logger *slog.Logger, strategies ...Strategy) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{strategies: strategies, logger: logger}
}

// NewClubResolver wires the static registry and live search in the order
// selected by cacheFirst.
func NewClubResolver(searcher Searcher, cacheFirst bool, logger *slog.Logger) *Resolver {
	static := NewStaticTable(football.StaticClubs())
	live := NewLiveSearch(searcher)
	if cacheFirst {
		return New(logger, static, live)
	}
	return New(logger, live, static)
}

// Resolve returns the club identifier for name. Not found is reported as
// ok=false with a nil error. A strategy error does not stop the chain; it is
// returned only when no later strategy finds the club.
func (r *Resolver) Resolve(ctx context.Context, name string) (Result, bool, error) {
	var lastErr error
	for _, s := range r.strategies {
		if err := ctx.Err(); err != nil {
			return Result{}, false, err
		}
		res, ok, err := s.Lookup(ctx, name)
		if err != nil {
			r.logger.Warn("club lookup failed", "strategy", s.Name(), "club", name, "error", err)
			lastErr = err
			continue
		}
		if ok {
			r.logger.Debug("club resolved", "strategy", s.Name(), "club", name, "team_id", res.ID)
			return res, true, nil
		}
	}
	if lastErr != nil {
		return Result{}, false, lastErr
	}
	return Result{}, false, nil
}
