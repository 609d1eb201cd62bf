package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/albapepper/impostor-data/internal/config"
	"github.com/albapepper/impostor-data/internal/game"
	"github.com/albapepper/impostor-data/internal/resolve"
)

type stubGame struct{}

func (stubGame) RandomPlayer(context.Context) (*game.PlayerPick, error) {
	return &game.PlayerPick{Club: resolve.Result{ID: 541, Name: "Real Madrid"}, Season: 2024}, nil
}

func (stubGame) Census(context.Context) (*game.Census, error) {
	return &game.Census{Season: 2024, Leagues: []game.LeagueRoster{}}, nil
}

func (stubGame) ResolveClub(_ context.Context, name string) (resolve.Result, error) {
	return resolve.Result{ID: 1, Name: name, Source: resolve.SourceLive}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:       "test",
		CORSAllowOrigins:  []string{"*"},
		RateLimitEnabled:  false,
		RateLimitRequests: 60,
		RateLimitWindow:   time.Minute,
		PlayerSeasons:     []int{2024},
		CensusSeason:      2024,
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRouterServesRoutes(t *testing.T) {
	srv := httptest.NewServer(NewRouter(stubGame{}, testConfig(), quietLogger()))
	defer srv.Close()

	for _, path := range []string{"/", "/health", "/api/get-footballer", "/api/census", "/api/resolve/Arsenal"} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Errorf("GET %s status = %d, want 200", path, resp.StatusCode)
		}
		if resp.Header.Get("X-Process-Time") == "" {
			t.Errorf("GET %s missing X-Process-Time", path)
		}
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter(stubGame{}, testConfig(), quietLogger()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestTimingMiddlewareDefaultStatus(t *testing.T) {
	h := TimingMiddleware(quietLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("X-Process-Time"); !strings.HasSuffix(got, "ms") {
		t.Fatalf("X-Process-Time = %q, want ms suffix", got)
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	h := RateLimitMiddleware(2, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	do := func(remote string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remote
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	// burst is half the window allowance
	if rec := do("10.0.0.1:1234"); rec.Code != http.StatusNoContent {
		t.Fatalf("first request status = %d, want 204", rec.Code)
	}
	rec := do("10.0.0.1:1234")
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "60" {
		t.Fatalf("Retry-After = %q, want 60", got)
	}

	if rec := do("10.0.0.2:1234"); rec.Code != http.StatusNoContent {
		t.Fatalf("other client status = %d, want 204", rec.Code)
	}
}

func TestIPLimiterEvictsIdleClients(t *testing.T) {
	l := newIPLimiter(2, time.Minute)
	clock := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }
	l.lastSweep = clock

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		if !l.allow(ip) {
			t.Fatalf("%s: first request denied", ip)
		}
	}
	if l.allow("10.0.0.1") {
		t.Fatal("second immediate request should be limited")
	}

	clock = clock.Add(30 * time.Second)
	l.allow("10.0.0.2")
	if len(l.clients) != 3 {
		t.Fatalf("clients = %d before idle window, want 3", len(l.clients))
	}

	clock = clock.Add(45 * time.Second)
	if !l.allow("10.0.0.4") {
		t.Fatal("new client denied")
	}
	// .1 and .3 were idle a full window; .2 was seen 45s ago
	if len(l.clients) != 2 {
		t.Fatalf("clients = %d after sweep, want 2", len(l.clients))
	}
	if _, ok := l.clients["10.0.0.2"]; !ok {
		t.Fatal("recently seen client was evicted")
	}
}
