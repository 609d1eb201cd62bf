package resolve

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/albapepper/impostor-data/internal/football"
	"github.com/albapepper/impostor-data/internal/provider"
)

type fakeSearcher struct {
	results map[string][]provider.TeamRef
	err     error
	calls   []string
}

func (f *fakeSearcher) SearchTeams(_ context.Context, name string) ([]provider.TeamRef, error) {
	f.calls = append(f.calls, name)
	if f.err != nil {
		return nil, f.err
	}
	return f.results[name], nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStaticClubsNeverTouchNetwork(t *testing.T) {
	search := &fakeSearcher{err: errors.New("network must not be used")}
	r := NewClubResolver(search, true, quietLogger())

	for name, want := range football.StaticClubs() {
		res, ok, err := r.Resolve(context.Background(), name)
		if err != nil || !ok {
			t.Fatalf("%s: ok=%v err=%v", name, ok, err)
		}
		if res.ID != want || res.Source != SourceStatic {
			t.Fatalf("%s: got %+v, want id %d from static", name, res, want)
		}
	}
	if len(search.calls) != 0 {
		t.Fatalf("expected no searches, got %v", search.calls)
	}
}

func TestStaticLookupIsCaseInsensitive(t *testing.T) {
	r := NewClubResolver(&fakeSearcher{}, true, quietLogger())

	res, ok, err := r.Resolve(context.Background(), "  REAL madrid ")
	if err != nil || !ok || res.ID != 541 {
		t.Fatalf("got %+v ok=%v err=%v", res, ok, err)
	}
}

func TestRealMadridResolvesWhenLiveSearchFails(t *testing.T) {
	for _, cacheFirst := range []bool{true, false} {
		search := &fakeSearcher{err: errors.New("upstream down")}
		r := NewClubResolver(search, cacheFirst, quietLogger())

		res, ok, err := r.Resolve(context.Background(), "Real Madrid")
		if err != nil || !ok {
			t.Fatalf("cacheFirst=%v: ok=%v err=%v", cacheFirst, ok, err)
		}
		if res.ID != 541 {
			t.Fatalf("cacheFirst=%v: id = %d", cacheFirst, res.ID)
		}
	}
}

func TestLiveFirstPrefersLiveExactMatch(t *testing.T) {
	search := &fakeSearcher{results: map[string][]provider.TeamRef{
		"Inter": {{ID: 1, Name: "Inter Miami"}, {ID: 5050, Name: "Inter"}},
	}}
	r := NewClubResolver(search, false, quietLogger())

	res, ok, err := r.Resolve(context.Background(), "Inter")
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if res.ID != 5050 || res.Source != SourceLive {
		t.Fatalf("live exact match should beat the static table, got %+v", res)
	}
}

func TestLiveFirstFallsBackToStaticOnEmptySearch(t *testing.T) {
	search := &fakeSearcher{results: map[string][]provider.TeamRef{}}
	r := NewClubResolver(search, false, quietLogger())

	res, ok, err := r.Resolve(context.Background(), "Juventus")
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if res.ID != 496 || res.Source != SourceStatic {
		t.Fatalf("got %+v", res)
	}
	if len(search.calls) != 1 {
		t.Fatalf("expected one search, got %v", search.calls)
	}
}

func TestUnknownClubWithNoMatchesIsNotFound(t *testing.T) {
	search := &fakeSearcher{results: map[string][]provider.TeamRef{}}
	r := NewClubResolver(search, true, quietLogger())

	res, ok, err := r.Resolve(context.Background(), "Sporting Nowhere")
	if err != nil {
		t.Fatalf("not found must not be an error: %v", err)
	}
	if ok || res.ID != 0 {
		t.Fatalf("expected not found, got %+v", res)
	}
}

func TestUnknownClubTakesFirstEntryWithoutExactMatch(t *testing.T) {
	search := &fakeSearcher{results: map[string][]provider.TeamRef{
		"Wolves": {{ID: 39, Name: "Wolverhampton"}, {ID: 7, Name: "Wolves Reserves"}},
	}}
	r := NewClubResolver(search, true, quietLogger())

	res, ok, err := r.Resolve(context.Background(), "Wolves")
	if err != nil || !ok || res.ID != 39 {
		t.Fatalf("got %+v ok=%v err=%v", res, ok, err)
	}
}

func TestErrorReturnedWhenNothingResolves(t *testing.T) {
	boom := errors.New("upstream down")
	r := NewClubResolver(&fakeSearcher{err: boom}, true, quietLogger())

	_, ok, err := r.Resolve(context.Background(), "Sporting Nowhere")
	if ok {
		t.Fatal("expected not found")
	}
	if !errors.Is(err, boom) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}

func TestResolveStopsOnCancelledContext(t *testing.T) {
	search := &fakeSearcher{}
	r := New(quietLogger(), NewLiveSearch(search))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := r.Resolve(ctx, "Arsenal")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(search.calls) != 0 {
		t.Fatal("no lookup should run after cancellation")
	}
}
