package search

import (
	"context"
	"testing"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
	"github.com/mafqoodat/mafqoodat-backend/internal/types"
)

type fakeStore struct {
	tb      testing.TB
	rows    []types.RankedItem
	err     error
	queries []Query
	// forbid fails the test on any store access; used to prove the
	// short-circuit outcomes never touch the store.
	forbid bool
}

func (f *fakeStore) SearchRanked(_ context.Context, q Query) ([]types.RankedItem, error) {
	if f.forbid {
		f.tb.Fatalf("store queried on a short-circuit outcome: %s", q.SQL)
	}
	f.queries = append(f.queries, q)
	return f.rows, f.err
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func newTestResolver(t *testing.T, store Store, cfg Config) *Resolver {
	t.Helper()
	return NewResolver(NewExtractor(nil), store, cfg, testLogger(t))
}

func TestResolveMissingCityShortCircuit(t *testing.T) {
	store := &fakeStore{tb: t, forbid: true}
	r := newTestResolver(t, store, Config{RequireCity: true})

	out, err := r.Resolve(context.Background(), Request{Utterance: "j'ai perdu mon téléphone noir"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Kind != OutcomeMissingCity {
		t.Fatalf("expected missing_city, got %s", out.Kind)
	}
}

func TestResolveMissingKeywordsShortCircuit(t *testing.T) {
	store := &fakeStore{tb: t, forbid: true}
	r := newTestResolver(t, store, Config{RequireCity: true})

	out, err := r.Resolve(context.Background(), Request{Utterance: "j'ai perdu à Rabat"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Kind != OutcomeMissingKeywords {
		t.Fatalf("expected missing_keywords, got %s", out.Kind)
	}
	if out.Intent.City != "rabat" {
		t.Fatalf("expected detected city to survive, got %q", out.Intent.City)
	}
}

func TestResolveNoMatches(t *testing.T) {
	store := &fakeStore{tb: t}
	r := newTestResolver(t, store, Config{RequireCity: true})

	out, err := r.Resolve(context.Background(), Request{Utterance: "téléphone noir à Rabat"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Kind != OutcomeNoMatches {
		t.Fatalf("expected no_matches, got %s", out.Kind)
	}
	if len(store.queries) != 1 {
		t.Fatalf("expected exactly one store query, got %d", len(store.queries))
	}
}

func TestResolveMatchesCarryContactURL(t *testing.T) {
	store := &fakeStore{tb: t, rows: []types.RankedItem{{ID: 42}, {ID: 7}}}
	r := newTestResolver(t, store, Config{RequireCity: true, ContactBase: "https://mafqoodat.ma/trouve.php"})

	out, err := r.Resolve(context.Background(), Request{Utterance: "téléphone noir à Rabat"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Kind != OutcomeMatches {
		t.Fatalf("expected matches, got %s", out.Kind)
	}
	if got := out.Items[0].ContactURL; got != "https://mafqoodat.ma/trouve.php?contact=42" {
		t.Fatalf("unexpected contact url %q", got)
	}
	if got := out.Items[1].ContactURL; got != "https://mafqoodat.ma/trouve.php?contact=7" {
		t.Fatalf("unexpected contact url %q", got)
	}
}

func TestResolveRequestLimitWins(t *testing.T) {
	store := &fakeStore{tb: t}
	r := newTestResolver(t, store, Config{RequireCity: true, Limit: 20})

	_, err := r.Resolve(context.Background(), Request{Utterance: "téléphone noir à Rabat", Limit: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q := store.queries[0]
	if q.Params[len(q.Params)-1] != 5 {
		t.Fatalf("expected limit 5 bound, got %v", q.Params[len(q.Params)-1])
	}
}

func TestResolveFormPolicyWithoutCity(t *testing.T) {
	store := &fakeStore{tb: t}
	r := newTestResolver(t, store, Config{RequireCity: false})

	out, err := r.Resolve(context.Background(), Request{Utterance: "portefeuille cuir"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Kind != OutcomeNoMatches {
		t.Fatalf("expected the query to run without a city, got %s", out.Kind)
	}
}
