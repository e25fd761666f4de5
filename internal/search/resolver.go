package search

import (
	"context"
	"fmt"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
	"github.com/mafqoodat/mafqoodat-backend/internal/types"
)

// OutcomeKind classifies a resolved search so the caller can phrase the
// right follow-up.
type OutcomeKind int

const (
	// OutcomeMissingCity: a city is required by policy and none was
	// detected. The store is never queried.
	OutcomeMissingCity OutcomeKind = iota
	// OutcomeMissingKeywords: nothing usable to search on. The store is
	// never queried.
	OutcomeMissingKeywords
	// OutcomeNoMatches: the query ran and returned zero rows.
	OutcomeNoMatches
	// OutcomeMatches: one or more ranked rows.
	OutcomeMatches
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeMissingCity:
		return "missing_city"
	case OutcomeMissingKeywords:
		return "missing_keywords"
	case OutcomeNoMatches:
		return "no_matches"
	case OutcomeMatches:
		return "matches"
	default:
		return "unknown"
	}
}

// Outcome is the classified result of one resolved search.
type Outcome struct {
	Kind   OutcomeKind
	Intent Intent
	Items  []types.RankedItem
}

// Store executes a built catalog query. Implemented by the item repo; tests
// substitute fakes.
type Store interface {
	SearchRanked(ctx context.Context, q Query) ([]types.RankedItem, error)
}

// Config carries the per-caller resolver policy.
type Config struct {
	// RequireCity makes a detected city mandatory before any catalog
	// query. The conversational path runs with it on, the form path off.
	RequireCity bool
	// ContactBase is the legacy listing-contact URL; the item id is
	// appended as ?contact=<id>.
	ContactBase string
	// Limit caps returned rows when the request does not set its own.
	Limit int
}

// Request is one resolution ask: a raw utterance and/or structured args,
// plus optional explicit identifier filters.
type Request struct {
	Utterance string
	Args      ToolArgs
	Filters   Filters
	Limit     int
}

// Resolver is the deterministic core behind both the conversational tool
// and the form search: extract intent, build one bounded query, classify
// the result.
type Resolver struct {
	extractor *Extractor
	store     Store
	cfg       Config
	log       *logger.Logger
}

func NewResolver(extractor *Extractor, store Store, cfg Config, baseLog *logger.Logger) *Resolver {
	if cfg.Limit <= 0 {
		cfg.Limit = 20
	}
	if cfg.ContactBase == "" {
		cfg.ContactBase = "https://mafqoodat.ma/trouve.php"
	}
	return &Resolver{
		extractor: extractor,
		store:     store,
		cfg:       cfg,
		log:       baseLog.With("service", "Resolver"),
	}
}

// Resolve classifies and, when warranted, executes one search. MissingCity
// and MissingKeywords short-circuit before any store access.
func (r *Resolver) Resolve(ctx context.Context, req Request) (Outcome, error) {
	intent := r.extractor.Extract(req.Utterance, req.Args)

	if r.cfg.RequireCity && intent.City == "" {
		return Outcome{Kind: OutcomeMissingCity, Intent: intent}, nil
	}
	if len(intent.Keywords) == 0 && req.Filters.empty() {
		return Outcome{Kind: OutcomeMissingKeywords, Intent: intent}, nil
	}

	limit := req.Limit
	if limit <= 0 {
		limit = r.cfg.Limit
	}
	q, ok := BuildSearch(intent, req.Filters, limit)
	if !ok {
		return Outcome{Kind: OutcomeMissingKeywords, Intent: intent}, nil
	}

	rows, err := r.store.SearchRanked(ctx, q)
	if err != nil {
		r.log.Error("catalog search failed", "error", err, "city", intent.City, "keywords", len(intent.Keywords))
		return Outcome{}, err
	}
	if len(rows) == 0 {
		return Outcome{Kind: OutcomeNoMatches, Intent: intent}, nil
	}
	for i := range rows {
		rows[i].ContactURL = fmt.Sprintf("%s?contact=%d", r.cfg.ContactBase, rows[i].ID)
	}
	return Outcome{Kind: OutcomeMatches, Intent: intent, Items: rows}, nil
}
