package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/apierr"
	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
	"github.com/mafqoodat/mafqoodat-backend/internal/search"
	"github.com/mafqoodat/mafqoodat-backend/internal/types"
)

// FormQuery is the faceted search form's input: any subset of identifier
// filters plus optional free text.
type FormQuery struct {
	CategoryID    *int64
	SubcategoryID *int64
	CityID        *int64
	Description   string
}

func (q FormQuery) empty() bool {
	return q.CategoryID == nil && q.SubcategoryID == nil && q.CityID == nil && q.Description == ""
}

type SearchService interface {
	// FormSearch serves the explicit search form (cap 50, city optional).
	FormSearch(ctx context.Context, q FormQuery) ([]types.RankedItem, error)
	// AssistantSearch serves the natural-language search box (cap 20,
	// city required by product policy).
	AssistantSearch(ctx context.Context, utterance string) (search.Outcome, error)
}

const (
	formSearchLimit      = 50
	assistantSearchLimit = 20
)

type searchService struct {
	log          *logger.Logger
	cfg          StoreConfig
	formResolver *search.Resolver
	nlResolver   *search.Resolver
}

// NewSearchService takes two resolver policies: the form path never
// requires a city, the assistant path does.
func NewSearchService(baseLog *logger.Logger, cfg StoreConfig, formResolver, nlResolver *search.Resolver) SearchService {
	return &searchService{
		log:          baseLog.With("service", "SearchService"),
		cfg:          cfg,
		formResolver: formResolver,
		nlResolver:   nlResolver,
	}
}

func (s *searchService) FormSearch(ctx context.Context, q FormQuery) ([]types.RankedItem, error) {
	if q.empty() {
		return nil, apierr.New(http.StatusBadRequest, apierr.CodeInvalidInput, fmt.Errorf("no search criteria supplied"))
	}
	if !s.cfg.Configured {
		s.log.Info("store not configured, serving fallback search results")
		return fallbackItems, nil
	}

	outcome, err := s.formResolver.Resolve(ctx, search.Request{
		Utterance: q.Description,
		Filters: search.Filters{
			CategoryID:    q.CategoryID,
			SubcategoryID: q.SubcategoryID,
			CityID:        q.CityID,
		},
		Limit: formSearchLimit,
	})
	if err != nil {
		s.log.Error("form search failed, serving fallback", "error", err)
		return fallbackItems, nil
	}
	switch outcome.Kind {
	case search.OutcomeMatches:
		return outcome.Items, nil
	case search.OutcomeMissingKeywords:
		// Nothing usable to query on even though the form was not empty
		// (e.g. description of stop-words only).
		return nil, apierr.New(http.StatusBadRequest, apierr.CodeInvalidInput, fmt.Errorf("no usable search criteria"))
	default:
		return []types.RankedItem{}, nil
	}
}

func (s *searchService) AssistantSearch(ctx context.Context, utterance string) (search.Outcome, error) {
	if !s.cfg.Configured {
		return search.Outcome{}, apierr.New(http.StatusServiceUnavailable, apierr.CodeStoreUnavailable, fmt.Errorf("catalog store not configured"))
	}
	outcome, err := s.nlResolver.Resolve(ctx, search.Request{
		Utterance: utterance,
		Limit:     assistantSearchLimit,
	})
	if err != nil {
		return search.Outcome{}, apierr.New(http.StatusInternalServerError, apierr.CodeStoreUnavailable, err)
	}
	return outcome, nil
}
