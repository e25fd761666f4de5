package services

import (
	"context"
	"errors"
	"testing"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/apierr"
	"github.com/mafqoodat/mafqoodat-backend/internal/search"
	"github.com/mafqoodat/mafqoodat-backend/internal/types"
)

func newTestSearchService(t *testing.T, configured bool, store search.Store) SearchService {
	t.Helper()
	log := testLogger(t)
	form := search.NewResolver(search.NewExtractor(nil), store, search.Config{RequireCity: false, Limit: 50}, log)
	nl := search.NewResolver(search.NewExtractor(nil), store, search.Config{RequireCity: true, Limit: 20}, log)
	return NewSearchService(log, StoreConfig{Configured: configured}, form, nl)
}

func TestFormSearchRejectsEmptyQuery(t *testing.T) {
	svc := newTestSearchService(t, true, &fakeSearchStore{})
	_, err := svc.FormSearch(context.Background(), FormQuery{})
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Code != apierr.CodeInvalidInput {
		t.Fatalf("expected invalid_input, got %v", err)
	}
}

func TestFormSearchFallbackWhenUnconfigured(t *testing.T) {
	svc := newTestSearchService(t, false, nil)
	results, err := svc.FormSearch(context.Background(), FormQuery{Description: "téléphone"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) == 0 {
		t.Fatalf("expected fallback sample rows")
	}
}

func TestFormSearchByFiltersOnly(t *testing.T) {
	rows := []types.RankedItem{{ID: 1}}
	svc := newTestSearchService(t, true, &fakeSearchStore{rows: rows})
	cat := int64(3)
	results, err := svc.FormSearch(context.Background(), FormQuery{CategoryID: &cat})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected one row, got %d", len(results))
	}
}

func TestFormSearchStopWordOnlyDescription(t *testing.T) {
	svc := newTestSearchService(t, true, &fakeSearchStore{})
	_, err := svc.FormSearch(context.Background(), FormQuery{Description: "j'ai perdu"})
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Code != apierr.CodeInvalidInput {
		t.Fatalf("expected invalid_input for unusable description, got %v", err)
	}
}

func TestAssistantSearchUnconfigured(t *testing.T) {
	svc := newTestSearchService(t, false, nil)
	_, err := svc.AssistantSearch(context.Background(), "téléphone noir à Rabat")
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Code != apierr.CodeStoreUnavailable {
		t.Fatalf("expected store_unavailable, got %v", err)
	}
}

func TestAssistantSearchClassifies(t *testing.T) {
	svc := newTestSearchService(t, true, &fakeSearchStore{})
	out, err := svc.AssistantSearch(context.Background(), "j'ai perdu mon téléphone noir")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Kind != search.OutcomeMissingCity {
		t.Fatalf("expected missing_city, got %s", out.Kind)
	}
}
