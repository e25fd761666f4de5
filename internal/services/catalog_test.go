package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/apierr"
	"github.com/mafqoodat/mafqoodat-backend/internal/repos"
)

func TestListCategoriesFallback(t *testing.T) {
	svc := NewCatalogService(testLogger(t), StoreConfig{Configured: false}, nil, nil)
	cats, err := svc.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cats) == 0 {
		t.Fatalf("expected fallback categories")
	}
}

func TestListCitiesFallback(t *testing.T) {
	svc := NewCatalogService(testLogger(t), StoreConfig{Configured: false}, nil, nil)
	cities, err := svc.ListCities(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cities) == 0 {
		t.Fatalf("expected fallback cities")
	}
	if cities[0].Name != "Casablanca" {
		t.Fatalf("expected Casablanca first, got %q", cities[0].Name)
	}
}

func TestListSubcategoriesRejectsMissingCategory(t *testing.T) {
	svc := NewCatalogService(testLogger(t), StoreConfig{Configured: false}, nil, nil)
	_, err := svc.ListSubcategories(context.Background(), 0)
	var ae *apierr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected an apierr, got %v", err)
	}
	if ae.Status != http.StatusBadRequest || ae.Code != apierr.CodeInvalidInput {
		t.Fatalf("expected 400 invalid_input, got %d %s", ae.Status, ae.Code)
	}
}

func TestListSubcategoriesUnconfiguredIsEmpty(t *testing.T) {
	svc := NewCatalogService(testLogger(t), StoreConfig{Configured: false}, nil, nil)
	subs, err := svc.ListSubcategories(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(subs) != 0 {
		t.Fatalf("expected empty list, got %v", subs)
	}
}

func TestGetItemValidation(t *testing.T) {
	svc := NewCatalogService(testLogger(t), StoreConfig{Configured: false}, nil, nil)

	_, err := svc.GetItem(context.Background(), 0)
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Code != apierr.CodeInvalidInput {
		t.Fatalf("expected invalid_input for id 0, got %v", err)
	}

	_, err = svc.GetItem(context.Background(), 5)
	if !errors.As(err, &ae) || ae.Code != apierr.CodeStoreUnavailable {
		t.Fatalf("expected store_unavailable when unconfigured, got %v", err)
	}
}

func TestGetItemNotFound(t *testing.T) {
	repo := &fakeItemRepo{err: repos.ErrNotFound}
	svc := NewCatalogService(testLogger(t), StoreConfig{Configured: true}, nil, repo)
	_, err := svc.GetItem(context.Background(), 404)
	var ae *apierr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected an apierr, got %v", err)
	}
	if ae.Status != http.StatusNotFound || ae.Code != apierr.CodeNotFound {
		t.Fatalf("expected 404 not_found, got %d %s", ae.Status, ae.Code)
	}
}

func TestSelfTestUnconfigured(t *testing.T) {
	svc := NewCatalogService(testLogger(t), StoreConfig{Configured: false}, nil, nil)
	_, err := svc.SelfTest(context.Background())
	var ae *apierr.Error
	if !errors.As(err, &ae) || ae.Code != apierr.CodeStoreUnavailable {
		t.Fatalf("expected store_unavailable, got %v", err)
	}
}
