package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mafqoodat/mafqoodat-backend/internal/platform/apierr"
	"github.com/mafqoodat/mafqoodat-backend/internal/platform/logger"
	"github.com/mafqoodat/mafqoodat-backend/internal/repos"
	"github.com/mafqoodat/mafqoodat-backend/internal/types"
)

// StoreConfig makes the live-vs-fallback decision an explicit input instead
// of an env lookup buried in the call path.
type StoreConfig struct {
	Configured bool
}

type CatalogService interface {
	ListCategories(ctx context.Context) ([]types.Category, error)
	ListCities(ctx context.Context) ([]types.City, error)
	ListSubcategories(ctx context.Context, categoryID int64) ([]types.Subcategory, error)
	GetItem(ctx context.Context, id int64) (*types.RankedItem, error)
	SelfTest(ctx context.Context) ([]types.RankedItem, error)
}

type catalogService struct {
	log    *logger.Logger
	cfg    StoreConfig
	lookup repos.LookupRepo
	items  repos.ItemRepo
}

func NewCatalogService(baseLog *logger.Logger, cfg StoreConfig, lookup repos.LookupRepo, items repos.ItemRepo) CatalogService {
	return &catalogService{
		log:    baseLog.With("service", "CatalogService"),
		cfg:    cfg,
		lookup: lookup,
		items:  items,
	}
}

func (s *catalogService) ListCategories(ctx context.Context) ([]types.Category, error) {
	if !s.cfg.Configured {
		return fallbackCategories, nil
	}
	cats, err := s.lookup.ListCategories(ctx)
	if err != nil {
		s.log.Error("list categories failed, serving fallback", "error", err)
		return fallbackCategories, nil
	}
	return cats, nil
}

func (s *catalogService) ListCities(ctx context.Context) ([]types.City, error) {
	if !s.cfg.Configured {
		return fallbackCities, nil
	}
	cities, err := s.lookup.ListCities(ctx)
	if err != nil {
		s.log.Error("list cities failed, serving fallback", "error", err)
		return fallbackCities, nil
	}
	return cities, nil
}

func (s *catalogService) ListSubcategories(ctx context.Context, categoryID int64) ([]types.Subcategory, error) {
	if categoryID <= 0 {
		return nil, apierr.New(http.StatusBadRequest, apierr.CodeInvalidInput, fmt.Errorf("category id is required"))
	}
	if !s.cfg.Configured {
		return []types.Subcategory{}, nil
	}
	subs, err := s.lookup.ListSubcategories(ctx, categoryID)
	if err != nil {
		s.log.Error("list subcategories failed", "error", err, "category_id", categoryID)
		return nil, apierr.New(http.StatusInternalServerError, apierr.CodeStoreUnavailable, err)
	}
	if subs == nil {
		subs = []types.Subcategory{}
	}
	return subs, nil
}

func (s *catalogService) GetItem(ctx context.Context, id int64) (*types.RankedItem, error) {
	if id <= 0 {
		return nil, apierr.New(http.StatusBadRequest, apierr.CodeInvalidInput, fmt.Errorf("item id must be a positive integer"))
	}
	if !s.cfg.Configured {
		return nil, apierr.New(http.StatusServiceUnavailable, apierr.CodeStoreUnavailable, fmt.Errorf("catalog store not configured"))
	}
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if err == repos.ErrNotFound {
			return nil, apierr.New(http.StatusNotFound, apierr.CodeNotFound, fmt.Errorf("no item with id %d", id))
		}
		return nil, apierr.New(http.StatusInternalServerError, apierr.CodeStoreUnavailable, err)
	}
	return item, nil
}

// SelfTest runs the connectivity probe behind the diagnostics endpoint: a
// tiny bounded scan that proves joins and credentials work.
func (s *catalogService) SelfTest(ctx context.Context) ([]types.RankedItem, error) {
	if !s.cfg.Configured {
		return nil, apierr.New(http.StatusServiceUnavailable, apierr.CodeStoreUnavailable, fmt.Errorf("catalog store not configured"))
	}
	rows, err := s.items.Recent(ctx, 3)
	if err != nil {
		return nil, apierr.New(http.StatusInternalServerError, apierr.CodeStoreUnavailable, err)
	}
	return rows, nil
}

var fallbackCategories = []types.Category{
	{ID: 1, Name: "Electronics"},
	{ID: 2, Name: "Accessories"},
	{ID: 3, Name: "Documents"},
	{ID: 4, Name: "Clés"},
}

var fallbackCities = []types.City{
	{ID: 1, Name: "Casablanca"},
	{ID: 2, Name: "Rabat"},
	{ID: 3, Name: "Marrakech"},
	{ID: 4, Name: "Fès"},
	{ID: 5, Name: "Tanger"},
}

// fallbackItems are the sample rows served when no store is configured, so
// the search page still renders something recognizable.
var fallbackItems = []types.RankedItem{
	{
		ID:           1,
		Description:  "Lost iPhone 14 Pro Max, black color, cracked screen protector",
		City:         "Casablanca",
		CategoryName: "Electronics",
		Brand:        "Apple",
		Model:        "iPhone 14 Pro Max",
		Color:        "Black",
		PostedAt:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:           2,
		Description:  "Missing black leather wallet with credit cards",
		City:         "Rabat",
		CategoryName: "Accessories",
		Color:        "Black",
		PostedAt:     time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:           3,
		Description:  "Lost Samsung Galaxy S23, blue color with clear case",
		City:         "Marrakech",
		CategoryName: "Electronics",
		Brand:        "Samsung",
		Model:        "Galaxy S23",
		Color:        "Blue",
		PostedAt:     time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC),
	},
}
