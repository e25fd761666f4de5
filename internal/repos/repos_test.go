package repos

import (
	"context"
	"errors"
	"testing"

	"github.com/mafqoodat/mafqoodat-backend/internal/repos/testutil"
	"github.com/mafqoodat/mafqoodat-backend/internal/search"
)

func TestLookupRepo(t *testing.T) {
	db := testutil.DB(t)
	repo := NewLookupRepo(db, testutil.Logger(t))
	ctx := context.Background()

	cities, err := repo.ListCities(ctx)
	if err != nil {
		t.Fatalf("ListCities: %v", err)
	}
	if len(cities) == 0 {
		t.Fatalf("ListCities: expected seeded cities")
	}

	cats, err := repo.ListCategories(ctx)
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	if len(cats) == 0 {
		t.Fatalf("ListCategories: expected seeded categories")
	}

	subs, err := repo.ListSubcategories(ctx, cats[0].ID)
	if err != nil {
		t.Fatalf("ListSubcategories: %v", err)
	}
	for _, s := range subs {
		if s.ParentID != cats[0].ID {
			t.Fatalf("ListSubcategories: row %d belongs to category %d", s.ID, s.ParentID)
		}
	}
}

func TestItemRepoSearchRanked(t *testing.T) {
	db := testutil.DB(t)
	repo := NewItemRepo(db, testutil.Logger(t))
	ctx := context.Background()

	q, ok := search.BuildSearch(search.Intent{Keywords: []string{"telephone"}}, search.Filters{}, 5)
	if !ok {
		t.Fatalf("BuildSearch declined")
	}
	rows, err := repo.SearchRanked(ctx, q)
	if err != nil {
		t.Fatalf("SearchRanked: %v", err)
	}
	if len(rows) > 5 {
		t.Fatalf("SearchRanked: limit not applied, got %d rows", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].MatchCount > rows[i-1].MatchCount {
			t.Fatalf("SearchRanked: rows not ordered by match_count")
		}
	}
	for _, row := range rows {
		if row.MatchCount < 1 {
			t.Fatalf("SearchRanked: row %d below score threshold", row.ID)
		}
	}
}

func TestItemRepoGetByID(t *testing.T) {
	db := testutil.DB(t)
	repo := NewItemRepo(db, testutil.Logger(t))
	ctx := context.Background()

	recent, err := repo.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) == 0 {
		t.Skip("empty catalog")
	}

	got, err := repo.GetByID(ctx, recent[0].ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.ID != recent[0].ID {
		t.Fatalf("GetByID: expected id %d, got %d", recent[0].ID, got.ID)
	}

	if _, err := repo.GetByID(ctx, -1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByID: expected ErrNotFound for absent id, got %v", err)
	}
}

func TestStatsRepoAggregates(t *testing.T) {
	db := testutil.DB(t)
	repo := NewStatsRepo(db, testutil.Logger(t))
	ctx := context.Background()

	total, err := repo.TotalItems(ctx)
	if err != nil {
		t.Fatalf("TotalItems: %v", err)
	}
	if total < 0 {
		t.Fatalf("TotalItems: negative count %d", total)
	}

	byCat, err := repo.CountsByCategory(ctx)
	if err != nil {
		t.Fatalf("CountsByCategory: %v", err)
	}
	if len(byCat) > 10 {
		t.Fatalf("CountsByCategory: expected at most 10 buckets, got %d", len(byCat))
	}

	monthly, err := repo.MonthlyCounts(ctx)
	if err != nil {
		t.Fatalf("MonthlyCounts: %v", err)
	}
	if len(monthly) > 6 {
		t.Fatalf("MonthlyCounts: expected at most 6 months, got %d", len(monthly))
	}

	rows, err := repo.RecentItems(ctx, 20)
	if err != nil {
		t.Fatalf("RecentItems: %v", err)
	}
	if len(rows) > 20 {
		t.Fatalf("RecentItems: limit not applied, got %d", len(rows))
	}
}
