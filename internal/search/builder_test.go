package search

import (
	"strings"
	"testing"
)

func TestBuildSearchDeclinesWithoutCriteria(t *testing.T) {
	if _, ok := BuildSearch(Intent{}, Filters{}, 20); ok {
		t.Fatalf("expected builder to decline an unfiltered scan")
	}
}

func TestBuildSearchKeywordAndOfOrs(t *testing.T) {
	q, ok := BuildSearch(Intent{Keywords: []string{"téléphone", "noir"}, City: "rabat"}, Filters{}, 20)
	if !ok {
		t.Fatalf("expected a query")
	}
	// One OR-group per keyword, each spanning the six scored fields.
	if got := strings.Count(q.SQL, " OR "); got < 2*(len(keywordFields)-1) {
		t.Fatalf("expected OR-groups across fields, got %d OR occurrences in:\n%s", got, q.SQL)
	}
	whereIdx := strings.Index(q.SQL, "WHERE")
	if whereIdx < 0 {
		t.Fatalf("expected a WHERE clause:\n%s", q.SQL)
	}
	if got := strings.Count(q.SQL[whereIdx:], " AND "); got != 2 {
		t.Fatalf("expected city AND two keyword groups joined by 2 ANDs, got %d", got)
	}
	if !strings.Contains(q.SQL, "HAVING match_count >= 1") {
		t.Fatalf("expected HAVING clause:\n%s", q.SQL)
	}
	if !strings.Contains(q.SQL, "ORDER BY match_count DESC, f.postdate DESC") {
		t.Fatalf("expected stable ordering:\n%s", q.SQL)
	}
}

func TestBuildSearchParamsAllBound(t *testing.T) {
	q, ok := BuildSearch(Intent{Keywords: []string{"sac"}, City: "fes"}, Filters{}, 5)
	if !ok {
		t.Fatalf("expected a query")
	}
	if strings.Contains(q.SQL, "%sac%") || strings.Contains(q.SQL, "%fes%") {
		t.Fatalf("values interpolated into SQL:\n%s", q.SQL)
	}
	if got, want := strings.Count(q.SQL, "?"), len(q.Params); got != want {
		t.Fatalf("placeholder/param mismatch: %d placeholders, %d params", got, want)
	}
	if q.Params[len(q.Params)-1] != 5 {
		t.Fatalf("expected limit as last param, got %v", q.Params[len(q.Params)-1])
	}
}

func TestBuildSearchIdentifierFilters(t *testing.T) {
	cat, sub, city := int64(3), int64(41), int64(7)
	q, ok := BuildSearch(Intent{}, Filters{CategoryID: &cat, SubcategoryID: &sub, CityID: &city}, 50)
	if !ok {
		t.Fatalf("expected a query")
	}
	for _, frag := range []string{"f.cat_ref = ?", "f.scat_ref = ?", "f.ville = ?"} {
		if !strings.Contains(q.SQL, frag) {
			t.Fatalf("missing filter %q in:\n%s", frag, q.SQL)
		}
	}
	// Pure identifier filters have nothing to score, so no HAVING: it would
	// zero out every row.
	if strings.Contains(q.SQL, "HAVING") {
		t.Fatalf("unexpected HAVING for unscored query:\n%s", q.SQL)
	}
	if !strings.Contains(q.SQL, "0 AS match_count") {
		t.Fatalf("expected zero score expression:\n%s", q.SQL)
	}
}

func TestBuildSearchDefaultLimit(t *testing.T) {
	q, ok := BuildSearch(Intent{Keywords: []string{"montre"}}, Filters{}, 0)
	if !ok {
		t.Fatalf("expected a query")
	}
	if q.Params[len(q.Params)-1] != 20 {
		t.Fatalf("expected default limit 20, got %v", q.Params[len(q.Params)-1])
	}
}

func TestBuildSearchDeterministic(t *testing.T) {
	intent := Intent{Keywords: []string{"valise", "bleue"}, City: "tanger"}
	a, _ := BuildSearch(intent, Filters{}, 20)
	b, _ := BuildSearch(intent, Filters{}, 20)
	if a.SQL != b.SQL {
		t.Fatalf("non-deterministic SQL")
	}
	if len(a.Params) != len(b.Params) {
		t.Fatalf("non-deterministic params")
	}
}
