package search

import "testing"

func TestExtractItemIDWordedReferences(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"montre-moi l'objet 4521", 4521},
		{"item 88 please", 88},
		{"détails de l'annonce n° 301", 301},
		{"numéro 17", 17},
		{"numero 17", 17},
		{"id 9000", 9000},
	}
	for _, tc := range cases {
		got, ok := ExtractItemID(tc.in)
		if !ok {
			t.Errorf("%q: expected a match", tc.in)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestExtractItemIDArabic(t *testing.T) {
	got, ok := ExtractItemID("أريد تفاصيل الإعلان رقم 205")
	if !ok || got != 205 {
		t.Fatalf("expected 205, got %d (ok=%v)", got, ok)
	}
}

func TestExtractItemIDHashAndBare(t *testing.T) {
	if got, ok := ExtractItemID("#512"); !ok || got != 512 {
		t.Fatalf("expected 512, got %d (ok=%v)", got, ok)
	}
	if got, ok := ExtractItemID("  1234  "); !ok || got != 1234 {
		t.Fatalf("expected 1234, got %d (ok=%v)", got, ok)
	}
}

func TestExtractItemIDNoMatch(t *testing.T) {
	for _, in := range []string{
		"",
		"j'ai perdu mon téléphone à Rabat",
		"perdu 2 sacs",
		"item zéro",
	} {
		if id, ok := ExtractItemID(in); ok {
			t.Errorf("%q: unexpected match %d", in, id)
		}
	}
}
