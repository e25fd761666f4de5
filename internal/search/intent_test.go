package search

import (
	"reflect"
	"testing"
)

func TestExtractLossPhrase(t *testing.T) {
	e := NewExtractor(nil)
	intent := e.Extract("J'ai perdu mon téléphone noir à Rabat", ToolArgs{})
	if intent.City != "rabat" {
		t.Fatalf("expected city rabat, got %q", intent.City)
	}
	want := []string{"téléphone", "noir"}
	if !reflect.DeepEqual(intent.Keywords, want) {
		t.Fatalf("expected keywords %v, got %v", want, intent.Keywords)
	}
}

func TestExtractArabicUtterance(t *testing.T) {
	e := NewExtractor(nil)
	intent := e.Extract("فقدت محفظة سوداء في الدار البيضاء", ToolArgs{})
	if intent.City != "casablanca" {
		t.Fatalf("expected city casablanca, got %q", intent.City)
	}
	if len(intent.Keywords) == 0 {
		t.Fatalf("expected keywords, got none")
	}
	for _, kw := range intent.Keywords {
		if kw == "فقدت" || kw == "في" {
			t.Fatalf("stop word %q leaked into keywords", kw)
		}
	}
}

func TestExtractArgsOverrideUtterance(t *testing.T) {
	e := NewExtractor(nil)
	intent := e.Extract("des mots qui ne comptent pas", ToolArgs{
		Item:  "valise",
		Brand: "samsonite",
		City:  "Agadir",
	})
	if intent.City != "agadir" {
		t.Fatalf("expected city agadir, got %q", intent.City)
	}
	want := []string{"valise", "samsonite"}
	if !reflect.DeepEqual(intent.Keywords, want) {
		t.Fatalf("expected keywords %v, got %v", want, intent.Keywords)
	}
}

func TestExtractDedupAndPunctuation(t *testing.T) {
	e := NewExtractor(nil)
	intent := e.Extract("Portefeuille, portefeuille! (cuir)", ToolArgs{})
	want := []string{"portefeuille", "cuir"}
	if !reflect.DeepEqual(intent.Keywords, want) {
		t.Fatalf("expected keywords %v, got %v", want, intent.Keywords)
	}
}

func TestExtractDropsShortTokens(t *testing.T) {
	e := NewExtractor(nil)
	intent := e.Extract("cle bb ac", ToolArgs{})
	want := []string{"cle"}
	if !reflect.DeepEqual(intent.Keywords, want) {
		t.Fatalf("expected keywords %v, got %v", want, intent.Keywords)
	}
}

func TestExtractCityTokenNotCounted(t *testing.T) {
	e := NewExtractor(nil)
	intent := e.Extract("sacoche oubliée tanger", ToolArgs{})
	if intent.City != "tanger" {
		t.Fatalf("expected city tanger, got %q", intent.City)
	}
	for _, kw := range intent.Keywords {
		if kw == "tanger" {
			t.Fatalf("city token leaked into keywords: %v", intent.Keywords)
		}
	}
}

func TestExtractIdempotent(t *testing.T) {
	e := NewExtractor(nil)
	first := e.Extract("J'ai perdu mon téléphone noir à Rabat", ToolArgs{})
	second := e.Extract("J'ai perdu mon téléphone noir à Rabat", ToolArgs{})
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("extraction not deterministic: %v vs %v", first, second)
	}
}
