package search

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// CityEntry is one recognized city: the normalized name the rest of the
// pipeline works with, plus every accepted spelling. Matching is plain
// case-insensitive substring containment, so accented and Arabic-script
// variants must be listed explicitly.
type CityEntry struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
}

// Gazetteer holds the recognized city aliases and the per-language
// stop-word sets used by the intent extractor.
type Gazetteer struct {
	cities    []CityEntry
	stopWords map[string]struct{}
}

type gazetteerFile struct {
	Cities    []CityEntry         `yaml:"cities"`
	StopWords map[string][]string `yaml:"stopwords"`
}

// NewGazetteer builds a gazetteer from explicit entries. Earlier entries
// (and earlier aliases within an entry) win on ambiguous input.
func NewGazetteer(cities []CityEntry, stopWordsByLang map[string][]string) *Gazetteer {
	g := &Gazetteer{
		stopWords: make(map[string]struct{}),
	}
	for _, c := range cities {
		entry := CityEntry{Name: strings.ToLower(strings.TrimSpace(c.Name))}
		for _, a := range c.Aliases {
			a = strings.ToLower(strings.TrimSpace(a))
			if a != "" {
				entry.Aliases = append(entry.Aliases, a)
			}
		}
		if entry.Name == "" || len(entry.Aliases) == 0 {
			continue
		}
		g.cities = append(g.cities, entry)
	}
	for _, words := range stopWordsByLang {
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w != "" {
				g.stopWords[w] = struct{}{}
			}
		}
	}
	return g
}

// LoadGazetteer reads city aliases and stop-words from a YAML file. Missing
// sections fall back to the built-in defaults.
func LoadGazetteer(path string) (*Gazetteer, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read gazetteer file: %w", err)
	}
	var f gazetteerFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse gazetteer file: %w", err)
	}
	cities := f.Cities
	if len(cities) == 0 {
		cities = defaultCities
	}
	stop := f.StopWords
	if len(stop) == 0 {
		stop = defaultStopWords
	}
	return NewGazetteer(cities, stop), nil
}

// DefaultGazetteer returns the compiled-in Moroccan city list and FR/EN/AR
// stop-word sets.
func DefaultGazetteer() *Gazetteer {
	return NewGazetteer(defaultCities, defaultStopWords)
}

// DetectCity scans text for the first matching city alias and returns the
// normalized city name. Gazetteer order breaks ties.
func (g *Gazetteer) DetectCity(text string) (string, bool) {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return "", false
	}
	for _, c := range g.cities {
		for _, alias := range c.Aliases {
			if strings.Contains(lower, alias) {
				return c.Name, true
			}
		}
	}
	return "", false
}

// IsStopWord reports whether a lowercased token is a function word in any of
// the configured languages.
func (g *Gazetteer) IsStopWord(token string) bool {
	_, ok := g.stopWords[token]
	return ok
}

var defaultCities = []CityEntry{
	{Name: "casablanca", Aliases: []string{"casablanca", "casa", "الدار البيضاء", "الدارالبيضاء", "كازا"}},
	{Name: "rabat", Aliases: []string{"rabat", "الرباط", "رباط"}},
	{Name: "marrakech", Aliases: []string{"marrakech", "marrakesh", "مراكش"}},
	{Name: "fes", Aliases: []string{"fes", "fès", "fez", "فاس"}},
	{Name: "tanger", Aliases: []string{"tanger", "tangier", "طنجة"}},
	{Name: "agadir", Aliases: []string{"agadir", "أكادير", "اكادير"}},
	{Name: "meknes", Aliases: []string{"meknes", "meknès", "مكناس"}},
	{Name: "oujda", Aliases: []string{"oujda", "وجدة"}},
	{Name: "kenitra", Aliases: []string{"kenitra", "kénitra", "القنيطرة"}},
	{Name: "tetouan", Aliases: []string{"tetouan", "tétouan", "tetuan", "تطوان"}},
	{Name: "sale", Aliases: []string{"salé", "sale", "سلا"}},
	{Name: "mohammedia", Aliases: []string{"mohammedia", "المحمدية"}},
	{Name: "el jadida", Aliases: []string{"el jadida", "eljadida", "الجديدة"}},
	{Name: "nador", Aliases: []string{"nador", "الناظور"}},
	{Name: "essaouira", Aliases: []string{"essaouira", "الصويرة"}},
	{Name: "ouarzazate", Aliases: []string{"ouarzazate", "ورزازات"}},
	{Name: "safi", Aliases: []string{"safi", "آسفي", "اسفي"}},
	{Name: "beni mellal", Aliases: []string{"beni mellal", "béni mellal", "بني ملال"}},
	{Name: "laayoune", Aliases: []string{"laayoune", "laâyoune", "العيون"}},
	{Name: "khouribga", Aliases: []string{"khouribga", "خريبكة"}},
}

var defaultStopWords = map[string][]string{
	"fr": {
		"pour", "de", "des", "du", "le", "la", "les", "un", "une",
		"mon", "ma", "mes", "ton", "ta", "tes", "son", "sa", "ses",
		"je", "j'ai", "jai", "tu", "il", "elle", "nous", "vous", "ils", "elles",
		"dans", "sur", "avec", "sans", "chez", "vers", "par", "est", "suis",
		"que", "qui", "quoi", "mais", "donc", "aussi", "cette", "cet",
		"perdu", "perdue", "perdus", "égaré", "egare", "cherche", "recherche",
		"trouvé", "trouve", "retrouver", "svp", "bonjour", "merci",
	},
	"en": {
		"the", "and", "for", "with", "without", "about", "this", "that",
		"these", "those", "have", "has", "had", "was", "were", "are",
		"you", "your", "our", "his", "her", "its", "their", "them",
		"lost", "found", "missing", "looking", "searching", "find",
		"please", "hello", "thanks", "show", "item", "near", "around",
	},
	"ar": {
		"في", "من", "الى", "إلى", "على", "عن", "مع", "هذا", "هذه", "ذلك",
		"أنا", "انا", "انت", "هو", "هي", "لقد", "كان", "كانت", "عند", "عندي",
		"فقدت", "ضاع", "ضاعت", "أضعت", "اضعت", "وجدت", "ابحث", "أبحث",
		"شكرا", "سلام", "مرحبا", "لو", "سمحت",
	},
}
