package search

import (
	"strings"
	"unicode/utf8"
)

// Intent is the normalized search intent extracted from one utterance. It
// lives for a single request; nothing here is cached across requests.
type Intent struct {
	Keywords []string
	City     string
}

// ToolArgs are the structured arguments the conversational model may supply
// instead of a raw utterance. Any non-empty field takes precedence over
// free-text tokenization.
type ToolArgs struct {
	Item  string `json:"item"`
	Brand string `json:"brand"`
	Color string `json:"color"`
	City  string `json:"city"`
}

func (a ToolArgs) empty() bool {
	return a.Item == "" && a.Brand == "" && a.Color == "" && a.City == ""
}

// Extractor turns raw utterances into Intents using an injected gazetteer.
type Extractor struct {
	gaz *Gazetteer
}

func NewExtractor(gaz *Gazetteer) *Extractor {
	if gaz == nil {
		gaz = DefaultGazetteer()
	}
	return &Extractor{gaz: gaz}
}

// Extract builds an Intent from the utterance and optional structured
// arguments. An empty or unusable utterance yields an Intent with no
// keywords; missing city and missing keywords are both legal outcomes here
// and classified downstream.
func (e *Extractor) Extract(utterance string, args ToolArgs) Intent {
	var intent Intent

	citySource := utterance
	if strings.TrimSpace(args.City) != "" {
		citySource = args.City
	}
	if city, ok := e.gaz.DetectCity(citySource); ok {
		intent.City = city
	}

	keywordSource := utterance
	if !args.empty() {
		keywordSource = strings.Join([]string{args.Item, args.Brand, args.Color}, " ")
	}
	intent.Keywords = e.keywords(keywordSource, intent.City)
	return intent
}

func (e *Extractor) keywords(text, city string) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, raw := range strings.Fields(strings.ToLower(text)) {
		tok := strings.Trim(raw, ".,!?;:()[]{}\"'«»؟،")
		if tok == "" {
			continue
		}
		if utf8.RuneCountInString(tok) <= 2 {
			continue
		}
		if e.gaz.IsStopWord(tok) {
			continue
		}
		// Tokens overlapping the detected city would double-count the
		// city clause.
		if city != "" && (strings.Contains(tok, city) || strings.Contains(city, tok)) {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
