package search

import (
	"regexp"
	"strconv"
	"strings"
)

// Patterns for explicit item-id references across the three supported
// languages. Order matters: worded references before the bare-number
// fallback.
var idRefPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:item|objet|annonce|id|n°|num(?:e|é)ro)\s*#?\s*([0-9]+)`),
	regexp.MustCompile(`(?:رقم|الرقم)\s*([0-9]+)`),
	regexp.MustCompile(`#\s*([0-9]+)`),
	regexp.MustCompile(`^\s*([0-9]+)\s*$`),
}

// ExtractItemID recognizes utterances that reference a listing by number
// ("item 123", "رقم 123", "#123", or a bare integer) and returns the id.
func ExtractItemID(utterance string) (int64, bool) {
	s := strings.TrimSpace(utterance)
	if s == "" {
		return 0, false
	}
	for _, re := range idRefPatterns {
		m := re.FindStringSubmatch(s)
		if len(m) != 2 {
			continue
		}
		id, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		return id, true
	}
	return 0, false
}
