package extractor

import (
	"regexp"

	"github.com/harunmuya/gs-app/internal/geo"
)

type LocationRule struct {
	Name    string
	Extract func(text string) (string, bool)
}

type gazetteerEntry struct {
	name    string
	pattern *regexp.Regexp
}

var gazetteerPatterns = func() []gazetteerEntry {
	entries := make([]gazetteerEntry, 0, len(geo.Gazetteer))
	for _, name := range geo.Gazetteer {
		entries = append(entries, gazetteerEntry{
			name:    name,
			pattern: regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(name) + `\b`),
		})
	}
	return entries
}()

var inPlacePattern = regexp.MustCompile(`\bin\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\b`)

var LocationRules = []LocationRule{
	{Name: "gazetteer", Extract: gazetteerLocation},
	{Name: "in-place", Extract: inPlaceLocation},
}

// ExtractLocation finds a place name in the title and content, falling back
// to geo.DefaultRegion.
func ExtractLocation(content, title string) string {
	text := title + " " + content
	for _, rule := range LocationRules {
		if loc, ok := rule.Extract(text); ok {
			return loc
		}
	}
	return geo.DefaultRegion
}

// gazetteerLocation returns the first gazetteer entry present in text,
// in gazetteer order rather than text order.
func gazetteerLocation(text string) (string, bool) {
	for _, e := range gazetteerPatterns {
		if e.pattern.MatchString(text) {
			return e.name, true
		}
	}
	return "", false
}

func inPlaceLocation(text string) (string, bool) {
	m := inPlacePattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}
