package extractor

import (
	"regexp"
	"strings"
)

const UnknownName = "Unknown"

// MaxNameRunes bounds an extracted name so it fits the snapshot columns.
const MaxNameRunes = 100

// NameRule is one named heuristic for pulling a person's name from a title.
type NameRule struct {
	Name    string
	Extract func(title string) (string, bool)
}

var (
	// "Caroline Nduta Sugar Mummy ...", "Mary a sugar mummy ...", "Jane from ..."
	markerPattern = regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+(?i:sugar\s*mumm|from|a\s+sugar|is\s|wants|needs|looking)`)
	// "Wanjiku, 34, ..." or "Wanjiku 34 ..."
	agePattern = regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s*[,\s]+\d`)

	capitalizedWord = regexp.MustCompile(`^[A-Z][a-z]+$`)
)

var nameStopWords = map[string]bool{
	"Sugar": true, "Mummy": true, "From": true, "The": true, "For": true, "And": true,
	"With": true, "Wants": true, "Needs": true, "Looking": true, "Is": true, "In": true, "A": true,
}

// NameRules are tried in order; the first that yields a name wins.
var NameRules = []NameRule{
	{Name: "marker", Extract: submatchRule(markerPattern)},
	{Name: "age-suffix", Extract: submatchRule(agePattern)},
	{Name: "capitalized-words", Extract: capitalizedWords},
	{Name: "leading-tokens", Extract: leadingTokens},
}

// ExtractName returns the person's name from a rendered post title.
// It never returns an empty string.
func ExtractName(title string) string {
	clean := CleanTitle(title)
	if clean == "" {
		return UnknownName
	}
	for _, rule := range NameRules {
		if name, ok := rule.Extract(clean); ok {
			return truncateRunes(name, MaxNameRunes)
		}
	}
	return UnknownName
}

func submatchRule(re *regexp.Regexp) func(string) (string, bool) {
	return func(title string) (string, bool) {
		m := re.FindStringSubmatch(title)
		if m == nil {
			return "", false
		}
		name := strings.TrimSpace(m[1])
		return name, name != ""
	}
}

// capitalizedWords collects up to two capitalized words, skipping stop words
// until the first name word is found.
func capitalizedWords(title string) (string, bool) {
	var words []string
	for _, w := range strings.Fields(title) {
		if capitalizedWord.MatchString(w) && !nameStopWords[w] {
			words = append(words, w)
			if len(words) >= 2 {
				break
			}
		} else if len(words) > 0 {
			break
		}
	}
	if len(words) == 0 {
		return "", false
	}
	return strings.Join(words, " "), true
}

func leadingTokens(title string) (string, bool) {
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return "", false
	}
	if len(fields) > 2 {
		fields = fields[:2]
	}
	return strings.Join(fields, " "), true
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return strings.TrimSpace(string(r[:n]))
}
