package extractor

import (
	"regexp"
	"strconv"
)

const (
	MinAge = 18
	MaxAge = 80
)

type AgeRule struct {
	Name    string
	Pattern *regexp.Regexp
}

// AgeRules are tried in order. Within a rule every match is considered and
// the first in-range value is taken.
var AgeRules = []AgeRule{
	{Name: "years-old", Pattern: regexp.MustCompile(`(?i)\b(\d{2})\s*(?:yrs?|years?)\b`)},
	{Name: "age-label", Pattern: regexp.MustCompile(`(?i)\b(?:age|aged)\s*[:=]?\s*(\d{2})\b`)},
	{Name: "i-am", Pattern: regexp.MustCompile(`(?i)\b(?:i['’]?m|am)\s+(\d{2})\b`)},
	{Name: "n-year", Pattern: regexp.MustCompile(`(?i)\b(\d{2})\s*[-–]\s*year`)},
}

// ExtractAge returns an age in [MinAge, MaxAge] found in text, or nil.
func ExtractAge(text string) *int {
	if text == "" {
		return nil
	}
	for _, rule := range AgeRules {
		for _, m := range rule.Pattern.FindAllStringSubmatch(text, -1) {
			age, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if age >= MinAge && age <= MaxAge {
				return &age
			}
		}
	}
	return nil
}
