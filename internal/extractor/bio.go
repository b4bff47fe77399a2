package extractor

import (
	"regexp"
	"strings"
)

const (
	MaxBioLength = 160
	FallbackBio  = "Looking for a genuine connection. Tap to learn more."
)

var continueReading = regexp.MustCompile(`(?i)continue\s+reading.*$`)

// ExtractBio builds a short plain-text bio from the excerpt, or the content
// when the excerpt is empty.
func ExtractBio(excerpt, content string) string {
	text := CleanExcerpt(excerpt)
	if text == "" {
		text = CleanExcerpt(content)
	}
	if text == "" {
		return FallbackBio
	}
	return truncate(text, MaxBioLength)
}

// CleanExcerpt strips markup and WordPress "continue reading" boilerplate.
func CleanExcerpt(fragment string) string {
	text := PlainText(fragment)
	return strings.TrimSpace(continueReading.ReplaceAllString(text, ""))
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
