package extractor

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// DaysSince is the number of whole days from published to now, at least 1.
// A zero publish time counts as published now.
func DaysSince(published, now time.Time) int {
	if published.IsZero() {
		return 1
	}
	days := int(math.Floor(float64(now.Sub(published)) / float64(day)))
	if days < 1 {
		return 1
	}
	return days
}

// ViewCount derives a stable display view count from the post id and age.
// It is a pure function of its arguments.
func ViewCount(postID int, published, now time.Time) int {
	seed := postID % 97
	if seed < 0 {
		seed += 97
	}
	days := DaysSince(published, now)
	return days*(38+seed) + int(math.Floor(float64(seed)*7.3))
}
