// Package extractor turns raw WordPress posts into structured profiles.
// Every step degrades to a documented fallback instead of failing.
package extractor

import (
	"time"

	"github.com/harunmuya/gs-app/internal/domain"
	"github.com/harunmuya/gs-app/internal/geo"
)

// Extractor parses posts relative to a clock.
type Extractor struct {
	now func() time.Time
}

func New() *Extractor {
	return &Extractor{now: time.Now}
}

// NewWithClock is used where "now" has to be fixed, mostly in tests.
func NewWithClock(now func() time.Time) *Extractor {
	return &Extractor{now: now}
}

// Parse builds a Profile from post. It never fails; a nil post yields a
// profile made of fallbacks.
func (e *Extractor) Parse(post *domain.RawPost) *domain.Profile {
	if post == nil {
		post = &domain.RawPost{}
	}
	now := e.now()

	content := PlainText(post.ContentHTML)
	title := CleanTitle(post.TitleHTML)

	age := ExtractAge(content)
	if age == nil {
		age = ExtractAge(title)
	}

	location := ExtractLocation(content, title)

	commentCount := post.CommentCount
	if commentCount < 0 {
		commentCount = 0
	}

	return &domain.Profile{
		ID:                   post.ID,
		Name:                 ExtractName(post.TitleHTML),
		Age:                  age,
		Location:             location,
		Coordinates:          geo.CoordsFor(location),
		Bio:                  ExtractBio(post.ExcerptHTML, post.ContentHTML),
		ImageURL:             post.FeaturedImageURL,
		Link:                 post.Link,
		PublishedAt:          post.PublishedAt,
		DaysSincePublication: DaysSince(post.PublishedAt, now),
		ViewCount:            ViewCount(post.ID, post.PublishedAt, now),
		CommentCount:         commentCount,
	}
}

// ParseAll parses a page of posts, dropping profiles without an image.
func (e *Extractor) ParseAll(posts []*domain.RawPost) []*domain.Profile {
	profiles := make([]*domain.Profile, 0, len(posts))
	for _, post := range posts {
		p := e.Parse(post)
		if !p.HasImage() {
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles
}
