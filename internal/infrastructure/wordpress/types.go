package wordpress

import (
	"encoding/json"
	"time"
)

type rendered struct {
	Rendered string `json:"rendered"`
}

type wpMedia struct {
	SourceURL    string `json:"source_url"`
	MediaDetails struct {
		Sizes map[string]struct {
			SourceURL string `json:"source_url"`
		} `json:"sizes"`
	} `json:"media_details"`
}

type wpPost struct {
	ID                      int      `json:"id"`
	Date                    string   `json:"date"`
	DateGMT                 string   `json:"date_gmt"`
	Link                    string   `json:"link"`
	Title                   rendered `json:"title"`
	Content                 rendered `json:"content"`
	Excerpt                 rendered `json:"excerpt"`
	CommentCount            int      `json:"comment_count"`
	JetpackFeaturedMediaURL string   `json:"jetpack_featured_media_url"`
	Embedded                struct {
		FeaturedMedia []wpMedia           `json:"wp:featuredmedia"`
		Replies       [][]json.RawMessage `json:"replies"`
	} `json:"_embedded"`
}

type wpComment struct {
	ID         int               `json:"id"`
	AuthorName string            `json:"author_name"`
	Date       string            `json:"date"`
	DateGMT    string            `json:"date_gmt"`
	Content    rendered          `json:"content"`
	AvatarURLs map[string]string `json:"author_avatar_urls"`
}

type wpCommentRequest struct {
	Post        int    `json:"post"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
	Content     string `json:"content"`
}

type wpCommentResponse struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}

type wpError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WordPress dates carry no zone; date_gmt is UTC.
const wpTimeLayout = "2006-01-02T15:04:05"

func parseWPTime(gmt, local string) time.Time {
	for _, s := range []string{gmt, local} {
		if s == "" {
			continue
		}
		if t, err := time.Parse(wpTimeLayout, s); err == nil {
			return t.UTC()
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func (m wpMedia) imageURL() string {
	if m.SourceURL != "" {
		return m.SourceURL
	}
	if large, ok := m.MediaDetails.Sizes["large"]; ok {
		return large.SourceURL
	}
	return ""
}

func (p *wpPost) featuredImage() string {
	if p.JetpackFeaturedMediaURL != "" {
		return p.JetpackFeaturedMediaURL
	}
	if len(p.Embedded.FeaturedMedia) > 0 {
		return p.Embedded.FeaturedMedia[0].imageURL()
	}
	return ""
}

func (p *wpPost) commentCount() int {
	if p.CommentCount > 0 {
		return p.CommentCount
	}
	if len(p.Embedded.Replies) > 0 {
		return len(p.Embedded.Replies[0])
	}
	return 0
}
