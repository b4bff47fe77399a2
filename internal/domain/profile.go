package domain

import (
	"time"

	"github.com/harunmuya/gs-app/internal/geo"
)

// RawPost is a content record as delivered by the WordPress source, before
// any extraction has happened.
type RawPost struct {
	ID               int       `json:"id"`
	TitleHTML        string    `json:"title_html"`
	ContentHTML      string    `json:"content_html"`
	ExcerptHTML      string    `json:"excerpt_html"`
	PublishedAt      time.Time `json:"published_at"`
	CommentCount     int       `json:"comment_count"`
	FeaturedImageURL string    `json:"featured_image_url,omitempty"`
	Link             string    `json:"link,omitempty"`
}

// Profile is the normalized dating profile derived from a RawPost.
// It is recomputed on every fetch and never persisted.
type Profile struct {
	ID                   int       `json:"id"`
	Name                 string    `json:"name"`
	Age                  *int      `json:"age"`
	Location             string    `json:"location"`
	Coordinates          geo.Point `json:"coordinates"`
	Bio                  string    `json:"bio"`
	ImageURL             string    `json:"image_url"`
	Link                 string    `json:"link,omitempty"`
	PublishedAt          time.Time `json:"published_at"`
	DaysSincePublication int       `json:"days_since_publication"`
	ViewCount            int       `json:"view_count"`
	CommentCount         int       `json:"comment_count"`
}

func (p *Profile) HasImage() bool {
	return p.ImageURL != ""
}

// ProfilePage is one page of profiles plus the source's pagination metadata.
type ProfilePage struct {
	Profiles   []*Profile `json:"profiles"`
	Page       int        `json:"page"`
	PerPage    int        `json:"per_page"`
	TotalPages int        `json:"total_pages"`
	TotalPosts int        `json:"total_posts"`
}

// PostPage is one page of raw posts as returned by the content source.
type PostPage struct {
	Posts      []*RawPost
	TotalPages int
	TotalPosts int
}

// Comment is an approved comment on a profile post.
type Comment struct {
	ID        int       `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Date      time.Time `json:"date"`
	AvatarURL string    `json:"avatar_url"`
}

// CommentInput is a comment submitted for moderation.
type CommentInput struct {
	PostID      int    `json:"post_id" validate:"required,gt=0"`
	AuthorName  string `json:"author_name" validate:"required,max=100"`
	AuthorEmail string `json:"author_email" validate:"required,email"`
	Content     string `json:"content" validate:"required,max=1000"`
}

// CommentResult is the moderation status WordPress reports for a submission.
type CommentResult struct {
	Status string `json:"status"`
}
