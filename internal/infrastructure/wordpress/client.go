// Package wordpress reads posts and comments from a WordPress REST API.
package wordpress

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"

	"github.com/harunmuya/gs-app/internal/domain"
	"github.com/harunmuya/gs-app/internal/extractor"
)

const (
	MaxComments = 50

	defaultTimeout   = 15 * time.Second
	userAgent        = "gs-app/1.0"
	anonymousAuthor  = "Anonymous"
	avatarSize       = "48"
	statusHold       = "hold"
	invalidPageError = "rest_post_invalid_page_number"
)

type Client struct {
	client *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", userAgent),
	}
}

// ListPosts fetches one page of posts, newest first, with embedded media.
// A page past the end yields an empty PostPage rather than an error.
func (c *Client) ListPosts(ctx context.Context, page, perPage int) (*domain.PostPage, error) {
	var posts []wpPost
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"page":     strconv.Itoa(page),
			"per_page": strconv.Itoa(perPage),
			"_embed":   "1",
			"orderby":  "date",
			"order":    "desc",
		}).
		SetResult(&posts).
		SetError(&wpError{}).
		Get("/posts")
	if err != nil {
		return nil, fmt.Errorf("%w: list posts: %v", domain.ErrUpstream, err)
	}

	if resp.IsError() {
		if apiErr, ok := resp.Error().(*wpError); ok && apiErr.Code == invalidPageError {
			return &domain.PostPage{Posts: []*domain.RawPost{}}, nil
		}
		return nil, fmt.Errorf("%w: list posts: status %d", domain.ErrUpstream, resp.StatusCode())
	}

	result := &domain.PostPage{
		Posts:      make([]*domain.RawPost, 0, len(posts)),
		TotalPages: headerInt(resp.Header(), "X-WP-TotalPages", 1),
		TotalPosts: headerInt(resp.Header(), "X-WP-Total", 0),
	}
	for i := range posts {
		result.Posts = append(result.Posts, toRawPost(&posts[i]))
	}

	logrus.WithFields(logrus.Fields{
		"page":     page,
		"per_page": perPage,
		"posts":    len(result.Posts),
	}).Debug("Fetched WordPress posts")

	return result, nil
}

func (c *Client) GetPost(ctx context.Context, id int) (*domain.RawPost, error) {
	var post wpPost
	resp, err := c.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.Itoa(id)).
		SetQueryParam("_embed", "1").
		SetResult(&post).
		Get("/posts/{id}")
	if err != nil {
		return nil, fmt.Errorf("%w: get post %d: %v", domain.ErrUpstream, id, err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, domain.ErrProfileNotFound
	case resp.IsError():
		return nil, fmt.Errorf("%w: get post %d: status %d", domain.ErrUpstream, id, resp.StatusCode())
	}

	return toRawPost(&post), nil
}

// ListComments returns up to MaxComments approved comments, newest first.
func (c *Client) ListComments(ctx context.Context, postID int) ([]*domain.Comment, error) {
	var raw []wpComment
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"post":     strconv.Itoa(postID),
			"per_page": strconv.Itoa(MaxComments),
			"orderby":  "date",
			"order":    "desc",
			"status":   "approve",
		}).
		SetResult(&raw).
		Get("/comments")
	if err != nil {
		return nil, fmt.Errorf("%w: list comments: %v", domain.ErrUpstream, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: list comments: status %d", domain.ErrUpstream, resp.StatusCode())
	}

	comments := make([]*domain.Comment, 0, len(raw))
	for _, rc := range raw {
		author := rc.AuthorName
		if author == "" {
			author = anonymousAuthor
		}
		comments = append(comments, &domain.Comment{
			ID:        rc.ID,
			Author:    author,
			Content:   extractor.PlainText(rc.Content.Rendered),
			Date:      parseWPTime(rc.DateGMT, rc.Date),
			AvatarURL: rc.AvatarURLs[avatarSize],
		})
	}
	return comments, nil
}

// CreateComment submits a comment for moderation. WordPress answers 409 for
// duplicates, which is reported as held rather than failed.
func (c *Client) CreateComment(ctx context.Context, in *domain.CommentInput) (*domain.CommentResult, error) {
	var out wpCommentResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(wpCommentRequest{
			Post:        in.PostID,
			AuthorName:  in.AuthorName,
			AuthorEmail: in.AuthorEmail,
			Content:     in.Content,
		}).
		SetResult(&out).
		Post("/comments")
	if err != nil {
		return nil, fmt.Errorf("%w: create comment: %v", domain.ErrUpstream, err)
	}

	if resp.StatusCode() == http.StatusConflict {
		return &domain.CommentResult{Status: statusHold}, nil
	}
	if resp.IsError() {
		logrus.WithFields(logrus.Fields{
			"post_id": in.PostID,
			"status":  resp.StatusCode(),
		}).Warn("WordPress rejected comment")
		return nil, &StatusError{Op: "create comment", Code: resp.StatusCode()}
	}

	status := out.Status
	if status == "" {
		status = statusHold
	}
	return &domain.CommentResult{Status: status}, nil
}

// StatusError carries the upstream HTTP status of a failed request.
type StatusError struct {
	Op   string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: wordpress returned status %d", e.Op, e.Code)
}

func (e *StatusError) Unwrap() error {
	return domain.ErrUpstream
}

// UpstreamStatus extracts the HTTP status from a StatusError.
func UpstreamStatus(err error) (int, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code, true
	}
	return 0, false
}

func toRawPost(p *wpPost) *domain.RawPost {
	return &domain.RawPost{
		ID:               p.ID,
		TitleHTML:        p.Title.Rendered,
		ContentHTML:      p.Content.Rendered,
		ExcerptHTML:      p.Excerpt.Rendered,
		PublishedAt:      parseWPTime(p.DateGMT, p.Date),
		CommentCount:     p.commentCount(),
		FeaturedImageURL: p.featuredImage(),
		Link:             p.Link,
	}
}

func headerInt(h http.Header, key string, fallback int) int {
	v, err := strconv.Atoi(h.Get(key))
	if err != nil {
		return fallback
	}
	return v
}
