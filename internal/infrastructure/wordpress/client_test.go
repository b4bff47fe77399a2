package wordpress

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harunmuya/gs-app/internal/domain"
)

const postsJSON = `[
  {
    "id": 101,
    "date": "2026-10-08T15:00:00",
    "date_gmt": "2026-10-08T12:00:00",
    "link": "https://example.com/caroline",
    "title": {"rendered": "Caroline Nduta Sugar Mummy in Nakuru"},
    "content": {"rendered": "<p>I&#8217;m 34 years old</p>"},
    "excerpt": {"rendered": "<p>Hello there</p>"},
    "comment_count": 4,
    "jetpack_featured_media_url": "https://example.com/jetpack.jpg"
  },
  {
    "id": 102,
    "date": "2026-10-01T09:30:00",
    "title": {"rendered": "Mary from Kisumu"},
    "content": {"rendered": ""},
    "excerpt": {"rendered": ""},
    "_embedded": {
      "wp:featuredmedia": [{"source_url": "", "media_details": {"sizes": {"large": {"source_url": "https://example.com/large.jpg"}}}}],
      "replies": [[{"id": 1}, {"id": 2}]]
    }
  },
  {
    "id": 103,
    "date_gmt": "2026-10-02T00:00:00",
    "title": {"rendered": "No image"},
    "content": {"rendered": ""},
    "excerpt": {"rendered": ""},
    "_embedded": {"wp:featuredmedia": [{"source_url": "https://example.com/embedded.jpg"}]}
  }
]`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func TestListPosts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "3", q.Get("per_page"))
		assert.Equal(t, "date", q.Get("orderby"))
		assert.Equal(t, "desc", q.Get("order"))
		assert.True(t, q.Has("_embed"))

		w.Header().Set("X-WP-TotalPages", "7")
		w.Header().Set("X-WP-Total", "21")
		writeJSON(w, http.StatusOK, postsJSON)
	})

	page, err := client.ListPosts(context.Background(), 2, 3)
	require.NoError(t, err)
	require.Len(t, page.Posts, 3)
	assert.Equal(t, 7, page.TotalPages)
	assert.Equal(t, 21, page.TotalPosts)

	first := page.Posts[0]
	assert.Equal(t, 101, first.ID)
	assert.Equal(t, "Caroline Nduta Sugar Mummy in Nakuru", first.TitleHTML)
	assert.Equal(t, "https://example.com/jetpack.jpg", first.FeaturedImageURL)
	assert.Equal(t, 4, first.CommentCount)
	assert.Equal(t, time.Date(2026, 10, 8, 12, 0, 0, 0, time.UTC), first.PublishedAt)
	assert.Equal(t, "https://example.com/caroline", first.Link)

	second := page.Posts[1]
	assert.Equal(t, "https://example.com/large.jpg", second.FeaturedImageURL)
	assert.Equal(t, 2, second.CommentCount)
	assert.Equal(t, time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC), second.PublishedAt)

	assert.Equal(t, "https://example.com/embedded.jpg", page.Posts[2].FeaturedImageURL)
}

func TestListPosts_PastLastPage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"code":"rest_post_invalid_page_number","message":"The page number requested is larger than the number of pages available."}`)
	})

	page, err := client.ListPosts(context.Background(), 99, 20)
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
}

func TestListPosts_UpstreamFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, `{"code":"boom"}`)
	})

	_, err := client.ListPosts(context.Background(), 1, 20)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestGetPost(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/posts/101":
			writeJSON(w, http.StatusOK, `{"id":101,"date_gmt":"2026-10-08T12:00:00","title":{"rendered":"Caroline"},"content":{"rendered":""},"excerpt":{"rendered":""}}`)
		default:
			writeJSON(w, http.StatusNotFound, `{"code":"rest_post_invalid_id"}`)
		}
	})

	post, err := client.GetPost(context.Background(), 101)
	require.NoError(t, err)
	assert.Equal(t, 101, post.ID)
	assert.Equal(t, "Caroline", post.TitleHTML)

	_, err = client.GetPost(context.Background(), 5)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}

func TestListComments(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/comments", r.URL.Path)
		assert.Equal(t, "101", q.Get("post"))
		assert.Equal(t, "50", q.Get("per_page"))
		assert.Equal(t, "approve", q.Get("status"))

		writeJSON(w, http.StatusOK, `[
			{"id":9,"author_name":"Brian","date":"2026-10-10T08:00:00","content":{"rendered":"<p>Hi <b>there</b></p>"},"author_avatar_urls":{"24":"a24","48":"a48"}},
			{"id":8,"author_name":"","date":"2026-10-09T08:00:00","content":{"rendered":"<p>Second</p>"}}
		]`)
	})

	comments, err := client.ListComments(context.Background(), 101)
	require.NoError(t, err)
	require.Len(t, comments, 2)

	assert.Equal(t, "Brian", comments[0].Author)
	assert.Equal(t, "Hi there", comments[0].Content)
	assert.Equal(t, "a48", comments[0].AvatarURL)
	assert.Equal(t, "Anonymous", comments[1].Author)
	assert.Empty(t, comments[1].AvatarURL)
}

func TestCreateComment(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus string
		wantCode   int
	}{
		{name: "held", status: http.StatusCreated, body: `{"id":1,"status":"hold"}`, wantStatus: "hold"},
		{name: "approved", status: http.StatusCreated, body: `{"id":1,"status":"approved"}`, wantStatus: "approved"},
		{name: "missing status", status: http.StatusCreated, body: `{"id":1}`, wantStatus: "hold"},
		{name: "duplicate", status: http.StatusConflict, body: `{"code":"comment_duplicate"}`, wantStatus: "hold"},
		{name: "forbidden", status: http.StatusForbidden, body: `{"code":"rest_comment_login_required"}`, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				var got wpCommentRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, 101, got.Post)
				assert.Equal(t, "jane@example.com", got.AuthorEmail)
				writeJSON(w, tt.status, tt.body)
			})

			res, err := client.CreateComment(context.Background(), &domain.CommentInput{
				PostID:      101,
				AuthorName:  "Jane",
				AuthorEmail: "jane@example.com",
				Content:     "Hello",
			})

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrUpstream)
				code, ok := UpstreamStatus(err)
				assert.True(t, ok)
				assert.Equal(t, tt.wantCode, code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
		})
	}
}

func TestParseWPTime(t *testing.T) {
	assert.Equal(t, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), parseWPTime("2026-01-02T03:04:05", ""))
	assert.Equal(t, time.Date(2026, 1, 2, 6, 4, 5, 0, time.UTC), parseWPTime("", "2026-01-02T06:04:05"))
	assert.True(t, parseWPTime("", "garbage").IsZero())
}
