package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/harunmuya/gs-app/internal/delivery/http/handler"
	"github.com/harunmuya/gs-app/internal/delivery/http/middleware"
	"github.com/harunmuya/gs-app/internal/domain"
	"github.com/harunmuya/gs-app/internal/extractor"
	"github.com/harunmuya/gs-app/internal/matching"
	"github.com/harunmuya/gs-app/internal/repository/mocks"
	"github.com/harunmuya/gs-app/internal/usecase/activity"
	"github.com/harunmuya/gs-app/internal/usecase/auth"
	"github.com/harunmuya/gs-app/internal/usecase/comment"
	"github.com/harunmuya/gs-app/internal/usecase/feed"
	"github.com/harunmuya/gs-app/internal/usecase/profile"
	"github.com/harunmuya/gs-app/internal/usecase/settings"
	"github.com/harunmuya/gs-app/internal/usecase/swipe"
)

type stubSource struct {
	posts map[int]*domain.RawPost
	err   error
}

func (s *stubSource) ListPosts(_ context.Context, page, perPage int) (*domain.PostPage, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := &domain.PostPage{TotalPages: 1, TotalPosts: len(s.posts)}
	for _, p := range s.posts {
		out.Posts = append(out.Posts, p)
	}
	return out, nil
}

func (s *stubSource) GetPost(_ context.Context, id int) (*domain.RawPost, error) {
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.posts[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (s *stubSource) ListComments(context.Context, int) ([]*domain.Comment, error) {
	return nil, s.err
}

func (s *stubSource) CreateComment(context.Context, *domain.CommentInput) (*domain.CommentResult, error) {
	return &domain.CommentResult{Status: "hold"}, s.err
}

type testEnv struct {
	router   *gin.Engine
	users    *mocks.UserRepository
	sessions *mocks.SessionRepository
	swipes   *mocks.SwipeRepository
	matches  *mocks.MatchRepository
	saved    *mocks.SavedRepository
	activity *mocks.ActivityRepository
	settings *mocks.SettingsRepository
	source   *stubSource
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:    &mocks.UserRepository{},
		sessions: &mocks.SessionRepository{},
		swipes:   &mocks.SwipeRepository{},
		matches:  &mocks.MatchRepository{},
		saved:    &mocks.SavedRepository{},
		activity: &mocks.ActivityRepository{},
		settings: &mocks.SettingsRepository{},
		source: &stubSource{posts: map[int]*domain.RawPost{
			101: {
				ID:               101,
				TitleHTML:        "Sugar Mummy In Nairobi Looking For A Young Man",
				ContentHTML:      "<p>Caroline is 38 and lives in Westlands.</p>",
				PublishedAt:      time.Now().Add(-48 * time.Hour),
				FeaturedImageURL: "https://example.com/caroline.jpg",
			},
		}},
	}
	locations := &mocks.LocationRepository{}
	locations.On("Get", mock.Anything, mock.Anything).Return(nil, domain.ErrLocationNotFound)
	env.activity.On("Create", mock.Anything, mock.Anything).Return(nil)

	scorer := matching.NewScorer(matching.DefaultConfig(), matching.NewSeededSource(1))
	policy := matching.NewFlatPolicy(0, matching.NewSeededSource(2))

	authUC := auth.NewAuthUseCase(env.users, env.sessions, strings.Repeat("s", 32), time.Hour)
	profileUC := profile.NewProfileUseCase(env.source, extractor.New(), nil, time.Minute, env.activity)
	swipeUC := swipe.NewSwipeUseCase(profileUC, scorer, policy, env.swipes, env.matches, env.saved, env.activity, locations, nil)
	feedUC := feed.NewFeedUseCase(profileUC, scorer, env.swipes, locations, env.settings)

	env.router = NewRouter(
		handler.NewAuthHandler(authUC),
		handler.NewProfileHandler(profileUC),
		handler.NewCommentHandler(comment.NewCommentUseCase(env.source)),
		handler.NewFeedHandler(feedUC),
		handler.NewSwipeHandler(swipeUC),
		handler.NewActivityHandler(activity.NewActivityUseCase(env.activity)),
		handler.NewSettingsHandler(settings.NewSettingsUseCase(env.settings, locations)),
		handler.NewHealthHandler(nil),
		middleware.NewAuthMiddleware(authUC),
	).Setup()
	return env
}

// login issues a guest token for user 5 and makes it verifiable.
func (env *testEnv) login(t *testing.T) string {
	t.Helper()

	var session *domain.Session
	env.users.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.User).ID = 5
	}).Return(nil).Once()
	env.sessions.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		session = args.Get(1).(*domain.Session)
	}).Return(nil).Once()

	w := env.do(http.MethodPost, "/api/v1/auth/guest", "", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp auth.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, session)
	env.sessions.On("GetByID", mock.Anything, session.ID).Return(session, nil)
	return resp.Token
}

func (env *testEnv) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv()

	for _, path := range []string{"/api/v1/feed", "/api/v1/matches", "/api/v1/settings", "/api/v1/auth/me"} {
		w := env.do(http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := env.do(http.MethodGet, "/api/v1/feed", "not-a-jwt", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuestThenMe(t *testing.T) {
	env := newTestEnv()
	token := env.login(t)
	env.users.On("GetByID", mock.Anything, 5).Return(&domain.User{ID: 5, DisplayName: "Guest", IsGuest: true}, nil)

	w := env.do(http.MethodGet, "/api/v1/auth/me", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var user domain.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, 5, user.ID)
	assert.True(t, user.IsGuest)
}

func TestDeleteAccount(t *testing.T) {
	env := newTestEnv()
	token := env.login(t)
	env.users.On("Delete", mock.Anything, 5).Return(nil).Once()
	env.users.On("Delete", mock.Anything, 5).Return(domain.ErrUserNotFound).Once()

	w := env.do(http.MethodDelete, "/api/v1/auth/me", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"account deleted"}`, w.Body.String())

	w = env.do(http.MethodDelete, "/api/v1/auth/me", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodDelete, "/api/v1/auth/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	env.users.AssertExpectations(t)
}

func TestLike(t *testing.T) {
	env := newTestEnv()
	token := env.login(t)
	env.swipes.On("CreateLike", mock.Anything, mock.Anything).Return(nil).Once()

	w := env.do(http.MethodPost, "/api/v1/swipes/like", token, `{"profile_id":101}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp swipe.LikeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Liked)
	assert.False(t, resp.IsMatch)
	assert.GreaterOrEqual(t, resp.Score, 55)
	assert.LessOrEqual(t, resp.Score, 99)
}

func TestLike_Duplicate(t *testing.T) {
	env := newTestEnv()
	token := env.login(t)
	env.swipes.On("CreateLike", mock.Anything, mock.Anything).Return(domain.ErrAlreadyLiked)

	w := env.do(http.MethodPost, "/api/v1/swipes/like", token, `{"profile_id":101}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"duplicate":true,"message":"already liked"}`, w.Body.String())
}

func TestLike_Errors(t *testing.T) {
	env := newTestEnv()
	token := env.login(t)

	w := env.do(http.MethodPost, "/api/v1/swipes/like", token, `{"profile_id":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPost, "/api/v1/swipes/like", token, `{"profile_id":999}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPass_Duplicate(t *testing.T) {
	env := newTestEnv()
	token := env.login(t)
	env.swipes.On("CreatePass", mock.Anything, mock.Anything).Return(domain.ErrAlreadyPassed)

	w := env.do(http.MethodPost, "/api/v1/swipes/pass", token, `{"profile_id":101}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"duplicate":true`)
}

func TestListLikes(t *testing.T) {
	env := newTestEnv()
	token := env.login(t)
	env.swipes.On("ListLikes", mock.Anything, 5).Return(nil, nil).Once()
	env.swipes.On("ListLikes", mock.Anything, 5).Return([]*domain.Like{{ID: 1, UserID: 5, ProfileID: 101}}, nil).Once()

	w := env.do(http.MethodGet, "/api/v1/likes", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"likes":[]}`, w.Body.String())

	w = env.do(http.MethodGet, "/api/v1/likes", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"profile_id":101`)
}

func TestListMatches(t *testing.T) {
	env := newTestEnv()
	token := env.login(t)
	now := time.Now()
	env.matches.On("ListByUser", mock.Anything, 5).Return([]*domain.Match{
		{ID: 2, UserID: 5, ProfileID: 102, Score: 91, CreatedAt: now},
		{ID: 1, UserID: 5, ProfileID: 101, Score: 60, CreatedAt: now.Add(-time.Hour)},
	}, nil)

	w := env.do(http.MethodGet, "/api/v1/matches", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Matches []struct {
			ProfileID int `json:"profile_id"`
			Score     int `json:"score"`
		} `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Matches, 2)
	assert.Equal(t, 102, resp.Matches[0].ProfileID)
	assert.Equal(t, 91, resp.Matches[0].Score)
	assert.Equal(t, 101, resp.Matches[1].ProfileID)
}

func TestSaved(t *testing.T) {
	env := newTestEnv()
	token := env.login(t)
	env.saved.On("ListByUser", mock.Anything, 5).Return([]*domain.SavedProfile{
		{ID: 4, UserID: 5, ProfileID: 101, ProfileName: "Caroline"},
	}, nil)
	env.saved.On("Delete", mock.Anything, 5, 101).Return(nil)
	env.saved.On("Delete", mock.Anything, 5, 999).Return(domain.ErrSavedNotFound)

	w := env.do(http.MethodGet, "/api/v1/saved", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"profile_name":"Caroline"`)

	w = env.do(http.MethodDelete, "/api/v1/saved/101", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"removed"}`, w.Body.String())

	w = env.do(http.MethodDelete, "/api/v1/saved/999", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodDelete, "/api/v1/saved/abc", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env.saved.AssertExpectations(t)
}

func TestFeed(t *testing.T) {
	env := newTestEnv()
	token := env.login(t)
	env.swipes.On("SwipedProfileIDs", mock.Anything, 5).Return([]int{}, nil)
	env.settings.On("Get", mock.Anything, 5).Return(nil, domain.ErrSettingsNotFound)

	w := env.do(http.MethodGet, "/api/v1/feed?lat=-1.2921&lng=36.8219", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	var page struct {
		Profiles []struct {
			ID         int      `json:"id"`
			MatchScore int      `json:"match_score"`
			DistanceKm *float64 `json:"distance_km"`
		} `json:"profiles"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	require.Len(t, page.Profiles, 1)
	assert.Equal(t, 101, page.Profiles[0].ID)
	assert.NotNil(t, page.Profiles[0].DistanceKm)

	w = env.do(http.MethodGet, "/api/v1/feed?lat=abc", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProfiles_UpstreamFailure(t *testing.T) {
	env := newTestEnv()
	env.source.err = domain.ErrUpstream

	w := env.do(http.MethodGet, "/api/v1/profiles", "", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.JSONEq(t, `{"error":"content source unavailable"}`, w.Body.String())
}

func TestComments(t *testing.T) {
	env := newTestEnv()

	w := env.do(http.MethodGet, "/api/v1/comments?post=abc", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPost, "/api/v1/comments", "",
		`{"post_id":101,"author_name":"Jane","author_email":"not-an-email","content":"hi"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPost, "/api/v1/comments", "",
		`{"post_id":101,"author_name":"Jane","author_email":"jane@example.com","content":"hi"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"status":"hold"}`, w.Body.String())
}

func TestSettings(t *testing.T) {
	env := newTestEnv()
	token := env.login(t)
	env.settings.On("Get", mock.Anything, 5).Return(nil, domain.ErrSettingsNotFound)
	env.settings.On("Upsert", mock.Anything, mock.Anything).Return(nil)

	w := env.do(http.MethodGet, "/api/v1/settings", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"max_distance_km":100`)

	w = env.do(http.MethodPut, "/api/v1/settings", token, `{"theme":"neon"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodPut, "/api/v1/settings", token, `{"max_distance_km":30}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"max_distance_km":30`)
}

func TestActivity(t *testing.T) {
	env := newTestEnv()
	token := env.login(t)
	env.activity.On("List", mock.Anything, 5, 100, 0).Return(nil, nil)
	env.activity.On("MarkRead", mock.Anything, 5, 3).Return(domain.ErrActivityNotFound)

	w := env.do(http.MethodGet, "/api/v1/activity?limit=500", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"activity":[]}`, w.Body.String())

	w = env.do(http.MethodPut, "/api/v1/activity/3/read", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrInvalidLogin, http.StatusUnauthorized},
		{domain.ErrProfileNotFound, http.StatusNotFound},
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrUpstream, http.StatusBadGateway},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, handler.StatusFor(tt.err), tt.err.Error())
	}
}
