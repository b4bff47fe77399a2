package feed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/harunmuya/gs-app/internal/domain"
	"github.com/harunmuya/gs-app/internal/geo"
	"github.com/harunmuya/gs-app/internal/matching"
	"github.com/harunmuya/gs-app/internal/repository/mocks"
)

type mockLister struct{ mock.Mock }

func (m *mockLister) ListProfiles(ctx context.Context, page, perPage int) (*domain.ProfilePage, error) {
	args := m.Called(ctx, page, perPage)
	p, _ := args.Get(0).(*domain.ProfilePage)
	return p, args.Error(1)
}

var (
	nairobi, _ = geo.Lookup("Nairobi")
	mombasa, _ = geo.Lookup("Mombasa")
	thika, _   = geo.Lookup("Thika")
)

func profilesPage() *domain.ProfilePage {
	return &domain.ProfilePage{
		Profiles: []*domain.Profile{
			{ID: 1, Name: "Far", Location: "Mombasa", Coordinates: mombasa, DaysSincePublication: 2, ImageURL: "x"},
			{ID: 2, Name: "Near", Location: "Nairobi", Coordinates: nairobi, DaysSincePublication: 2, ImageURL: "x"},
			{ID: 3, Name: "Swiped", Location: "Nairobi", Coordinates: nairobi, DaysSincePublication: 2, ImageURL: "x"},
			{ID: 4, Name: "Thika", Location: "Thika", Coordinates: thika, DaysSincePublication: 2, ImageURL: "x"},
		},
		Page:       1,
		PerPage:    20,
		TotalPages: 1,
		TotalPosts: 4,
	}
}

type fixture struct {
	uc        *FeedUseCase
	lister    *mockLister
	swipes    *mocks.SwipeRepository
	locations *mocks.LocationRepository
	settings  *mocks.SettingsRepository
}

func newFixture() *fixture {
	cfg := matching.DefaultConfig()
	cfg.MaxJitter = 0
	f := &fixture{
		lister:    &mockLister{},
		swipes:    &mocks.SwipeRepository{},
		locations: &mocks.LocationRepository{},
		settings:  &mocks.SettingsRepository{},
	}
	f.uc = NewFeedUseCase(f.lister, matching.NewScorer(cfg, nil), f.swipes, f.locations, f.settings)
	return f
}

func ids(items []*Item) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestDiscover_RanksAndExcludesSwiped(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.lister.On("ListProfiles", ctx, 1, 20).Return(profilesPage(), nil)
	f.swipes.On("SwipedProfileIDs", ctx, 7).Return([]int{3}, nil)
	f.settings.On("Get", ctx, 7).Return(nil, domain.ErrSettingsNotFound)

	page, err := f.uc.Discover(ctx, 7, Query{Page: 1, PerPage: 20, Viewer: &nairobi})
	require.NoError(t, err)

	assert.Equal(t, []int{2, 4, 1}, ids(page.Profiles))
	require.NotNil(t, page.Profiles[0].DistanceKm)
	assert.InDelta(t, 0, *page.Profiles[0].DistanceKm, 0.001)
	assert.Equal(t, 4, page.TotalPosts)
	f.locations.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestDiscover_MaxDistance(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.lister.On("ListProfiles", ctx, 1, 20).Return(profilesPage(), nil)
	f.swipes.On("SwipedProfileIDs", ctx, 7).Return([]int{}, nil)
	f.locations.On("Get", ctx, 7).Return(&domain.Location{UserID: 7, Latitude: nairobi.Lat, Longitude: nairobi.Lng}, nil)
	f.settings.On("Get", ctx, 7).Return(&domain.Settings{MaxDistanceKm: 100}, nil)

	page, err := f.uc.Discover(ctx, 7, Query{Page: 1, PerPage: 20})
	require.NoError(t, err)

	assert.Equal(t, []int{3, 2, 4}, ids(page.Profiles))
}

func TestDiscover_UnknownViewer(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.lister.On("ListProfiles", ctx, 1, 20).Return(profilesPage(), nil)
	f.swipes.On("SwipedProfileIDs", ctx, 7).Return([]int{}, nil)
	f.locations.On("Get", ctx, 7).Return(nil, domain.ErrLocationNotFound)
	f.settings.On("Get", ctx, 7).Return(&domain.Settings{MaxDistanceKm: 10}, nil)

	page, err := f.uc.Discover(ctx, 7, Query{Page: 1, PerPage: 20})
	require.NoError(t, err)

	require.Len(t, page.Profiles, 4)
	for _, it := range page.Profiles {
		assert.Nil(t, it.DistanceKm)
	}
	// Equal scores fall back to the newest profile id first.
	assert.Equal(t, []int{4, 3, 2, 1}, ids(page.Profiles))
}

func TestDiscover_Errors(t *testing.T) {
	ctx := context.Background()

	f := newFixture()
	f.lister.On("ListProfiles", ctx, 1, 20).Return(nil, domain.ErrUpstream)
	_, err := f.uc.Discover(ctx, 7, Query{Page: 1, PerPage: 20})
	assert.ErrorIs(t, err, domain.ErrUpstream)

	f = newFixture()
	f.lister.On("ListProfiles", ctx, 1, 20).Return(profilesPage(), nil)
	f.swipes.On("SwipedProfileIDs", ctx, 7).Return(nil, errors.New("db down"))
	_, err = f.uc.Discover(ctx, 7, Query{Page: 1, PerPage: 20})
	assert.Error(t, err)
}

func TestSortItems(t *testing.T) {
	items := []*Item{
		{Profile: &domain.Profile{ID: 1}, MatchScore: 70},
		{Profile: &domain.Profile{ID: 5}, MatchScore: 70},
		{Profile: &domain.Profile{ID: 2}, MatchScore: 90},
	}
	SortItems(items)
	assert.Equal(t, []int{2, 5, 1}, ids(items))
}
