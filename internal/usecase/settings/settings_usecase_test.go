package settings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/harunmuya/gs-app/internal/domain"
	"github.com/harunmuya/gs-app/internal/repository/mocks"
)

func ptr[T any](v T) *T { return &v }

func TestGet_Defaults(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.SettingsRepository{}
	repo.On("Get", ctx, 3).Return(nil, domain.ErrSettingsNotFound)

	s, err := NewSettingsUseCase(repo, nil).Get(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 100, s.MaxDistanceKm)
	assert.True(t, s.NotifyMatches)
	assert.Equal(t, domain.ThemeLight, s.Theme)
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name    string
		req     UpdateSettingsRequest
		want    *domain.Settings
		wantErr bool
	}{
		{
			name: "partial",
			req:  UpdateSettingsRequest{Theme: ptr("dark")},
			want: &domain.Settings{UserID: 3, MaxDistanceKm: 100, NotifyMatches: true, Theme: "dark"},
		},
		{
			name: "all fields",
			req:  UpdateSettingsRequest{MaxDistanceKm: ptr(25), NotifyMatches: ptr(false), Theme: ptr("light")},
			want: &domain.Settings{UserID: 3, MaxDistanceKm: 25, NotifyMatches: false, Theme: "light"},
		},
		{name: "distance too small", req: UpdateSettingsRequest{MaxDistanceKm: ptr(0)}, wantErr: true},
		{name: "distance too large", req: UpdateSettingsRequest{MaxDistanceKm: ptr(1001)}, wantErr: true},
		{name: "bad theme", req: UpdateSettingsRequest{Theme: ptr("pink")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			repo := &mocks.SettingsRepository{}
			repo.On("Get", ctx, 3).Return(nil, domain.ErrSettingsNotFound)
			repo.On("Upsert", ctx, mock.Anything).Return(nil)

			got, err := NewSettingsUseCase(repo, nil).Update(ctx, 3, &tt.req)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpdateLocation(t *testing.T) {
	ctx := context.Background()
	locations := &mocks.LocationRepository{}
	locations.On("Upsert", ctx, &domain.Location{UserID: 3, Latitude: -1.29, Longitude: 36.82}).Return(nil)

	uc := NewSettingsUseCase(nil, locations)

	loc, err := uc.UpdateLocation(ctx, 3, -1.29, 36.82)
	require.NoError(t, err)
	assert.Equal(t, -1.29, loc.Latitude)

	_, err = uc.UpdateLocation(ctx, 3, 91, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.UpdateLocation(ctx, 3, 0, -181)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
