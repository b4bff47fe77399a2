package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/harunmuya/gs-app/internal/domain"
	"github.com/harunmuya/gs-app/internal/repository"
)

const (
	MinDistanceKm = 1
	MaxDistanceKm = 1000
)

type SettingsUseCase struct {
	settingsRepo repository.SettingsRepository
	locationRepo repository.LocationRepository
}

func NewSettingsUseCase(settingsRepo repository.SettingsRepository, locationRepo repository.LocationRepository) *SettingsUseCase {
	return &SettingsUseCase{
		settingsRepo: settingsRepo,
		locationRepo: locationRepo,
	}
}

// UpdateSettingsRequest is a partial update; nil fields are left alone.
type UpdateSettingsRequest struct {
	MaxDistanceKm *int    `json:"max_distance_km" binding:"omitempty,min=1,max=1000"`
	NotifyMatches *bool   `json:"notify_matches"`
	Theme         *string `json:"theme" binding:"omitempty,oneof=light dark"`
}

type UpdateLocationRequest struct {
	Lat *float64 `json:"lat" binding:"required,min=-90,max=90"`
	Lng *float64 `json:"lng" binding:"required,min=-180,max=180"`
}

// Get returns stored settings, or the defaults if none were saved.
func (uc *SettingsUseCase) Get(ctx context.Context, userID int) (*domain.Settings, error) {
	s, err := uc.settingsRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			return domain.DefaultSettings(userID), nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return s, nil
}

func (uc *SettingsUseCase) Update(ctx context.Context, userID int, req *UpdateSettingsRequest) (*domain.Settings, error) {
	s, err := uc.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.MaxDistanceKm != nil {
		if *req.MaxDistanceKm < MinDistanceKm || *req.MaxDistanceKm > MaxDistanceKm {
			return nil, fmt.Errorf("%w: max_distance_km must be between %d and %d", domain.ErrInvalidInput, MinDistanceKm, MaxDistanceKm)
		}
		s.MaxDistanceKm = *req.MaxDistanceKm
	}
	if req.NotifyMatches != nil {
		s.NotifyMatches = *req.NotifyMatches
	}
	if req.Theme != nil {
		if *req.Theme != domain.ThemeLight && *req.Theme != domain.ThemeDark {
			return nil, fmt.Errorf("%w: theme must be light or dark", domain.ErrInvalidInput)
		}
		s.Theme = *req.Theme
	}

	if err := uc.settingsRepo.Upsert(ctx, s); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	return s, nil
}

func (uc *SettingsUseCase) UpdateLocation(ctx context.Context, userID int, lat, lng float64) (*domain.Location, error) {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("%w: coordinates out of range", domain.ErrInvalidInput)
	}
	loc := &domain.Location{UserID: userID, Latitude: lat, Longitude: lng}
	if err := uc.locationRepo.Upsert(ctx, loc); err != nil {
		return nil, fmt.Errorf("failed to save location: %w", err)
	}
	return loc, nil
}
