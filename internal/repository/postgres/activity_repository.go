package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/harunmuya/gs-app/internal/domain"
	"github.com/harunmuya/gs-app/internal/repository"
)

type activityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, entry *domain.ActivityEntry) error {
	query := `
		INSERT INTO activity (user_id, type, profile_id, title, message, image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, is_read, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		entry.UserID, entry.Type, entry.ProfileID, entry.Title, entry.Message, entry.Image,
	).Scan(&entry.ID, &entry.IsRead, &entry.CreatedAt)
}

func (r *activityRepository) List(ctx context.Context, userID, limit, offset int) ([]*domain.ActivityEntry, error) {
	entries := []*domain.ActivityEntry{}
	query := `
		SELECT id, user_id, type, profile_id, title, message, image, is_read, created_at
		FROM activity
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	err := r.db.SelectContext(ctx, &entries, query, userID, limit, offset)
	return entries, err
}

func (r *activityRepository) CountUnread(ctx context.Context, userID int) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM activity WHERE user_id = $1 AND is_read = FALSE`
	err := r.db.GetContext(ctx, &count, query, userID)
	return count, err
}

func (r *activityRepository) MarkRead(ctx context.Context, userID, id int) error {
	query := `UPDATE activity SET is_read = TRUE WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	return checkAffected(result, domain.ErrActivityNotFound)
}

func (r *activityRepository) MarkAllRead(ctx context.Context, userID int) (int64, error) {
	query := `UPDATE activity SET is_read = TRUE WHERE user_id = $1 AND is_read = FALSE`
	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type settingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) repository.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context, userID int) (*domain.Settings, error) {
	var s domain.Settings
	query := `SELECT user_id, max_distance_km, notify_matches, theme, updated_at FROM user_settings WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &s, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *settingsRepository) Upsert(ctx context.Context, s *domain.Settings) error {
	query := `
		INSERT INTO user_settings (user_id, max_distance_km, notify_matches, theme, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			max_distance_km = EXCLUDED.max_distance_km,
			notify_matches = EXCLUDED.notify_matches,
			theme = EXCLUDED.theme,
			updated_at = NOW()
		RETURNING updated_at
	`
	return r.db.QueryRowContext(ctx, query, s.UserID, s.MaxDistanceKm, s.NotifyMatches, s.Theme).Scan(&s.UpdatedAt)
}

type locationRepository struct {
	db *sqlx.DB
}

func NewLocationRepository(db *sqlx.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Get(ctx context.Context, userID int) (*domain.Location, error) {
	var loc domain.Location
	query := `SELECT user_id, latitude, longitude, updated_at FROM user_locations WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &loc, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, err
	}
	return &loc, nil
}

func (r *locationRepository) Upsert(ctx context.Context, loc *domain.Location) error {
	query := `
		INSERT INTO user_locations (user_id, latitude, longitude, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			updated_at = NOW()
		RETURNING updated_at
	`
	return r.db.QueryRowContext(ctx, query, loc.UserID, loc.Latitude, loc.Longitude).Scan(&loc.UpdatedAt)
}
