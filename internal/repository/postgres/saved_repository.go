package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/harunmuya/gs-app/internal/domain"
	"github.com/harunmuya/gs-app/internal/repository"
)

type savedRepository struct {
	db *sqlx.DB
}

func NewSavedRepository(db *sqlx.DB) repository.SavedRepository {
	return &savedRepository{db: db}
}

func (r *savedRepository) Create(ctx context.Context, saved *domain.SavedProfile) error {
	query := `
		INSERT INTO saved_profiles (user_id, profile_id, profile_name, profile_image, profile_location)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		saved.UserID, saved.ProfileID, saved.ProfileName, saved.ProfileImage, saved.ProfileLocation,
	).Scan(&saved.ID, &saved.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrAlreadySaved
	}
	return err
}

func (r *savedRepository) Delete(ctx context.Context, userID, profileID int) error {
	query := `DELETE FROM saved_profiles WHERE user_id = $1 AND profile_id = $2`
	result, err := r.db.ExecContext(ctx, query, userID, profileID)
	if err != nil {
		return err
	}
	return checkAffected(result, domain.ErrSavedNotFound)
}

func (r *savedRepository) ListByUser(ctx context.Context, userID int) ([]*domain.SavedProfile, error) {
	saved := []*domain.SavedProfile{}
	query := `
		SELECT id, user_id, profile_id, profile_name, profile_image, profile_location, created_at
		FROM saved_profiles
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &saved, query, userID)
	return saved, err
}
