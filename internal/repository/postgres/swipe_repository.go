package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/harunmuya/gs-app/internal/domain"
	"github.com/harunmuya/gs-app/internal/repository"
)

type swipeRepository struct {
	db *sqlx.DB
}

func NewSwipeRepository(db *sqlx.DB) repository.SwipeRepository {
	return &swipeRepository{db: db}
}

func (r *swipeRepository) CreateLike(ctx context.Context, like *domain.Like) error {
	query := `
		INSERT INTO likes (user_id, profile_id, profile_name, profile_image, profile_location)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		like.UserID, like.ProfileID, like.ProfileName, like.ProfileImage, like.ProfileLocation,
	).Scan(&like.ID, &like.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyLiked
	}
	return err
}

func (r *swipeRepository) CreatePass(ctx context.Context, pass *domain.Pass) error {
	query := `
		INSERT INTO passes (user_id, profile_id)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, pass.UserID, pass.ProfileID).Scan(&pass.ID, &pass.CreatedAt)
	if isUniqueViolation(err) {
		return domain.ErrAlreadyPassed
	}
	return err
}

func (r *swipeRepository) ListLikes(ctx context.Context, userID int) ([]*domain.Like, error) {
	likes := []*domain.Like{}
	query := `
		SELECT id, user_id, profile_id, profile_name, profile_image, profile_location, created_at
		FROM likes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &likes, query, userID)
	return likes, err
}

func (r *swipeRepository) SwipedProfileIDs(ctx context.Context, userID int) ([]int, error) {
	ids := []int{}
	query := `
		SELECT profile_id FROM likes WHERE user_id = $1
		UNION
		SELECT profile_id FROM passes WHERE user_id = $1
	`
	err := r.db.SelectContext(ctx, &ids, query, userID)
	return ids, err
}

func (r *swipeRepository) DeletePasses(ctx context.Context, userID int) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM passes WHERE user_id = $1`, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
