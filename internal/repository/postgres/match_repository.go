package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/harunmuya/gs-app/internal/domain"
	"github.com/harunmuya/gs-app/internal/repository"
)

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Upsert(ctx context.Context, match *domain.Match) error {
	if match.Icebreakers == nil {
		match.Icebreakers = pq.StringArray{}
	}
	query := `
		INSERT INTO matches (user_id, profile_id, profile_name, profile_image, profile_location, profile_bio, score, icebreakers)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, profile_id) DO UPDATE SET
			profile_name = EXCLUDED.profile_name,
			profile_image = EXCLUDED.profile_image,
			profile_location = EXCLUDED.profile_location,
			profile_bio = EXCLUDED.profile_bio,
			score = EXCLUDED.score
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		match.UserID, match.ProfileID, match.ProfileName, match.ProfileImage,
		match.ProfileLocation, match.ProfileBio, match.Score, match.Icebreakers,
	).Scan(&match.ID, &match.CreatedAt)
}

func (r *matchRepository) UpdateIcebreakers(ctx context.Context, id int, icebreakers []string) error {
	query := `UPDATE matches SET icebreakers = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, pq.Array(icebreakers), id)
	if err != nil {
		return err
	}
	return checkAffected(result, domain.ErrMatchNotFound)
}

func (r *matchRepository) ListByUser(ctx context.Context, userID int) ([]*domain.Match, error) {
	matches := []*domain.Match{}
	query := `
		SELECT id, user_id, profile_id, profile_name, profile_image, profile_location,
		       profile_bio, score, icebreakers, created_at
		FROM matches
		WHERE user_id = $1
		ORDER BY score DESC, created_at DESC
	`
	err := r.db.SelectContext(ctx, &matches, query, userID)
	return matches, err
}
