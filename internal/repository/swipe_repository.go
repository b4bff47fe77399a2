package repository

import (
	"context"

	"github.com/harunmuya/gs-app/internal/domain"
)

// SwipeRepository stores likes and passes. Both are unique per
// (user, profile); a repeat insert returns ErrAlreadyLiked or ErrAlreadyPassed.
type SwipeRepository interface {
	CreateLike(ctx context.Context, like *domain.Like) error
	CreatePass(ctx context.Context, pass *domain.Pass) error
	ListLikes(ctx context.Context, userID int) ([]*domain.Like, error)
	// SwipedProfileIDs returns every profile the user liked or passed.
	SwipedProfileIDs(ctx context.Context, userID int) ([]int, error)
	DeletePasses(ctx context.Context, userID int) (int64, error)
}

type MatchRepository interface {
	// Upsert inserts the match or refreshes the existing one for the same
	// (user, profile) pair, filling in ID and CreatedAt.
	Upsert(ctx context.Context, match *domain.Match) error
	UpdateIcebreakers(ctx context.Context, id int, icebreakers []string) error
	ListByUser(ctx context.Context, userID int) ([]*domain.Match, error)
}

type SavedRepository interface {
	Create(ctx context.Context, saved *domain.SavedProfile) error
	Delete(ctx context.Context, userID, profileID int) error
	ListByUser(ctx context.Context, userID int) ([]*domain.SavedProfile, error)
}
