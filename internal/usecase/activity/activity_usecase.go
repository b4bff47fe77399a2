package activity

import (
	"context"
	"fmt"

	"github.com/harunmuya/gs-app/internal/domain"
	"github.com/harunmuya/gs-app/internal/repository"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type ActivityUseCase struct {
	activityRepo repository.ActivityRepository
}

func NewActivityUseCase(activityRepo repository.ActivityRepository) *ActivityUseCase {
	return &ActivityUseCase{activityRepo: activityRepo}
}

// List returns the newest entries first.
func (uc *ActivityUseCase) List(ctx context.Context, userID, limit, offset int) ([]*domain.ActivityEntry, error) {
	switch {
	case limit <= 0:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := uc.activityRepo.List(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	return entries, nil
}

func (uc *ActivityUseCase) UnreadCount(ctx context.Context, userID int) (int, error) {
	return uc.activityRepo.CountUnread(ctx, userID)
}

func (uc *ActivityUseCase) MarkRead(ctx context.Context, userID, id int) error {
	return uc.activityRepo.MarkRead(ctx, userID, id)
}

func (uc *ActivityUseCase) MarkAllRead(ctx context.Context, userID int) (int64, error) {
	return uc.activityRepo.MarkAllRead(ctx, userID)
}
