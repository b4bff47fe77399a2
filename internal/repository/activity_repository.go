package repository

import (
	"context"

	"github.com/harunmuya/gs-app/internal/domain"
)

type ActivityRepository interface {
	Create(ctx context.Context, entry *domain.ActivityEntry) error
	List(ctx context.Context, userID, limit, offset int) ([]*domain.ActivityEntry, error)
	CountUnread(ctx context.Context, userID int) (int, error)
	MarkRead(ctx context.Context, userID, id int) error
	MarkAllRead(ctx context.Context, userID int) (int64, error)
}

type SettingsRepository interface {
	Get(ctx context.Context, userID int) (*domain.Settings, error)
	Upsert(ctx context.Context, settings *domain.Settings) error
}

type LocationRepository interface {
	Get(ctx context.Context, userID int) (*domain.Location, error)
	Upsert(ctx context.Context, location *domain.Location) error
}
