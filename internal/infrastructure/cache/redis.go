package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/harunmuya/gs-app/internal/domain"
)

// Redis keeps pages as JSON so several API instances share one cache.
type Redis struct {
	client redis.Cmdable
}

func NewRedis(client redis.Cmdable) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) (*domain.ProfilePage, bool) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logrus.WithError(err).WithField("key", key).Warn("Redis cache read failed")
		}
		return nil, false
	}

	var page domain.ProfilePage
	if err := json.Unmarshal(data, &page); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Discarding undecodable cache entry")
		return nil, false
	}
	return &page, true
}

func (r *Redis) Set(ctx context.Context, key string, page *domain.ProfilePage, ttl time.Duration) {
	if ttl <= 0 || page == nil {
		return
	}
	data, err := json.Marshal(page)
	if err != nil {
		logrus.WithError(err).Warn("Failed to encode profile page for cache")
		return
	}
	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("Redis cache write failed")
	}
}
