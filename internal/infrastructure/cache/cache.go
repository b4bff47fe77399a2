// Package cache holds short-lived copies of fetched profile pages.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/harunmuya/gs-app/internal/domain"
)

// PageCache stores profile pages by key. Implementations are safe for
// concurrent use. A miss and a backend failure look the same to callers.
type PageCache interface {
	Get(ctx context.Context, key string) (*domain.ProfilePage, bool)
	Set(ctx context.Context, key string, page *domain.ProfilePage, ttl time.Duration)
}

// PageKey is the cache key for one page of the profile listing.
func PageKey(page, perPage int) string {
	return fmt.Sprintf("profiles:%d:%d", page, perPage)
}

// Nop never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, string) (*domain.ProfilePage, bool) { return nil, false }

func (Nop) Set(context.Context, string, *domain.ProfilePage, time.Duration) {}
