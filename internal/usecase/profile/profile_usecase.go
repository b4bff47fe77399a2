package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/harunmuya/gs-app/internal/domain"
	"github.com/harunmuya/gs-app/internal/extractor"
	"github.com/harunmuya/gs-app/internal/infrastructure/cache"
	"github.com/harunmuya/gs-app/internal/repository"
)

const (
	DefaultPerPage = 20
	MaxPerPage     = 50
)

// ContentSource supplies raw posts. The WordPress client implements it.
type ContentSource interface {
	ListPosts(ctx context.Context, page, perPage int) (*domain.PostPage, error)
	GetPost(ctx context.Context, id int) (*domain.RawPost, error)
}

type ProfileUseCase struct {
	source       ContentSource
	parser       *extractor.Extractor
	cache        cache.PageCache
	cacheTTL     time.Duration
	activityRepo repository.ActivityRepository
}

func NewProfileUseCase(
	source ContentSource,
	parser *extractor.Extractor,
	pageCache cache.PageCache,
	cacheTTL time.Duration,
	activityRepo repository.ActivityRepository,
) *ProfileUseCase {
	if pageCache == nil {
		pageCache = cache.Nop{}
	}
	return &ProfileUseCase{
		source:       source,
		parser:       parser,
		cache:        pageCache,
		cacheTTL:     cacheTTL,
		activityRepo: activityRepo,
	}
}

// NormalizePaging clamps page to at least 1 and perPage to [1, MaxPerPage],
// with zero meaning DefaultPerPage.
func NormalizePaging(page, perPage int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case perPage <= 0:
		perPage = DefaultPerPage
	case perPage > MaxPerPage:
		perPage = MaxPerPage
	}
	return page, perPage
}

// ListProfiles returns one page of profiles, served from cache when fresh.
// Posts without a featured image are left out.
func (uc *ProfileUseCase) ListProfiles(ctx context.Context, page, perPage int) (*domain.ProfilePage, error) {
	page, perPage = NormalizePaging(page, perPage)
	key := cache.PageKey(page, perPage)

	if cached, ok := uc.cache.Get(ctx, key); ok {
		return cached, nil
	}
	return uc.fetchPage(ctx, page, perPage)
}

func (uc *ProfileUseCase) fetchPage(ctx context.Context, page, perPage int) (*domain.ProfilePage, error) {
	posts, err := uc.source.ListPosts(ctx, page, perPage)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profiles: %w", err)
	}

	result := &domain.ProfilePage{
		Profiles:   uc.parser.ParseAll(posts.Posts),
		Page:       page,
		PerPage:    perPage,
		TotalPages: posts.TotalPages,
		TotalPosts: posts.TotalPosts,
	}
	uc.cache.Set(ctx, cache.PageKey(page, perPage), result, uc.cacheTTL)
	return result, nil
}

// GetProfile fetches a single profile. It is never cached.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, id int) (*domain.Profile, error) {
	if id <= 0 {
		return nil, domain.ErrProfileNotFound
	}
	post, err := uc.source.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.parser.Parse(post), nil
}

// ViewProfile is GetProfile for a signed-in viewer; the view is recorded
// in their activity feed. viewerID 0 means anonymous.
func (uc *ProfileUseCase) ViewProfile(ctx context.Context, viewerID, id int) (*domain.Profile, error) {
	p, err := uc.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}
	if viewerID == 0 || uc.activityRepo == nil {
		return p, nil
	}

	entry := &domain.ActivityEntry{
		UserID:    viewerID,
		Type:      domain.ActivityView,
		ProfileID: p.ID,
		Title:     "You viewed " + p.Name,
		Message:   p.Location,
		Image:     p.ImageURL,
	}
	if err := uc.activityRepo.Create(ctx, entry); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id":    viewerID,
			"profile_id": p.ID,
		}).Warn("Failed to record profile view")
	}
	return p, nil
}

// Warm refreshes the first pages of the default listing in the cache.
// It keeps going past failed pages and returns the first error seen.
func (uc *ProfileUseCase) Warm(ctx context.Context, pages int) error {
	var firstErr error
	for page := 1; page <= pages; page++ {
		result, err := uc.fetchPage(ctx, page, DefaultPerPage)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if result.TotalPages > 0 && page >= result.TotalPages {
			break
		}
	}
	return firstErr
}
