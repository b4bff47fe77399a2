package feed

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/harunmuya/gs-app/internal/domain"
	"github.com/harunmuya/gs-app/internal/geo"
	"github.com/harunmuya/gs-app/internal/matching"
	"github.com/harunmuya/gs-app/internal/repository"
)

// ProfileLister is satisfied by the profile use case.
type ProfileLister interface {
	ListProfiles(ctx context.Context, page, perPage int) (*domain.ProfilePage, error)
}

type FeedUseCase struct {
	profiles     ProfileLister
	scorer       *matching.Scorer
	swipeRepo    repository.SwipeRepository
	locationRepo repository.LocationRepository
	settingsRepo repository.SettingsRepository
}

func NewFeedUseCase(
	profiles ProfileLister,
	scorer *matching.Scorer,
	swipeRepo repository.SwipeRepository,
	locationRepo repository.LocationRepository,
	settingsRepo repository.SettingsRepository,
) *FeedUseCase {
	return &FeedUseCase{
		profiles:     profiles,
		scorer:       scorer,
		swipeRepo:    swipeRepo,
		locationRepo: locationRepo,
		settingsRepo: settingsRepo,
	}
}

type Query struct {
	Page    int
	PerPage int
	// Viewer overrides the stored location when set.
	Viewer *geo.Point
}

// Item is a profile as ranked for one viewer.
type Item struct {
	*domain.Profile
	MatchScore int      `json:"match_score"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

type Page struct {
	Profiles   []*Item `json:"profiles"`
	Page       int     `json:"page"`
	PerPage    int     `json:"per_page"`
	TotalPages int     `json:"total_pages"`
	TotalPosts int     `json:"total_posts"`
}

// Discover ranks one page of profiles for the viewer. Profiles already
// liked or passed are skipped, as are profiles beyond the viewer's saved
// maximum distance. Items are ordered by score, then by newest profile id.
func (uc *FeedUseCase) Discover(ctx context.Context, viewerID int, q Query) (*Page, error) {
	page, err := uc.profiles.ListProfiles(ctx, q.Page, q.PerPage)
	if err != nil {
		return nil, err
	}

	swiped, err := uc.swipeRepo.SwipedProfileIDs(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load swipes: %w", err)
	}
	exclude := make(map[int]struct{}, len(swiped))
	for _, id := range swiped {
		exclude[id] = struct{}{}
	}

	viewer, err := uc.viewerLocation(ctx, viewerID, q.Viewer)
	if err != nil {
		return nil, err
	}
	maxDistance, err := uc.maxDistance(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	items := make([]*Item, 0, len(page.Profiles))
	for _, p := range page.Profiles {
		if _, seen := exclude[p.ID]; seen {
			continue
		}
		b := uc.scorer.Explain(p, viewer)
		item := &Item{Profile: p, MatchScore: b.Final}
		if viewer != nil && p.Coordinates.Known() && b.DistanceKm < geo.FarDistanceKm {
			d := b.DistanceKm
			item.DistanceKm = &d
			if maxDistance > 0 && d > float64(maxDistance) {
				continue
			}
		}
		items = append(items, item)
	}

	SortItems(items)

	return &Page{
		Profiles:   items,
		Page:       page.Page,
		PerPage:    page.PerPage,
		TotalPages: page.TotalPages,
		TotalPosts: page.TotalPosts,
	}, nil
}

// SortItems orders by score descending, ties broken by higher profile id.
func SortItems(items []*Item) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].MatchScore != items[j].MatchScore {
			return items[i].MatchScore > items[j].MatchScore
		}
		return items[i].ID > items[j].ID
	})
}

func (uc *FeedUseCase) viewerLocation(ctx context.Context, viewerID int, explicit *geo.Point) (*geo.Point, error) {
	if explicit != nil && explicit.Known() {
		return explicit, nil
	}
	if uc.locationRepo == nil {
		return nil, nil
	}
	loc, err := uc.locationRepo.Get(ctx, viewerID)
	if err != nil {
		if errors.Is(err, domain.ErrLocationNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load location: %w", err)
	}
	p := geo.Point{Lat: loc.Latitude, Lng: loc.Longitude}
	if !p.Known() {
		return nil, nil
	}
	return &p, nil
}

// maxDistance is 0 when the viewer never saved settings, which disables
// the distance filter.
func (uc *FeedUseCase) maxDistance(ctx context.Context, viewerID int) (int, error) {
	if uc.settingsRepo == nil {
		return 0, nil
	}
	s, err := uc.settingsRepo.Get(ctx, viewerID)
	if err != nil {
		if errors.Is(err, domain.ErrSettingsNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to load settings: %w", err)
	}
	return s.MaxDistanceKm, nil
}
