package swipe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/harunmuya/gs-app/internal/domain"
	"github.com/harunmuya/gs-app/internal/geo"
	"github.com/harunmuya/gs-app/internal/matching"
	"github.com/harunmuya/gs-app/internal/repository"
)

const icebreakerTimeout = 8 * time.Second

// ProfileGetter is satisfied by the profile use case.
type ProfileGetter interface {
	GetProfile(ctx context.Context, id int) (*domain.Profile, error)
}

// IcebreakerGenerator writes opening lines for a new match. Optional.
type IcebreakerGenerator interface {
	GenerateIcebreakers(ctx context.Context, p *domain.Profile) ([]string, error)
}

type SwipeUseCase struct {
	profiles     ProfileGetter
	scorer       *matching.Scorer
	policy       matching.MatchPolicy
	swipeRepo    repository.SwipeRepository
	matchRepo    repository.MatchRepository
	savedRepo    repository.SavedRepository
	activityRepo repository.ActivityRepository
	locationRepo repository.LocationRepository
	icebreakers  IcebreakerGenerator
}

func NewSwipeUseCase(
	profiles ProfileGetter,
	scorer *matching.Scorer,
	policy matching.MatchPolicy,
	swipeRepo repository.SwipeRepository,
	matchRepo repository.MatchRepository,
	savedRepo repository.SavedRepository,
	activityRepo repository.ActivityRepository,
	locationRepo repository.LocationRepository,
	icebreakers IcebreakerGenerator,
) *SwipeUseCase {
	return &SwipeUseCase{
		profiles:     profiles,
		scorer:       scorer,
		policy:       policy,
		swipeRepo:    swipeRepo,
		matchRepo:    matchRepo,
		savedRepo:    savedRepo,
		activityRepo: activityRepo,
		locationRepo: locationRepo,
		icebreakers:  icebreakers,
	}
}

type LikeRequest struct {
	ProfileID int      `json:"profile_id" binding:"required,gt=0"`
	Lat       *float64 `json:"lat" binding:"omitempty,min=-90,max=90"`
	Lng       *float64 `json:"lng" binding:"omitempty,min=-180,max=180"`
}

// Viewer returns the position sent with the request, if complete.
func (r *LikeRequest) Viewer() *geo.Point {
	if r.Lat == nil || r.Lng == nil {
		return nil
	}
	return &geo.Point{Lat: *r.Lat, Lng: *r.Lng}
}

type ProfileRequest struct {
	ProfileID int `json:"profile_id" binding:"required,gt=0"`
}

type LikeResponse struct {
	Liked   bool          `json:"liked"`
	IsMatch bool          `json:"is_match"`
	Score   int           `json:"score"`
	Match   *domain.Match `json:"match,omitempty"`
}

// Like records a like and rolls the match policy against the profile's
// score. A repeated like returns domain.ErrAlreadyLiked. Failing to store
// the match is logged and reported as no match; the like itself stands.
func (uc *SwipeUseCase) Like(ctx context.Context, viewerID, profileID int, viewer *geo.Point) (*LikeResponse, error) {
	p, err := uc.profiles.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	like := &domain.Like{
		UserID:          viewerID,
		ProfileID:       p.ID,
		ProfileName:     p.Name,
		ProfileImage:    p.ImageURL,
		ProfileLocation: p.Location,
	}
	if err := uc.swipeRepo.CreateLike(ctx, like); err != nil {
		return nil, err
	}

	if viewer == nil || !viewer.Known() {
		viewer = uc.storedLocation(ctx, viewerID)
	}
	score := uc.scorer.Score(p, viewer)
	resp := &LikeResponse{Liked: true, Score: score}

	uc.recordActivity(ctx, &domain.ActivityEntry{
		UserID:    viewerID,
		Type:      domain.ActivityLike,
		ProfileID: p.ID,
		Title:     "You liked " + p.Name,
		Message:   p.Location,
		Image:     p.ImageURL,
	})

	if !uc.policy.IsMatch(score) {
		return resp, nil
	}

	match := &domain.Match{UserID: viewerID, Score: score}
	match.Snapshot(p)
	if err := uc.matchRepo.Upsert(ctx, match); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id":    viewerID,
			"profile_id": p.ID,
		}).Error("Failed to store match")
		return resp, nil
	}

	logrus.WithFields(logrus.Fields{
		"user_id":    viewerID,
		"profile_id": p.ID,
		"score":      score,
	}).Info("New match")

	uc.recordActivity(ctx, &domain.ActivityEntry{
		UserID:    viewerID,
		Type:      domain.ActivityMatch,
		ProfileID: p.ID,
		Title:     "It's a match!",
		Message:   fmt.Sprintf("You and %s liked each other", p.Name),
		Image:     p.ImageURL,
	})
	uc.attachIcebreakers(ctx, match, p)

	resp.IsMatch = true
	resp.Match = match
	return resp, nil
}

func (uc *SwipeUseCase) Pass(ctx context.Context, viewerID, profileID int) error {
	if profileID <= 0 {
		return domain.ErrInvalidInput
	}
	return uc.swipeRepo.CreatePass(ctx, &domain.Pass{UserID: viewerID, ProfileID: profileID})
}

// ResetPasses forgets every pass so those profiles show up again.
func (uc *SwipeUseCase) ResetPasses(ctx context.Context, viewerID int) (int64, error) {
	n, err := uc.swipeRepo.DeletePasses(ctx, viewerID)
	if err != nil {
		return 0, fmt.Errorf("failed to reset passes: %w", err)
	}
	return n, nil
}

func (uc *SwipeUseCase) ListLikes(ctx context.Context, viewerID int) ([]*domain.Like, error) {
	return uc.swipeRepo.ListLikes(ctx, viewerID)
}

// ListMatches returns matches by score, best first, then newest.
func (uc *SwipeUseCase) ListMatches(ctx context.Context, viewerID int) ([]*domain.Match, error) {
	return uc.matchRepo.ListByUser(ctx, viewerID)
}

func (uc *SwipeUseCase) Save(ctx context.Context, viewerID, profileID int) (*domain.SavedProfile, error) {
	p, err := uc.profiles.GetProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	saved := &domain.SavedProfile{
		UserID:          viewerID,
		ProfileID:       p.ID,
		ProfileName:     p.Name,
		ProfileImage:    p.ImageURL,
		ProfileLocation: p.Location,
	}
	if err := uc.savedRepo.Create(ctx, saved); err != nil {
		return nil, err
	}

	uc.recordActivity(ctx, &domain.ActivityEntry{
		UserID:    viewerID,
		Type:      domain.ActivitySave,
		ProfileID: p.ID,
		Title:     "Saved " + p.Name,
		Message:   p.Location,
		Image:     p.ImageURL,
	})
	return saved, nil
}

func (uc *SwipeUseCase) Unsave(ctx context.Context, viewerID, profileID int) error {
	return uc.savedRepo.Delete(ctx, viewerID, profileID)
}

func (uc *SwipeUseCase) ListSaved(ctx context.Context, viewerID int) ([]*domain.SavedProfile, error) {
	return uc.savedRepo.ListByUser(ctx, viewerID)
}

func (uc *SwipeUseCase) storedLocation(ctx context.Context, viewerID int) *geo.Point {
	if uc.locationRepo == nil {
		return nil
	}
	loc, err := uc.locationRepo.Get(ctx, viewerID)
	if err != nil {
		if !errors.Is(err, domain.ErrLocationNotFound) {
			logrus.WithError(err).WithField("user_id", viewerID).Warn("Failed to load viewer location")
		}
		return nil
	}
	p := geo.Point{Lat: loc.Latitude, Lng: loc.Longitude}
	return &p
}

func (uc *SwipeUseCase) recordActivity(ctx context.Context, entry *domain.ActivityEntry) {
	if uc.activityRepo == nil {
		return
	}
	if err := uc.activityRepo.Create(ctx, entry); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id": entry.UserID,
			"type":    entry.Type,
		}).Warn("Failed to record activity")
	}
}

func (uc *SwipeUseCase) attachIcebreakers(ctx context.Context, match *domain.Match, p *domain.Profile) {
	if uc.icebreakers == nil {
		return
	}

	genCtx, cancel := context.WithTimeout(ctx, icebreakerTimeout)
	defer cancel()

	lines, err := uc.icebreakers.GenerateIcebreakers(genCtx, p)
	if err != nil {
		logrus.WithError(err).WithField("match_id", match.ID).Warn("Icebreaker generation failed")
		return
	}
	if err := uc.matchRepo.UpdateIcebreakers(ctx, match.ID, lines); err != nil {
		logrus.WithError(err).WithField("match_id", match.ID).Warn("Failed to save icebreakers")
		return
	}
	match.Icebreakers = lines
}
