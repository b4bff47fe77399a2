// Package mocks provides testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/harunmuya/gs-app/internal/domain"
)

type UserRepository struct{ mock.Mock }

func (m *UserRepository) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *UserRepository) GetByID(ctx context.Context, id int) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *UserRepository) Delete(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type SessionRepository struct{ mock.Mock }

func (m *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *SessionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	args := m.Called(ctx, id)
	session, _ := args.Get(0).(*domain.Session)
	return session, args.Error(1)
}

func (m *SessionRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type SwipeRepository struct{ mock.Mock }

func (m *SwipeRepository) CreateLike(ctx context.Context, like *domain.Like) error {
	return m.Called(ctx, like).Error(0)
}

func (m *SwipeRepository) CreatePass(ctx context.Context, pass *domain.Pass) error {
	return m.Called(ctx, pass).Error(0)
}

func (m *SwipeRepository) ListLikes(ctx context.Context, userID int) ([]*domain.Like, error) {
	args := m.Called(ctx, userID)
	likes, _ := args.Get(0).([]*domain.Like)
	return likes, args.Error(1)
}

func (m *SwipeRepository) SwipedProfileIDs(ctx context.Context, userID int) ([]int, error) {
	args := m.Called(ctx, userID)
	ids, _ := args.Get(0).([]int)
	return ids, args.Error(1)
}

func (m *SwipeRepository) DeletePasses(ctx context.Context, userID int) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MatchRepository struct{ mock.Mock }

func (m *MatchRepository) Upsert(ctx context.Context, match *domain.Match) error {
	return m.Called(ctx, match).Error(0)
}

func (m *MatchRepository) UpdateIcebreakers(ctx context.Context, id int, icebreakers []string) error {
	return m.Called(ctx, id, icebreakers).Error(0)
}

func (m *MatchRepository) ListByUser(ctx context.Context, userID int) ([]*domain.Match, error) {
	args := m.Called(ctx, userID)
	matches, _ := args.Get(0).([]*domain.Match)
	return matches, args.Error(1)
}

type SavedRepository struct{ mock.Mock }

func (m *SavedRepository) Create(ctx context.Context, saved *domain.SavedProfile) error {
	return m.Called(ctx, saved).Error(0)
}

func (m *SavedRepository) Delete(ctx context.Context, userID, profileID int) error {
	return m.Called(ctx, userID, profileID).Error(0)
}

func (m *SavedRepository) ListByUser(ctx context.Context, userID int) ([]*domain.SavedProfile, error) {
	args := m.Called(ctx, userID)
	saved, _ := args.Get(0).([]*domain.SavedProfile)
	return saved, args.Error(1)
}

type ActivityRepository struct{ mock.Mock }

func (m *ActivityRepository) Create(ctx context.Context, entry *domain.ActivityEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, userID, limit, offset int) ([]*domain.ActivityEntry, error) {
	args := m.Called(ctx, userID, limit, offset)
	entries, _ := args.Get(0).([]*domain.ActivityEntry)
	return entries, args.Error(1)
}

func (m *ActivityRepository) CountUnread(ctx context.Context, userID int) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *ActivityRepository) MarkRead(ctx context.Context, userID, id int) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *ActivityRepository) MarkAllRead(ctx context.Context, userID int) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type SettingsRepository struct{ mock.Mock }

func (m *SettingsRepository) Get(ctx context.Context, userID int) (*domain.Settings, error) {
	args := m.Called(ctx, userID)
	s, _ := args.Get(0).(*domain.Settings)
	return s, args.Error(1)
}

func (m *SettingsRepository) Upsert(ctx context.Context, s *domain.Settings) error {
	return m.Called(ctx, s).Error(0)
}

type LocationRepository struct{ mock.Mock }

func (m *LocationRepository) Get(ctx context.Context, userID int) (*domain.Location, error) {
	args := m.Called(ctx, userID)
	loc, _ := args.Get(0).(*domain.Location)
	return loc, args.Error(1)
}

func (m *LocationRepository) Upsert(ctx context.Context, loc *domain.Location) error {
	return m.Called(ctx, loc).Error(0)
}
