package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/harunmuya/gs-app/internal/domain"
	"github.com/harunmuya/gs-app/internal/repository"
)

const MinPasswordLength = 8

type AuthUseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtSecret   []byte
	tokenTTL    time.Duration
	now         func() time.Time
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	jwtSecret string,
	tokenTTL time.Duration,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtSecret:   []byte(jwtSecret),
		tokenTTL:    tokenTTL,
		now:         time.Now,
	}
}

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ClientInfo describes where a session was opened from.
type ClientInfo struct {
	DeviceInfo string
	IPAddress  string
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
}

// Claims identifies the user (sub) and the backing session (jti).
type Claims struct {
	UserID    int
	SessionID uuid.UUID
}

func (uc *AuthUseCase) Register(ctx context.Context, req *RegisterRequest, client ClientInfo) (*AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || len(req.Password) < MinPasswordLength {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	name := strings.TrimSpace(req.DisplayName)
	if name == "" {
		name = strings.SplitN(email, "@", 2)[0]
	}

	user := &domain.User{
		Email:        &email,
		PasswordHash: &hashStr,
		DisplayName:  name,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logrus.WithField("user_id", user.ID).Info("User registered")
	return uc.issue(ctx, user, client)
}

func (uc *AuthUseCase) Login(ctx context.Context, req *LoginRequest, client ClientInfo) (*AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidLogin
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user.PasswordHash == nil {
		return nil, domain.ErrInvalidLogin
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidLogin
	}
	return uc.issue(ctx, user, client)
}

// Guest creates an anonymous account so the app can be tried without signing up.
func (uc *AuthUseCase) Guest(ctx context.Context, client ClientInfo) (*AuthResponse, error) {
	user := &domain.User{
		DisplayName: "Guest " + uuid.NewString()[:8],
		IsGuest:     true,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}
	return uc.issue(ctx, user, client)
}

func (uc *AuthUseCase) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := uc.sessionRepo.Revoke(ctx, sessionID); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

func (uc *AuthUseCase) Me(ctx context.Context, userID int) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// DeleteAccount removes the user together with everything stored for them.
func (uc *AuthUseCase) DeleteAccount(ctx context.Context, userID int) error {
	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	logrus.WithField("user_id", userID).Info("Account deleted")
	return nil
}

// VerifyToken checks the signature and expiry of the token, then that its
// session still exists and is active.
func (uc *AuthUseCase) VerifyToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return uc.jwtSecret, nil
	}, jwt.WithTimeFunc(uc.now))
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	sessionID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	session, err := uc.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session.UserID != userID || !session.IsActive(uc.now()) {
		return nil, domain.ErrInvalidToken
	}

	return &Claims{UserID: userID, SessionID: sessionID}, nil
}

func (uc *AuthUseCase) issue(ctx context.Context, user *domain.User, client ClientInfo) (*AuthResponse, error) {
	now := uc.now()
	session := &domain.Session{
		ID:         uuid.New(),
		UserID:     user.ID,
		DeviceInfo: client.DeviceInfo,
		IPAddress:  client.IPAddress,
		ExpiresAt:  now.Add(uc.tokenTTL),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.Itoa(user.ID),
		ID:        session.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	})
	signed, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &AuthResponse{
		Token:     signed,
		ExpiresAt: session.ExpiresAt,
		User:      user,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
