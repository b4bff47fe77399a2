package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           int       `json:"id" db:"id"`
	Email        *string   `json:"email,omitempty" db:"email"`
	PasswordHash *string   `json:"-" db:"password_hash"`
	DisplayName  string    `json:"display_name" db:"display_name"`
	IsGuest      bool      `json:"is_guest" db:"is_guest"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Session backs an issued token; revoking it invalidates the token.
type Session struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	UserID     int        `json:"user_id" db:"user_id"`
	DeviceInfo string     `json:"device_info" db:"device_info"`
	IPAddress  string     `json:"ip_address" db:"ip_address"`
	ExpiresAt  time.Time  `json:"expires_at" db:"expires_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty" db:"revoked_at"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

func (s *Session) IsActive(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// Location is the last known viewer position.
type Location struct {
	UserID    int       `json:"user_id" db:"user_id"`
	Latitude  float64   `json:"lat" db:"latitude"`
	Longitude float64   `json:"lng" db:"longitude"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

const (
	DefaultMaxDistanceKm = 100
	ThemeLight           = "light"
	ThemeDark            = "dark"
)

type Settings struct {
	UserID        int       `json:"user_id" db:"user_id"`
	MaxDistanceKm int       `json:"max_distance_km" db:"max_distance_km"`
	NotifyMatches bool      `json:"notify_matches" db:"notify_matches"`
	Theme         string    `json:"theme" db:"theme"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

func DefaultSettings(userID int) *Settings {
	return &Settings{
		UserID:        userID,
		MaxDistanceKm: DefaultMaxDistanceKm,
		NotifyMatches: true,
		Theme:         ThemeLight,
	}
}
