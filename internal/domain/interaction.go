package domain

import "time"

type Like struct {
	ID              int       `json:"id" db:"id"`
	UserID          int       `json:"user_id" db:"user_id"`
	ProfileID       int       `json:"profile_id" db:"profile_id"`
	ProfileName     string    `json:"profile_name" db:"profile_name"`
	ProfileImage    string    `json:"profile_image" db:"profile_image"`
	ProfileLocation string    `json:"profile_location" db:"profile_location"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

type Pass struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"user_id" db:"user_id"`
	ProfileID int       `json:"profile_id" db:"profile_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

type SavedProfile struct {
	ID              int       `json:"id" db:"id"`
	UserID          int       `json:"user_id" db:"user_id"`
	ProfileID       int       `json:"profile_id" db:"profile_id"`
	ProfileName     string    `json:"profile_name" db:"profile_name"`
	ProfileImage    string    `json:"profile_image" db:"profile_image"`
	ProfileLocation string    `json:"profile_location" db:"profile_location"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

type ActivityType string

const (
	ActivityMatch ActivityType = "match"
	ActivityLike  ActivityType = "like"
	ActivityView  ActivityType = "view"
	ActivitySave  ActivityType = "save"
)

// ActivityEntry is one item of a user's activity feed.
type ActivityEntry struct {
	ID        int          `json:"id" db:"id"`
	UserID    int          `json:"user_id" db:"user_id"`
	Type      ActivityType `json:"type" db:"type"`
	ProfileID int          `json:"profile_id" db:"profile_id"`
	Title     string       `json:"title" db:"title"`
	Message   string       `json:"message" db:"message"`
	Image     string       `json:"image" db:"image"`
	IsRead    bool         `json:"read" db:"is_read"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
}
