package domain

import (
	"time"

	"github.com/lib/pq"
)

// Match is created when a like passes the mutual-match check.
type Match struct {
	ID              int            `json:"id" db:"id"`
	UserID          int            `json:"user_id" db:"user_id"`
	ProfileID       int            `json:"profile_id" db:"profile_id"`
	ProfileName     string         `json:"profile_name" db:"profile_name"`
	ProfileImage    string         `json:"profile_image" db:"profile_image"`
	ProfileLocation string         `json:"profile_location" db:"profile_location"`
	ProfileBio      string         `json:"profile_bio" db:"profile_bio"`
	Score           int            `json:"score" db:"score"`
	Icebreakers     pq.StringArray `json:"icebreakers,omitempty" db:"icebreakers"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
}

// Snapshot copies the display fields of p so the match survives the post
// being edited or removed upstream.
func (m *Match) Snapshot(p *Profile) {
	m.ProfileID = p.ID
	m.ProfileName = p.Name
	m.ProfileImage = p.ImageURL
	m.ProfileLocation = p.Location
	m.ProfileBio = p.Bio
}
