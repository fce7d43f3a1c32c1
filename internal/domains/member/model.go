package member

import (
	"time"
)

// Member is the core identity entity backed by the members table.
// Members are created on registration and never deleted by any exposed operation.
type Member struct {
	ID       int64  `json:"id" db:"id"`
	Email    string `json:"email" db:"email"`       // unique, required
	Nickname string `json:"nickname" db:"nickname"` // display name, 2-20 chars

	ProfileImageURL *string `json:"profile_image_url" db:"profile_image_url"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ApplyProfileUpdate overwrites only the fields present in the request.
// A nil field means "leave unchanged".
func (m *Member) ApplyProfileUpdate(nickname *string, profileImageURL *string) {
	if nickname != nil {
		m.Nickname = *nickname
	}
	if profileImageURL != nil {
		m.ProfileImageURL = profileImageURL
	}
}
