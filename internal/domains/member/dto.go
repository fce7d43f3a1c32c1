package member

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateMemberRequest - member registration payload.
type CreateMemberRequest struct {
	Email    string `json:"email" binding:"required"`
	Nickname string `json:"nickname" binding:"required"`
}

func (r CreateMemberRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(5, 100),
		),
		validation.Field(&r.Nickname,
			validation.Required.Error("nickname is required"),
			validation.Length(2, 20).Error("nickname must be 2-20 characters"),
		),
	)
}

// UpdateMemberRequest - partial profile update.
// Absent fields keep their stored values.
type UpdateMemberRequest struct {
	Nickname        *string `json:"nickname,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
}

func (r UpdateMemberRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Nickname,
			validation.When(r.Nickname != nil,
				validation.Length(2, 20).Error("nickname must be 2-20 characters"),
			),
		),
		validation.Field(&r.ProfileImageURL,
			validation.When(r.ProfileImageURL != nil && *r.ProfileImageURL != "",
				is.URL.Error("profile image must be a valid URL"),
			),
		),
	)
}

// MemberResponse - public member representation.
type MemberResponse struct {
	ID              int64     `json:"id"`
	Email           string    `json:"email"`
	Nickname        string    `json:"nickname"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToResponse converts the entity to its API representation.
func (m *Member) ToResponse() MemberResponse {
	return MemberResponse{
		ID:              m.ID,
		Email:           m.Email,
		Nickname:        m.Nickname,
		ProfileImageURL: m.ProfileImageURL,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
