package book

import (
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var inviteCodePattern = regexp.MustCompile(`^[A-Z0-9]{6}$`)

// UpdateBookRequest - book rename payload (owner only).
type UpdateBookRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("book name is required"),
			validation.Length(1, 50).Error("book name must be 1-50 characters"),
		),
	)
}

// JoinBookRequest - invite-code join payload.
type JoinBookRequest struct {
	InviteCode string `json:"invite_code" binding:"required"`
}

func (r JoinBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.InviteCode,
			validation.Required.Error("invite code is required"),
			validation.Match(inviteCodePattern).Error("invite code must be 6 uppercase letters or digits"),
		),
	)
}

// BookResponse - API representation of a book.
type BookResponse struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	InviteCode string    `json:"invite_code"`
	OwnerID    int64     `json:"owner_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (b *Book) ToResponse() BookResponse {
	return BookResponse{
		ID:         b.ID,
		Name:       b.Name,
		InviteCode: b.InviteCode,
		OwnerID:    b.OwnerID,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// BookMemberResponse - API representation of a membership row.
type BookMemberResponse struct {
	ID       int64     `json:"id"`
	BookID   int64     `json:"book_id"`
	MemberID int64     `json:"member_id"`
	Role     Role      `json:"role"`
	JoinedAt time.Time `json:"joined_at"`
}

func (bm *BookMember) ToResponse() BookMemberResponse {
	return BookMemberResponse{
		ID:       bm.ID,
		BookID:   bm.BookID,
		MemberID: bm.MemberID,
		Role:     bm.Role,
		JoinedAt: bm.JoinedAt,
	}
}
