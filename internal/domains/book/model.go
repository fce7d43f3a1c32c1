package book

import (
	"time"
)

// Role is the closed membership role set. Exactly one OWNER exists per book;
// the role never changes after the membership row is created.
type Role string

const (
	RoleOwner  Role = "OWNER"
	RoleMember Role = "MEMBER"
)

// Valid reports whether the role is one of the two known values.
func (r Role) Valid() bool {
	return r == RoleOwner || r == RoleMember
}

// IsOwner reports whether the role grants owner privileges.
func (r Role) IsOwner() bool {
	return r == RoleOwner
}

// Book is a shared ledger backed by the books table.
type Book struct {
	ID         int64  `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`               // 1-50 chars
	InviteCode string `json:"invite_code" db:"invite_code"` // ^[A-Z0-9]{6}$, globally unique
	OwnerID    int64  `json:"owner_id" db:"owner_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// BookMember binds one member to one book with a role.
// Unique per (book_id, member_id); the sole source of truth for membership
// and ownership checks.
type BookMember struct {
	ID       int64 `json:"id" db:"id"`
	BookID   int64 `json:"book_id" db:"book_id"`
	MemberID int64 `json:"member_id" db:"member_id"`
	Role     Role  `json:"role" db:"role"`

	JoinedAt time.Time `json:"joined_at" db:"joined_at"` // set at creation, immutable

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsOwner reports whether this membership row carries the OWNER role.
func (bm *BookMember) IsOwner() bool {
	return bm.Role.IsOwner()
}

// NewOwnerMembership builds the OWNER row created alongside the book.
func NewOwnerMembership(bookID, memberID int64) *BookMember {
	return &BookMember{BookID: bookID, MemberID: memberID, Role: RoleOwner}
}

// NewMembership builds the MEMBER row created on invite-code join.
func NewMembership(bookID, memberID int64) *BookMember {
	return &BookMember{BookID: bookID, MemberID: memberID, Role: RoleMember}
}
