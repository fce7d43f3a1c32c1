package book

import (
	"context"

	"shbudget-backend/pkg/database"
)

// Service is the book lifecycle workflow. Every mutating operation except
// CreateForOwner authorizes the requester against the membership store first.
type Service interface {
	// CreateForOwner creates the book plus its OWNER membership row on the
	// given querier. Called exactly once per member, from registration, inside
	// the registration transaction. The invite code is regenerated until it
	// does not collide with a stored one.
	CreateForOwner(ctx context.Context, q database.Querier, ownerID int64, name string) (*Book, error)

	// GetMyBook resolves the book the member owns.
	// Returns ErrBookNotFound when the member owns none or the book row is gone.
	GetMyBook(ctx context.Context, memberID int64) (*Book, error)

	// UpdateName renames the book; owner only. Blank names leave the stored
	// name untouched.
	UpdateName(ctx context.Context, bookID, requesterID int64, name string) (*Book, error)

	// RegenerateInviteCode replaces the invite code with a fresh unique one;
	// owner only.
	RegenerateInviteCode(ctx context.Context, bookID, requesterID int64) (*Book, error)

	// Delete removes the book and all its membership rows; owner only.
	Delete(ctx context.Context, bookID, requesterID int64) error
}

// MemberService is the membership and invite workflow.
type MemberService interface {
	// Join adds the member to the book matching the invite code with the
	// MEMBER role. A second join with the same code is rejected with
	// ErrAlreadyJoinedBook, never silently accepted.
	Join(ctx context.Context, memberID int64, req *JoinBookRequest) (*BookMember, error)

	// ListMembers returns all membership rows; any member of the book may call it.
	ListMembers(ctx context.Context, bookID, requesterID int64) ([]BookMember, error)

	// LeaveOrRemove deletes the target's membership row. Self-leave needs no
	// privilege; removing another member needs the OWNER role. The OWNER row
	// is never deletable here, only via whole-book deletion.
	LeaveOrRemove(ctx context.Context, bookID, requesterID, targetMemberID int64) error
}
