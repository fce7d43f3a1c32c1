package member

import (
	"context"

	"shbudget-backend/pkg/database"
)

// Repository defines data access for Member records.
type Repository interface {
	// Create inserts a new member on the given querier so registration can
	// run it inside the same transaction as the book auto-creation.
	// Returns ErrDuplicateEmail when the email is already taken.
	Create(ctx context.Context, q database.Querier, m *Member) (*Member, error)

	// GetByID returns ErrMemberNotFound when no such member exists.
	GetByID(ctx context.Context, id int64) (*Member, error)

	// ExistsByEmail checks email uniqueness before insert.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update persists nickname/profile image changes.
	// Returns ErrMemberNotFound when the member disappeared meanwhile.
	Update(ctx context.Context, m *Member) (*Member, error)
}
