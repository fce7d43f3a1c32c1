package book

import (
	"context"

	"shbudget-backend/pkg/database"
)

// Repository defines data access for Book records.
type Repository interface {
	// Create inserts a book on the given querier so registration can run it
	// inside the member-creation transaction.
	// Returns ErrDuplicateInviteCode when the invite code collides.
	Create(ctx context.Context, q database.Querier, b *Book) (*Book, error)

	// GetByID returns ErrBookNotFound when no such book exists.
	GetByID(ctx context.Context, id int64) (*Book, error)

	// GetByInviteCode returns ErrInvalidInviteCode when no book carries the code.
	GetByInviteCode(ctx context.Context, code string) (*Book, error)

	// ExistsByInviteCode checks invite-code uniqueness on the given querier.
	ExistsByInviteCode(ctx context.Context, q database.Querier, code string) (bool, error)

	// UpdateName renames the book. Returns ErrBookNotFound when absent.
	UpdateName(ctx context.Context, id int64, name string) (*Book, error)

	// UpdateInviteCode replaces the invite code.
	// Returns ErrDuplicateInviteCode on collision, ErrBookNotFound when absent.
	UpdateInviteCode(ctx context.Context, id int64, code string) (*Book, error)

	// DeleteWithMembers removes all membership rows, then the book, in one
	// transaction. Returns ErrBookNotFound when the book does not exist.
	DeleteWithMembers(ctx context.Context, id int64) error
}

// MemberRepository defines data access for BookMember join records.
type MemberRepository interface {
	// Create inserts a membership row on the given querier.
	// Returns ErrAlreadyJoinedBook when the (book, member) pair already exists.
	Create(ctx context.Context, q database.Querier, bm *BookMember) (*BookMember, error)

	// GetByBookAndMember returns ErrNotBookMember when no row exists.
	GetByBookAndMember(ctx context.Context, bookID, memberID int64) (*BookMember, error)

	// GetOwnedByMember finds the row where the member holds the OWNER role.
	// Returns ErrBookNotFound when the member owns no book.
	GetOwnedByMember(ctx context.Context, memberID int64) (*BookMember, error)

	// ListByBook returns every membership row of the book.
	ListByBook(ctx context.Context, bookID int64) ([]BookMember, error)

	// ExistsByBookAndMember is the membership check guarding book-scoped operations.
	ExistsByBookAndMember(ctx context.Context, bookID, memberID int64) (bool, error)

	// Delete removes a membership row by primary key.
	Delete(ctx context.Context, id int64) error
}
