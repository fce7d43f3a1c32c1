package asset

import "context"

// Repository defines data access for Asset records. Every lookup is scoped to
// a book: an asset id that exists under another book reads as absent.
type Repository interface {
	Create(ctx context.Context, a *Asset) (*Asset, error)

	// GetByIDAndBook returns ErrAssetNotFound when no asset with the id
	// exists under the book.
	GetByIDAndBook(ctx context.Context, id, bookID int64) (*Asset, error)

	// ListByBook returns all assets of the book, empty slice when none.
	ListByBook(ctx context.Context, bookID int64) ([]Asset, error)

	// Update persists the full record. Returns ErrAssetNotFound when the row
	// is gone.
	Update(ctx context.Context, a *Asset) (*Asset, error)

	// Delete returns ErrAssetNotFound when no row was removed.
	Delete(ctx context.Context, id, bookID int64) error

	// SumBalanceByBook returns the balance total and asset count of the book,
	// both zero when the book has no assets.
	SumBalanceByBook(ctx context.Context, bookID int64) (totalBalance int64, count int64, err error)
}
