package asset

import "context"

// Service is the asset workflow. Every operation first checks the requester
// is a member of the book; non-members get book.ErrNotBookMember regardless
// of whether the asset exists.
type Service interface {
	// Create persists a new asset. When the request attributes the asset to a
	// member, that member must belong to the same book.
	Create(ctx context.Context, requesterID, bookID int64, req *CreateAssetRequest) (*AssetResponse, error)

	// List returns all assets of the book with owner nicknames resolved.
	List(ctx context.Context, requesterID, bookID int64) ([]AssetResponse, error)

	// Get returns ErrAssetNotFound for ids outside the book.
	Get(ctx context.Context, requesterID, bookID, assetID int64) (*AssetResponse, error)

	// Update applies the partial-update semantics of UpdateAssetRequest.
	Update(ctx context.Context, requesterID, bookID, assetID int64, req *UpdateAssetRequest) (*AssetResponse, error)

	// Delete removes the asset unless the dependency checker reports
	// dependents, in which case it fails with ErrAssetHasDependents.
	Delete(ctx context.Context, requesterID, bookID, assetID int64) error

	// TotalBalance sums balances across the book's assets.
	TotalBalance(ctx context.Context, requesterID, bookID int64) (*AssetSummaryResponse, error)
}
