package asset

import "context"

// DependencyChecker reports whether other records still reference an asset.
// Deletion is refused while dependents exist. The transaction ledger that
// would feed this check is not part of this system yet, so the default
// implementation reports none.
type DependencyChecker interface {
	HasDependents(ctx context.Context, assetID int64) (bool, error)
}

// NoDependencies is the default checker used until a dependent record source
// is wired in.
type NoDependencies struct{}

func (NoDependencies) HasDependents(ctx context.Context, assetID int64) (bool, error) {
	return false, nil
}
