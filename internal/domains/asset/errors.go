package asset

import "errors"

var (
	ErrAssetNotFound = errors.New("asset not found")

	// ErrAssetHasDependents blocks deletion while other records still
	// reference the asset.
	ErrAssetHasDependents = errors.New("asset has dependent records")
)

// ToErrorCode converts a domain error to its API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAssetNotFound):
		return "ASSET_NOT_FOUND"
	case errors.Is(err, ErrAssetHasDependents):
		return "ASSET_HAS_DEPENDENTS"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts a domain error to its HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAssetNotFound):
		return 404
	case errors.Is(err, ErrAssetHasDependents):
		return 409
	default:
		return 500
	}
}
