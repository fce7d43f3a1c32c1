package member

import "errors"

var (
	ErrMemberNotFound = errors.New("member not found")
	ErrDuplicateEmail = errors.New("email is already registered")
)

// ToErrorCode converts a domain error to its API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrMemberNotFound):
		return "MEMBER_NOT_FOUND"
	case errors.Is(err, ErrDuplicateEmail):
		return "DUPLICATE_EMAIL"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts a domain error to its HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrMemberNotFound):
		return 404
	case errors.Is(err, ErrDuplicateEmail):
		return 409
	default:
		return 500
	}
}
