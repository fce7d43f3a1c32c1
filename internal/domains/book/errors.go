package book

import "errors"

var (
	// Lifecycle errors
	ErrBookNotFound        = errors.New("book not found")
	ErrDuplicateInviteCode = errors.New("invite code already in use")

	// Membership workflow errors
	ErrInvalidInviteCode = errors.New("invalid invite code")
	ErrAlreadyJoinedBook = errors.New("already a member of this book")
	ErrNotBookMember     = errors.New("not a member of this book")
	ErrNotBookOwner      = errors.New("only the book owner can perform this action")
	ErrOwnerCannotLeave  = errors.New("the book owner cannot leave or be removed")
)

// ToErrorCode converts a domain error to its API error code.
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return "BOOK_NOT_FOUND"
	case errors.Is(err, ErrInvalidInviteCode):
		return "INVALID_INVITE_CODE"
	case errors.Is(err, ErrAlreadyJoinedBook):
		return "ALREADY_JOINED_BOOK"
	case errors.Is(err, ErrNotBookMember):
		return "NOT_BOOK_MEMBER"
	case errors.Is(err, ErrNotBookOwner):
		return "NOT_BOOK_OWNER"
	case errors.Is(err, ErrOwnerCannotLeave):
		return "OWNER_CANNOT_LEAVE"
	case errors.Is(err, ErrDuplicateInviteCode):
		return "DUPLICATE_INVITE_CODE"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts a domain error to its HTTP status code.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return 404
	case errors.Is(err, ErrInvalidInviteCode), errors.Is(err, ErrOwnerCannotLeave):
		return 400
	case errors.Is(err, ErrNotBookMember), errors.Is(err, ErrNotBookOwner):
		return 403
	case errors.Is(err, ErrAlreadyJoinedBook), errors.Is(err, ErrDuplicateInviteCode):
		return 409
	default:
		return 500
	}
}
