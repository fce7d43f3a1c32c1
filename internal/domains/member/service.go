package member

import "context"

// Service is the member registration and profile workflow.
type Service interface {
	// Register persists the member and auto-creates their book named
	// "{nickname}'s book" in one transaction. Fails with ErrDuplicateEmail
	// without persisting anything when the email is taken.
	Register(ctx context.Context, req *CreateMemberRequest) (*Member, error)

	// GetByID returns ErrMemberNotFound when absent.
	GetByID(ctx context.Context, id int64) (*Member, error)

	// UpdateProfile applies the partial update; nil fields stay unchanged.
	UpdateProfile(ctx context.Context, id int64, req *UpdateMemberRequest) (*Member, error)
}
