package service

import (
	"context"

	"shbudget-backend/internal/domains/book"
	"shbudget-backend/internal/domains/member"
	"shbudget-backend/pkg/database"
)

type bookMemberService struct {
	repo     book.MemberRepository
	bookRepo book.Repository
	members  member.Repository
	db       database.Querier
}

// NewBookMemberService creates a membership service. db is the querier used
// for writes outside any caller transaction, normally the connection pool.
func NewBookMemberService(repo book.MemberRepository, bookRepo book.Repository, members member.Repository, db database.Querier) book.MemberService {
	return &bookMemberService{
		repo:     repo,
		bookRepo: bookRepo,
		members:  members,
		db:       db,
	}
}

func (s *bookMemberService) Join(ctx context.Context, memberID int64, req *book.JoinBookRequest) (*book.BookMember, error) {
	if _, err := s.members.GetByID(ctx, memberID); err != nil {
		return nil, err
	}

	b, err := s.bookRepo.GetByInviteCode(ctx, req.InviteCode)
	if err != nil {
		return nil, err
	}

	joined, err := s.repo.ExistsByBookAndMember(ctx, b.ID, memberID)
	if err != nil {
		return nil, err
	}
	if joined {
		return nil, book.ErrAlreadyJoinedBook
	}

	return s.repo.Create(ctx, s.db, book.NewMembership(b.ID, memberID))
}

func (s *bookMemberService) ListMembers(ctx context.Context, bookID, requesterID int64) ([]book.BookMember, error) {
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByBookAndMember(ctx, bookID, requesterID); err != nil {
		return nil, err
	}

	return s.repo.ListByBook(ctx, bookID)
}

func (s *bookMemberService) LeaveOrRemove(ctx context.Context, bookID, requesterID, targetMemberID int64) error {
	if _, err := s.bookRepo.GetByID(ctx, bookID); err != nil {
		return err
	}

	requester, err := s.repo.GetByBookAndMember(ctx, bookID, requesterID)
	if err != nil {
		return err
	}

	// Removing someone else needs the OWNER role; the requester's standing is
	// settled before the target is even looked at.
	if requesterID != targetMemberID && !requester.IsOwner() {
		return book.ErrNotBookOwner
	}

	target := requester
	if requesterID != targetMemberID {
		target, err = s.repo.GetByBookAndMember(ctx, bookID, targetMemberID)
		if err != nil {
			return err
		}
	}

	// The OWNER row only goes away with the book itself.
	if target.IsOwner() {
		return book.ErrOwnerCannotLeave
	}

	return s.repo.Delete(ctx, target.ID)
}
