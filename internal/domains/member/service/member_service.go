package service

import (
	"context"
	"fmt"
	"strings"

	"shbudget-backend/internal/domains/book"
	"shbudget-backend/internal/domains/member"
	"shbudget-backend/pkg/database"
)

// memberService implements member.Service.
// Registration spans two domains: the member row and the auto-created book
// with its owner membership are written in a single transaction so a failed
// book creation never leaves a dangling member.
type memberService struct {
	repo  member.Repository
	books book.Service
	tx    database.Runner
}

func NewMemberService(repo member.Repository, books book.Service, tx database.Runner) member.Service {
	return &memberService{
		repo:  repo,
		books: books,
		tx:    tx,
	}
}

func (s *memberService) Register(ctx context.Context, req *member.CreateMemberRequest) (*member.Member, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	nickname := strings.TrimSpace(req.Nickname)

	// Pre-check keeps the common duplicate case out of the transaction; the
	// unique constraint on members.email remains the real enforcement.
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if exists {
		return nil, member.ErrDuplicateEmail
	}

	return database.WithTransactionResult(ctx, s.tx, func(q database.Querier) (*member.Member, error) {
		created, err := s.repo.Create(ctx, q, &member.Member{
			Email:    email,
			Nickname: nickname,
		})
		if err != nil {
			return nil, err
		}

		bookName := created.Nickname + "'s book"
		if _, err := s.books.CreateForOwner(ctx, q, created.ID, bookName); err != nil {
			return nil, fmt.Errorf("failed to create book for new member: %w", err)
		}

		return created, nil
	})
}

func (s *memberService) GetByID(ctx context.Context, id int64) (*member.Member, error) {
	if id <= 0 {
		return nil, member.ErrMemberNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *memberService) UpdateProfile(ctx context.Context, id int64, req *member.UpdateMemberRequest) (*member.Member, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.ApplyProfileUpdate(req.Nickname, req.ProfileImageURL)

	return s.repo.Update(ctx, &updated)
}
