package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shbudget-backend/internal/domains/book"
	"shbudget-backend/pkg/database"
	"shbudget-backend/pkg/invitecode"
)

// maxCodeAttempts bounds the invite-code uniqueness loop. With 36^6 possible
// codes a collision is already rare; hitting the bound means the generator is
// broken, not the code space exhausted.
const maxCodeAttempts = 10

type bookService struct {
	repo       book.Repository
	memberRepo book.MemberRepository
	codes      invitecode.Generator
}

// NewBookService creates a book service.
func NewBookService(repo book.Repository, memberRepo book.MemberRepository, codes invitecode.Generator) book.Service {
	return &bookService{
		repo:       repo,
		memberRepo: memberRepo,
		codes:      codes,
	}
}

func (s *bookService) CreateForOwner(ctx context.Context, q database.Querier, ownerID int64, name string) (*book.Book, error) {
	code, err := s.uniqueCode(ctx, q)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, q, &book.Book{
		Name:       name,
		InviteCode: code,
		OwnerID:    ownerID,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.memberRepo.Create(ctx, q, book.NewOwnerMembership(created.ID, ownerID)); err != nil {
		return nil, err
	}

	return created, nil
}

// uniqueCode generates codes until one is not stored yet. The check runs on
// the caller's querier: inside a transaction a failed insert would abort the
// whole transaction, so collisions must be caught before inserting. The
// unique constraint on books.invite_code remains the backstop for races.
func (s *bookService) uniqueCode(ctx context.Context, q database.Querier) (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := s.codes.Generate()

		exists, err := s.repo.ExistsByInviteCode(ctx, q, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}

	return "", fmt.Errorf("could not generate a unique invite code after %d attempts", maxCodeAttempts)
}

func (s *bookService) GetMyBook(ctx context.Context, memberID int64) (*book.Book, error) {
	owned, err := s.memberRepo.GetOwnedByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, owned.BookID)
}

func (s *bookService) UpdateName(ctx context.Context, bookID, requesterID int64, name string) (*book.Book, error) {
	b, err := s.validateOwner(ctx, bookID, requesterID)
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return b, nil
	}

	return s.repo.UpdateName(ctx, bookID, name)
}

func (s *bookService) RegenerateInviteCode(ctx context.Context, bookID, requesterID int64) (*book.Book, error) {
	if _, err := s.validateOwner(ctx, bookID, requesterID); err != nil {
		return nil, err
	}

	// Collisions with the current code set are handled by retrying the whole
	// update; outside a transaction the constraint violation is safe to retry.
	var lastErr error
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		updated, err := s.repo.UpdateInviteCode(ctx, bookID, s.codes.Generate())
		if err == nil {
			return updated, nil
		}
		if !errors.Is(err, book.ErrDuplicateInviteCode) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("could not regenerate invite code after %d attempts: %w", maxCodeAttempts, lastErr)
}

func (s *bookService) Delete(ctx context.Context, bookID, requesterID int64) error {
	if _, err := s.validateOwner(ctx, bookID, requesterID); err != nil {
		return err
	}

	return s.repo.DeleteWithMembers(ctx, bookID)
}

// validateOwner loads the book, then checks the requester's membership row
// carries the OWNER role. Non-members get ErrNotBookMember, plain members
// get ErrNotBookOwner.
func (s *bookService) validateOwner(ctx context.Context, bookID, requesterID int64) (*book.Book, error) {
	b, err := s.repo.GetByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	bm, err := s.memberRepo.GetByBookAndMember(ctx, bookID, requesterID)
	if err != nil {
		return nil, err
	}
	if !bm.IsOwner() {
		return nil, book.ErrNotBookOwner
	}

	return b, nil
}
