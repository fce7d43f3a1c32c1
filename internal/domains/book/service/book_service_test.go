package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shbudget-backend/internal/domains/book"
)

func TestCreateForOwner(t *testing.T) {
	repo := newFakeBookRepo()
	memberRepo := newFakeBookMemberRepo()
	svc := NewBookService(repo, memberRepo, &stubGenerator{codes: []string{"AAAAAA"}})

	created, err := svc.CreateForOwner(context.Background(), nil, 1, "Alice's book")

	require.NoError(t, err)
	assert.Equal(t, "Alice's book", created.Name)
	assert.Equal(t, "AAAAAA", created.InviteCode)
	assert.Equal(t, int64(1), created.OwnerID)

	bm, err := memberRepo.GetByBookAndMember(context.Background(), created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, book.RoleOwner, bm.Role)
}

func TestCreateForOwnerRegeneratesOnCollision(t *testing.T) {
	repo := newFakeBookRepo()
	memberRepo := newFakeBookMemberRepo()
	gen := &stubGenerator{codes: []string{"AAAAAA", "AAAAAA", "BBBBBB"}}
	svc := NewBookService(repo, memberRepo, gen)

	first, err := svc.CreateForOwner(context.Background(), nil, 1, "first")
	require.NoError(t, err)
	assert.Equal(t, "AAAAAA", first.InviteCode)

	// The second generate call collides with the stored code and is retried.
	second, err := svc.CreateForOwner(context.Background(), nil, 2, "second")
	require.NoError(t, err)
	assert.Equal(t, "BBBBBB", second.InviteCode)
}

func TestCreateForOwnerGeneratorStuck(t *testing.T) {
	repo := newFakeBookRepo()
	memberRepo := newFakeBookMemberRepo()
	gen := &stubGenerator{codes: []string{"AAAAAA"}}
	svc := NewBookService(repo, memberRepo, gen)

	_, err := svc.CreateForOwner(context.Background(), nil, 1, "first")
	require.NoError(t, err)

	// Every attempt returns the already-stored code.
	_, err = svc.CreateForOwner(context.Background(), nil, 2, "second")
	assert.Error(t, err)
}

func TestGetMyBook(t *testing.T) {
	repo := newFakeBookRepo()
	memberRepo := newFakeBookMemberRepo()
	svc := NewBookService(repo, memberRepo, &stubGenerator{codes: []string{"AAAAAA"}})

	created, err := svc.CreateForOwner(context.Background(), nil, 1, "Alice's book")
	require.NoError(t, err)

	got, err := svc.GetMyBook(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetMyBook(context.Background(), 99)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func setupBookWithMember(t *testing.T) (book.Service, *fakeBookRepo, *fakeBookMemberRepo, *book.Book) {
	t.Helper()

	repo := newFakeBookRepo()
	memberRepo := newFakeBookMemberRepo()
	svc := NewBookService(repo, memberRepo, &stubGenerator{codes: []string{"AAAAAA", "BBBBBB", "CCCCCC"}})

	b, err := svc.CreateForOwner(context.Background(), nil, 1, "Alice's book")
	require.NoError(t, err)

	// Member 2 joins as plain MEMBER.
	_, err = memberRepo.Create(context.Background(), nil, book.NewMembership(b.ID, 2))
	require.NoError(t, err)

	return svc, repo, memberRepo, b
}

func TestUpdateNameAuthorization(t *testing.T) {
	svc, _, _, b := setupBookWithMember(t)
	ctx := context.Background()

	updated, err := svc.UpdateName(ctx, b.ID, 1, "Family budget")
	require.NoError(t, err)
	assert.Equal(t, "Family budget", updated.Name)

	_, err = svc.UpdateName(ctx, b.ID, 2, "hijack")
	assert.ErrorIs(t, err, book.ErrNotBookOwner)

	_, err = svc.UpdateName(ctx, b.ID, 99, "hijack")
	assert.ErrorIs(t, err, book.ErrNotBookMember)

	_, err = svc.UpdateName(ctx, 999, 1, "missing")
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestUpdateNameBlankKeepsCurrent(t *testing.T) {
	svc, _, _, b := setupBookWithMember(t)

	updated, err := svc.UpdateName(context.Background(), b.ID, 1, "   ")
	require.NoError(t, err)
	assert.Equal(t, "Alice's book", updated.Name)
}

func TestRegenerateInviteCode(t *testing.T) {
	svc, _, _, b := setupBookWithMember(t)
	ctx := context.Background()

	updated, err := svc.RegenerateInviteCode(ctx, b.ID, 1)
	require.NoError(t, err)
	assert.NotEqual(t, "AAAAAA", updated.InviteCode)
	assert.Regexp(t, `^[A-Z0-9]{6}$`, updated.InviteCode)

	_, err = svc.RegenerateInviteCode(ctx, b.ID, 2)
	assert.ErrorIs(t, err, book.ErrNotBookOwner)
}

func TestDeleteBook(t *testing.T) {
	svc, repo, _, b := setupBookWithMember(t)
	ctx := context.Background()

	err := svc.Delete(ctx, b.ID, 2)
	assert.ErrorIs(t, err, book.ErrNotBookOwner)

	require.NoError(t, svc.Delete(ctx, b.ID, 1))

	_, err = repo.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}
