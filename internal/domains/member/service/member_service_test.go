package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shbudget-backend/internal/domains/member"
)

func newTestService(repo *fakeMemberRepo, books *fakeBookService) member.Service {
	return NewMemberService(repo, books, fakeRunner{})
}

func TestRegisterCreatesMemberAndBook(t *testing.T) {
	repo := newFakeMemberRepo()
	books := &fakeBookService{}
	svc := newTestService(repo, books)

	created, err := svc.Register(context.Background(), &member.CreateMemberRequest{
		Email:    "  Alice@Example.COM ",
		Nickname: "Alice",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", created.Email)
	assert.Equal(t, "Alice", created.Nickname)
	assert.NotZero(t, created.ID)

	require.Len(t, books.createdFor, 1)
	assert.Equal(t, created.ID, books.createdFor[0])
	assert.Equal(t, "Alice's book", books.createdNames[0])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeMemberRepo()
	books := &fakeBookService{}
	svc := newTestService(repo, books)

	_, err := svc.Register(context.Background(), &member.CreateMemberRequest{
		Email:    "alice@example.com",
		Nickname: "Alice",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &member.CreateMemberRequest{
		Email:    "ALICE@example.com",
		Nickname: "Other",
	})

	assert.ErrorIs(t, err, member.ErrDuplicateEmail)
	assert.Len(t, repo.members, 1)
	assert.Len(t, books.createdFor, 1)
}

func TestRegisterBookCreationFailure(t *testing.T) {
	repo := newFakeMemberRepo()
	books := &fakeBookService{createErr: errors.New("boom")}
	svc := newTestService(repo, books)

	_, err := svc.Register(context.Background(), &member.CreateMemberRequest{
		Email:    "alice@example.com",
		Nickname: "Alice",
	})

	assert.Error(t, err)
	assert.Empty(t, books.createdFor)
}

func TestGetByIDInvalidID(t *testing.T) {
	svc := newTestService(newFakeMemberRepo(), &fakeBookService{})

	_, err := svc.GetByID(context.Background(), 0)
	assert.ErrorIs(t, err, member.ErrMemberNotFound)

	_, err = svc.GetByID(context.Background(), -5)
	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}

func TestUpdateProfilePartial(t *testing.T) {
	repo := newFakeMemberRepo()
	svc := newTestService(repo, &fakeBookService{})

	created, err := svc.Register(context.Background(), &member.CreateMemberRequest{
		Email:    "alice@example.com",
		Nickname: "Alice",
	})
	require.NoError(t, err)

	image := "https://img.example.com/alice.png"
	updated, err := svc.UpdateProfile(context.Background(), created.ID, &member.UpdateMemberRequest{
		ProfileImageURL: &image,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.Nickname)
	require.NotNil(t, updated.ProfileImageURL)
	assert.Equal(t, image, *updated.ProfileImageURL)

	// Nil fields leave the stored values alone.
	nickname := "Allie"
	updated, err = svc.UpdateProfile(context.Background(), created.ID, &member.UpdateMemberRequest{
		Nickname: &nickname,
	})
	require.NoError(t, err)
	assert.Equal(t, "Allie", updated.Nickname)
	require.NotNil(t, updated.ProfileImageURL)
	assert.Equal(t, image, *updated.ProfileImageURL)
}

func TestUpdateProfileUnknownMember(t *testing.T) {
	svc := newTestService(newFakeMemberRepo(), &fakeBookService{})

	nickname := "Ghost"
	_, err := svc.UpdateProfile(context.Background(), 42, &member.UpdateMemberRequest{Nickname: &nickname})

	assert.ErrorIs(t, err, member.ErrMemberNotFound)
}
