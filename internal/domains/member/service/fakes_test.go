package service

import (
	"context"
	"time"

	"shbudget-backend/internal/domains/book"
	"shbudget-backend/internal/domains/member"
	"shbudget-backend/pkg/database"
)

// fakeMemberRepo is an in-memory member.Repository.
type fakeMemberRepo struct {
	members map[int64]*member.Member
	nextID  int64

	createErr error
}

func newFakeMemberRepo() *fakeMemberRepo {
	return &fakeMemberRepo{members: make(map[int64]*member.Member), nextID: 1}
}

func (f *fakeMemberRepo) Create(ctx context.Context, q database.Querier, m *member.Member) (*member.Member, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, existing := range f.members {
		if existing.Email == m.Email {
			return nil, member.ErrDuplicateEmail
		}
	}
	created := *m
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.nextID++
	f.members[created.ID] = &created
	return &created, nil
}

func (f *fakeMemberRepo) GetByID(ctx context.Context, id int64) (*member.Member, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, member.ErrMemberNotFound
	}
	copied := *m
	return &copied, nil
}

func (f *fakeMemberRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, m := range f.members {
		if m.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMemberRepo) Update(ctx context.Context, m *member.Member) (*member.Member, error) {
	if _, ok := f.members[m.ID]; !ok {
		return nil, member.ErrMemberNotFound
	}
	updated := *m
	updated.UpdatedAt = time.Now()
	f.members[m.ID] = &updated
	copied := updated
	return &copied, nil
}

// fakeBookService records CreateForOwner calls; the other operations are not
// exercised by member tests.
type fakeBookService struct {
	createdFor   []int64
	createdNames []string
	createErr    error
}

func (f *fakeBookService) CreateForOwner(ctx context.Context, q database.Querier, ownerID int64, name string) (*book.Book, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createdFor = append(f.createdFor, ownerID)
	f.createdNames = append(f.createdNames, name)
	return &book.Book{ID: 100, Name: name, InviteCode: "ABC123", OwnerID: ownerID}, nil
}

func (f *fakeBookService) GetMyBook(ctx context.Context, memberID int64) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}

func (f *fakeBookService) UpdateName(ctx context.Context, bookID, requesterID int64, name string) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}

func (f *fakeBookService) RegenerateInviteCode(ctx context.Context, bookID, requesterID int64) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}

func (f *fakeBookService) Delete(ctx context.Context, bookID, requesterID int64) error {
	return book.ErrBookNotFound
}

// fakeRunner invokes the transaction function directly; rollback semantics
// are the database's job, not the service's.
type fakeRunner struct{}

func (fakeRunner) WithTransaction(ctx context.Context, fn database.TxFunc) error {
	return fn(nil)
}
