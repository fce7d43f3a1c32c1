package service

import (
	"context"
	"time"

	"shbudget-backend/internal/domains/book"
	"shbudget-backend/internal/domains/member"
	"shbudget-backend/pkg/database"
)

// stubGenerator replays a fixed code sequence.
type stubGenerator struct {
	codes []string
	next  int
}

func (g *stubGenerator) Generate() string {
	code := g.codes[g.next%len(g.codes)]
	g.next++
	return code
}

// fakeBookRepo is an in-memory book.Repository.
type fakeBookRepo struct {
	books  map[int64]*book.Book
	nextID int64
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{books: make(map[int64]*book.Book), nextID: 1}
}

func (f *fakeBookRepo) Create(ctx context.Context, q database.Querier, b *book.Book) (*book.Book, error) {
	for _, existing := range f.books {
		if existing.InviteCode == b.InviteCode {
			return nil, book.ErrDuplicateInviteCode
		}
	}
	created := *b
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.nextID++
	f.books[created.ID] = &created
	copied := created
	return &copied, nil
}

func (f *fakeBookRepo) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookRepo) GetByInviteCode(ctx context.Context, code string) (*book.Book, error) {
	for _, b := range f.books {
		if b.InviteCode == code {
			copied := *b
			return &copied, nil
		}
	}
	return nil, book.ErrInvalidInviteCode
}

func (f *fakeBookRepo) ExistsByInviteCode(ctx context.Context, q database.Querier, code string) (bool, error) {
	for _, b := range f.books {
		if b.InviteCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookRepo) UpdateName(ctx context.Context, id int64, name string) (*book.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	b.Name = name
	b.UpdatedAt = time.Now()
	copied := *b
	return &copied, nil
}

func (f *fakeBookRepo) UpdateInviteCode(ctx context.Context, id int64, code string) (*book.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	for otherID, other := range f.books {
		if otherID != id && other.InviteCode == code {
			return nil, book.ErrDuplicateInviteCode
		}
	}
	b.InviteCode = code
	b.UpdatedAt = time.Now()
	copied := *b
	return &copied, nil
}

func (f *fakeBookRepo) DeleteWithMembers(ctx context.Context, id int64) error {
	if _, ok := f.books[id]; !ok {
		return book.ErrBookNotFound
	}
	delete(f.books, id)
	return nil
}

// fakeBookMemberRepo is an in-memory book.MemberRepository.
type fakeBookMemberRepo struct {
	rows   map[int64]*book.BookMember
	nextID int64
}

func newFakeBookMemberRepo() *fakeBookMemberRepo {
	return &fakeBookMemberRepo{rows: make(map[int64]*book.BookMember), nextID: 1}
}

func (f *fakeBookMemberRepo) Create(ctx context.Context, q database.Querier, bm *book.BookMember) (*book.BookMember, error) {
	for _, existing := range f.rows {
		if existing.BookID == bm.BookID && existing.MemberID == bm.MemberID {
			return nil, book.ErrAlreadyJoinedBook
		}
	}
	created := *bm
	created.ID = f.nextID
	created.JoinedAt = time.Now()
	created.CreatedAt = created.JoinedAt
	created.UpdatedAt = created.JoinedAt
	f.nextID++
	f.rows[created.ID] = &created
	copied := created
	return &copied, nil
}

func (f *fakeBookMemberRepo) GetByBookAndMember(ctx context.Context, bookID, memberID int64) (*book.BookMember, error) {
	for _, bm := range f.rows {
		if bm.BookID == bookID && bm.MemberID == memberID {
			copied := *bm
			return &copied, nil
		}
	}
	return nil, book.ErrNotBookMember
}

func (f *fakeBookMemberRepo) GetOwnedByMember(ctx context.Context, memberID int64) (*book.BookMember, error) {
	for _, bm := range f.rows {
		if bm.MemberID == memberID && bm.Role == book.RoleOwner {
			copied := *bm
			return &copied, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (f *fakeBookMemberRepo) ListByBook(ctx context.Context, bookID int64) ([]book.BookMember, error) {
	members := make([]book.BookMember, 0)
	for _, bm := range f.rows {
		if bm.BookID == bookID {
			members = append(members, *bm)
		}
	}
	return members, nil
}

func (f *fakeBookMemberRepo) ExistsByBookAndMember(ctx context.Context, bookID, memberID int64) (bool, error) {
	for _, bm := range f.rows {
		if bm.BookID == bookID && bm.MemberID == memberID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookMemberRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return book.ErrNotBookMember
	}
	delete(f.rows, id)
	return nil
}

// fakeMemberRepo holds just enough of member.Repository for the join flow.
type fakeMemberRepo struct {
	members map[int64]*member.Member
}

func newFakeMemberRepo(ids ...int64) *fakeMemberRepo {
	f := &fakeMemberRepo{members: make(map[int64]*member.Member)}
	for _, id := range ids {
		f.members[id] = &member.Member{ID: id, Email: "m@example.com", Nickname: "m"}
	}
	return f
}

func (f *fakeMemberRepo) Create(ctx context.Context, q database.Querier, m *member.Member) (*member.Member, error) {
	return nil, member.ErrDuplicateEmail
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
	return false, nil
}

func (f *fakeMemberRepo) Update(ctx context.Context, m *member.Member) (*member.Member, error) {
	return nil, member.ErrMemberNotFound
}
