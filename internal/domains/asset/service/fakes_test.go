package service

import (
	"context"
	"time"

	"shbudget-backend/internal/domains/asset"
	"shbudget-backend/internal/domains/book"
	"shbudget-backend/internal/domains/member"
	"shbudget-backend/pkg/database"
)

// fakeAssetRepo is an in-memory asset.Repository with book-scoped lookups.
type fakeAssetRepo struct {
	assets map[int64]*asset.Asset
	nextID int64
}

func newFakeAssetRepo() *fakeAssetRepo {
	return &fakeAssetRepo{assets: make(map[int64]*asset.Asset), nextID: 1}
}

func (f *fakeAssetRepo) Create(ctx context.Context, a *asset.Asset) (*asset.Asset, error) {
	created := *a
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.nextID++
	f.assets[created.ID] = &created
	copied := created
	return &copied, nil
}

func (f *fakeAssetRepo) GetByIDAndBook(ctx context.Context, id, bookID int64) (*asset.Asset, error) {
	a, ok := f.assets[id]
	if !ok || a.BookID != bookID {
		return nil, asset.ErrAssetNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeAssetRepo) ListByBook(ctx context.Context, bookID int64) ([]asset.Asset, error) {
	assets := make([]asset.Asset, 0)
	for _, a := range f.assets {
		if a.BookID == bookID {
			assets = append(assets, *a)
		}
	}
	return assets, nil
}

func (f *fakeAssetRepo) Update(ctx context.Context, a *asset.Asset) (*asset.Asset, error) {
	existing, ok := f.assets[a.ID]
	if !ok || existing.BookID != a.BookID {
		return nil, asset.ErrAssetNotFound
	}
	updated := *a
	updated.UpdatedAt = time.Now()
	f.assets[a.ID] = &updated
	copied := updated
	return &copied, nil
}

func (f *fakeAssetRepo) Delete(ctx context.Context, id, bookID int64) error {
	a, ok := f.assets[id]
	if !ok || a.BookID != bookID {
		return asset.ErrAssetNotFound
	}
	delete(f.assets, id)
	return nil
}

func (f *fakeAssetRepo) SumBalanceByBook(ctx context.Context, bookID int64) (int64, int64, error) {
	var total, count int64
	for _, a := range f.assets {
		if a.BookID == bookID {
			total += a.Balance
			count++
		}
	}
	return total, count, nil
}

// fakeBookMemberRepo answers membership checks from a static set.
type fakeBookMemberRepo struct {
	memberships map[[2]int64]book.Role
}

func newFakeBookMemberRepo() *fakeBookMemberRepo {
	return &fakeBookMemberRepo{memberships: make(map[[2]int64]book.Role)}
}

func (f *fakeBookMemberRepo) add(bookID, memberID int64, role book.Role) {
	f.memberships[[2]int64{bookID, memberID}] = role
}

func (f *fakeBookMemberRepo) Create(ctx context.Context, q database.Querier, bm *book.BookMember) (*book.BookMember, error) {
	f.add(bm.BookID, bm.MemberID, bm.Role)
	return bm, nil
}

func (f *fakeBookMemberRepo) GetByBookAndMember(ctx context.Context, bookID, memberID int64) (*book.BookMember, error) {
	role, ok := f.memberships[[2]int64{bookID, memberID}]
	if !ok {
		return nil, book.ErrNotBookMember
	}
	return &book.BookMember{BookID: bookID, MemberID: memberID, Role: role}, nil
}

func (f *fakeBookMemberRepo) GetOwnedByMember(ctx context.Context, memberID int64) (*book.BookMember, error) {
	for key, role := range f.memberships {
		if key[1] == memberID && role == book.RoleOwner {
			return &book.BookMember{BookID: key[0], MemberID: memberID, Role: role}, nil
		}
	}
	return nil, book.ErrBookNotFound
}

func (f *fakeBookMemberRepo) ListByBook(ctx context.Context, bookID int64) ([]book.BookMember, error) {
	members := make([]book.BookMember, 0)
	for key, role := range f.memberships {
		if key[0] == bookID {
			members = append(members, book.BookMember{BookID: bookID, MemberID: key[1], Role: role})
		}
	}
	return members, nil
}

func (f *fakeBookMemberRepo) ExistsByBookAndMember(ctx context.Context, bookID, memberID int64) (bool, error) {
	_, ok := f.memberships[[2]int64{bookID, memberID}]
	return ok, nil
}

func (f *fakeBookMemberRepo) Delete(ctx context.Context, id int64) error {
	return book.ErrNotBookMember
}

// fakeMemberRepo resolves nicknames for response enrichment.
type fakeMemberRepo struct {
	nicknames map[int64]string
}

func (f *fakeMemberRepo) Create(ctx context.Context, q database.Querier, m *member.Member) (*member.Member, error) {
	return nil, member.ErrDuplicateEmail
}

func (f *fakeMemberRepo) GetByID(ctx context.Context, id int64) (*member.Member, error) {
	nick, ok := f.nicknames[id]
	if !ok {
		return nil, member.ErrMemberNotFound
	}
	return &member.Member{ID: id, Nickname: nick}, nil
}

func (f *fakeMemberRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return false, nil
}

func (f *fakeMemberRepo) Update(ctx context.Context, m *member.Member) (*member.Member, error) {
	return nil, member.ErrMemberNotFound
}

// fakeDependencyChecker flags chosen asset ids as having dependents.
type fakeDependencyChecker struct {
	withDeps map[int64]bool
}

func (f *fakeDependencyChecker) HasDependents(ctx context.Context, assetID int64) (bool, error) {
	return f.withDeps[assetID], nil
}
