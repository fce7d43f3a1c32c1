package service

import (
	"context"

	"shbudget-backend/internal/domains/asset"
	"shbudget-backend/internal/domains/book"
	"shbudget-backend/internal/domains/member"
	"shbudget-backend/pkg/logger"
)

type assetService struct {
	repo        asset.Repository
	bookMembers book.MemberRepository
	members     member.Repository
	deps        asset.DependencyChecker
}

// NewAssetService creates an asset service.
func NewAssetService(repo asset.Repository, bookMembers book.MemberRepository, members member.Repository, deps asset.DependencyChecker) asset.Service {
	return &assetService{
		repo:        repo,
		bookMembers: bookMembers,
		members:     members,
		deps:        deps,
	}
}

func (s *assetService) Create(ctx context.Context, requesterID, bookID int64, req *asset.CreateAssetRequest) (*asset.AssetResponse, error) {
	if err := s.requireMembership(ctx, bookID, requesterID); err != nil {
		return nil, err
	}
	if req.OwnerMemberID != nil {
		if err := s.requireMembership(ctx, bookID, *req.OwnerMemberID); err != nil {
			return nil, err
		}
	}

	created, err := s.repo.Create(ctx, &asset.Asset{
		BookID:        bookID,
		Name:          req.Name,
		Balance:       *req.Balance,
		OwnerMemberID: req.OwnerMemberID,
	})
	if err != nil {
		return nil, err
	}

	return s.enrich(ctx, created), nil
}

func (s *assetService) List(ctx context.Context, requesterID, bookID int64) ([]asset.AssetResponse, error) {
	if err := s.requireMembership(ctx, bookID, requesterID); err != nil {
		return nil, err
	}

	assets, err := s.repo.ListByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	nicknames := make(map[int64]*string)
	resp := make([]asset.AssetResponse, 0, len(assets))
	for i := range assets {
		r := assets[i].ToResponse()
		if id := assets[i].OwnerMemberID; id != nil {
			nick, ok := nicknames[*id]
			if !ok {
				nick = s.lookupNickname(ctx, *id)
				nicknames[*id] = nick
			}
			r.OwnerNickname = nick
		}
		resp = append(resp, r)
	}

	return resp, nil
}

func (s *assetService) Get(ctx context.Context, requesterID, bookID, assetID int64) (*asset.AssetResponse, error) {
	if err := s.requireMembership(ctx, bookID, requesterID); err != nil {
		return nil, err
	}

	a, err := s.repo.GetByIDAndBook(ctx, assetID, bookID)
	if err != nil {
		return nil, err
	}

	return s.enrich(ctx, a), nil
}

func (s *assetService) Update(ctx context.Context, requesterID, bookID, assetID int64, req *asset.UpdateAssetRequest) (*asset.AssetResponse, error) {
	if err := s.requireMembership(ctx, bookID, requesterID); err != nil {
		return nil, err
	}

	a, err := s.repo.GetByIDAndBook(ctx, assetID, bookID)
	if err != nil {
		return nil, err
	}

	// The attribution target is validated only once the asset is known to
	// exist, so a bad id plus a bad owner still reads as not found.
	if req.OwnerMemberID != nil {
		if err := s.requireMembership(ctx, bookID, *req.OwnerMemberID); err != nil {
			return nil, err
		}
	}

	a.ApplyUpdate(req.Name, req.Balance, req.OwnerMemberID)

	updated, err := s.repo.Update(ctx, a)
	if err != nil {
		return nil, err
	}

	return s.enrich(ctx, updated), nil
}

func (s *assetService) Delete(ctx context.Context, requesterID, bookID, assetID int64) error {
	if err := s.requireMembership(ctx, bookID, requesterID); err != nil {
		return err
	}

	a, err := s.repo.GetByIDAndBook(ctx, assetID, bookID)
	if err != nil {
		return err
	}

	hasDeps, err := s.deps.HasDependents(ctx, a.ID)
	if err != nil {
		return err
	}
	if hasDeps {
		return asset.ErrAssetHasDependents
	}

	return s.repo.Delete(ctx, a.ID, bookID)
}

func (s *assetService) TotalBalance(ctx context.Context, requesterID, bookID int64) (*asset.AssetSummaryResponse, error) {
	if err := s.requireMembership(ctx, bookID, requesterID); err != nil {
		return nil, err
	}

	total, count, err := s.repo.SumBalanceByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}

	return &asset.AssetSummaryResponse{TotalBalance: total, AssetCount: count}, nil
}

func (s *assetService) requireMembership(ctx context.Context, bookID, memberID int64) error {
	isMember, err := s.bookMembers.ExistsByBookAndMember(ctx, bookID, memberID)
	if err != nil {
		return err
	}
	if !isMember {
		return book.ErrNotBookMember
	}
	return nil
}

func (s *assetService) enrich(ctx context.Context, a *asset.Asset) *asset.AssetResponse {
	resp := a.ToResponse()
	if a.OwnerMemberID != nil {
		resp.OwnerNickname = s.lookupNickname(ctx, *a.OwnerMemberID)
	}
	return &resp
}

// lookupNickname is best effort. A dangling owner reference yields a nil
// nickname rather than failing the read.
func (s *assetService) lookupNickname(ctx context.Context, memberID int64) *string {
	m, err := s.members.GetByID(ctx, memberID)
	if err != nil {
		logger.Warn("could not resolve asset owner nickname", err)
		return nil
	}
	return &m.Nickname
}
