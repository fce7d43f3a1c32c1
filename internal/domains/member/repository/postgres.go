package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"shbudget-backend/internal/domains/member"
	"shbudget-backend/pkg/cache"
	"shbudget-backend/pkg/database"
)

// postgresRepository implements member.Repository on pgx with a cache-aside
// layer for the by-id lookup, which the asset read path hits for every
// owner-nickname enrichment.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) member.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

const (
	memberCacheKeyPrefix = "member:"
	cacheTTL             = 15 * time.Minute
)

func memberCacheKey(id int64) string {
	return fmt.Sprintf("%s%d", memberCacheKeyPrefix, id)
}

func (r *postgresRepository) Create(ctx context.Context, q database.Querier, m *member.Member) (*member.Member, error) {
	query := `
        INSERT INTO members (email, nickname, profile_image_url)
        VALUES ($1, $2, $3)
        RETURNING id, email, nickname, profile_image_url, created_at, updated_at
    `

	var created member.Member
	err := q.QueryRow(ctx, query, m.Email, m.Nickname, m.ProfileImageURL).Scan(
		&created.ID,
		&created.Email,
		&created.Nickname,
		&created.ProfileImageURL,
		&created.CreatedAt,
		&created.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return nil, member.ErrDuplicateEmail
			}
		}
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*member.Member, error) {
	cacheKey := memberCacheKey(id)

	var m member.Member
	if found, err := r.cache.Get(ctx, cacheKey, &m); err == nil && found {
		return &m, nil
	}

	query := `
        SELECT id, email, nickname, profile_image_url, created_at, updated_at
        FROM members
        WHERE id = $1
    `

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.Email,
		&m.Nickname,
		&m.ProfileImageURL,
		&m.CreatedAt,
		&m.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, member.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member by id: %w", err)
	}

	r.cache.Set(ctx, cacheKey, &m, cacheTTL)

	return &m, nil
}

func (r *postgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM members WHERE email = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) Update(ctx context.Context, m *member.Member) (*member.Member, error) {
	query := `
        UPDATE members
        SET nickname = $1,
            profile_image_url = $2,
            updated_at = NOW()
        WHERE id = $3
        RETURNING id, email, nickname, profile_image_url, created_at, updated_at
    `

	var updated member.Member
	err := r.pool.QueryRow(ctx, query, m.Nickname, m.ProfileImageURL, m.ID).Scan(
		&updated.ID,
		&updated.Email,
		&updated.Nickname,
		&updated.ProfileImageURL,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, member.ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	r.cache.Delete(ctx, memberCacheKey(m.ID))

	return &updated, nil
}
