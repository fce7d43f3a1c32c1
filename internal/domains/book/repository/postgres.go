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

	"shbudget-backend/internal/domains/book"
	"shbudget-backend/pkg/cache"
	"shbudget-backend/pkg/database"
)

// postgresRepository implements book.Repository.
// Only the by-id lookup is cached; invite-code lookups always hit the store
// because code uniqueness checks must see the latest state.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) book.Repository {
	return &postgresRepository{pool: pool, cache: cache}
}

const (
	bookCacheKeyPrefix = "book:"
	cacheTTL           = 15 * time.Minute
)

func bookCacheKey(id int64) string {
	return fmt.Sprintf("%s%d", bookCacheKeyPrefix, id)
}

const bookColumns = "id, name, invite_code, owner_id, created_at, updated_at"

func scanBook(row pgx.Row, b *book.Book) error {
	return row.Scan(
		&b.ID,
		&b.Name,
		&b.InviteCode,
		&b.OwnerID,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
}

func (r *postgresRepository) Create(ctx context.Context, q database.Querier, b *book.Book) (*book.Book, error) {
	query := `
        INSERT INTO books (name, invite_code, owner_id)
        VALUES ($1, $2, $3)
        RETURNING ` + bookColumns

	var created book.Book
	err := scanBook(q.QueryRow(ctx, query, b.Name, b.InviteCode, b.OwnerID), &created)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "invite_code") {
				return nil, book.ErrDuplicateInviteCode
			}
		}
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	cacheKey := bookCacheKey(id)

	var b book.Book
	if found, err := r.cache.Get(ctx, cacheKey, &b); err == nil && found {
		return &b, nil
	}

	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`

	if err := scanBook(r.pool.QueryRow(ctx, query, id), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	r.cache.Set(ctx, cacheKey, &b, cacheTTL)

	return &b, nil
}

func (r *postgresRepository) GetByInviteCode(ctx context.Context, code string) (*book.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE invite_code = $1`

	var b book.Book
	if err := scanBook(r.pool.QueryRow(ctx, query, code), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrInvalidInviteCode
		}
		return nil, fmt.Errorf("failed to get book by invite code: %w", err)
	}

	return &b, nil
}

func (r *postgresRepository) ExistsByInviteCode(ctx context.Context, q database.Querier, code string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM books WHERE invite_code = $1)`

	var exists bool
	if err := q.QueryRow(ctx, query, code).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check invite code existence: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) UpdateName(ctx context.Context, id int64, name string) (*book.Book, error) {
	query := `
        UPDATE books
        SET name = $1, updated_at = NOW()
        WHERE id = $2
        RETURNING ` + bookColumns

	var updated book.Book
	if err := scanBook(r.pool.QueryRow(ctx, query, name, id), &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to update book name: %w", err)
	}

	r.cache.Delete(ctx, bookCacheKey(id))

	return &updated, nil
}

func (r *postgresRepository) UpdateInviteCode(ctx context.Context, id int64, code string) (*book.Book, error) {
	query := `
        UPDATE books
        SET invite_code = $1, updated_at = NOW()
        WHERE id = $2
        RETURNING ` + bookColumns

	var updated book.Book
	if err := scanBook(r.pool.QueryRow(ctx, query, code, id), &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, book.ErrDuplicateInviteCode
		}
		return nil, fmt.Errorf("failed to update invite code: %w", err)
	}

	r.cache.Delete(ctx, bookCacheKey(id))

	return &updated, nil
}

// DeleteWithMembers removes the membership rows first, then the book, so no
// orphaned membership rows can survive a partial failure.
func (r *postgresRepository) DeleteWithMembers(ctx context.Context, id int64) error {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM book_members WHERE book_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete book members: %w", err)
		}

		tag, err := tx.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete book: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return book.ErrBookNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.cache.Delete(ctx, bookCacheKey(id))

	return nil
}
