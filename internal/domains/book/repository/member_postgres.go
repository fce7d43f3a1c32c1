package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"shbudget-backend/internal/domains/book"
	"shbudget-backend/pkg/database"
)

type postgresMemberRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresMemberRepository(pool *pgxpool.Pool) book.MemberRepository {
	return &postgresMemberRepository{pool: pool}
}

const bookMemberColumns = "id, book_id, member_id, role, joined_at, created_at, updated_at"

func scanBookMember(row pgx.Row, bm *book.BookMember) error {
	return row.Scan(
		&bm.ID,
		&bm.BookID,
		&bm.MemberID,
		&bm.Role,
		&bm.JoinedAt,
		&bm.CreatedAt,
		&bm.UpdatedAt,
	)
}

func (r *postgresMemberRepository) Create(ctx context.Context, q database.Querier, bm *book.BookMember) (*book.BookMember, error) {
	query := `
        INSERT INTO book_members (book_id, member_id, role)
        VALUES ($1, $2, $3)
        RETURNING ` + bookMemberColumns

	var created book.BookMember
	err := scanBookMember(q.QueryRow(ctx, query, bm.BookID, bm.MemberID, bm.Role), &created)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, book.ErrAlreadyJoinedBook
			case "23503":
				return nil, book.ErrBookNotFound
			}
		}
		return nil, fmt.Errorf("failed to create book member: %w", err)
	}

	return &created, nil
}

func (r *postgresMemberRepository) GetByBookAndMember(ctx context.Context, bookID, memberID int64) (*book.BookMember, error) {
	query := `SELECT ` + bookMemberColumns + ` FROM book_members WHERE book_id = $1 AND member_id = $2`

	var bm book.BookMember
	if err := scanBookMember(r.pool.QueryRow(ctx, query, bookID, memberID), &bm); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrNotBookMember
		}
		return nil, fmt.Errorf("failed to get book member: %w", err)
	}

	return &bm, nil
}

func (r *postgresMemberRepository) GetOwnedByMember(ctx context.Context, memberID int64) (*book.BookMember, error) {
	query := `SELECT ` + bookMemberColumns + ` FROM book_members WHERE member_id = $1 AND role = $2`

	var bm book.BookMember
	if err := scanBookMember(r.pool.QueryRow(ctx, query, memberID, book.RoleOwner), &bm); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get owned book membership: %w", err)
	}

	return &bm, nil
}

func (r *postgresMemberRepository) ListByBook(ctx context.Context, bookID int64) ([]book.BookMember, error) {
	query := `SELECT ` + bookMemberColumns + ` FROM book_members WHERE book_id = $1 ORDER BY joined_at, id`

	rows, err := r.pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to list book members: %w", err)
	}
	defer rows.Close()

	members := make([]book.BookMember, 0)
	for rows.Next() {
		var bm book.BookMember
		if err := scanBookMember(rows, &bm); err != nil {
			return nil, fmt.Errorf("failed to scan book member: %w", err)
		}
		members = append(members, bm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate book members: %w", err)
	}

	return members, nil
}

func (r *postgresMemberRepository) ExistsByBookAndMember(ctx context.Context, bookID, memberID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM book_members WHERE book_id = $1 AND member_id = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, bookID, memberID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check book membership: %w", err)
	}

	return exists, nil
}

func (r *postgresMemberRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM book_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrNotBookMember
	}

	return nil
}
