package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"shbudget-backend/internal/domains/asset"
	"shbudget-backend/internal/domains/book"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) asset.Repository {
	return &postgresRepository{pool: pool}
}

const assetColumns = "id, book_id, name, balance, owner_member_id, created_at, updated_at"

func scanAsset(row pgx.Row, a *asset.Asset) error {
	return row.Scan(
		&a.ID,
		&a.BookID,
		&a.Name,
		&a.Balance,
		&a.OwnerMemberID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
}

func (r *postgresRepository) Create(ctx context.Context, a *asset.Asset) (*asset.Asset, error) {
	query := `
        INSERT INTO assets (book_id, name, balance, owner_member_id)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + assetColumns

	var created asset.Asset
	err := scanAsset(r.pool.QueryRow(ctx, query, a.BookID, a.Name, a.Balance, a.OwnerMemberID), &created)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to create asset: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByIDAndBook(ctx context.Context, id, bookID int64) (*asset.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE id = $1 AND book_id = $2`

	var a asset.Asset
	if err := scanAsset(r.pool.QueryRow(ctx, query, id, bookID), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, asset.ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) ListByBook(ctx context.Context, bookID int64) ([]asset.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE book_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	assets := make([]asset.Asset, 0)
	for rows.Next() {
		var a asset.Asset
		if err := scanAsset(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assets: %w", err)
	}

	return assets, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *asset.Asset) (*asset.Asset, error) {
	query := `
        UPDATE assets
        SET name = $1, balance = $2, owner_member_id = $3, updated_at = NOW()
        WHERE id = $4 AND book_id = $5
        RETURNING ` + assetColumns

	var updated asset.Asset
	err := scanAsset(r.pool.QueryRow(ctx, query, a.Name, a.Balance, a.OwnerMemberID, a.ID, a.BookID), &updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, asset.ErrAssetNotFound
		}
		return nil, fmt.Errorf("failed to update asset: %w", err)
	}

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id, bookID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM assets WHERE id = $1 AND book_id = $2`, id, bookID)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return asset.ErrAssetNotFound
	}

	return nil
}

func (r *postgresRepository) SumBalanceByBook(ctx context.Context, bookID int64) (int64, int64, error) {
	query := `SELECT COALESCE(SUM(balance), 0), COUNT(*) FROM assets WHERE book_id = $1`

	var total, count int64
	if err := r.pool.QueryRow(ctx, query, bookID).Scan(&total, &count); err != nil {
		return 0, 0, fmt.Errorf("failed to sum asset balances: %w", err)
	}

	return total, count, nil
}
