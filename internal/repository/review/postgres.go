package review

import (
	"context"
	"errors"

	"jewelstore/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, rev domain.Review) (*domain.Review, error) {
	const q = `
INSERT INTO reviews (listing_id, customer_id, username, rating, comment)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text, created_at
`
	res := rev
	err := r.pool.QueryRow(ctx, q, rev.ListingID, rev.CustomerID, rev.Username, rev.Rating, rev.Comment).
		Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &res, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	const q = `
SELECT id::text, listing_id::text, customer_id::text, username, rating, comment, created_at
FROM reviews
WHERE id = $1
`
	var rev domain.Review
	err := r.pool.QueryRow(ctx, q, id).
		Scan(&rev.ID, &rev.ListingID, &rev.CustomerID, &rev.Username, &rev.Rating, &rev.Comment, &rev.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rev, nil
}

func (r *postgresRepo) ListByListing(ctx context.Context, listingID string) ([]domain.Review, error) {
	const q = `
SELECT id::text, listing_id::text, customer_id::text, username, rating, comment, created_at
FROM reviews
WHERE listing_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Review{}
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.ListingID, &rev.CustomerID, &rev.Username, &rev.Rating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rev)
	}
	return result, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, id string, rating int, comment string) (*domain.Review, error) {
	const q = `
UPDATE reviews
SET rating = $2, comment = $3
WHERE id = $1
RETURNING id::text, listing_id::text, customer_id::text, username, rating, comment, created_at
`
	var rev domain.Review
	err := r.pool.QueryRow(ctx, q, id, rating, comment).
		Scan(&rev.ID, &rev.ListingID, &rev.CustomerID, &rev.Username, &rev.Rating, &rev.Comment, &rev.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &rev, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) AverageForListing(ctx context.Context, listingID string) (float64, error) {
	var avg float64
	err := r.pool.QueryRow(ctx, `
SELECT COALESCE(AVG(rating), 0)
FROM reviews
WHERE listing_id = $1
`, listingID).Scan(&avg)
	if err != nil {
		return 0, err
	}
	return avg, nil
}
