package admin

import (
	"context"
	"errors"

	"jewelstore/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	const q = `
SELECT id::text, username, password_hash, created_at
FROM admins
WHERE id = $1
`
	return r.fetch(ctx, q, id)
}

func (r *postgresRepo) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	const q = `
SELECT id::text, username, password_hash, created_at
FROM admins
WHERE username = $1
`
	return r.fetch(ctx, q, username)
}

// Upsert keeps the seed idempotent: re-running it refreshes the password
// hash instead of failing on the unique username.
func (r *postgresRepo) Upsert(ctx context.Context, username, passwordHash string) (*domain.Admin, error) {
	const q = `
INSERT INTO admins (username, password_hash)
VALUES ($1, $2)
ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
RETURNING id::text, username, password_hash, created_at
`
	var a domain.Admin
	if err := r.pool.QueryRow(ctx, q, username, passwordHash).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *postgresRepo) fetch(ctx context.Context, q string, arg interface{}) (*domain.Admin, error) {
	var a domain.Admin
	err := r.pool.QueryRow(ctx, q, arg).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
