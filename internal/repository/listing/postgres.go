package listing

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"

	"jewelstore/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const listingColumns = `id::text, title, category, price, COALESCE(description, ''), metal_type, COALESCE(metal_purity, ''), gemstones, images, created_at`

func (r *postgresRepo) Create(ctx context.Context, l domain.Listing) (*domain.Listing, error) {
	gemsJSON, imagesJSON, err := marshalListingJSON(l)
	if err != nil {
		return nil, err
	}
	const q = `
INSERT INTO listings (title, category, price, description, metal_type, metal_purity, gemstones, images)
VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), $7, $8)
RETURNING id::text, created_at
`
	res := l
	if err := r.pool.QueryRow(ctx, q,
		l.Title, l.Category, l.Price, l.Description, l.MetalType, l.MetalPurity, gemsJSON, imagesJSON,
	).Scan(&res.ID, &res.CreatedAt); err != nil {
		r.logger.Printf("listing repo: create title=%q error=%v", l.Title, err)
		return nil, err
	}
	r.logger.Printf("listing repo: created id=%s title=%q", res.ID, res.Title)
	return &res, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	const q = `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	l, err := scanListing(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("listing repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return l, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Listing, error) {
	const q = `SELECT ` + listingColumns + ` FROM listings ORDER BY created_at DESC`
	return r.queryListings(ctx, q)
}

func (r *postgresRepo) ListByCategory(ctx context.Context, category string) ([]domain.Listing, error) {
	const q = `SELECT ` + listingColumns + ` FROM listings WHERE category = $1 ORDER BY created_at DESC`
	return r.queryListings(ctx, q, category)
}

func (r *postgresRepo) Update(ctx context.Context, l domain.Listing) (*domain.Listing, error) {
	gemsJSON, imagesJSON, err := marshalListingJSON(l)
	if err != nil {
		return nil, err
	}
	const q = `
UPDATE listings
SET title = $2,
    category = $3,
    price = $4,
    description = NULLIF($5, ''),
    metal_type = $6,
    metal_purity = NULLIF($7, ''),
    gemstones = $8,
    images = $9
WHERE id = $1
RETURNING created_at
`
	res := l
	if err := r.pool.QueryRow(ctx, q,
		l.ID, l.Title, l.Category, l.Price, l.Description, l.MetalType, l.MetalPurity, gemsJSON, imagesJSON,
	).Scan(&res.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("listing repo: update id=%s error=%v", l.ID, err)
		return nil, err
	}
	return &res, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		r.logger.Printf("listing repo: delete id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Upsert inserts or replaces a listing by id. Callers that want idempotent
// loads (seed, importer) mint stable ids up front.
func (r *postgresRepo) Upsert(ctx context.Context, l domain.Listing) (*domain.Listing, error) {
	gemsJSON, imagesJSON, err := marshalListingJSON(l)
	if err != nil {
		return nil, err
	}
	const q = `
INSERT INTO listings (id, title, category, price, description, metal_type, metal_purity, gemstones, images)
VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, $3, $4, NULLIF($5, ''), $6, NULLIF($7, ''), $8, $9)
ON CONFLICT (id) DO UPDATE SET
    title = EXCLUDED.title,
    category = EXCLUDED.category,
    price = EXCLUDED.price,
    description = EXCLUDED.description,
    metal_type = EXCLUDED.metal_type,
    metal_purity = EXCLUDED.metal_purity,
    gemstones = EXCLUDED.gemstones,
    images = EXCLUDED.images
RETURNING id::text, created_at
`
	res := l
	if err := r.pool.QueryRow(ctx, q,
		l.ID, l.Title, l.Category, l.Price, l.Description, l.MetalType, l.MetalPurity, gemsJSON, imagesJSON,
	).Scan(&res.ID, &res.CreatedAt); err != nil {
		r.logger.Printf("listing repo: upsert title=%q error=%v", l.Title, err)
		return nil, err
	}
	return &res, nil
}

func (r *postgresRepo) queryListings(ctx context.Context, q string, args ...interface{}) ([]domain.Listing, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("listing repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	result := []domain.Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *l)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("listing repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func scanListing(row pgx.Row) (*domain.Listing, error) {
	var l domain.Listing
	if err := row.Scan(
		&l.ID,
		&l.Title,
		&l.Category,
		&l.Price,
		&l.Description,
		&l.MetalType,
		&l.MetalPurity,
		&l.Gemstones,
		&l.Images,
		&l.CreatedAt,
	); err != nil {
		return nil, err
	}
	if l.Gemstones == nil {
		l.Gemstones = []domain.Gemstone{}
	}
	if l.Images == nil {
		l.Images = []domain.ListingImage{}
	}
	return &l, nil
}

func marshalListingJSON(l domain.Listing) ([]byte, []byte, error) {
	gems := l.Gemstones
	if gems == nil {
		gems = []domain.Gemstone{}
	}
	images := l.Images
	if images == nil {
		images = []domain.ListingImage{}
	}
	gemsJSON, err := json.Marshal(gems)
	if err != nil {
		return nil, nil, err
	}
	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return nil, nil, err
	}
	return gemsJSON, imagesJSON, nil
}
