package cart

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

func (r *postgresRepo) GetByCustomer(ctx context.Context, customerID string) (*domain.Cart, error) {
	var cart domain.Cart
	err := r.pool.QueryRow(ctx, `
SELECT id::text, customer_id::text, created_at
FROM carts
WHERE customer_id = $1
`, customerID).Scan(&cart.ID, &cart.CustomerID, &cart.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	const itemsQuery = `
SELECT ci.id::text, ci.listing_id::text, ci.quantity, ci.created_at,
       l.id::text, l.title, l.category, l.price, COALESCE(l.description, ''),
       l.metal_type, COALESCE(l.metal_purity, ''), l.gemstones, l.images, l.created_at
FROM cart_items ci
JOIN listings l ON l.id = ci.listing_id
WHERE ci.cart_id = $1
ORDER BY ci.created_at ASC
`
	rows, err := r.pool.Query(ctx, itemsQuery, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart.Items = []domain.CartItem{}
	for rows.Next() {
		var item domain.CartItem
		var l domain.Listing
		if err := rows.Scan(
			&item.ID,
			&item.ListingID,
			&item.Quantity,
			&item.CreatedAt,
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
		item.Listing = &l
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *postgresRepo) AddItem(ctx context.Context, customerID, listingID string, quantity int) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var cartID string
	// The no-op DO UPDATE keeps RETURNING populated for the existing row.
	if err := tx.QueryRow(ctx, `
INSERT INTO carts (customer_id)
VALUES ($1)
ON CONFLICT (customer_id) DO UPDATE SET customer_id = EXCLUDED.customer_id
RETURNING id::text
`, customerID).Scan(&cartID); err != nil {
		return err
	}

	// Atomic increment: two concurrent adds for the same listing both land,
	// instead of the second overwriting a stale read.
	if _, err := tx.Exec(ctx, `
INSERT INTO cart_items (cart_id, listing_id, quantity)
VALUES ($1, $2, $3)
ON CONFLICT (cart_id, listing_id) DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
`, cartID, listingID, quantity); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) RemoveItem(ctx context.Context, customerID, listingID string) error {
	cartID, err := r.cartID(ctx, customerID)
	if err != nil {
		return err
	}
	// Absent lines delete zero rows, which is fine: removal is idempotent.
	_, err = r.pool.Exec(ctx, `
DELETE FROM cart_items
WHERE cart_id = $1 AND listing_id = $2
`, cartID, listingID)
	return err
}

func (r *postgresRepo) SetItemQuantity(ctx context.Context, customerID, listingID string, quantity int) error {
	cartID, err := r.cartID(ctx, customerID)
	if err != nil {
		return err
	}
	cmd, err := r.pool.Exec(ctx, `
UPDATE cart_items
SET quantity = $3
WHERE cart_id = $1 AND listing_id = $2
`, cartID, listingID, quantity)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) cartID(ctx context.Context, customerID string) (string, error) {
	var id string
	err := r.pool.QueryRow(ctx, `SELECT id::text FROM carts WHERE customer_id = $1`, customerID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", err
	}
	return id, nil
}
