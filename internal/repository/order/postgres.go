package order

import (
	"context"
	"encoding/json"
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

func (r *postgresRepo) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	shippingJSON, err := json.Marshal(in.Shipping)
	if err != nil {
		return nil, err
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	order := domain.Order{
		CustomerID:  in.CustomerID,
		TotalAmount: in.TotalAmount,
		Shipping:    in.Shipping,
	}
	if err := tx.QueryRow(ctx, `
INSERT INTO orders (customer_id, total_amount, shipping, status)
VALUES ($1, $2, $3, 'Pending')
RETURNING id::text, status, created_at
`, in.CustomerID, in.TotalAmount, shippingJSON).Scan(&order.ID, &order.Status, &order.CreatedAt); err != nil {
		r.logger.Printf("order repo: insert customer_id=%s error=%v", in.CustomerID, err)
		return nil, err
	}

	order.Lines = make([]domain.OrderLine, 0, len(in.Lines))
	for _, line := range in.Lines {
		out := domain.OrderLine{ListingID: line.ListingID, Quantity: line.Quantity}
		if err := tx.QueryRow(ctx, `
INSERT INTO order_lines (order_id, listing_id, quantity)
VALUES ($1, $2, $3)
RETURNING id::text
`, order.ID, line.ListingID, line.Quantity).Scan(&out.ID); err != nil {
			r.logger.Printf("order repo: insert line order_id=%s listing_id=%s error=%v", order.ID, line.ListingID, err)
			return nil, err
		}
		order.Lines = append(order.Lines, out)
	}

	// Clear, not delete: the cart row survives so the customer keeps the
	// same cart document across checkouts.
	if _, err := tx.Exec(ctx, `
DELETE FROM cart_items
WHERE cart_id IN (SELECT id FROM carts WHERE customer_id = $1)
`, in.CustomerID); err != nil {
		r.logger.Printf("order repo: clear cart customer_id=%s error=%v", in.CustomerID, err)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("order repo: created id=%s customer_id=%s lines=%d", order.ID, in.CustomerID, len(order.Lines))
	return &order, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT id::text, customer_id::text, total_amount, shipping, status, created_at
FROM orders
WHERE id = $1
`
	orders, err := r.collect(ctx, q, id)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, domain.ErrNotFound
	}
	return &orders[0], nil
}

func (r *postgresRepo) ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	const q = `
SELECT id::text, customer_id::text, total_amount, shipping, status, created_at
FROM orders
WHERE customer_id = $1
ORDER BY created_at ASC
`
	return r.collect(ctx, q, customerID)
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT id::text, customer_id::text, total_amount, shipping, status, created_at
FROM orders
ORDER BY created_at ASC
`
	orders, err := r.collect(ctx, q)
	if err != nil {
		return nil, err
	}
	if err := r.attachCustomers(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error) {
	cmd, err := r.pool.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		r.logger.Printf("order repo: update status id=%s error=%v", id, err)
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, domain.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepo) collect(ctx context.Context, q string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("order repo: query error=%v", err)
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.TotalAmount, &o.Shipping, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		o.Lines = []domain.OrderLine{}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachLines(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// attachLines resolves every line's listing to the display fields the
// storefront renders (title, price, images).
func (r *postgresRepo) attachLines(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	index := make(map[string]int, len(orders))
	ids := make([]string, 0, len(orders))
	for i, o := range orders {
		index[o.ID] = i
		ids = append(ids, o.ID)
	}

	const q = `
SELECT ol.order_id::text, ol.id::text, ol.listing_id::text, ol.quantity,
       l.title, l.price, l.images
FROM order_lines ol
JOIN listings l ON l.id = ol.listing_id
WHERE ol.order_id = ANY($1::uuid[])
ORDER BY ol.created_at ASC
`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		r.logger.Printf("order repo: lines query error=%v", err)
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var line domain.OrderLine
		var l domain.Listing
		if err := rows.Scan(&orderID, &line.ID, &line.ListingID, &line.Quantity, &l.Title, &l.Price, &l.Images); err != nil {
			return err
		}
		l.ID = line.ListingID
		line.Listing = &l
		i := index[orderID]
		orders[i].Lines = append(orders[i].Lines, line)
	}
	return rows.Err()
}

func (r *postgresRepo) attachCustomers(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.CustomerID)
	}

	rows, err := r.pool.Query(ctx, `
SELECT id::text, name, email
FROM customers
WHERE id = ANY($1::uuid[])
`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	byID := make(map[string]domain.Customer)
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email); err != nil {
			return err
		}
		byID[c.ID] = c
	}
	if err := rows.Err(); err != nil {
		return err
	}
	for i := range orders {
		if c, ok := byID[orders[i].CustomerID]; ok {
			cc := c
			orders[i].Customer = &cc
		}
	}
	return nil
}
