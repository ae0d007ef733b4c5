package order

import (
	"context"

	"jewelstore/internal/domain"
)

type CreateOrderInput struct {
	CustomerID  string
	Lines       []domain.OrderLine
	TotalAmount int64
	Shipping    domain.ShippingInfo
}

type Repository interface {
	// Create persists the order and its lines and clears the customer's
	// cart in the same transaction, so checkout cannot leave an order
	// behind with a stale cart.
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error)
}
