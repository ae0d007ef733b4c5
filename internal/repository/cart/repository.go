package cart

import (
	"context"

	"jewelstore/internal/domain"
)

// Repository persists the one-cart-per-customer model. Reads resolve each
// item's listing so callers can render title and price without a second
// round trip.
type Repository interface {
	// GetByCustomer returns the customer's cart with listings resolved.
	// ErrNotFound means no cart has been created yet.
	GetByCustomer(ctx context.Context, customerID string) (*domain.Cart, error)
	// AddItem creates the cart on first use and increments the quantity
	// atomically when the listing is already present.
	AddItem(ctx context.Context, customerID, listingID string, quantity int) error
	// RemoveItem deletes the line for listingID. Removing an absent line is
	// a no-op; a missing cart is ErrNotFound.
	RemoveItem(ctx context.Context, customerID, listingID string) error
	// SetItemQuantity overwrites the quantity of an existing line.
	// ErrNotFound covers both a missing cart and a missing line.
	SetItemQuantity(ctx context.Context, customerID, listingID string, quantity int) error
}
