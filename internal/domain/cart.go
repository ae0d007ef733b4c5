package domain

import "time"

// Cart is the single mutable basket a customer builds before checkout.
// At most one cart exists per customer; it is created lazily and cleared,
// never deleted, when an order is placed from it.
type Cart struct {
	ID         string     `json:"id,omitempty"`
	CustomerID string     `json:"userId"`
	Items      []CartItem `json:"items"`
	CreatedAt  time.Time  `json:"createdAt,omitempty"`
}

// CartItem holds one listing reference with its quantity. A cart never
// contains two items for the same listing.
type CartItem struct {
	ID        string    `json:"id,omitempty"`
	ListingID string    `json:"productId"`
	Quantity  int       `json:"quantity"`
	Listing   *Listing  `json:"product,omitempty"`
	CreatedAt time.Time `json:"-"`
}
