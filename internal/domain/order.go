package domain

import "time"

const (
	StatusPending     = "Pending"
	StatusOrderPlaced = "Order Placed"
	StatusShipped     = "Shipped"
	StatusDelivered   = "Delivered"
	StatusCancelled   = "Cancelled"
)

// OrderStatuses lists every accepted status value. There is no transition
// graph: an admin may set any status at any time.
var OrderStatuses = []string{
	StatusPending,
	StatusOrderPlaced,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
}

func ValidOrderStatus(s string) bool { return contains(OrderStatuses, s) }

// ShippingInfo is the address block captured at checkout, stored verbatim
// on the order.
type ShippingInfo struct {
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
	Country      string `json:"country"`
	Notes        string `json:"notes,omitempty"`
}

// OrderLine is a snapshot of a cart item taken at checkout. It does not
// follow later price or title changes; Listing is resolved on read for
// display only.
type OrderLine struct {
	ID        string   `json:"id,omitempty"`
	ListingID string   `json:"productId"`
	Quantity  int      `json:"quantity"`
	Listing   *Listing `json:"product,omitempty"`
}

// Order is immutable after creation except for Status.
type Order struct {
	ID          string       `json:"id"`
	CustomerID  string       `json:"userId"`
	Lines       []OrderLine  `json:"products"`
	TotalAmount int64        `json:"totalAmount"`
	Shipping    ShippingInfo `json:"shippingInfo"`
	Status      string       `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	Customer    *Customer    `json:"customer,omitempty"`
}
