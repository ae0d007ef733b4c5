package order

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"jewelstore/internal/domain"
	orderrepo "jewelstore/internal/repository/order"
)

// ErrInvalidStatus is returned when a status update names a value outside
// the fixed enum.
var ErrInvalidStatus = errors.New("invalid status update")

type orderRepo interface {
	Create(ctx context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error)
}

// Service converts carts into immutable orders and manages their status
// lifecycle.
type Service struct {
	repo orderRepo
}

func New(repo orderRepo) *Service {
	return &Service{repo: repo}
}

// LineInput is one product/quantity pair from the checkout request.
type LineInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CreateInput is the checkout payload. Any status supplied by the caller is
// ignored; new orders always start Pending. The total is taken as sent and
// validated for shape only, not recomputed from current listing prices.
type CreateInput struct {
	UserID      string              `json:"userId"`
	Products    []LineInput         `json:"products"`
	TotalAmount int64               `json:"totalAmount"`
	Shipping    domain.ShippingInfo `json:"shippingInfo"`
}

// Create validates and persists a new order. The order insert and the
// cart clear commit together, so a placed order never leaves line items
// behind in the cart.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	if err := validateCreate(in); err != nil {
		return nil, err
	}

	lines := make([]domain.OrderLine, 0, len(in.Products))
	for _, p := range in.Products {
		lines = append(lines, domain.OrderLine{ListingID: p.ProductID, Quantity: p.Quantity})
	}

	shipping := in.Shipping
	if strings.TrimSpace(shipping.Country) == "" {
		shipping.Country = "India"
	}

	return s.repo.Create(ctx, orderrepo.CreateOrderInput{
		CustomerID:  in.UserID,
		Lines:       lines,
		TotalAmount: in.TotalAmount,
		Shipping:    shipping,
	})
}

// ListForUser returns the customer's orders with listing display fields
// resolved, in storage order.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.repo.ListByCustomer(ctx, userID)
}

// ListAll returns every order system-wide with customer and listing
// references resolved. Admin only; gating happens at the HTTP boundary.
func (s *Service) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListAll(ctx)
}

// UpdateStatus sets the order's status to any of the fixed enum values.
// There is deliberately no transition graph: an admin may move an order
// from any status to any other.
func (s *Service) UpdateStatus(ctx context.Context, orderID, status string) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, orderID, status)
}

func validateCreate(in CreateInput) error {
	if strings.TrimSpace(in.UserID) == "" {
		return domain.ValidationError("userId is required")
	}
	if len(in.Products) == 0 {
		return domain.ValidationError("at least one product is required")
	}
	for _, p := range in.Products {
		if strings.TrimSpace(p.ProductID) == "" {
			return domain.ValidationError("productId is required")
		}
		if p.Quantity < 1 {
			return domain.ValidationError("quantity must be at least 1")
		}
	}
	if in.TotalAmount < 0 {
		return domain.ValidationError("totalAmount must not be negative")
	}
	return validateShipping(in.Shipping)
}

func validateShipping(s domain.ShippingInfo) error {
	required := []struct {
		field, value string
	}{
		{"fullName", s.FullName},
		{"phone", s.Phone},
		{"email", s.Email},
		{"addressLine1", s.AddressLine1},
		{"city", s.City},
		{"state", s.State},
		{"zipCode", s.ZipCode},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return domain.ValidationError("shippingInfo." + f.field + " is required")
		}
	}
	if _, err := mail.ParseAddress(s.Email); err != nil {
		return domain.ValidationError("shippingInfo.email is not a valid email address")
	}
	return nil
}
