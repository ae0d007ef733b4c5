package cart

import (
	"context"
	"errors"

	"jewelstore/internal/domain"
)

var (
	// ErrInvalidQuantity is returned when a quantity below 1 is requested.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrProductNotFound is returned when the listing reference does not resolve.
	ErrProductNotFound = errors.New("product not found")
	// ErrUserNotFound is returned when the customer reference does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrCartNotFound is returned when the customer has no cart yet.
	ErrCartNotFound = errors.New("cart not found")
	// ErrItemNotFound is returned when the cart has no line for the listing.
	ErrItemNotFound = errors.New("item not found in cart")
)

type cartRepo interface {
	GetByCustomer(ctx context.Context, customerID string) (*domain.Cart, error)
	AddItem(ctx context.Context, customerID, listingID string, quantity int) error
	RemoveItem(ctx context.Context, customerID, listingID string) error
	SetItemQuantity(ctx context.Context, customerID, listingID string, quantity int) error
}

type listingRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
}

type customerRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
}

// Service maintains the single mutable cart each customer shops with.
// Every mutation persists the cart and returns it with listings resolved,
// so the UI can render titles and prices without a second round trip.
type Service struct {
	repo      cartRepo
	listings  listingRepo
	customers customerRepo
}

func New(repo cartRepo, listings listingRepo, customers customerRepo) *Service {
	return &Service{repo: repo, listings: listings, customers: customers}
}

// AddItem appends a new line or bumps the quantity of an existing one.
// The cart is created lazily on the first add.
func (s *Service) AddItem(ctx context.Context, customerID, listingID string, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if _, err := s.listings.GetByID(ctx, listingID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if err := s.checkCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	if err := s.repo.AddItem(ctx, customerID, listingID, quantity); err != nil {
		return nil, err
	}
	return s.repo.GetByCustomer(ctx, customerID)
}

// GetCart returns the customer's cart, or an empty one when nothing has
// been added yet.
func (s *Service) GetCart(ctx context.Context, customerID string) (*domain.Cart, error) {
	if err := s.checkCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	cart, err := s.repo.GetByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.Cart{CustomerID: customerID, Items: []domain.CartItem{}}, nil
		}
		return nil, err
	}
	return cart, nil
}

// RemoveItem drops the line for listingID. Removing a listing that is not
// in the cart succeeds and returns the cart unchanged.
func (s *Service) RemoveItem(ctx context.Context, customerID, listingID string) (*domain.Cart, error) {
	if err := s.checkCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	if err := s.repo.RemoveItem(ctx, customerID, listingID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return s.repo.GetByCustomer(ctx, customerID)
}

// SetQuantity overwrites the quantity of an existing line in place.
func (s *Service) SetQuantity(ctx context.Context, customerID, listingID string, quantity int) (*domain.Cart, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if err := s.checkCustomer(ctx, customerID); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByCustomer(ctx, customerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	if err := s.repo.SetItemQuantity(ctx, customerID, listingID, quantity); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return s.repo.GetByCustomer(ctx, customerID)
}

func (s *Service) checkCustomer(ctx context.Context, customerID string) error {
	if _, err := s.customers.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
