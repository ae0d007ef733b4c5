package cart

import (
	"context"
	"errors"
	"testing"

	"jewelstore/internal/domain"
)

type stubCartRepo struct {
	carts           []*domain.Cart
	getCalls        int
	getErr          error
	addErr          error
	removeErr       error
	setErr          error
	lastAddCustomer string
	lastAddListing  string
	lastAddQty      int
	lastRemListing  string
	lastSetListing  string
	lastSetQty      int
}

func (s *stubCartRepo) GetByCustomer(_ context.Context, _ string) (*domain.Cart, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	var res *domain.Cart
	if len(s.carts) > 0 {
		idx := s.getCalls
		if idx >= len(s.carts) {
			idx = len(s.carts) - 1
		}
		res = s.carts[idx]
	}
	s.getCalls++
	return res, nil
}

func (s *stubCartRepo) AddItem(_ context.Context, customerID, listingID string, quantity int) error {
	s.lastAddCustomer = customerID
	s.lastAddListing = listingID
	s.lastAddQty = quantity
	return s.addErr
}

func (s *stubCartRepo) RemoveItem(_ context.Context, _, listingID string) error {
	s.lastRemListing = listingID
	return s.removeErr
}

func (s *stubCartRepo) SetItemQuantity(_ context.Context, _, listingID string, quantity int) error {
	s.lastSetListing = listingID
	s.lastSetQty = quantity
	return s.setErr
}

type stubListingRepo struct {
	listing *domain.Listing
	err     error
	lastID  string
}

func (s *stubListingRepo) GetByID(_ context.Context, id string) (*domain.Listing, error) {
	s.lastID = id
	return s.listing, s.err
}

type stubCustomerRepo struct {
	customer *domain.Customer
	err      error
}

func (s *stubCustomerRepo) GetByID(_ context.Context, _ string) (*domain.Customer, error) {
	return s.customer, s.err
}

func newTestService(repo *stubCartRepo, listings *stubListingRepo, customers *stubCustomerRepo) *Service {
	if listings == nil {
		listings = &stubListingRepo{listing: &domain.Listing{ID: "p1"}}
	}
	if customers == nil {
		customers = &stubCustomerRepo{customer: &domain.Customer{ID: "u1"}}
	}
	return New(repo, listings, customers)
}

func TestAddItemRejectsQuantityBelowOne(t *testing.T) {
	svc := newTestService(&stubCartRepo{}, nil, nil)
	for _, q := range []int{0, -3} {
		if _, err := svc.AddItem(context.Background(), "u1", "p1", q); !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("quantity %d: expected ErrInvalidQuantity, got %v", q, err)
		}
	}
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc := newTestService(&stubCartRepo{}, &stubListingRepo{err: domain.ErrNotFound}, nil)
	if _, err := svc.AddItem(context.Background(), "u1", "missing", 1); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestAddItemUnknownCustomer(t *testing.T) {
	svc := newTestService(&stubCartRepo{}, nil, &stubCustomerRepo{err: domain.ErrNotFound})
	if _, err := svc.AddItem(context.Background(), "ghost", "p1", 1); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAddItemReturnsPopulatedCart(t *testing.T) {
	want := &domain.Cart{
		ID:         "c1",
		CustomerID: "u1",
		Items:      []domain.CartItem{{ListingID: "p1", Quantity: 3}},
	}
	repo := &stubCartRepo{carts: []*domain.Cart{want}}
	svc := newTestService(repo, nil, nil)

	got, err := svc.AddItem(context.Background(), "u1", "p1", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected cart: %+v", got)
	}
	if repo.lastAddCustomer != "u1" || repo.lastAddListing != "p1" || repo.lastAddQty != 3 {
		t.Fatalf("AddItem not called as expected: %s %s %d", repo.lastAddCustomer, repo.lastAddListing, repo.lastAddQty)
	}
}

func TestAddItemRepoError(t *testing.T) {
	repo := &stubCartRepo{addErr: errors.New("boom")}
	svc := newTestService(repo, nil, nil)
	if _, err := svc.AddItem(context.Background(), "u1", "p1", 1); err == nil || err.Error() != "boom" {
		t.Fatalf("expected repo error, got %v", err)
	}
}

func TestGetCartEmptyWhenNoneExists(t *testing.T) {
	repo := &stubCartRepo{getErr: domain.ErrNotFound}
	svc := newTestService(repo, nil, nil)

	cart, err := svc.GetCart(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cart.CustomerID != "u1" {
		t.Fatalf("unexpected customer id: %s", cart.CustomerID)
	}
	if cart.Items == nil || len(cart.Items) != 0 {
		t.Fatalf("expected empty items slice, got %+v", cart.Items)
	}
}

func TestGetCartUnknownCustomer(t *testing.T) {
	svc := newTestService(&stubCartRepo{}, nil, &stubCustomerRepo{err: domain.ErrNotFound})
	if _, err := svc.GetCart(context.Background(), "ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRemoveItemWithoutCart(t *testing.T) {
	repo := &stubCartRepo{removeErr: domain.ErrNotFound}
	svc := newTestService(repo, nil, nil)
	if _, err := svc.RemoveItem(context.Background(), "u1", "p1"); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}

func TestRemoveItemAbsentListingIsNoop(t *testing.T) {
	// The repo treats deleting a missing line as success, so removing a
	// listing that was never added returns the cart unchanged.
	want := &domain.Cart{ID: "c1", CustomerID: "u1", Items: []domain.CartItem{{ListingID: "p2", Quantity: 1}}}
	repo := &stubCartRepo{carts: []*domain.Cart{want}}
	svc := newTestService(repo, nil, nil)

	got, err := svc.RemoveItem(context.Background(), "u1", "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Fatalf("unexpected cart: %+v", got)
	}
	if repo.lastRemListing != "p1" {
		t.Fatalf("RemoveItem not called as expected: %s", repo.lastRemListing)
	}
}

func TestSetQuantityRejectsQuantityBelowOne(t *testing.T) {
	svc := newTestService(&stubCartRepo{}, nil, nil)
	if _, err := svc.SetQuantity(context.Background(), "u1", "p1", 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestSetQuantityWithoutCart(t *testing.T) {
	repo := &stubCartRepo{getErr: domain.ErrNotFound}
	svc := newTestService(repo, nil, nil)
	if _, err := svc.SetQuantity(context.Background(), "u1", "p1", 2); !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
}

func TestSetQuantityMissingItem(t *testing.T) {
	repo := &stubCartRepo{
		carts:  []*domain.Cart{{ID: "c1", CustomerID: "u1"}},
		setErr: domain.ErrNotFound,
	}
	svc := newTestService(repo, nil, nil)
	if _, err := svc.SetQuantity(context.Background(), "u1", "p1", 2); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestSetQuantityHappyPath(t *testing.T) {
	before := &domain.Cart{ID: "c1", CustomerID: "u1", Items: []domain.CartItem{{ListingID: "p1", Quantity: 1}}}
	after := &domain.Cart{ID: "c1", CustomerID: "u1", Items: []domain.CartItem{{ListingID: "p1", Quantity: 5}}}
	repo := &stubCartRepo{carts: []*domain.Cart{before, after}}
	svc := newTestService(repo, nil, nil)

	got, err := svc.SetQuantity(context.Background(), "u1", "p1", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != after {
		t.Fatalf("unexpected cart: %+v", got)
	}
	if repo.lastSetListing != "p1" || repo.lastSetQty != 5 {
		t.Fatalf("SetItemQuantity not called as expected: %s %d", repo.lastSetListing, repo.lastSetQty)
	}
}
