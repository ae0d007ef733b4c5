package review

import (
	"context"

	"jewelstore/internal/domain"
)

type Repository interface {
	// Create returns ErrAlreadyExists when the customer has already
	// reviewed the listing.
	Create(ctx context.Context, rev domain.Review) (*domain.Review, error)
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	ListByListing(ctx context.Context, listingID string) ([]domain.Review, error)
	Update(ctx context.Context, id string, rating int, comment string) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
	// AverageForListing returns 0 when the listing has no reviews.
	AverageForListing(ctx context.Context, listingID string) (float64, error)
}
