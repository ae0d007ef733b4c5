package listing

import (
	"context"

	"jewelstore/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, l domain.Listing) (*domain.Listing, error)
	GetByID(ctx context.Context, id string) (*domain.Listing, error)
	List(ctx context.Context) ([]domain.Listing, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Listing, error)
	Update(ctx context.Context, l domain.Listing) (*domain.Listing, error)
	Delete(ctx context.Context, id string) error
	Upsert(ctx context.Context, l domain.Listing) (*domain.Listing, error)
}
