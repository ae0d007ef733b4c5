package admin

import (
	"context"

	"jewelstore/internal/domain"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Admin, error)
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
	Upsert(ctx context.Context, username, passwordHash string) (*domain.Admin, error)
}
