package token

import (
	"context"
	"time"
)

// Token is an opaque session credential bound to either a customer or an
// admin account.
type Token struct {
	Token      string
	CustomerID *string
	AdminID    *string
	Kind       string
	ExpiresAt  time.Time
	CreatedAt  time.Time
}

type Repository interface {
	Create(ctx context.Context, token Token) error
	Get(ctx context.Context, token string) (*Token, error)
	Delete(ctx context.Context, token string) error
}
