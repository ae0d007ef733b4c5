package customer

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"jewelstore/internal/domain"
	tokenrepo "jewelstore/internal/repository/token"
)

type tokenMeta struct {
	CustomerID string
	AdminID    string
	ExpiresAt  time.Time
}

type tokenManager struct {
	repo tokenrepo.Repository
}

func newTokenManager(repo tokenrepo.Repository) *tokenManager {
	return &tokenManager{repo: repo}
}

// Issue stores a freshly minted token bound to exactly one of customerID
// or adminID.
func (m *tokenManager) Issue(ctx context.Context, customerID, adminID string, ttl time.Duration) (string, error) {
	expiresAt := time.Now().Add(ttl)
	for i := 0; i < 5; i++ {
		tok, err := randomToken()
		if err != nil {
			return "", err
		}
		rec := tokenrepo.Token{
			Token:     tok,
			Kind:      "access",
			ExpiresAt: expiresAt,
		}
		if customerID != "" {
			id := customerID
			rec.CustomerID = &id
		}
		if adminID != "" {
			id := adminID
			rec.AdminID = &id
		}
		err = m.repo.Create(ctx, rec)
		if err == nil {
			return tok, nil
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		return "", err
	}
	return "", errors.New("token collision")
}

func (m *tokenManager) Validate(ctx context.Context, tok string) (tokenMeta, bool) {
	rec, err := m.repo.Get(ctx, tok)
	if err != nil {
		return tokenMeta{}, false
	}
	if rec.Kind != "access" {
		return tokenMeta{}, false
	}
	if time.Now().After(rec.ExpiresAt) {
		_ = m.repo.Delete(ctx, tok)
		return tokenMeta{}, false
	}
	meta := tokenMeta{ExpiresAt: rec.ExpiresAt}
	if rec.CustomerID != nil {
		meta.CustomerID = *rec.CustomerID
	}
	if rec.AdminID != nil {
		meta.AdminID = *rec.AdminID
	}
	return meta, true
}

func (m *tokenManager) Revoke(ctx context.Context, tok string) error {
	err := m.repo.Delete(ctx, tok)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
