package customer

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"jewelstore/internal/domain"
	adminrepo "jewelstore/internal/repository/admin"
	custrepo "jewelstore/internal/repository/customer"
	tokenrepo "jewelstore/internal/repository/token"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
	// ErrEmailTaken is returned when registering an address that exists.
	ErrEmailTaken = errors.New("email already registered")
)

// Identity is the request-scoped result of resolving a session token.
type Identity struct {
	CustomerID string `json:"userId,omitempty"`
	AdminID    string `json:"adminId,omitempty"`
	Name       string `json:"name"`
	IsAdmin    bool   `json:"isAdmin"`
}

// Service handles customer signup/login, admin login, and session lookup.
type Service struct {
	customers   custrepo.Repository
	admins      adminrepo.Repository
	tokens      *tokenManager
	accessTTL   time.Duration
	passwordMin int
}

// New creates a Service with sane defaults.
func New(customers custrepo.Repository, admins adminrepo.Repository, tokens tokenrepo.Repository) *Service {
	return &Service{
		customers:   customers,
		admins:      admins,
		tokens:      newTokenManager(tokens),
		accessTTL:   48 * time.Hour,
		passwordMin: 6,
	}
}

// Register creates a customer account with a hashed password.
func (s *Service) Register(ctx context.Context, name, email, password string) (*domain.Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ValidationError("name is required")
	}
	email = strings.TrimSpace(strings.ToLower(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, domain.ValidationError("a valid email is required")
	}
	password = strings.TrimSpace(password)
	if len(password) < s.passwordMin {
		return nil, domain.ValidationError(fmt.Sprintf("password must be at least %d characters", s.passwordMin))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.customers.Create(ctx, domain.Customer{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return created, nil
}

// Login validates customer credentials and returns an issued access token.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.Customer, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	c, err := s.customers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(strings.TrimSpace(password))); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(ctx, c.ID, "", s.accessTTL)
	if err != nil {
		return nil, "", err
	}
	return c, tok, nil
}

// AdminLogin validates back-office credentials and returns an admin token.
func (s *Service) AdminLogin(ctx context.Context, username, password string) (*domain.Admin, string, error) {
	a, err := s.admins.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(strings.TrimSpace(password))); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(ctx, "", a.ID, s.accessTTL)
	if err != nil {
		return nil, "", err
	}
	return a, tok, nil
}

// Logout revokes the token. Revoking an unknown token succeeds.
func (s *Service) Logout(ctx context.Context, tok string) error {
	return s.tokens.Revoke(ctx, tok)
}

// LookupByToken resolves a bearer token into the identity behind it.
func (s *Service) LookupByToken(ctx context.Context, tok string) (*Identity, error) {
	meta, ok := s.tokens.Validate(ctx, tok)
	if !ok {
		return nil, ErrInvalidToken
	}
	switch {
	case meta.AdminID != "":
		a, err := s.admins.GetByID(ctx, meta.AdminID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, ErrInvalidToken
			}
			return nil, err
		}
		return &Identity{AdminID: a.ID, Name: a.Username, IsAdmin: true}, nil
	case meta.CustomerID != "":
		c, err := s.customers.GetByID(ctx, meta.CustomerID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, ErrInvalidToken
			}
			return nil, err
		}
		return &Identity{CustomerID: c.ID, Name: c.Name}, nil
	default:
		return nil, ErrInvalidToken
	}
}

// AccessTTLSeconds exposes the access token lifetime in seconds.
func (s *Service) AccessTTLSeconds() int {
	return int(s.accessTTL.Seconds())
}
