package review

import (
	"context"
	"errors"
	"strings"

	"jewelstore/internal/domain"
	reviewrepo "jewelstore/internal/repository/review"
)

var (
	// ErrAlreadyReviewed is returned when the customer already has a
	// review on the listing.
	ErrAlreadyReviewed = errors.New("user has already submitted a review for this listing")
	// ErrNotOwner is returned when someone other than the author tries to
	// modify a review.
	ErrNotOwner = errors.New("not the review owner")
)

// Service attaches ratings to listings and keeps the running average.
type Service struct {
	repo reviewrepo.Repository
}

func New(repo reviewrepo.Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	ListingID string `json:"listingId"`
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Review, error) {
	if strings.TrimSpace(in.ListingID) == "" {
		return nil, domain.ValidationError("listingId is required")
	}
	if strings.TrimSpace(in.UserID) == "" {
		return nil, domain.ValidationError("userId is required")
	}
	if strings.TrimSpace(in.Username) == "" {
		return nil, domain.ValidationError("username is required")
	}
	if err := validateBody(in.Rating, in.Comment); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, domain.Review{
		ListingID:  in.ListingID,
		CustomerID: in.UserID,
		Username:   in.Username,
		Rating:     in.Rating,
		Comment:    strings.TrimSpace(in.Comment),
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, ErrAlreadyReviewed
		}
		return nil, err
	}
	return created, nil
}

func (s *Service) ListByListing(ctx context.Context, listingID string) ([]domain.Review, error) {
	return s.repo.ListByListing(ctx, listingID)
}

// Update edits a review in place. Only the author may edit.
func (s *Service) Update(ctx context.Context, reviewID, userID string, rating int, comment string) (*domain.Review, error) {
	if err := validateBody(rating, comment); err != nil {
		return nil, err
	}
	existing, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if existing.CustomerID != userID {
		return nil, ErrNotOwner
	}
	return s.repo.Update(ctx, reviewID, rating, strings.TrimSpace(comment))
}

// Delete removes a review. Only the author may delete.
func (s *Service) Delete(ctx context.Context, reviewID, userID string) error {
	existing, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if existing.CustomerID != userID {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, reviewID)
}

// Average returns the mean rating for a listing, 0 when unreviewed.
func (s *Service) Average(ctx context.Context, listingID string) (float64, error) {
	return s.repo.AverageForListing(ctx, listingID)
}

func validateBody(rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return domain.ValidationError("rating must be between 1 and 5")
	}
	if strings.TrimSpace(comment) == "" {
		return domain.ValidationError("comment is required")
	}
	return nil
}
