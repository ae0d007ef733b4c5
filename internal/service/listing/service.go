package listing

import (
	"context"
	"strings"

	"jewelstore/internal/domain"
	listingrepo "jewelstore/internal/repository/listing"
)

// Service owns the jewelry catalog.
type Service struct {
	repo listingrepo.Repository
}

func New(repo listingrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Input is the writable subset of a listing.
type Input struct {
	Title       string                `json:"title"`
	Category    string                `json:"category"`
	Price       int64                 `json:"price"`
	Description string                `json:"description"`
	MetalType   string                `json:"metalType"`
	MetalPurity string                `json:"metalPurity"`
	Gemstones   []domain.Gemstone     `json:"gemstones"`
	Images      []domain.ListingImage `json:"images"`
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Listing, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, fromInput(in))
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Listing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Listing, error) {
	return s.repo.List(ctx)
}

// ListByCategory rejects unknown categories before touching storage, so a
// typo in the URL reads as a 404 rather than an empty result.
func (s *Service) ListByCategory(ctx context.Context, category string) ([]domain.Listing, error) {
	if !domain.ValidCategory(category) {
		return nil, domain.ErrNotFound
	}
	return s.repo.ListByCategory(ctx, category)
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Listing, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	l := fromInput(in)
	l.ID = id
	return s.repo.Update(ctx, l)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func fromInput(in Input) domain.Listing {
	gems := in.Gemstones
	if gems == nil {
		gems = []domain.Gemstone{}
	}
	images := in.Images
	if images == nil {
		images = []domain.ListingImage{}
	}
	return domain.Listing{
		Title:       strings.TrimSpace(in.Title),
		Category:    in.Category,
		Price:       in.Price,
		Description: in.Description,
		MetalType:   in.MetalType,
		MetalPurity: in.MetalPurity,
		Gemstones:   gems,
		Images:      images,
	}
}

func validate(in Input) error {
	if strings.TrimSpace(in.Title) == "" {
		return domain.ValidationError("title is required")
	}
	if !domain.ValidCategory(in.Category) {
		return domain.ValidationError("category must be one of: " + strings.Join(domain.ListingCategories, ", "))
	}
	if in.Price < 0 {
		return domain.ValidationError("price must not be negative")
	}
	if !domain.ValidMetalType(in.MetalType) {
		return domain.ValidationError("metalType must be one of: " + strings.Join(domain.MetalTypes, ", "))
	}
	if in.MetalPurity != "" && !domain.ValidMetalPurity(in.MetalPurity) {
		return domain.ValidationError("metalPurity must be one of: " + strings.Join(domain.MetalPurities, ", "))
	}
	for _, g := range in.Gemstones {
		if !domain.ValidGemstone(g.Type) {
			return domain.ValidationError("gemstone type must be one of: " + strings.Join(domain.GemstoneTypes, ", "))
		}
	}
	return nil
}
