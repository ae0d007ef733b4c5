package seed

import (
	"context"
	"fmt"
	"os"

	"jewelstore/internal/domain"
	adminrepo "jewelstore/internal/repository/admin"
	listingrepo "jewelstore/internal/repository/listing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Apply inserts demo data for manual testing. It is idempotent: the
// admin upserts by username and listings upsert by a deterministic id
// derived from their seed key.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	admins := adminrepo.NewPostgres(pool)
	if err := ensureAdmin(ctx, admins); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	listings := listingrepo.NewPostgres(pool, nil)
	for _, l := range demoListings() {
		if _, err := listings.Upsert(ctx, l); err != nil {
			return fmt.Errorf("upsert listing %q: %w", l.Title, err)
		}
	}

	return nil
}

func ensureAdmin(ctx context.Context, admins adminrepo.Repository) error {
	username := os.Getenv("SEED_ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = admins.Upsert(ctx, username, string(hash))
	return err
}

// seedID maps a stable key to the same UUID on every run.
func seedID(key string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("jewelstore/seed/"+key)).String()
}

func demoListings() []domain.Listing {
	return []domain.Listing{
		{
			ID:          seedID("solitaire-ring"),
			Title:       "Classic Diamond Solitaire Ring",
			Category:    "ring",
			Price:       45999,
			Description: "A timeless solitaire with a brilliant-cut center stone on an 18k gold band.",
			MetalType:   "gold",
			MetalPurity: "18k",
			Gemstones:   []domain.Gemstone{{Type: "diamond"}},
			Images: []domain.ListingImage{
				{URL: "https://images.jewelstore.dev/seed/solitaire-ring.jpg", Filename: "solitaire-ring.jpg"},
			},
		},
		{
			ID:          seedID("pearl-necklace"),
			Title:       "Freshwater Pearl Strand Necklace",
			Category:    "necklace",
			Price:       12499,
			Description: "Hand-knotted freshwater pearls with a sterling silver clasp.",
			MetalType:   "silver",
			MetalPurity: "925",
			Gemstones:   []domain.Gemstone{{Type: "pearl"}},
			Images: []domain.ListingImage{
				{URL: "https://images.jewelstore.dev/seed/pearl-necklace.jpg", Filename: "pearl-necklace.jpg"},
			},
		},
		{
			ID:          seedID("sapphire-earrings"),
			Title:       "Sapphire Drop Earrings",
			Category:    "earrings",
			Price:       28750,
			Description: "Deep blue sapphires set in white gold drops.",
			MetalType:   "white_gold",
			MetalPurity: "14k",
			Gemstones:   []domain.Gemstone{{Type: "sapphire"}},
			Images: []domain.ListingImage{
				{URL: "https://images.jewelstore.dev/seed/sapphire-earrings.jpg", Filename: "sapphire-earrings.jpg"},
			},
		},
		{
			ID:          seedID("tennis-bracelet"),
			Title:       "Platinum Tennis Bracelet",
			Category:    "bracelet",
			Price:       89999,
			Description: "A full line of round diamonds in a platinum four-prong setting.",
			MetalType:   "platinum",
			MetalPurity: "950",
			Gemstones:   []domain.Gemstone{{Type: "diamond"}},
			Images: []domain.ListingImage{
				{URL: "https://images.jewelstore.dev/seed/tennis-bracelet.jpg", Filename: "tennis-bracelet.jpg"},
			},
		},
	}
}
