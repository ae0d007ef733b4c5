package importer

import (
	"context"
	"strings"
	"testing"

	"jewelstore/internal/domain"
)

type stubListingRepo struct {
	items []domain.Listing
}

func (s *stubListingRepo) Upsert(_ context.Context, l domain.Listing) (*domain.Listing, error) {
	s.items = append(s.items, l)
	return &l, nil
}

func TestCSVImporter_Run(t *testing.T) {
	csvData := `id,title,category,price,description,metalType,metalPurity,gemstones,images.url
00000000-0000-0000-0000-000000000001,Solitaire Ring,ring,45999,A classic solitaire,gold,18k,diamond,https://example.com/ring1.jpg
,,,,,,,,https://example.com/ring2.jpg
00000000-0000-0000-0000-000000000002,Pearl Strand,necklace,12499,Hand-knotted pearls,silver,925,pearl,`

	repo := &stubListingRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	count, err := imp.Run(context.Background())
	if err != nil {
		t.Fatalf("import run: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 listings imported, got %d", count)
	}
	if len(repo.items) != 2 {
		t.Fatalf("expected 2 listings saved, got %d", len(repo.items))
	}

	first := repo.items[0]
	if first.Title != "Solitaire Ring" || first.Category != "ring" || first.Price != 45999 {
		t.Fatalf("unexpected first listing: %+v", first)
	}
	if len(first.Images) != 2 {
		t.Fatalf("continuation image row not attached: %+v", first.Images)
	}
	if len(first.Gemstones) != 1 || first.Gemstones[0].Type != "diamond" {
		t.Fatalf("unexpected gemstones: %+v", first.Gemstones)
	}

	second := repo.items[1]
	if second.Title != "Pearl Strand" || second.MetalPurity != "925" {
		t.Fatalf("unexpected second listing: %+v", second)
	}
	if len(second.Images) != 0 {
		t.Fatalf("expected no images, got %+v", second.Images)
	}
}

func TestCSVImporter_MultipleGemstones(t *testing.T) {
	csvData := `id,title,category,price,description,metalType,metalPurity,gemstones,images.url
,Halo Ring,ring,9999,,white_gold,14k,diamond; sapphire,`

	repo := &stubListingRepo{}
	imp := NewCSVImporter(strings.NewReader(csvData), repo)

	if _, err := imp.Run(context.Background()); err != nil {
		t.Fatalf("import run: %v", err)
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected 1 listing, got %d", len(repo.items))
	}
	gems := repo.items[0].Gemstones
	if len(gems) != 2 || gems[0].Type != "diamond" || gems[1].Type != "sapphire" {
		t.Fatalf("unexpected gemstones: %+v", gems)
	}
}

func TestCSVImporter_RejectsBadRows(t *testing.T) {
	cases := []struct {
		name string
		row  string
	}{
		{"bad category", `,Tiara,tiara,100,,gold,,,`},
		{"bad metal", `,Ring,ring,100,,adamantium,,,`},
		{"bad gemstone", `,Ring,ring,100,,gold,,kryptonite,`},
		{"zero price", `,Ring,ring,0,,gold,,,`},
		{"bad id", `not-a-uuid,Ring,ring,100,,gold,,,`},
	}
	for _, tc := range cases {
		csvData := "id,title,category,price,description,metalType,metalPurity,gemstones,images.url\n" + tc.row
		imp := NewCSVImporter(strings.NewReader(csvData), &stubListingRepo{})
		if _, err := imp.Run(context.Background()); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}
