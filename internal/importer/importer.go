package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"jewelstore/internal/domain"

	"github.com/google/uuid"
)

type ListingWriter interface {
	Upsert(ctx context.Context, l domain.Listing) (*domain.Listing, error)
}

// CSVImporter reads catalog CSV exports and inserts/updates listings.
type CSVImporter struct {
	reader      *csv.Reader
	listingRepo ListingWriter
}

func NewCSVImporter(r io.Reader, repo ListingWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:      csvr,
		listingRepo: repo,
	}
}

type csvRow struct {
	ID          string
	Title       string
	Category    string
	Price       int64
	Description string
	MetalType   string
	MetalPurity string
	Gemstones   []string
	ImageURLs   []string
}

// Run parses CSV rows and upserts listings. Rows with an empty title are
// treated as continuation rows carrying extra image urls for the listing
// above them.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)

	var (
		current  *csvRow
		imported int
	)

	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row := parseRow(record, index)
		if row == nil {
			continue
		}

		if row.Title != "" {
			if current != nil {
				if err := i.save(ctx, current); err != nil {
					return imported, err
				}
				imported++
			}
			current = row
			continue
		}

		// Continuation rows (images) belong to the current listing.
		if current != nil && len(row.ImageURLs) > 0 {
			current.ImageURLs = append(current.ImageURLs, row.ImageURLs...)
		}
	}

	if current != nil {
		if err := i.save(ctx, current); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow) error {
	if row.Title == "" || row.Price <= 0 {
		return fmt.Errorf("invalid listing row (missing required fields) for title %q", row.Title)
	}
	if row.ID != "" {
		if _, err := uuid.Parse(row.ID); err != nil {
			return fmt.Errorf("invalid id for title %q: %s", row.Title, row.ID)
		}
	}
	if !domain.ValidCategory(row.Category) {
		return fmt.Errorf("invalid category %q for title %q", row.Category, row.Title)
	}
	if !domain.ValidMetalType(row.MetalType) {
		return fmt.Errorf("invalid metal type %q for title %q", row.MetalType, row.Title)
	}
	if row.MetalPurity != "" && !domain.ValidMetalPurity(row.MetalPurity) {
		return fmt.Errorf("invalid metal purity %q for title %q", row.MetalPurity, row.Title)
	}

	gems := make([]domain.Gemstone, 0, len(row.Gemstones))
	for _, g := range row.Gemstones {
		if !domain.ValidGemstone(g) {
			return fmt.Errorf("invalid gemstone %q for title %q", g, row.Title)
		}
		gems = append(gems, domain.Gemstone{Type: g})
	}

	images := make([]domain.ListingImage, 0, len(row.ImageURLs))
	for _, u := range row.ImageURLs {
		images = append(images, domain.ListingImage{URL: u, Filename: path.Base(u)})
	}

	l := domain.Listing{
		ID:          row.ID,
		Title:       row.Title,
		Category:    row.Category,
		Price:       row.Price,
		Description: row.Description,
		MetalType:   row.MetalType,
		MetalPurity: row.MetalPurity,
		Gemstones:   gems,
		Images:      images,
	}

	if _, err := i.listingRepo.Upsert(ctx, l); err != nil {
		return fmt.Errorf("upsert listing %q: %w", row.Title, err)
	}
	return nil
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[h] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) *csvRow {
	id := pick(record, index, "id")
	title := pick(record, index, "title")
	category := pick(record, index, "category")
	priceStr := pick(record, index, "price")
	desc := pick(record, index, "description")
	metalType := pick(record, index, "metalType")
	metalPurity := pick(record, index, "metalPurity")
	gemsStr := pick(record, index, "gemstones")
	imageURL := pick(record, index, "images.url")

	if title == "" && imageURL == "" {
		return nil
	}

	var price int64
	if priceStr != "" {
		price, _ = strconv.ParseInt(priceStr, 10, 64)
	}

	row := &csvRow{
		ID:          id,
		Title:       title,
		Category:    category,
		Price:       price,
		Description: desc,
		MetalType:   metalType,
		MetalPurity: metalPurity,
	}
	if gemsStr != "" {
		for _, g := range strings.Split(gemsStr, ";") {
			g = strings.TrimSpace(g)
			if g != "" {
				row.Gemstones = append(row.Gemstones, g)
			}
		}
	}
	if imageURL != "" {
		row.ImageURLs = []string{strings.TrimSpace(imageURL)}
	}
	return row
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
