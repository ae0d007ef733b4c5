package domain

import "time"

// ListingImage is a hosted product photo. Uploads happen outside this
// service; only the resulting URL is stored.
type ListingImage struct {
	URL      string `json:"url"`
	Filename string `json:"filename,omitempty"`
}

type Gemstone struct {
	Type string `json:"type"`
}

type Listing struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Category    string         `json:"category"`
	Price       int64          `json:"price"`
	Description string         `json:"description,omitempty"`
	MetalType   string         `json:"metalType"`
	MetalPurity string         `json:"metalPurity,omitempty"`
	Gemstones   []Gemstone     `json:"gemstones"`
	Images      []ListingImage `json:"images"`
	CreatedAt   time.Time      `json:"createdAt"`
}

var (
	ListingCategories = []string{"ring", "necklace", "earrings", "bracelet"}
	MetalTypes        = []string{"gold", "silver", "platinum", "rose_gold", "white_gold", "palladium"}
	MetalPurities     = []string{"10k", "14k", "18k", "22k", "24k", "925", "950", "999"}
	GemstoneTypes     = []string{"diamond", "ruby", "sapphire", "emerald", "amethyst", "pearl", "other"}
)

func ValidCategory(c string) bool    { return contains(ListingCategories, c) }
func ValidMetalType(m string) bool   { return contains(MetalTypes, m) }
func ValidMetalPurity(p string) bool { return contains(MetalPurities, p) }
func ValidGemstone(g string) bool    { return contains(GemstoneTypes, g) }

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
