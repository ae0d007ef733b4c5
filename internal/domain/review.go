package domain

import "time"

// Review is a customer's rating for a listing. One review per customer
// per listing.
type Review struct {
	ID         string    `json:"id"`
	ListingID  string    `json:"listingId"`
	CustomerID string    `json:"userId"`
	Username   string    `json:"username"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}
