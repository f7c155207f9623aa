package models

import "time"

type Adventure struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	AdventureType  string    `json:"adventure_type"`
	Location       string    `json:"location"`
	ContactNo      string    `json:"contact_no"`
	PricePerPerson string    `json:"price_per_person"`
	Images         []string  `json:"images"`
	SellerID       int       `json:"seller_id"`
	CreatedAt      time.Time `json:"created_at"`
}
