package models

import "time"

type Accommodation struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	AccommodationType string    `json:"accommodation_type"`
	Location          string    `json:"location"`
	ContactNo         string    `json:"contact_no"`
	Price             string    `json:"price"`
	Images            []string  `json:"images"`
	SellerID          int       `json:"seller_id"`
	CreatedAt         time.Time `json:"created_at"`
}
