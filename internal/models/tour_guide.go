package models

import "time"

type TourGuide struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	GuideType   string    `json:"guide_type"`
	Languages   string    `json:"languages"`
	PricePerDay string    `json:"price_per_day"`
	ContactNo   string    `json:"contact_no"`
	Images      []string  `json:"images"`
	SellerID    int       `json:"seller_id"`
	CreatedAt   time.Time `json:"created_at"`
}
