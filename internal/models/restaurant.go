package models

import "time"

type Restaurant struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	RestaurantType string    `json:"restaurant_type"`
	Location       string    `json:"location"`
	ContactNo      string    `json:"contact_no"`
	PriceRange     string    `json:"price_range"`
	Images         []string  `json:"images"`
	SellerID       int       `json:"seller_id"`
	CreatedAt      time.Time `json:"created_at"`
}
