package models

import "time"

type Vehicle struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	VehicleType string    `json:"vehicle_type"`
	Location    string    `json:"location"`
	ContactNo   string    `json:"contact_no"`
	Price       string    `json:"price"`
	Images      []string  `json:"images"`
	SellerID    int       `json:"seller_id"`
	CreatedAt   time.Time `json:"created_at"`
}
