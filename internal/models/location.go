package models

// Location is a tourist spot shown on the home screen. Fetched once per
// visit, never mutated after the fact.
type Location struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}
