package models

type EmergencyService struct {
	ID            int    `json:"id"`
	ServiceType   string `json:"service_type"`
	Location      string `json:"location"`
	ContactNumber string `json:"contact_number"`
	ServiceHours  string `json:"service_hours"`
}
