package handlers

import (
	"encoding/json"
	"net/http"

	"traveleon/internal/models"
	"traveleon/internal/services"
)

type EmergencyHandler struct {
	Service *services.EmergencyServiceService
}

func (h *EmergencyHandler) GetEmergencyServices(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.GetEmergencyServicesByType(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.EmergencyService{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

// CreateEmergencyService is admin only. Emergency contacts are curated
// content, not seller listings.
func (h *EmergencyHandler) CreateEmergencyService(w http.ResponseWriter, r *http.Request) {
	role, _ := r.Context().Value("role").(string)
	if role != models.RoleAdmin {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var item models.EmergencyService
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if item.ServiceType == "" || item.ContactNumber == "" {
		http.Error(w, "Service type and contact number are required", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateEmergencyService(r.Context(), item)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}
