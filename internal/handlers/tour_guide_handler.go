package handlers

import (
	"encoding/json"
	"net/http"

	"traveleon/internal/models"
	"traveleon/internal/services"
)

type TourGuideHandler struct {
	Service *services.TourGuideService
}

func (h *TourGuideHandler) GetTourGuides(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.GetTourGuidesByType(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if items == nil {
		items = []models.TourGuide{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}

func (h *TourGuideHandler) CreateTourGuide(w http.ResponseWriter, r *http.Request) {
	sellerID, role, ok := sellerFromContext(r)
	if !ok {
		http.Error(w, "Only sellers can create listings", http.StatusForbidden)
		return
	}

	var item models.TourGuide
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if item.Name == "" {
		http.Error(w, "Name is required", http.StatusBadRequest)
		return
	}
	if role != models.RoleAdmin || item.SellerID == 0 {
		item.SellerID = sellerID
	}

	created, err := h.Service.CreateTourGuide(r.Context(), item)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}
