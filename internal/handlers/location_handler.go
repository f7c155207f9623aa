package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"traveleon/internal/models"
	"traveleon/internal/services"
)

type LocationHandler struct {
	Service *services.LocationService
}

// GetLocations serves the explore feed. Both search and category are
// optional; category "all" or an empty category matches everything.
func (h *LocationHandler) GetLocations(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	category := r.URL.Query().Get("category")

	locations, err := h.Service.GetLocations(r.Context(), search, category)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if locations == nil {
		locations = []models.Location{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(locations)
}

func (h *LocationHandler) GetLocationByID(w http.ResponseWriter, r *http.Request) {
	idStr := r.URL.Query().Get(":id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "Invalid location ID", http.StatusBadRequest)
		return
	}

	location, err := h.Service.GetLocationByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(location)
}
