package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"traveleon/internal/models"
	"traveleon/internal/services"
)

type ChatRoomHandler struct {
	Service *services.ChatRoomService
}

// CreateChatRoom opens the buyer's room with a seller for one listing,
// returning the existing room when the buyer already reacted to it.
func (h *ChatRoomHandler) CreateChatRoom(w http.ResponseWriter, r *http.Request) {
	buyerID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.CreateChatRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.SellerID == 0 || req.TimeID == "" {
		http.Error(w, "Seller ID and time ID are required", http.StatusBadRequest)
		return
	}
	if req.SellerID == buyerID {
		http.Error(w, "Cannot open a chat with yourself", http.StatusBadRequest)
		return
	}

	res, err := h.Service.GetOrCreateRoom(r.Context(), buyerID, req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if res.Created {
		w.WriteHeader(http.StatusCreated)
	}
	json.NewEncoder(w).Encode(res)
}

// GetChatRooms serves the buyer's chat directory, most recent first.
func (h *ChatRoomHandler) GetChatRooms(w http.ResponseWriter, r *http.Request) {
	buyerID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	summaries, err := h.Service.Directory(r.Context(), buyerID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if summaries == nil {
		summaries = []models.ChatRoomSummary{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summaries)
}

func (h *ChatRoomHandler) GetChatRoomByID(w http.ResponseWriter, r *http.Request) {
	roomID, userID, ok := h.roomAndUser(w, r)
	if !ok {
		return
	}

	room, err := h.Service.GetRoomByID(r.Context(), roomID)
	if err != nil {
		if errors.Is(err, models.ErrChatRoomNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if room.BuyerID != userID && room.SellerID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(room)
}

func (h *ChatRoomHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	roomID, userID, ok := h.roomAndUser(w, r)
	if !ok {
		return
	}

	if err := h.Service.MarkRead(r.Context(), roomID, userID); err != nil {
		if errors.Is(err, models.ErrChatRoomNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ChatRoomHandler) roomAndUser(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return 0, 0, false
	}

	roomID, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid chat room ID", http.StatusBadRequest)
		return 0, 0, false
	}
	return roomID, userID, true
}
