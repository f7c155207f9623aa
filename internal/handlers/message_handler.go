package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"traveleon/internal/models"
	"traveleon/internal/services"
)

type MessageHandler struct {
	Service     *services.MessageService
	RoomService *services.ChatRoomService

	// Deliver fans a stored message out the same way the websocket read
	// pump does: socket frames to both participants, unread flag, push
	// for an offline peer.
	Deliver func(message models.Message)
}

// SendMessage appends one message over plain HTTP, for clients whose
// socket dropped. Delivery to connected peers still goes through the hub.
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	senderID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var message models.Message
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	message.SenderID = senderID

	sent, err := h.Service.SendMessage(r.Context(), message)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrEmptyMessage):
			http.Error(w, "Message text cannot be empty", http.StatusBadRequest)
		case errors.Is(err, models.ErrChatRoomNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if h.Deliver != nil {
		h.Deliver(sent)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sent)
}

// GetMessages returns a room's messages oldest first.
func (h *MessageHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	roomID, err := strconv.Atoi(r.URL.Query().Get(":id"))
	if err != nil {
		http.Error(w, "Invalid chat room ID", http.StatusBadRequest)
		return
	}

	room, err := h.RoomService.GetRoomByID(r.Context(), roomID)
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

	messages, err := h.Service.GetMessagesForRoom(r.Context(), roomID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if messages == nil {
		messages = []models.Message{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(messages)
}
