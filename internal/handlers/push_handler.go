package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"firebase.google.com/go/messaging"

	"traveleon/internal/models"
	"traveleon/internal/repositories"
	"traveleon/internal/services"
)

const pushTimeout = 10 * time.Second

// PushHandler delivers chat notifications over FCM to the participant who
// is not connected. A nil Client disables pushes without failing requests.
type PushHandler struct {
	Client   *messaging.Client
	Users    *repositories.UserRepository
	Rooms    *repositories.ChatRoomRepository
	Presence *services.PresenceService
}

type registerTokenRequest struct {
	Token string `json:"token"`
}

func (h *PushHandler) RegisterToken(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req registerTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Users.SetDeviceToken(r.Context(), userID, req.Token); err != nil {
		http.Error(w, "Failed to store token", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// NotifyNewMessage pushes a chat message to the other participant of the
// room when they are offline. Errors are logged, never propagated; push
// delivery is best effort.
func (h *PushHandler) NotifyNewMessage(message models.Message) {
	if h.Client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), pushTimeout)
	defer cancel()

	room, err := h.Rooms.GetRoomByID(ctx, message.ChatRoomID)
	if err != nil {
		log.Printf("push: room %d lookup failed: %v", message.ChatRoomID, err)
		return
	}

	recipientID := room.BuyerID
	if message.SenderID == room.BuyerID {
		recipientID = room.SellerID
	}

	if h.Presence != nil && h.Presence.Status(ctx, recipientID) == services.StatusOnline {
		return
	}

	token, err := h.Users.GetDeviceToken(ctx, recipientID)
	if err != nil {
		log.Printf("push: token lookup for user %d failed: %v", recipientID, err)
		return
	}
	if token == "" {
		return
	}

	h.send(ctx, token, message.SenderName, message.Text, map[string]string{
		"chat_room_id": strconv.Itoa(message.ChatRoomID),
		"sender_id":    strconv.Itoa(message.SenderID),
	})
}

func (h *PushHandler) send(ctx context.Context, token, title, body string, data map[string]string) {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "chat_messages",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority": "10",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{
						Title: title,
						Body:  body,
					},
					Sound: "default",
				},
			},
		},
	}

	if _, err := h.Client.Send(ctx, msg); err != nil {
		log.Printf("push: send failed: %v", err)
	}
}
