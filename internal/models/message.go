package models

import "time"

// Message is one entry of a chat room's append-only sequence, ordered by
// CreatedAt ascending.
type Message struct {
	ID         int       `json:"id"`
	ChatRoomID int       `json:"chat_room_id"`
	SenderID   int       `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}
