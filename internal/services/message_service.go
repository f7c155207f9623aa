package services

import (
	"context"
	"strings"
	"time"

	"traveleon/internal/models"
)

type MessageService struct {
	MessageRepo MessageStore
	RoomRepo    ChatRoomStore
	UserRepo    UserDirectory
}

// SendMessage validates and appends one message to a room. The sender's
// display name is resolved from the profile store at send time; the
// creation timestamp is client-supplied when present, otherwise assigned
// here. The room is flagged unread for its buyer by the caller (hub or
// handler) after a successful append.
func (s *MessageService) SendMessage(ctx context.Context, message models.Message) (models.Message, error) {
	message.Text = strings.TrimSpace(message.Text)
	if message.Text == "" {
		return models.Message{}, models.ErrEmptyMessage
	}

	room, err := s.RoomRepo.GetRoomByID(ctx, message.ChatRoomID)
	if err != nil {
		return models.Message{}, err
	}
	if room.ID == 0 {
		return models.Message{}, models.ErrChatRoomNotFound
	}
	if message.SenderID != room.BuyerID && message.SenderID != room.SellerID {
		return models.Message{}, models.ErrChatRoomNotFound
	}

	sender, err := s.UserRepo.GetUserByID(ctx, message.SenderID)
	if err != nil {
		return models.Message{}, err
	}
	message.SenderName = sender.Name

	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	messageID, err := s.MessageRepo.CreateMessage(ctx, message)
	if err != nil {
		return models.Message{}, err
	}
	message.ID = messageID
	return message, nil
}

func (s *MessageService) GetMessagesForRoom(ctx context.Context, roomID int) ([]models.Message, error) {
	return s.MessageRepo.GetMessagesForRoom(ctx, roomID)
}
