package repositories

import (
	"context"
	"database/sql"
	"errors"

	"traveleon/internal/models"
)

type MessageRepository struct {
	Db *sql.DB
}

func (r *MessageRepository) CreateMessage(ctx context.Context, message models.Message) (int, error) {
	query := `
		INSERT INTO messages (chat_room_id, sender_id, sender_name, text, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	result, err := r.Db.ExecContext(ctx, query,
		message.ChatRoomID, message.SenderID, message.SenderName, message.Text, message.CreatedAt,
	)
	if err != nil {
		return 0, err
	}

	messageID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(messageID), nil
}

// GetMessagesForRoom returns the room's sequence ordered by creation time
// ascending, the order a chat session renders it in.
func (r *MessageRepository) GetMessagesForRoom(ctx context.Context, roomID int) ([]models.Message, error) {
	query := `
		SELECT id, chat_room_id, sender_id, sender_name, text, created_at
		FROM messages
		WHERE chat_room_id = ?
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.Db.QueryContext(ctx, query, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(
			&m.ID, &m.ChatRoomID, &m.SenderID, &m.SenderName, &m.Text, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

// LatestMessage returns the most recent message of a room, or
// models.ErrNoRecord for an empty room.
func (r *MessageRepository) LatestMessage(ctx context.Context, roomID int) (models.Message, error) {
	var m models.Message
	query := `
		SELECT id, chat_room_id, sender_id, sender_name, text, created_at
		FROM messages
		WHERE chat_room_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`
	err := r.Db.QueryRowContext(ctx, query, roomID).Scan(
		&m.ID, &m.ChatRoomID, &m.SenderID, &m.SenderName, &m.Text, &m.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Message{}, models.ErrNoRecord
	}
	if err != nil {
		return models.Message{}, err
	}
	return m, nil
}
