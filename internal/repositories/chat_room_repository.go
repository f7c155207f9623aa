package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"traveleon/internal/models"
)

type ChatRoomRepository struct {
	Db *sql.DB
}

// GetRoomByKey looks a room up by its de-duplication tuple. A zero room
// (ID == 0) means no match.
func (r *ChatRoomRepository) GetRoomByKey(ctx context.Context, buyerID, sellerID int, timeID string) (models.ChatRoom, error) {
	var room models.ChatRoom
	query := `
		SELECT id, buyer_id, seller_id, buyer_name, listing_name, time_id, is_read, created_at
		FROM chat_rooms
		WHERE buyer_id = ? AND seller_id = ? AND time_id = ?
		ORDER BY id ASC
		LIMIT 1
	`
	err := r.Db.QueryRowContext(ctx, query, buyerID, sellerID, timeID).Scan(
		&room.ID, &room.BuyerID, &room.SellerID, &room.BuyerName, &room.ListingName,
		&room.TimeID, &room.IsRead, &room.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ChatRoom{}, nil
	}
	if err != nil {
		return models.ChatRoom{}, err
	}
	return room, nil
}

// CreateRoom inserts a new room. The chat_rooms table carries a unique key
// on (buyer_id, seller_id, time_id); a violation maps to
// models.ErrDuplicateChatRoom so the service can re-read the winner.
func (r *ChatRoomRepository) CreateRoom(ctx context.Context, room models.ChatRoom) (int, error) {
	query := `
		INSERT INTO chat_rooms (buyer_id, seller_id, buyer_name, listing_name, time_id, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW())
	`
	result, err := r.Db.ExecContext(ctx, query,
		room.BuyerID, room.SellerID, room.BuyerName, room.ListingName, room.TimeID, room.IsRead,
	)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return 0, models.ErrDuplicateChatRoom
		}
		return 0, err
	}

	roomID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(roomID), nil
}

func (r *ChatRoomRepository) GetRoomByID(ctx context.Context, id int) (models.ChatRoom, error) {
	var room models.ChatRoom
	query := `
		SELECT id, buyer_id, seller_id, buyer_name, listing_name, time_id, is_read, created_at
		FROM chat_rooms
		WHERE id = ?
	`
	err := r.Db.QueryRowContext(ctx, query, id).Scan(
		&room.ID, &room.BuyerID, &room.SellerID, &room.BuyerName, &room.ListingName,
		&room.TimeID, &room.IsRead, &room.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ChatRoom{}, models.ErrChatRoomNotFound
	}
	if err != nil {
		return models.ChatRoom{}, err
	}
	return room, nil
}

func (r *ChatRoomRepository) GetRoomsByBuyerID(ctx context.Context, buyerID int) ([]models.ChatRoom, error) {
	query := `
		SELECT id, buyer_id, seller_id, buyer_name, listing_name, time_id, is_read, created_at
		FROM chat_rooms
		WHERE buyer_id = ?
	`

	rows, err := r.Db.QueryContext(ctx, query, buyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rooms []models.ChatRoom
	for rows.Next() {
		var room models.ChatRoom
		if err := rows.Scan(
			&room.ID, &room.BuyerID, &room.SellerID, &room.BuyerName, &room.ListingName,
			&room.TimeID, &room.IsRead, &room.CreatedAt,
		); err != nil {
			return nil, err
		}
		rooms = append(rooms, room)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *ChatRoomRepository) MarkRead(ctx context.Context, roomID, buyerID int) error {
	query := `UPDATE chat_rooms SET is_read = TRUE WHERE id = ? AND buyer_id = ?`
	result, err := r.Db.ExecContext(ctx, query, roomID, buyerID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return models.ErrChatRoomNotFound
	}
	return nil
}

func (r *ChatRoomRepository) MarkUnread(ctx context.Context, roomID int) error {
	query := `UPDATE chat_rooms SET is_read = FALSE WHERE id = ?`
	_, err := r.Db.ExecContext(ctx, query, roomID)
	return err
}
