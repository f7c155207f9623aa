package services

import (
	"context"
	"errors"
	"log"
	"sort"

	"traveleon/internal/models"
)

const (
	// placeholder row content for rooms without any message yet
	defaultLastMessage = "Start chatting"

	unknownBuyerName  = "Unknown Buyer"
	unknownSellerName = "Unknown Seller"
)

// ChatRoomStore is the slice of the chat-room repository the service
// needs; narrow so the get-or-create and directory logic can be tested
// against fakes.
type ChatRoomStore interface {
	GetRoomByKey(ctx context.Context, buyerID, sellerID int, timeID string) (models.ChatRoom, error)
	CreateRoom(ctx context.Context, room models.ChatRoom) (int, error)
	GetRoomByID(ctx context.Context, id int) (models.ChatRoom, error)
	GetRoomsByBuyerID(ctx context.Context, buyerID int) ([]models.ChatRoom, error)
	MarkRead(ctx context.Context, roomID, buyerID int) error
}

type MessageStore interface {
	CreateMessage(ctx context.Context, message models.Message) (int, error)
	GetMessagesForRoom(ctx context.Context, roomID int) ([]models.Message, error)
	LatestMessage(ctx context.Context, roomID int) (models.Message, error)
}

type UserDirectory interface {
	GetUserByID(ctx context.Context, id int) (models.User, error)
}

type StatusSource interface {
	Status(ctx context.Context, userID int) string
}

type ChatRoomService struct {
	Rooms    ChatRoomStore
	Messages MessageStore
	Users    UserDirectory
	Presence StatusSource
}

// GetOrCreateRoom returns the room for (buyer, seller, timeID), creating
// it on first contact. Concurrent first contacts are serialized by the
// unique key on that tuple: the loser's insert fails as a duplicate and is
// resolved by re-reading the winner's row.
func (s *ChatRoomService) GetOrCreateRoom(ctx context.Context, buyerID int, req models.CreateChatRoomRequest) (models.CreateChatRoomResponse, error) {
	existing, err := s.Rooms.GetRoomByKey(ctx, buyerID, req.SellerID, req.TimeID)
	if err != nil {
		return models.CreateChatRoomResponse{}, err
	}
	if existing.ID != 0 {
		return models.CreateChatRoomResponse{ChatRoomID: existing.ID}, nil
	}

	buyerName := unknownBuyerName
	if buyer, err := s.Users.GetUserByID(ctx, buyerID); err == nil && buyer.Name != "" {
		buyerName = buyer.Name
	}

	room := models.ChatRoom{
		BuyerID:     buyerID,
		SellerID:    req.SellerID,
		BuyerName:   buyerName,
		ListingName: req.ListingName,
		TimeID:      req.TimeID,
		IsRead:      true,
	}

	roomID, err := s.Rooms.CreateRoom(ctx, room)
	if err != nil {
		if errors.Is(err, models.ErrDuplicateChatRoom) {
			winner, rerr := s.Rooms.GetRoomByKey(ctx, buyerID, req.SellerID, req.TimeID)
			if rerr != nil {
				return models.CreateChatRoomResponse{}, rerr
			}
			if winner.ID != 0 {
				return models.CreateChatRoomResponse{ChatRoomID: winner.ID}, nil
			}
		}
		return models.CreateChatRoomResponse{}, err
	}

	return models.CreateChatRoomResponse{ChatRoomID: roomID, Created: true}, nil
}

func (s *ChatRoomService) GetRoomByID(ctx context.Context, id int) (models.ChatRoom, error) {
	room, err := s.Rooms.GetRoomByID(ctx, id)
	if err != nil {
		return models.ChatRoom{}, err
	}
	if room.ID == 0 {
		return models.ChatRoom{}, models.ErrChatRoomNotFound
	}
	return room, nil
}

// Directory builds the buyer's chat list: every room joined with its
// seller profile, presence status and latest message, newest activity
// first. One profile read and one latest-message read per room, fine at
// the tens-of-rooms scale this serves, a read-through cache if it ever
// isn't. A failure on one room degrades that row to placeholders instead
// of failing the whole list.
func (s *ChatRoomService) Directory(ctx context.Context, buyerID int) ([]models.ChatRoomSummary, error) {
	rooms, err := s.Rooms.GetRoomsByBuyerID(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ChatRoomSummary, 0, len(rooms))
	for _, room := range rooms {
		summary := models.ChatRoomSummary{
			ID:           room.ID,
			SellerID:     room.SellerID,
			SellerName:   unknownSellerName,
			SellerStatus: StatusOffline,
			ListingName:  room.ListingName,
			LastMessage:  defaultLastMessage,
			IsRead:       room.IsRead,
		}

		if seller, err := s.Users.GetUserByID(ctx, room.SellerID); err == nil {
			summary.SellerName = seller.Name
			summary.SellerAvatar = seller.Avatar
		} else {
			log.Printf("chat directory: seller %d for room %d: %v", room.SellerID, room.ID, err)
		}

		if s.Presence != nil {
			summary.SellerStatus = s.Presence.Status(ctx, room.SellerID)
		}

		switch last, err := s.Messages.LatestMessage(ctx, room.ID); {
		case err == nil:
			summary.LastMessage = last.Text
			summary.LastMessageAt = last.CreatedAt
		case errors.Is(err, models.ErrNoRecord):
			// empty room keeps the placeholder and the zero time
		default:
			log.Printf("chat directory: messages for room %d: %v", room.ID, err)
		}

		summaries = append(summaries, summary)
	}

	SortRoomsByRecency(summaries)
	return summaries, nil
}

// SortRoomsByRecency orders summaries by last-message time descending.
// Rooms without messages carry the zero time and therefore end up after
// every room that has at least one message.
func SortRoomsByRecency(summaries []models.ChatRoomSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].LastMessageAt.After(summaries[j].LastMessageAt)
	})
}

func (s *ChatRoomService) MarkRead(ctx context.Context, roomID, buyerID int) error {
	return s.Rooms.MarkRead(ctx, roomID, buyerID)
}
