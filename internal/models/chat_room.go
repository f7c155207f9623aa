package models

import "time"

// ChatRoom links one buyer to one seller for one listing. TimeID is the
// creation timestamp of the listing the buyer reacted to; together with
// buyer and seller ids it is the only de-duplication key in the system.
type ChatRoom struct {
	ID          int       `json:"id"`
	BuyerID     int       `json:"buyer_id"`
	SellerID    int       `json:"seller_id"`
	BuyerName   string    `json:"buyer_name"`
	ListingName string    `json:"listing_name"`
	TimeID      string    `json:"time_id"`
	IsRead      bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

// ChatRoomSummary is one row of the buyer's chat directory: the room
// joined with the seller profile and the most recent message.
type ChatRoomSummary struct {
	ID            int       `json:"id"`
	SellerID      int       `json:"seller_id"`
	SellerName    string    `json:"seller_name"`
	SellerAvatar  *string   `json:"seller_avatar,omitempty"`
	SellerStatus  string    `json:"seller_status"`
	ListingName   string    `json:"listing_name"`
	LastMessage   string    `json:"last_message"`
	LastMessageAt time.Time `json:"last_message_at"`
	IsRead        bool      `json:"read"`
}

type CreateChatRoomRequest struct {
	SellerID    int    `json:"seller_id"`
	ListingName string `json:"listing_name"`
	TimeID      string `json:"time_id"`
}

type CreateChatRoomResponse struct {
	ChatRoomID int  `json:"chat_room_id"`
	Created    bool `json:"created"`
}
