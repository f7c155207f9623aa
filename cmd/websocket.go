package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"traveleon/internal/models"
	"traveleon/internal/services"
)

const (
	readLimit          = 1 << 20
	readDeadline       = 120 * time.Second
	writeDeadline      = 5 * time.Second
	pingInterval       = 15 * time.Second
	firstHelloDeadline = 30 * time.Second
)

// frame is everything a client can send after the hello. Type defaults to
// "message" so plain message payloads keep working.
type frame struct {
	Type       string `json:"type,omitempty"`
	ChatRoomID int    `json:"chat_room_id"`
	Text       string `json:"text"`
	CreatedAt  string `json:"created_at,omitempty"`
}

type event struct {
	Type    string          `json:"type"`
	RoomID  int             `json:"chat_room_id,omitempty"`
	UserID  int             `json:"user_id,omitempty"`
	Message *models.Message `json:"message,omitempty"`
}

type directMsg struct {
	userID int
	event  event
}

type unreg struct {
	userID int
	conn   *websocket.Conn
}

type Client struct {
	ID     int
	Socket *websocket.Conn
}

type Hub struct {
	clients    map[int]*websocket.Conn
	direct     chan directMsg
	register   chan Client
	unregister chan unreg
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[int]*websocket.Conn),
		direct:     make(chan directMsg),
		register:   make(chan Client),
		unregister: make(chan unreg),
	}
}

// All operations on clients happen only here.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if old, ok := h.clients[client.ID]; ok && old != nil && old != client.Socket {
				_ = old.Close()
			}
			h.clients[client.ID] = client.Socket
			log.Printf("WS register user=%d", client.ID)

		case u := <-h.unregister:
			if cur, ok := h.clients[u.userID]; ok && cur == u.conn {
				_ = cur.Close()
				delete(h.clients, u.userID)
				log.Printf("WS unregister user=%d", u.userID)
			}

		case dm := <-h.direct:
			if conn, ok := h.clients[dm.userID]; ok {
				_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
				if err := conn.WriteJSON(dm.event); err != nil {
					log.Printf("direct send error to=%d: %v", dm.userID, err)
					_ = conn.Close()
					delete(h.clients, dm.userID)
				}
			}
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin:       func(r *http.Request) bool { return true },
	ReadBufferSize:    1024,
	WriteBufferSize:   1024,
	EnableCompression: true,
}

// The first frame from the client must be { "userId": <int> } and has to
// match the authenticated user.
func (app *application) WebSocketHandler(w http.ResponseWriter, r *http.Request) {
	authedID, _ := r.Context().Value("user_id").(int)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}

	conn.SetReadLimit(readLimit)
	conn.SetReadDeadline(time.Now().Add(firstHelloDeadline))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	var hello struct {
		UserID int `json:"userId"`
	}
	if err := conn.ReadJSON(&hello); err != nil || hello.UserID == 0 {
		log.Println("invalid hello payload:", err)
		_ = writeClose(conn, websocket.ClosePolicyViolation, "hello required")
		_ = conn.Close()
		return
	}
	if authedID != 0 && hello.UserID != authedID {
		_ = writeClose(conn, websocket.ClosePolicyViolation, "user mismatch")
		_ = conn.Close()
		return
	}
	conn.SetReadDeadline(time.Now().Add(readDeadline))

	app.hub.register <- Client{ID: hello.UserID, Socket: conn}

	{
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := app.presence.SetOnline(ctx, hello.UserID); err != nil {
			log.Println("presence online error:", err)
		}
		cancel()
	}

	go pingLoop(app.hub, conn, hello.UserID, pingInterval)
	go app.readPump(conn, hello.UserID)
}

// pingLoop runs beside the hub's writes on the same connection, so pings
// go through WriteControl, the only write safe for a second goroutine.
func pingLoop(h *Hub, conn *websocket.Conn, uid int, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for range t.C {
		if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeDeadline)); err != nil {
			_ = writeClose(conn, websocket.CloseGoingAway, "ping error")
			h.unregister <- unreg{userID: uid, conn: conn}
			return
		}
	}
}

func (app *application) readPump(conn *websocket.Conn, userID int) {
	defer func() {
		app.hub.unregister <- unreg{userID: userID, conn: conn}
		_ = conn.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := app.presence.SetOffline(ctx, userID); err != nil {
			log.Println("presence offline error:", err)
		}
		cancel()
	}()

	for {
		var f frame
		if err := conn.ReadJSON(&f); err != nil {
			_ = writeClose(conn, websocket.CloseNormalClosure, "read error")
			return
		}

		switch f.Type {
		case "typing":
			app.handleTyping(userID, f.ChatRoomID)
		case "", "message":
			app.handleChatMessage(userID, f)
		default:
			log.Printf("WS unknown frame type %q from user=%d", f.Type, userID)
		}
	}
}

func (app *application) handleTyping(userID, roomID int) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := app.presence.SetTyping(ctx, userID); err != nil {
		log.Println("presence typing error:", err)
	}

	peerID, err := app.peerInRoom(ctx, userID, roomID)
	if err != nil {
		log.Println("typing relay error:", err)
		return
	}
	app.hub.direct <- directMsg{userID: peerID, event: event{Type: "typing", RoomID: roomID, UserID: userID}}
}

func (app *application) handleChatMessage(userID int, f frame) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	msg := models.Message{
		ChatRoomID: f.ChatRoomID,
		SenderID:   userID,
		Text:       f.Text,
	}
	if f.CreatedAt != "" {
		if ts, err := time.Parse(time.RFC3339, f.CreatedAt); err == nil {
			msg.CreatedAt = ts
		}
	}

	sent, err := app.messageService.SendMessage(ctx, msg)
	if err != nil {
		log.Println("ws send message error:", err)
		return
	}

	app.deliverChatMessage(sent)
}

// deliverChatMessage fans a stored message out: a socket frame to each
// participant, the buyer's unread flag when the seller wrote, FCM for an
// offline peer. Both the hub read pump and the HTTP send path end here.
func (app *application) deliverChatMessage(sent models.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	room, err := app.messageService.RoomRepo.GetRoomByID(ctx, sent.ChatRoomID)
	if err != nil {
		log.Println("deliver: room lookup error:", err)
		return
	}

	peerID := room.BuyerID
	if sent.SenderID == room.BuyerID {
		peerID = room.SellerID
	} else {
		// seller wrote, flag the buyer's directory row unread
		if err := app.chatRoomRepo.MarkUnread(ctx, room.ID); err != nil {
			log.Println("mark unread error:", err)
		}
	}

	ev := event{Type: "message", RoomID: sent.ChatRoomID, Message: &sent}
	app.hub.direct <- directMsg{userID: sent.SenderID, event: ev}
	app.hub.direct <- directMsg{userID: peerID, event: ev}

	if app.pushHandler != nil && app.presence.Status(ctx, peerID) != services.StatusOnline {
		go app.pushHandler.NotifyNewMessage(sent)
	}
}

func (app *application) peerInRoom(ctx context.Context, userID, roomID int) (int, error) {
	room, err := app.messageService.RoomRepo.GetRoomByID(ctx, roomID)
	if err != nil {
		return 0, err
	}
	if userID == room.BuyerID {
		return room.SellerID, nil
	}
	return room.BuyerID, nil
}

func writeClose(conn *websocket.Conn, code int, reason string) error {
	_ = conn.SetWriteDeadline(time.Now().Add(writeDeadline))
	return conn.WriteControl(
		websocket.CloseMessage,
		websocket.FormatCloseMessage(code, reason),
		time.Now().Add(writeDeadline),
	)
}
