package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"traveleon/internal/models"
	"traveleon/internal/services"
)

type stubRoomStore struct {
	rooms map[int]models.ChatRoom
}

func (s *stubRoomStore) GetRoomByKey(_ context.Context, _, _ int, _ string) (models.ChatRoom, error) {
	return models.ChatRoom{}, nil
}

func (s *stubRoomStore) CreateRoom(_ context.Context, _ models.ChatRoom) (int, error) {
	return 0, nil
}

func (s *stubRoomStore) GetRoomByID(_ context.Context, id int) (models.ChatRoom, error) {
	return s.rooms[id], nil
}

func (s *stubRoomStore) GetRoomsByBuyerID(_ context.Context, _ int) ([]models.ChatRoom, error) {
	return nil, nil
}

func (s *stubRoomStore) MarkRead(_ context.Context, _, _ int) error { return nil }

type stubMessageStore struct {
	stored []models.Message
}

func (s *stubMessageStore) CreateMessage(_ context.Context, m models.Message) (int, error) {
	s.stored = append(s.stored, m)
	return len(s.stored), nil
}

func (s *stubMessageStore) GetMessagesForRoom(_ context.Context, _ int) ([]models.Message, error) {
	return s.stored, nil
}

func (s *stubMessageStore) LatestMessage(_ context.Context, _ int) (models.Message, error) {
	return models.Message{}, models.ErrNoRecord
}

type stubUsers map[int]models.User

func (s stubUsers) GetUserByID(_ context.Context, id int) (models.User, error) {
	u, ok := s[id]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return u, nil
}

func newMessageHandler() (*MessageHandler, *stubMessageStore, *[]models.Message) {
	rooms := &stubRoomStore{rooms: map[int]models.ChatRoom{
		10: {ID: 10, BuyerID: 1, SellerID: 2},
	}}
	msgs := &stubMessageStore{}
	svc := &services.MessageService{
		MessageRepo: msgs,
		RoomRepo:    rooms,
		UserRepo:    stubUsers{1: {ID: 1, Name: "Amara"}, 2: {ID: 2, Name: "Nuwan"}},
	}

	var delivered []models.Message
	h := &MessageHandler{
		Service: svc,
		Deliver: func(m models.Message) { delivered = append(delivered, m) },
	}
	return h, msgs, &delivered
}

func postMessage(h *MessageHandler, senderID int, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest("POST", "/messages", strings.NewReader(body))
	r = r.WithContext(context.WithValue(r.Context(), "user_id", senderID))
	w := httptest.NewRecorder()
	h.SendMessage(w, r)
	return w
}

func TestSendMessageHTTPDelivers(t *testing.T) {
	h, msgs, delivered := newMessageHandler()

	w := postMessage(h, 1, `{"chat_room_id":10,"text":"hello"}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d (body %q)", w.Code, http.StatusCreated, w.Body.String())
	}
	if len(msgs.stored) != 1 {
		t.Fatalf("stored %d messages, want 1", len(msgs.stored))
	}
	if len(*delivered) != 1 {
		t.Fatalf("delivered %d messages, want 1", len(*delivered))
	}
	if (*delivered)[0].Text != "hello" || (*delivered)[0].SenderName != "Amara" {
		t.Errorf("delivered message = %#v", (*delivered)[0])
	}
}

func TestSendMessageHTTPBlankSkipsDelivery(t *testing.T) {
	h, msgs, delivered := newMessageHandler()

	w := postMessage(h, 1, `{"chat_room_id":10,"text":"   "}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if len(msgs.stored) != 0 || len(*delivered) != 0 {
		t.Errorf("blank message must be neither stored nor delivered (%d stored, %d delivered)",
			len(msgs.stored), len(*delivered))
	}
}

func TestSendMessageHTTPUnknownRoomSkipsDelivery(t *testing.T) {
	h, _, delivered := newMessageHandler()

	w := postMessage(h, 1, `{"chat_room_id":99,"text":"hello"}`)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
	if len(*delivered) != 0 {
		t.Errorf("delivered %d messages for a missing room", len(*delivered))
	}
}
