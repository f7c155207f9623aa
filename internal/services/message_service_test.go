package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"traveleon/internal/models"
)

func newMessageService() (*MessageService, *fakeRoomStore, *fakeMessageStore) {
	rooms := newFakeRoomStore()
	rooms.rooms[10] = models.ChatRoom{ID: 10, BuyerID: 1, SellerID: 2}
	msgs := &fakeMessageStore{}
	users := &fakeUsers{users: map[int]models.User{
		1: {ID: 1, Name: "Amara"},
		2: {ID: 2, Name: "Nuwan"},
	}}
	return &MessageService{MessageRepo: msgs, RoomRepo: rooms, UserRepo: users}, rooms, msgs
}

func TestSendMessageRejectsBlankText(t *testing.T) {
	svc, _, msgs := newMessageService()

	for _, text := range []string{"", "   ", "\n\t "} {
		_, err := svc.SendMessage(context.Background(), models.Message{ChatRoomID: 10, SenderID: 1, Text: text})
		if !errors.Is(err, models.ErrEmptyMessage) {
			t.Errorf("text %q: got err %v, want ErrEmptyMessage", text, err)
		}
	}
	if len(msgs.byRoom[10]) != 0 {
		t.Errorf("blank messages must not be stored, found %d", len(msgs.byRoom[10]))
	}
}

func TestSendMessageTrimsAndStoresText(t *testing.T) {
	svc, _, msgs := newMessageService()

	sent, err := svc.SendMessage(context.Background(), models.Message{ChatRoomID: 10, SenderID: 1, Text: "  hello there  "})
	if err != nil {
		t.Fatal(err)
	}
	if sent.Text != "hello there" {
		t.Errorf("stored text = %q, want trimmed", sent.Text)
	}
	if len(msgs.byRoom[10]) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(msgs.byRoom[10]))
	}
}

func TestSendMessageResolvesSenderName(t *testing.T) {
	svc, _, _ := newMessageService()

	sent, err := svc.SendMessage(context.Background(), models.Message{ChatRoomID: 10, SenderID: 2, Text: "hi"})
	if err != nil {
		t.Fatal(err)
	}
	if sent.SenderName != "Nuwan" {
		t.Errorf("sender name = %q, want Nuwan", sent.SenderName)
	}
}

func TestSendMessageAssignsTimestamp(t *testing.T) {
	svc, _, _ := newMessageService()

	sent, err := svc.SendMessage(context.Background(), models.Message{ChatRoomID: 10, SenderID: 1, Text: "hi"})
	if err != nil {
		t.Fatal(err)
	}
	if sent.CreatedAt.IsZero() {
		t.Error("a zero creation time must be replaced at send time")
	}

	supplied := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	sent, err = svc.SendMessage(context.Background(), models.Message{ChatRoomID: 10, SenderID: 1, Text: "hi", CreatedAt: supplied})
	if err != nil {
		t.Fatal(err)
	}
	if !sent.CreatedAt.Equal(supplied) {
		t.Errorf("client-supplied time was replaced: got %v", sent.CreatedAt)
	}
}

func TestSendMessageRejectsNonParticipant(t *testing.T) {
	svc, _, _ := newMessageService()

	_, err := svc.SendMessage(context.Background(), models.Message{ChatRoomID: 10, SenderID: 42, Text: "hi"})
	if !errors.Is(err, models.ErrChatRoomNotFound) {
		t.Errorf("got err %v, want ErrChatRoomNotFound", err)
	}
}

func TestSendMessageUnknownRoom(t *testing.T) {
	svc, _, _ := newMessageService()

	_, err := svc.SendMessage(context.Background(), models.Message{ChatRoomID: 999, SenderID: 1, Text: "hi"})
	if !errors.Is(err, models.ErrChatRoomNotFound) {
		t.Errorf("got err %v, want ErrChatRoomNotFound", err)
	}
}

func TestMessagesKeepSendOrder(t *testing.T) {
	svc, _, _ := newMessageService()

	t1 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)

	for i, m := range []models.Message{
		{ChatRoomID: 10, SenderID: 1, Text: "first", CreatedAt: t1},
		{ChatRoomID: 10, SenderID: 2, Text: "second", CreatedAt: t2},
	} {
		if _, err := svc.SendMessage(context.Background(), m); err != nil {
			t.Fatalf("message %d: %v", i, err)
		}
	}

	got, err := svc.GetMessagesForRoom(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(got))
	}
	if got[0].Text != "first" || got[1].Text != "second" {
		t.Errorf("order broken: %q then %q", got[0].Text, got[1].Text)
	}
	if !got[0].CreatedAt.Before(got[1].CreatedAt) {
		t.Error("timestamps must be ascending")
	}
}
