package services

import (
	"context"
	"testing"
	"time"

	"traveleon/internal/models"
)

type fakeRoomStore struct {
	rooms     map[int]models.ChatRoom
	nextID    int
	createErr error
	// when set, the first CreateRoom call fails as a duplicate after
	// planting the winner row, simulating a lost race
	raceWinner *models.ChatRoom
}

func newFakeRoomStore() *fakeRoomStore {
	return &fakeRoomStore{rooms: make(map[int]models.ChatRoom), nextID: 1}
}

func (f *fakeRoomStore) GetRoomByKey(_ context.Context, buyerID, sellerID int, timeID string) (models.ChatRoom, error) {
	for _, r := range f.rooms {
		if r.BuyerID == buyerID && r.SellerID == sellerID && r.TimeID == timeID {
			return r, nil
		}
	}
	return models.ChatRoom{}, nil
}

func (f *fakeRoomStore) CreateRoom(_ context.Context, room models.ChatRoom) (int, error) {
	if f.createErr != nil {
		return 0, f.createErr
	}
	if f.raceWinner != nil {
		winner := *f.raceWinner
		f.raceWinner = nil
		f.rooms[winner.ID] = winner
		return 0, models.ErrDuplicateChatRoom
	}
	room.ID = f.nextID
	f.nextID++
	f.rooms[room.ID] = room
	return room.ID, nil
}

func (f *fakeRoomStore) GetRoomByID(_ context.Context, id int) (models.ChatRoom, error) {
	return f.rooms[id], nil
}

func (f *fakeRoomStore) GetRoomsByBuyerID(_ context.Context, buyerID int) ([]models.ChatRoom, error) {
	var out []models.ChatRoom
	for _, r := range f.rooms {
		if r.BuyerID == buyerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoomStore) MarkRead(_ context.Context, roomID, buyerID int) error {
	r, ok := f.rooms[roomID]
	if !ok || r.BuyerID != buyerID {
		return models.ErrChatRoomNotFound
	}
	r.IsRead = true
	f.rooms[roomID] = r
	return nil
}

type fakeMessageStore struct {
	byRoom map[int][]models.Message
}

func (f *fakeMessageStore) CreateMessage(_ context.Context, m models.Message) (int, error) {
	if f.byRoom == nil {
		f.byRoom = make(map[int][]models.Message)
	}
	f.byRoom[m.ChatRoomID] = append(f.byRoom[m.ChatRoomID], m)
	return len(f.byRoom[m.ChatRoomID]), nil
}

func (f *fakeMessageStore) GetMessagesForRoom(_ context.Context, roomID int) ([]models.Message, error) {
	return f.byRoom[roomID], nil
}

func (f *fakeMessageStore) LatestMessage(_ context.Context, roomID int) (models.Message, error) {
	msgs := f.byRoom[roomID]
	if len(msgs) == 0 {
		return models.Message{}, models.ErrNoRecord
	}
	return msgs[len(msgs)-1], nil
}

type fakeUsers struct {
	users map[int]models.User
}

func (f *fakeUsers) GetUserByID(_ context.Context, id int) (models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return u, nil
}

func newChatService() (*ChatRoomService, *fakeRoomStore, *fakeMessageStore) {
	rooms := newFakeRoomStore()
	msgs := &fakeMessageStore{}
	users := &fakeUsers{users: map[int]models.User{
		1: {ID: 1, Name: "Amara"},
		2: {ID: 2, Name: "Nuwan"},
	}}
	return &ChatRoomService{Rooms: rooms, Messages: msgs, Users: users}, rooms, msgs
}

func TestGetOrCreateRoomIsIdempotent(t *testing.T) {
	svc, _, _ := newChatService()
	req := models.CreateChatRoomRequest{SellerID: 2, ListingName: "Lake View Villa", TimeID: "1700000000"}

	first, err := svc.GetOrCreateRoom(context.Background(), 1, req)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if !first.Created {
		t.Error("first call should create the room")
	}

	second, err := svc.GetOrCreateRoom(context.Background(), 1, req)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if second.Created {
		t.Error("second call must not create a new room")
	}
	if second.ChatRoomID != first.ChatRoomID {
		t.Errorf("second call returned room %d, want %d", second.ChatRoomID, first.ChatRoomID)
	}
}

func TestGetOrCreateRoomDistinctListings(t *testing.T) {
	svc, _, _ := newChatService()

	a, err := svc.GetOrCreateRoom(context.Background(), 1, models.CreateChatRoomRequest{SellerID: 2, TimeID: "100"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := svc.GetOrCreateRoom(context.Background(), 1, models.CreateChatRoomRequest{SellerID: 2, TimeID: "200"})
	if err != nil {
		t.Fatal(err)
	}

	if a.ChatRoomID == b.ChatRoomID {
		t.Error("different listings must get different rooms")
	}
}

func TestGetOrCreateRoomLostRace(t *testing.T) {
	svc, rooms, _ := newChatService()
	rooms.raceWinner = &models.ChatRoom{ID: 77, BuyerID: 1, SellerID: 2, TimeID: "1700000000"}

	res, err := svc.GetOrCreateRoom(context.Background(), 1, models.CreateChatRoomRequest{SellerID: 2, TimeID: "1700000000"})
	if err != nil {
		t.Fatalf("lost race must resolve to the winner, got error: %v", err)
	}
	if res.Created {
		t.Error("losing the race must not report a creation")
	}
	if res.ChatRoomID != 77 {
		t.Errorf("got room %d, want the winner's 77", res.ChatRoomID)
	}
}

func TestDirectoryJoinsSellerAndLatestMessage(t *testing.T) {
	svc, rooms, msgs := newChatService()
	rooms.rooms[10] = models.ChatRoom{ID: 10, BuyerID: 1, SellerID: 2, ListingName: "Lake View Villa", IsRead: true}
	msgs.byRoom = map[int][]models.Message{
		10: {{ChatRoomID: 10, SenderID: 2, Text: "Hello!", CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)}},
	}

	got, err := svc.Directory(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(got))
	}

	s := got[0]
	if s.SellerName != "Nuwan" {
		t.Errorf("seller name = %q, want Nuwan", s.SellerName)
	}
	if s.LastMessage != "Hello!" {
		t.Errorf("last message = %q, want Hello!", s.LastMessage)
	}
	if s.LastMessageAt.IsZero() {
		t.Error("last message time must be set")
	}
}

func TestDirectoryEmptyRoomUsesPlaceholder(t *testing.T) {
	svc, rooms, _ := newChatService()
	rooms.rooms[10] = models.ChatRoom{ID: 10, BuyerID: 1, SellerID: 2}

	got, err := svc.Directory(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 summary, got %d", len(got))
	}
	if got[0].LastMessage != defaultLastMessage {
		t.Errorf("last message = %q, want %q", got[0].LastMessage, defaultLastMessage)
	}
	if !got[0].LastMessageAt.IsZero() {
		t.Error("empty room must keep the zero last-message time")
	}
}

func TestDirectoryUnknownSellerDegrades(t *testing.T) {
	svc, rooms, _ := newChatService()
	rooms.rooms[10] = models.ChatRoom{ID: 10, BuyerID: 1, SellerID: 99}

	got, err := svc.Directory(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("a bad seller row must not drop the room, got %d rows", len(got))
	}
	if got[0].SellerName != unknownSellerName {
		t.Errorf("seller name = %q, want %q", got[0].SellerName, unknownSellerName)
	}
}

func TestSortRoomsByRecency(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	summaries := []models.ChatRoomSummary{
		{ID: 1, LastMessageAt: t1},
		{ID: 2},
		{ID: 3, LastMessageAt: t2},
	}

	SortRoomsByRecency(summaries)

	wantOrder := []int{3, 1, 2}
	for i, want := range wantOrder {
		if summaries[i].ID != want {
			t.Fatalf("position %d: got room %d, want %d (full order %#v)", i, summaries[i].ID, want, summaries)
		}
	}
}
