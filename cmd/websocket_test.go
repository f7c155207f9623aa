package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

// The ping loop shares its connection with the hub's delivery writes, so
// pings must arrive even while another goroutine is writing data frames.
func TestPingLoopSurvivesConcurrentWriter(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	up := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := up.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.register <- Client{ID: 1, Socket: conn}
		go pingLoop(hub, conn, 1, 5*time.Millisecond)

		// hammer the hub's write path on the same connection
		for i := 0; i < 50; i++ {
			hub.direct <- directMsg{userID: 1, event: event{Type: "typing", RoomID: 10, UserID: 2}}
		}
	}))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()

	pinged := make(chan struct{}, 1)
	client.SetPingHandler(func(string) error {
		select {
		case pinged <- struct{}{}:
		default:
		}
		return nil
	})

	go func() {
		for {
			if _, _, err := client.ReadMessage(); err != nil {
				return
			}
		}
	}()

	select {
	case <-pinged:
	case <-time.After(2 * time.Second):
		t.Fatal("no ping received while data frames were being written")
	}
}
