package live

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func TestValidRoom(t *testing.T) {
	for _, room := range []string{"matches", "teams", "players", "standings", "users"} {
		if !ValidRoom(room) {
			t.Errorf("%q should be valid", room)
		}
	}
	for _, room := range []string{"", "tournament", "Matches"} {
		if ValidRoom(room) {
			t.Errorf("%q should be invalid", room)
		}
	}
}

func TestHubDeliversToRoom(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub()
	go hub.Run(ctx)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		NewClient(hub, conn, r.URL.Query().Get("room")).Serve()
	}))
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/?room=" + RoomMatches
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.ClientCount(RoomMatches) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	hub.NotifyChanged(RoomTeams, map[string]int{"team_id": 1})
	hub.NotifyChanged(RoomMatches, map[string]int{"match_id": 7})

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	var msg struct {
		Type    string         `json:"type"`
		RoomID  string         `json:"room_id"`
		Payload map[string]int `json:"payload"`
	}
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	if msg.Type != TypeChanged || msg.RoomID != RoomMatches || msg.Payload["match_id"] != 7 {
		t.Fatalf("unexpected message %+v", msg)
	}
}
