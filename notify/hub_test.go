package notify

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Trip: "trip1",
	}
	hub.register <- client

	hub.TripChanged("trip1", map[string]any{"action": "retime", "day": "Day 2"})

	select {
	case got := <-client.Send:
		var event map[string]any
		if err := json.Unmarshal(got, &event); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if event["action"] != "retime" {
			t.Fatalf("expected retime action, got %v", event["action"])
		}
		if event["tripid"] != "trip1" {
			t.Fatalf("expected trip1, got %v", event["tripid"])
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for event")
	}

	hub.unregister <- client
}

func TestHubIsolatesTrips(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	watcher := &Client{Send: make(chan []byte, 10), Trip: "other"}
	hub.register <- watcher

	hub.TripChanged("trip1", map[string]any{"action": "seed"})

	select {
	case got := <-watcher.Send:
		t.Fatalf("watcher of another trip got %s", got)
	case <-time.After(100 * time.Millisecond):
	}
}
