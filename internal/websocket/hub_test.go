package websocket

import (
	"testing"
	"time"

	"ecotrack-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runningHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(nil, nopLogger{})
	go hub.Run()
	return hub
}

func registerClient(t *testing.T, hub *Hub, buffer int) *Client {
	t.Helper()
	client := &Client{
		Hub:    hub,
		UserID: uuid.New(),
		Send:   make(chan []byte, buffer),
		done:   make(chan struct{}),
		chat:   &stubChat{},
	}
	hub.register <- client
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		_, ok := hub.clients[client.UserID]
		return ok
	}, time.Second, 5*time.Millisecond)
	return client
}

func awaitDropped(t *testing.T, client *Client) {
	t.Helper()
	select {
	case <-client.done:
	case <-time.After(time.Second):
		t.Fatal("client was not dropped")
	}
}

// A connection whose buffer is full gets dropped, and only that connection.
// The hub keeps serving everyone else.
func TestSlowClientDropOnlyAffectsThatClient(t *testing.T) {
	hub := runningHub(t)

	slow := registerClient(t, hub, 1)
	slow.Send <- []byte(`{"event":"connected","data":{}}`) // fill the buffer

	assert.NotPanics(t, func() {
		slow.sendFrame(EventChatResponse, chatResponsePayload{Message: "hi", Response: "tip"})
	})
	awaitDropped(t, slow)

	// Queuing the unregister again must be a harmless no-op.
	hub.unregister <- slow

	healthy := registerClient(t, hub, 8)
	hub.Send(healthy.UserID, model.Notification{Title: "Still here"})
	select {
	case <-healthy.Send:
	case <-time.After(time.Second):
		t.Fatal("hub stopped delivering after dropping a slow client")
	}
}

// Dropping several slow clients in one broadcast sweep must not wedge the
// hub: the unregisters are handed off after the clients map is released.
func TestBroadcastSurvivesMultipleSlowClients(t *testing.T) {
	hub := runningHub(t)

	slowA := registerClient(t, hub, 1)
	slowB := registerClient(t, hub, 1)
	slowA.Send <- []byte(`{}`)
	slowB.Send <- []byte(`{}`)
	healthy := registerClient(t, hub, 8)

	finished := make(chan struct{})
	go func() {
		hub.Broadcast(model.Notification{Title: "Pickup tomorrow"})
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast deadlocked while dropping slow clients")
	}

	awaitDropped(t, slowA)
	awaitDropped(t, slowB)

	select {
	case <-healthy.Send:
	case <-time.After(time.Second):
		t.Fatal("healthy client missed the broadcast")
	}
}
