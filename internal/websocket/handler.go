package websocket

import (
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

// ServeWs runs one chat connection. The connected frame is emitted exactly
// once, before any chat traffic.
func ServeWs(hub *Hub, c *websocket.Conn, userID uuid.UUID, username string, chat ChatHandler) {
	client := &Client{
		Hub:      hub,
		Conn:     c,
		UserID:   userID,
		Username: username,
		Send:     make(chan []byte, 256),
		done:     make(chan struct{}),
		chat:     chat,
	}
	client.Hub.register <- client

	client.Send <- marshalFrame(EventConnected, connectedPayload{
		UserId:   userID,
		Username: username,
		Message:  "Connected to EcoTrack chat",
	})

	go client.writePump()
	client.readPump() // runs in the handler goroutine
}
