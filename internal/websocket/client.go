package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
)

// ChatHandler processes one authenticated chat message and returns the bot
// reply. Implemented by the chat service.
type ChatHandler interface {
	HandleMessage(ctx context.Context, userID uuid.UUID, message string) (response string, timestamp time.Time, err error)
}

// Client is a middleman between the websocket connection and the hub.
type Client struct {
	Hub *Hub

	// The websocket connection.
	Conn *websocket.Conn

	// Identity bound at the handshake.
	UserID   uuid.UUID
	Username string

	// Buffered channel of outbound messages. Never closed; the hub signals
	// shutdown through done so concurrent senders cannot hit a closed channel.
	Send chan []byte

	// Closed exactly once when the hub drops this client.
	done      chan struct{}
	closeOnce sync.Once

	chat ChatHandler
}

// close releases writePump. Idempotent; only the hub's unregister arm calls it.
func (c *Client) close() {
	c.closeOnce.Do(func() { close(c.done) })
}

// readPump pumps messages from the websocket connection to the chat handler.
// It runs one message at a time, so events are processed in arrival order
// for this connection.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.Hub.logger.Warn("WebSocket", "Unexpected close", map[string]interface{}{
					"user_id": c.UserID,
					"error":   err.Error(),
				})
			}
			break
		}
		c.handleInbound(raw)
	}
}

// writePump pumps messages from the Send channel to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			// Each frame is a standalone JSON document, so it gets its own
			// websocket message.
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-c.done:
			// The hub dropped this client.
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
