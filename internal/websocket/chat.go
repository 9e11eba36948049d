package websocket

import (
	"context"
	"encoding/json"
	"strings"
)

// handleInbound decodes one frame from this client and dispatches it. A
// failure here only ever affects this connection; other clients keep their
// own pumps.
func (c *Client) handleInbound(raw []byte) {
	var frame inboundFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		c.sendFrame(EventError, errorPayload{Message: "Invalid frame"})
		return
	}

	switch frame.Event {
	case EventChatMessage:
		c.handleChatMessage(frame.Data)
	default:
		c.sendFrame(EventError, errorPayload{Message: "Unknown event: " + frame.Event})
	}
}

func (c *Client) handleChatMessage(data json.RawMessage) {
	// A responder or handler panic must not take down the read loop. The
	// human record may already be stored; no bot record is written and the
	// client gets a generic error.
	defer func() {
		if r := recover(); r != nil {
			c.Hub.logger.Error("WebSocket", "Panic while handling chat message", map[string]interface{}{
				"user_id": c.UserID,
				"panic":   r,
			})
			c.sendFrame(EventError, errorPayload{Message: "Something went wrong processing your message"})
		}
	}()

	var payload chatMessagePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		c.sendFrame(EventError, errorPayload{Message: "Invalid chat_message payload"})
		return
	}

	text := strings.TrimSpace(payload.Message)
	if text == "" {
		c.sendFrame(EventError, errorPayload{Message: "Message is required"})
		return
	}

	// payload.UserId is ignored for authorization. The handshake identity
	// is the only user reference that reaches the store.
	response, timestamp, err := c.chat.HandleMessage(context.Background(), c.UserID, text)
	if err != nil {
		c.Hub.logger.Warn("WebSocket", "Chat handler failed", map[string]interface{}{
			"user_id": c.UserID,
			"error":   err.Error(),
		})
		c.sendFrame(EventError, errorPayload{Message: "Failed to process message"})
		return
	}

	// Reply goes only to the originating connection, never through the hub.
	c.sendFrame(EventChatResponse, chatResponsePayload{
		Message:   text,
		Response:  response,
		Timestamp: timestamp,
	})
}

// sendFrame queues an outbound frame on this connection. If the connection
// cannot keep up the frame is dropped and the hub tears the client down; a
// disconnect here never undoes a persisted write.
func (c *Client) sendFrame(event string, data interface{}) {
	select {
	case c.Send <- marshalFrame(event, data):
	default:
		c.Hub.unregister <- c
	}
}
