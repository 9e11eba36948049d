package websocket

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Wire events. Every frame on the chat socket is {"event": ..., "data": {...}}.
const (
	EventChatMessage  = "chat_message"
	EventConnected    = "connected"
	EventChatResponse = "chat_response"
	EventError        = "error"
	EventNotification = "notification"
)

type Frame struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// inboundFrame defers payload decoding until the event is known.
type inboundFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// chatMessagePayload is the client's chat_message data. UserId is advisory
// only; the identity bound at the handshake is authoritative.
type chatMessagePayload struct {
	Message string `json:"message"`
	UserId  string `json:"user_id,omitempty"`
}

type connectedPayload struct {
	UserId   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Message  string    `json:"message"`
}

type chatResponsePayload struct {
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}

type errorPayload struct {
	Message string `json:"message"`
}

func marshalFrame(event string, data interface{}) []byte {
	out, _ := json.Marshal(Frame{Event: event, Data: data})
	return out
}
