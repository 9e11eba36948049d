package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

// stubChat records the calls that reach the chat service.
type stubChat struct {
	calls    []string
	lastUser uuid.UUID
	response string
	err      error
	panics   bool
}

func (s *stubChat) HandleMessage(_ context.Context, userID uuid.UUID, message string) (string, time.Time, error) {
	if s.panics {
		panic("responder blew up")
	}
	s.calls = append(s.calls, message)
	s.lastUser = userID
	return s.response, time.Now().UTC(), s.err
}

func newTestClient(chat ChatHandler) *Client {
	return &Client{
		Hub:      NewHub(nil, nopLogger{}),
		UserID:   uuid.New(),
		Username: "tester",
		Send:     make(chan []byte, 8),
		done:     make(chan struct{}),
		chat:     chat,
	}
}

func popFrame(t *testing.T, c *Client) (string, map[string]interface{}) {
	t.Helper()
	select {
	case raw := <-c.Send:
		var frame struct {
			Event string                 `json:"event"`
			Data  map[string]interface{} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &frame))
		return frame.Event, frame.Data
	default:
		t.Fatal("no frame queued")
		return "", nil
	}
}

func assertNoFrame(t *testing.T, c *Client) {
	t.Helper()
	select {
	case raw := <-c.Send:
		t.Fatalf("unexpected frame: %s", raw)
	default:
	}
}

func TestChatMessageProducesChatResponse(t *testing.T) {
	chat := &stubChat{response: "Here is a tip."}
	client := newTestClient(chat)

	client.handleInbound([]byte(`{"event":"chat_message","data":{"message":"  how do I recycle?  "}}`))

	event, data := popFrame(t, client)
	assert.Equal(t, EventChatResponse, event)
	assert.Equal(t, "how do I recycle?", data["message"])
	assert.Equal(t, "Here is a tip.", data["response"])
	assert.NotEmpty(t, data["timestamp"])

	require.Len(t, chat.calls, 1)
	assert.Equal(t, "how do I recycle?", chat.calls[0])
}

func TestChatMessageUsesHandshakeIdentity(t *testing.T) {
	chat := &stubChat{response: "ok"}
	client := newTestClient(chat)

	// The payload claims to be someone else. Only the handshake identity
	// may reach the handler.
	spoofed := uuid.New().String()
	client.handleInbound([]byte(`{"event":"chat_message","data":{"message":"hi","user_id":"` + spoofed + `"}}`))

	popFrame(t, client)
	assert.Equal(t, client.UserID, chat.lastUser)
	assert.NotEqual(t, spoofed, chat.lastUser.String())
}

func TestEmptyMessageRejectedWithoutHandlerCall(t *testing.T) {
	chat := &stubChat{response: "ok"}
	client := newTestClient(chat)

	client.handleInbound([]byte(`{"event":"chat_message","data":{"message":"   "}}`))

	event, data := popFrame(t, client)
	assert.Equal(t, EventError, event)
	assert.Equal(t, "Message is required", data["message"])
	assert.Empty(t, chat.calls, "an empty message must never reach the store")
}

func TestMalformedFrameYieldsError(t *testing.T) {
	chat := &stubChat{}
	client := newTestClient(chat)

	client.handleInbound([]byte(`{not json`))

	event, _ := popFrame(t, client)
	assert.Equal(t, EventError, event)
	assert.Empty(t, chat.calls)
}

func TestUnknownEventYieldsError(t *testing.T) {
	client := newTestClient(&stubChat{})

	client.handleInbound([]byte(`{"event":"subscribe","data":{}}`))

	event, data := popFrame(t, client)
	assert.Equal(t, EventError, event)
	assert.Contains(t, data["message"], "Unknown event")
}

func TestHandlerErrorYieldsGenericError(t *testing.T) {
	chat := &stubChat{err: errors.New("db down")}
	client := newTestClient(chat)

	client.handleInbound([]byte(`{"event":"chat_message","data":{"message":"hi"}}`))

	event, data := popFrame(t, client)
	assert.Equal(t, EventError, event)
	assert.Equal(t, "Failed to process message", data["message"])
}

func TestHandlerPanicIsContained(t *testing.T) {
	chat := &stubChat{panics: true}
	client := newTestClient(chat)

	assert.NotPanics(t, func() {
		client.handleInbound([]byte(`{"event":"chat_message","data":{"message":"hi"}}`))
	})

	event, data := popFrame(t, client)
	assert.Equal(t, EventError, event)
	assert.Equal(t, "Something went wrong processing your message", data["message"])

	// The connection stays usable after the panic.
	chat.panics = false
	chat.response = "recovered"
	client.handleInbound([]byte(`{"event":"chat_message","data":{"message":"still there?"}}`))
	event, _ = popFrame(t, client)
	assert.Equal(t, EventChatResponse, event)
}

func TestNoCrossTalkBetweenClients(t *testing.T) {
	chatA := &stubChat{response: "for A"}
	chatB := &stubChat{response: "for B"}

	hub := NewHub(nil, nopLogger{})
	clientA := &Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte, 8), done: make(chan struct{}), chat: chatA}
	clientB := &Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte, 8), done: make(chan struct{}), chat: chatB}

	clientA.handleInbound([]byte(`{"event":"chat_message","data":{"message":"question from A"}}`))

	event, data := popFrame(t, clientA)
	assert.Equal(t, EventChatResponse, event)
	assert.Equal(t, "for A", data["response"])

	assertNoFrame(t, clientB)
	assert.Empty(t, chatB.calls)
}
