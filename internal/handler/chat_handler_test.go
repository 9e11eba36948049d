package handler

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"ecotrack-be/internal/dto"
	internalWS "ecotrack-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLog struct{}

func (nopLog) Debug(string, string, map[string]interface{}) {}
func (nopLog) Info(string, string, map[string]interface{})  {}
func (nopLog) Warn(string, string, map[string]interface{})  {}
func (nopLog) Error(string, string, map[string]interface{}) {}
func (nopLog) Sync() error                                  { return nil }

// stubChatService counts every message that gets past the handshake.
type stubChatService struct {
	calls int
}

func (s *stubChatService) HandleMessage(context.Context, uuid.UUID, string) (string, time.Time, error) {
	s.calls++
	return "", time.Time{}, nil
}

func (s *stubChatService) GetHistory(context.Context, uuid.UUID, int, int) (*dto.ChatHistoryResponse, error) {
	return &dto.ChatHistoryResponse{}, nil
}

type stubUserService struct{}

func (stubUserService) GetProfile(context.Context, uuid.UUID) (*dto.UserResponse, error) {
	return nil, nil
}

func (stubUserService) UpdateProfile(context.Context, uuid.UUID, *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	return nil, nil
}

func newChatApp() (*fiber.App, *stubChatService) {
	chat := &stubChatService{}
	h := NewChatHandler(chat, stubUserService{}, internalWS.NewHub(nil, nopLog{}), nopLog{})
	app := fiber.New()
	h.RegisterRoutes(app.Group("/api"))
	return app, chat
}

func TestServeWsRejectsMissingToken(t *testing.T) {
	app, chat := newChatApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/ws/chat", nil))
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Zero(t, chat.calls, "an unauthenticated handshake must never reach the chat service")
}

func TestServeWsRejectsInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "handler-test-secret")
	app, chat := newChatApp()

	for _, target := range []string{
		"/api/ws/chat?token=not-a-jwt",
		"/api/ws/chat?token=" + forgedToken(t),
	} {
		resp, err := app.Test(httptest.NewRequest("GET", target, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, target)
	}

	req := httptest.NewRequest("GET", "/api/ws/chat", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	assert.Zero(t, chat.calls)
}

func TestServeWsValidTokenRequiresUpgrade(t *testing.T) {
	t.Setenv("JWT_SECRET", "handler-test-secret")
	app, _ := newChatApp()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("handler-test-secret"))
	require.NoError(t, err)

	// Plain HTTP request with a good token: the gate passes, the missing
	// upgrade headers are what gets refused.
	resp, err := app.Test(httptest.NewRequest("GET", "/api/ws/chat?token="+signed, nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}

// forgedToken is well-formed but signed with the wrong key.
func forgedToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)
	return signed
}
