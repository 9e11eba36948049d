package handler

import (
	"ecotrack-be/internal/pkg/logger"
	"ecotrack-be/internal/pkg/serverutils"
	"ecotrack-be/internal/service"
	internalWS "ecotrack-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type ChatHandler struct {
	chat   service.IChatService
	users  service.IUserService
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewChatHandler(chat service.IChatService, users service.IUserService, hub *internalWS.Hub, log logger.ILogger) *ChatHandler {
	return &ChatHandler{
		chat:   chat,
		users:  users,
		hub:    hub,
		logger: log,
	}
}

// ServeWs authenticates the handshake and upgrades to the chat socket.
// Connections without a valid token are rejected before the upgrade, so
// nothing they send can ever reach the store.
func (h *ChatHandler) ServeWs(c *fiber.Ctx) error {
	// Browsers cannot set headers on websocket handshakes, so the token
	// arrives as a query param. Tooling may still use the header.
	tokenStr := c.Query("token")
	if tokenStr == "" {
		authHeader := c.Get("Authorization")
		if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
			tokenStr = authHeader[7:]
		}
	}

	if tokenStr == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Missing token (Query 'token' or Header 'Authorization')"})
	}

	userID, err := serverutils.ParseToken(tokenStr)
	if err != nil {
		h.logger.Warn("ChatHandler", "Invalid token in WS handshake", map[string]interface{}{"error": err})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	username := ""
	if profile, err := h.users.GetProfile(c.UserContext(), userID); err == nil && profile != nil {
		username = profile.Username
	}

	if websocket.IsWebSocketUpgrade(c) {
		return websocket.New(func(conn *websocket.Conn) {
			h.logger.Info("ChatHandler", "Starting chat session", map[string]interface{}{"user_id": userID})
			internalWS.ServeWs(h.hub, conn, userID, username, h.chat)
			h.logger.Info("ChatHandler", "Chat session ended", map[string]interface{}{"user_id": userID})
		})(c)
	}
	return fiber.ErrUpgradeRequired
}

// RegisterRoutes registers the websocket endpoint.
func (h *ChatHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/ws/chat", h.ServeWs)
}
