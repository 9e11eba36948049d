package controller

import (
	"ecotrack-be/internal/pkg/serverutils"
	"ecotrack-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	GetHistory(ctx *fiber.Ctx) error
	GetWasteTips(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Get("/chat/history", serverutils.JwtMiddleware, c.GetHistory)
	r.Get("/waste-tips", c.GetWasteTips)
}

func (c *chatController) GetHistory(ctx *fiber.Ctx) error {
	userID, err := serverutils.UserID(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.service.GetHistory(ctx.Context(), userID, limit, offset)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Chat history fetched",
		"data":    res,
	})
}

func (c *chatController) GetWasteTips(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Waste tips fetched",
		"data":    service.WasteTips(),
	})
}
