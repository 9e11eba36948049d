package controller

import (
	"ecotrack-be/internal/dto"
	"ecotrack-be/internal/pkg/serverutils"
	"ecotrack-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IGoalController interface {
	RegisterRoutes(r fiber.Router)
	CreateGoal(ctx *fiber.Ctx) error
	ListGoals(ctx *fiber.Ctx) error
	ListAchievements(ctx *fiber.Ctx) error
}

type goalController struct {
	service service.IGoalService
}

func NewGoalController(service service.IGoalService) IGoalController {
	return &goalController{service: service}
}

func (c *goalController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/goals", serverutils.JwtMiddleware)
	h.Get("/", c.ListGoals)
	h.Post("/", c.CreateGoal)

	r.Get("/achievements", serverutils.JwtMiddleware, c.ListAchievements)
}

func (c *goalController) CreateGoal(ctx *fiber.Ctx) error {
	userID, err := serverutils.UserID(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.CreateWasteGoalRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.CreateGoal(ctx.Context(), userID, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": err.Error(),
		})
	}
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"code":    201,
		"message": "Goal created",
		"data":    res,
	})
}

func (c *goalController) ListGoals(ctx *fiber.Ctx) error {
	userID, err := serverutils.UserID(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	res, err := c.service.ListGoals(ctx.Context(), userID)
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
		"message": "Goals fetched",
		"data":    res,
	})
}

func (c *goalController) ListAchievements(ctx *fiber.Ctx) error {
	userID, err := serverutils.UserID(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	res, err := c.service.ListAchievements(ctx.Context(), userID)
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
		"message": "Achievements fetched",
		"data":    res,
	})
}
