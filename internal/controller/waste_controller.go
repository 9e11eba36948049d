package controller

import (
	"errors"

	"ecotrack-be/internal/dto"
	"ecotrack-be/internal/pkg/serverutils"
	"ecotrack-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWasteController interface {
	RegisterRoutes(r fiber.Router)
	CreateEntry(ctx *fiber.Ctx) error
	ListEntries(ctx *fiber.Ctx) error
	ToggleRecycled(ctx *fiber.Ctx) error
	ExportCSV(ctx *fiber.Ctx) error
	GetStatistics(ctx *fiber.Ctx) error
}

type wasteController struct {
	service service.IWasteService
}

func NewWasteController(service service.IWasteService) IWasteController {
	return &wasteController{service: service}
}

func (c *wasteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/waste-entries", serverutils.JwtMiddleware)
	h.Get("/", c.ListEntries)
	h.Post("/", c.CreateEntry)
	h.Get("/export", c.ExportCSV)
	h.Patch("/:id/toggle-recycled", c.ToggleRecycled)

	r.Get("/statistics", serverutils.JwtMiddleware, c.GetStatistics)
}

func (c *wasteController) CreateEntry(ctx *fiber.Ctx) error {
	userID, err := serverutils.UserID(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	var req dto.CreateWasteEntryRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.service.CreateEntry(ctx.Context(), userID, &req)
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
		"message": "Waste entry recorded",
		"data":    res,
	})
}

func (c *wasteController) ListEntries(ctx *fiber.Ctx) error {
	userID, err := serverutils.UserID(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	page := ctx.QueryInt("page", 1)
	perPage := ctx.QueryInt("per_page", 20)

	res, err := c.service.ListEntries(ctx.Context(), userID, page, perPage)
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
		"message": "Waste entries fetched",
		"data":    res,
	})
}

func (c *wasteController) ToggleRecycled(ctx *fiber.Ctx) error {
	userID, err := serverutils.UserID(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	entryID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "Invalid entry id",
		})
	}

	res, err := c.service.ToggleRecycled(ctx.Context(), userID, entryID)
	if err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"code":    404,
				"message": err.Error(),
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": "Recycled flag toggled",
		"data":    res,
	})
}

func (c *wasteController) ExportCSV(ctx *fiber.Ctx) error {
	userID, err := serverutils.UserID(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	data, err := c.service.ExportCSV(ctx.Context(), userID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    500,
			"message": err.Error(),
		})
	}

	ctx.Set(fiber.HeaderContentType, "text/csv")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="waste_entries.csv"`)
	return ctx.Send(data)
}

func (c *wasteController) GetStatistics(ctx *fiber.Ctx) error {
	userID, err := serverutils.UserID(ctx)
	if err != nil {
		return fiber.ErrUnauthorized
	}

	res, err := c.service.GetStatistics(ctx.Context(), userID)
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
		"message": "Statistics computed",
		"data":    res,
	})
}
