package controller

import (
	"strconv"

	"ecotrack-be/internal/pkg/serverutils"
	"ecotrack-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IRecyclingController interface {
	RegisterRoutes(r fiber.Router)
	ListCenters(ctx *fiber.Ctx) error
	NearbyCenters(ctx *fiber.Ctx) error
	ListSchedules(ctx *fiber.Ctx) error
}

type recyclingController struct {
	recycling service.IRecyclingService
	schedules service.IScheduleService
	users     service.IUserService
}

func NewRecyclingController(recycling service.IRecyclingService, schedules service.IScheduleService, users service.IUserService) IRecyclingController {
	return &recyclingController{
		recycling: recycling,
		schedules: schedules,
		users:     users,
	}
}

func (c *recyclingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/recycling-centers", serverutils.JwtMiddleware)
	h.Get("/", c.ListCenters)
	h.Get("/nearby", c.NearbyCenters)

	r.Get("/pickup-schedules", serverutils.JwtMiddleware, c.ListSchedules)
}

// callerCoords resolves the caller's position: explicit lat/lng query params
// win, falling back to the geocoded profile location.
func (c *recyclingController) callerCoords(ctx *fiber.Ctx) (*float64, *float64) {
	latStr, lngStr := ctx.Query("lat"), ctx.Query("lng")
	if latStr != "" && lngStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		if errLat == nil && errLng == nil {
			return &lat, &lng
		}
	}

	userID, err := serverutils.UserID(ctx)
	if err != nil {
		return nil, nil
	}
	profile, err := c.users.GetProfile(ctx.Context(), userID)
	if err != nil || profile == nil {
		return nil, nil
	}
	return profile.Latitude, profile.Longitude
}

func (c *recyclingController) ListCenters(ctx *fiber.Ctx) error {
	lat, lng := c.callerCoords(ctx)

	res, err := c.recycling.ListCenters(ctx.Context(), lat, lng)
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
		"message": "Recycling centers fetched",
		"data":    res,
	})
}

func (c *recyclingController) NearbyCenters(ctx *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(ctx.Query("lat"), 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "lat and lng query parameters are required",
		})
	}
	lng, err := strconv.ParseFloat(ctx.Query("lng"), 64)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"code":    400,
			"message": "lat and lng query parameters are required",
		})
	}
	radiusKm, _ := strconv.ParseFloat(ctx.Query("radius_km", "0"), 64)

	res, err := c.recycling.NearbyCenters(ctx.Context(), lat, lng, radiusKm)
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
		"message": "Nearby centers fetched",
		"data":    res,
	})
}

func (c *recyclingController) ListSchedules(ctx *fiber.Ctx) error {
	area := ctx.Query("area")

	userCity := ""
	if userID, err := serverutils.UserID(ctx); err == nil {
		if profile, err := c.users.GetProfile(ctx.Context(), userID); err == nil && profile != nil {
			userCity = profile.City
		}
	}

	res, err := c.schedules.ListSchedules(ctx.Context(), area, userCity)
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
		"message": "Pickup schedules fetched",
		"data":    res,
	})
}
