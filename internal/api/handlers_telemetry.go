package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) CurrentRadiation(c *fiber.Ctx) error {
	return c.JSON(handler.telemetry.CurrentReading())
}

func (handler *Handler) RadiationHistory(c *fiber.Ctx) error {
	points, average := handler.telemetry.History()
	return c.JSON(fiber.Map{
		"history": points,
		"count":   len(points),
		"average": average,
	})
}

func (handler *Handler) SearchRadiation(c *fiber.Ctx) error {
	location := strings.TrimSpace(c.Query("location"))
	if location == "" {
		return apiError(c, fiber.StatusBadRequest, "location parameter is required")
	}
	return c.JSON(handler.telemetry.SearchLocation(location))
}
