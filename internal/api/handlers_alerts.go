package api

import (
	"github.com/gofiber/fiber/v2"

	"radsafe/internal/telemetry"
)

func (handler *Handler) ListAlerts(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"alerts": handler.alerts.List(),
		"unread": handler.alerts.Unread(),
	})
}

func (handler *Handler) MarkAlertRead(c *fiber.Ctx) error {
	if !handler.alerts.MarkRead(c.Params("id")) {
		return apiError(c, fiber.StatusNotFound, "alert not found")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ClearAlerts(c *fiber.Ctx) error {
	handler.alerts.Clear()
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ListDevices(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"devices": telemetry.Devices()})
}
