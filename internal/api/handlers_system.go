package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) SystemStatus(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"system":  "RadSafe Monitor",
		"version": "1.0.0",
		"status":  "operational",
		"uptime":  time.Since(handler.startedAt).Round(time.Second).String(),
		"components": fiber.Map{
			"backend_api":      fiber.Map{"status": "running"},
			"persisted_store":  fiber.Map{"status": "connected", "type": "sqlite"},
			"radiation_sensor": fiber.Map{"status": "active", "mode": "simulation"},
			"profile_service":  fiber.Map{"status": handler.profileServiceStatus()},
		},
	})
}

func (handler *Handler) profileServiceStatus() string {
	if handler.reconciler == nil || !handler.reconciler.RemoteEnabled() {
		return "disabled"
	}
	return "configured"
}
