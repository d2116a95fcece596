package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"radsafe/internal/telemetry"
)

func (handler *Handler) Chat(c *fiber.Ctx) error {
	input := chatInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	message := strings.TrimSpace(input.Message)
	if message == "" {
		return apiError(c, fiber.StatusBadRequest, "message is required")
	}

	reply := telemetry.NewChatMessage("assistant", telemetry.Reply(message))
	return c.JSON(fiber.Map{"message": reply})
}
