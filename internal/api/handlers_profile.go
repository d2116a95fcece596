package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"radsafe/internal/session"
)

// GetProfile serves the settings screen's data. Entering the screen
// triggers the best-effort remote reconciliation; its failure never blocks
// or degrades the response.
func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	handler.reconciler.Reconcile(c.UserContext())

	state := handler.sessions.Current()
	if !state.Authenticated {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{"user": state.CurrentUser})
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	input := session.ProfileUpdate{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid profile input")
	}

	state, err := handler.sessions.UpdateProfile(input)
	if err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			return apiError(c, fiber.StatusUnauthorized, "unauthorized")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update profile")
	}

	return c.JSON(fiber.Map{
		"ok":   true,
		"user": state.CurrentUser,
	})
}
