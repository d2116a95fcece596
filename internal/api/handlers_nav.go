package api

import (
	"github.com/gofiber/fiber/v2"

	"radsafe/internal/nav"
)

func (handler *Handler) NavState(c *fiber.Ctx) error {
	return c.JSON(handler.navStatePayload())
}

func (handler *Handler) Navigate(c *fiber.Ctx) error {
	input := navigateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	handler.router.Navigate(nav.Screen(input.Screen))
	return c.JSON(handler.navStatePayload())
}

func (handler *Handler) GoBack(c *fiber.Ctx) error {
	handler.router.GoBack()
	return c.JSON(handler.navStatePayload())
}

func (handler *Handler) navStatePayload() fiber.Map {
	state := handler.router.State()
	authenticated := handler.sessions.Current().Authenticated
	return fiber.Map{
		"screen":        state.Screen,
		"renderToken":   state.RenderToken,
		"tabBarVisible": handler.router.TabBarVisible(authenticated),
		"tabScreens":    nav.TabScreens,
	}
}
