package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", handler.Signup)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Get("/session", handler.Session)

	navigation := api.Group("/nav")
	navigation.Get("", handler.NavState)
	navigation.Post("/navigate", handler.Navigate)
	navigation.Post("/back", handler.GoBack)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.UpdateProfile)

	radiation := api.Group("/radiation")
	radiation.Get("/current", handler.CurrentRadiation)
	radiation.Get("/history", handler.RadiationHistory)
	radiation.Get("/search", handler.SearchRadiation)

	alerts := api.Group("/alerts", handler.AuthRequired)
	alerts.Get("", handler.ListAlerts)
	alerts.Post("/:id/read", handler.MarkAlertRead)
	alerts.Delete("", handler.ClearAlerts)

	api.Get("/devices", handler.AuthRequired, handler.ListDevices)
	api.Post("/chat", handler.AuthRequired, handler.Chat)
	api.Get("/system/status", handler.SystemStatus)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
