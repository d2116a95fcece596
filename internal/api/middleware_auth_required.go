package api

import "github.com/gofiber/fiber/v2"

// AuthRequired admits a request only when its auth cookie is valid and the
// session manager still holds the same user. The session state is
// authoritative: a valid cookie for a logged-out session is rejected.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	claims, err := handler.parseAuthCookie(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	state := handler.sessions.Current()
	if !state.Authenticated || state.CurrentUser == nil || state.CurrentUser.ID != claims.UserID {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	return c.Next()
}
