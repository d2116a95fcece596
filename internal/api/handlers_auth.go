package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"radsafe/internal/nav"
	"radsafe/internal/session"
)

const (
	loginAttemptsLimit  = 10
	loginAttemptsWindow = 15 * time.Minute
)

func (handler *Handler) Signup(c *fiber.Ctx) error {
	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	state, err := handler.sessions.Signup(input.Name, input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrMissingField):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, session.ErrDuplicateEmail):
			return apiError(c, fiber.StatusConflict, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to create account")
		}
	}

	if err := handler.setAuthCookie(c, state.CurrentUser, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	handler.router.Navigate(nav.ScreenDashboard)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ok":   true,
		"user": state.CurrentUser,
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	now := time.Now()
	limiterKey := requestLimiterKey(c)
	if handler.loginLimiter.tooManyRecent(limiterKey, now, loginAttemptsLimit, loginAttemptsWindow) {
		return apiError(c, fiber.StatusTooManyRequests, "too many login attempts")
	}

	input := credentialsInput{}
	if err := c.BodyParser(&input); err != nil {
		handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	state, err := handler.sessions.Login(input.Email, input.Password, input.Remember)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrMissingField):
			return apiError(c, fiber.StatusBadRequest, err.Error())
		case errors.Is(err, session.ErrInvalidCredentials):
			handler.loginLimiter.addFailure(limiterKey, now, loginAttemptsWindow)
			return apiError(c, fiber.StatusUnauthorized, err.Error())
		default:
			return apiError(c, fiber.StatusInternalServerError, "failed to log in")
		}
	}
	handler.loginLimiter.reset(limiterKey)

	if err := handler.setAuthCookie(c, state.CurrentUser, input.Remember); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	handler.router.Navigate(nav.ScreenDashboard)

	return c.JSON(fiber.Map{
		"ok":   true,
		"user": state.CurrentUser,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.sessions.Logout()
	handler.clearAuthCookie(c)
	handler.router.Navigate(nav.ScreenAuth)
	return c.JSON(fiber.Map{"ok": true})
}

// Session reports the restorable session state the auth screen boots from:
// the authenticated flag, the password-free user, and the remembered email
// for auto-fill.
func (handler *Handler) Session(c *fiber.Ctx) error {
	return c.JSON(handler.sessions.Current())
}
