package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestLoginRateLimiting(t *testing.T) {
	app, _ := newRadSafeTestApp(t)
	signupAndExtractAuthCookie(t, app, "Ada", "ada@x.com", "secret1")

	for attempt := 0; attempt < loginAttemptsLimit; attempt++ {
		response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", fiber.Map{
			"email":    "ada@x.com",
			"password": "wrong",
		}, ""), -1)
		if err != nil {
			t.Fatalf("login attempt %d failed: %v", attempt, err)
		}
		response.Body.Close()
		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected status 401, got %d", attempt, response.StatusCode)
		}
	}

	blocked, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "ada@x.com",
		"password": "secret1",
	}, ""), -1)
	if err != nil {
		t.Fatalf("blocked login request failed: %v", err)
	}
	defer blocked.Body.Close()

	if blocked.StatusCode != http.StatusTooManyRequests {
		t.Fatalf("expected status 429 after %d failures, got %d", loginAttemptsLimit, blocked.StatusCode)
	}
	if message := readAPIError(t, blocked.Body); message != "too many login attempts" {
		t.Fatalf("unexpected error message %q", message)
	}
}
