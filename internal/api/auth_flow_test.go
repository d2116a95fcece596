package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"radsafe/internal/models"
)

type sessionPayload struct {
	Authenticated bool               `json:"authenticated"`
	CurrentUser   *models.UserRecord `json:"user"`
	LastEmail     string             `json:"lastEmail"`
}

func fetchSession(t *testing.T, app *fiber.App) sessionPayload {
	t.Helper()

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/auth/session", nil, ""), -1)
	if err != nil {
		t.Fatalf("session request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected session status 200, got %d", response.StatusCode)
	}

	payload := sessionPayload{}
	decodeJSONBody(t, response.Body, &payload)
	return payload
}

func TestSignupLoginFlow(t *testing.T) {
	app, _ := newRadSafeTestApp(t)

	signupAndExtractAuthCookie(t, app, "Ada", "ada@x.com", "secret1")

	state := fetchSession(t, app)
	if !state.Authenticated || state.CurrentUser == nil {
		t.Fatalf("expected authenticated session after signup, got %+v", state)
	}
	if state.CurrentUser.Name != "Ada" || state.CurrentUser.Email != "ada@x.com" {
		t.Fatalf("unexpected session user: %+v", state.CurrentUser)
	}
	if state.CurrentUser.Password != "" {
		t.Fatal("session payload must never carry a password")
	}

	logoutResponse, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/logout", nil, ""), -1)
	if err != nil {
		t.Fatalf("logout request failed: %v", err)
	}
	logoutResponse.Body.Close()
	if logoutResponse.StatusCode != http.StatusOK {
		t.Fatalf("expected logout status 200, got %d", logoutResponse.StatusCode)
	}
	if state := fetchSession(t, app); state.Authenticated {
		t.Fatal("expected logged-out session after logout")
	}

	wrongResponse, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "ada@x.com",
		"password": "wrong",
	}, ""), -1)
	if err != nil {
		t.Fatalf("wrong-password login request failed: %v", err)
	}
	defer wrongResponse.Body.Close()
	if wrongResponse.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for wrong password, got %d", wrongResponse.StatusCode)
	}
	if message := readAPIError(t, wrongResponse.Body); message != "invalid credentials" {
		t.Fatalf("unexpected error message %q", message)
	}
	if state := fetchSession(t, app); state.Authenticated {
		t.Fatal("failed login must leave the session logged out")
	}

	loginAndExtractAuthCookie(t, app, "ada@x.com", "secret1")
	state = fetchSession(t, app)
	if !state.Authenticated || state.CurrentUser.Email != "ada@x.com" {
		t.Fatalf("expected ada@x.com logged back in, got %+v", state)
	}
}

func TestSessionSurvivesRestore(t *testing.T) {
	app, persisted := newRadSafeTestApp(t)
	signupAndExtractAuthCookie(t, app, "Ada", "ada@x.com", "secret1")

	// The persisted session key alone must be enough to restore the
	// logged-in state, the way the original client boots.
	user := persisted.LoadSessionUser()
	if user == nil || user.Email != "ada@x.com" {
		t.Fatalf("expected persisted session record, got %+v", user)
	}
	if user.Password != "" {
		t.Fatal("persisted session record must not carry a password")
	}
}
