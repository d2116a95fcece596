package api

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"radsafe/internal/nav"
)

type navPayload struct {
	Screen        string   `json:"screen"`
	RenderToken   uint64   `json:"renderToken"`
	TabBarVisible bool     `json:"tabBarVisible"`
	TabScreens    []string `json:"tabScreens"`
}

func fetchNavState(t *testing.T, app *fiber.App) navPayload {
	t.Helper()

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/nav", nil, ""), -1)
	if err != nil {
		t.Fatalf("nav state request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected nav status 200, got %d", response.StatusCode)
	}

	payload := navPayload{}
	decodeJSONBody(t, response.Body, &payload)
	return payload
}

func postNavigate(t *testing.T, app *fiber.App, screen string) navPayload {
	t.Helper()

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/nav/navigate", fiber.Map{"screen": screen}, ""), -1)
	if err != nil {
		t.Fatalf("navigate request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected navigate status 200, got %d", response.StatusCode)
	}

	payload := navPayload{}
	decodeJSONBody(t, response.Body, &payload)
	return payload
}

func TestNavStartsOnWelcome(t *testing.T) {
	app, _ := newRadSafeTestApp(t)

	state := fetchNavState(t, app)
	if state.Screen != string(nav.ScreenWelcome) {
		t.Fatalf("expected welcome on boot, got %q", state.Screen)
	}
	if state.TabBarVisible {
		t.Fatal("tab bar must be hidden on the welcome screen")
	}
	if len(state.TabScreens) != len(nav.TabScreens) {
		t.Fatalf("expected %d tab screens, got %d", len(nav.TabScreens), len(state.TabScreens))
	}
}

func TestNavigateUnknownScreenFallsBackToDashboard(t *testing.T) {
	app, _ := newRadSafeTestApp(t)

	state := postNavigate(t, app, "unknown-screen-id")
	if state.Screen != string(nav.ScreenDashboard) {
		t.Fatalf("expected dashboard fallback, got %q", state.Screen)
	}
}

func TestGoBackFromPrivacyReturnsToSettings(t *testing.T) {
	app, _ := newRadSafeTestApp(t)
	postNavigate(t, app, string(nav.ScreenPrivacy))

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/nav/back", nil, ""), -1)
	if err != nil {
		t.Fatalf("back request failed: %v", err)
	}
	defer response.Body.Close()

	payload := navPayload{}
	decodeJSONBody(t, response.Body, &payload)
	if payload.Screen != string(nav.ScreenSettings) {
		t.Fatalf("expected settings after back from privacy, got %q", payload.Screen)
	}
}

func TestRenderTokenAdvancesOnEveryNavigation(t *testing.T) {
	app, _ := newRadSafeTestApp(t)

	first := postNavigate(t, app, string(nav.ScreenDashboard))
	second := postNavigate(t, app, string(nav.ScreenDashboard))
	if second.RenderToken <= first.RenderToken {
		t.Fatalf("re-navigating to the same screen must mint a fresh token: %d then %d", first.RenderToken, second.RenderToken)
	}
}

func TestTabBarVisibilityTracksAuthAndScreen(t *testing.T) {
	app, _ := newRadSafeTestApp(t)

	if state := postNavigate(t, app, string(nav.ScreenDashboard)); state.TabBarVisible {
		t.Fatal("tab bar must stay hidden while logged out")
	}

	signupAndExtractAuthCookie(t, app, "Ada", "ada@x.com", "secret1")

	if state := fetchNavState(t, app); !state.TabBarVisible {
		t.Fatalf("tab bar must show on %q when authenticated", state.Screen)
	}
	if state := postNavigate(t, app, string(nav.ScreenEditProfile)); state.TabBarVisible {
		t.Fatal("tab bar must be hidden on the edit-profile screen")
	}
	if state := postNavigate(t, app, string(nav.ScreenMonitor)); !state.TabBarVisible {
		t.Fatal("tab bar must show on the monitor screen when authenticated")
	}
}

func TestAuthFlowDrivesNavigation(t *testing.T) {
	app, _ := newRadSafeTestApp(t)

	signupAndExtractAuthCookie(t, app, "Ada", "ada@x.com", "secret1")
	if state := fetchNavState(t, app); state.Screen != string(nav.ScreenDashboard) {
		t.Fatalf("signup must land on the dashboard, got %q", state.Screen)
	}

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/logout", nil, ""), -1)
	if err != nil {
		t.Fatalf("logout request failed: %v", err)
	}
	response.Body.Close()

	if state := fetchNavState(t, app); state.Screen != string(nav.ScreenAuth) {
		t.Fatalf("logout must land on the auth screen, got %q", state.Screen)
	}
}
