package api

import (
	"net/http"
	"testing"
)

func TestProtectedRoutesRejectAnonymousRequests(t *testing.T) {
	app, _ := newRadSafeTestApp(t)

	paths := []struct {
		method string
		path   string
	}{
		{method: http.MethodGet, path: "/api/profile"},
		{method: http.MethodGet, path: "/api/alerts"},
		{method: http.MethodGet, path: "/api/devices"},
		{method: http.MethodPost, path: "/api/chat"},
	}

	for _, route := range paths {
		response, err := app.Test(jsonRequest(t, route.method, route.path, nil, ""), -1)
		if err != nil {
			t.Fatalf("%s %s failed: %v", route.method, route.path, err)
		}
		response.Body.Close()
		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected status 401, got %d", route.method, route.path, response.StatusCode)
		}
	}
}

func TestValidCookieForLoggedOutSessionIsRejected(t *testing.T) {
	app, _ := newRadSafeTestApp(t)
	cookie := signupAndExtractAuthCookie(t, app, "Ada", "ada@x.com", "secret1")

	logoutResponse, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/logout", nil, cookie), -1)
	if err != nil {
		t.Fatalf("logout request failed: %v", err)
	}
	logoutResponse.Body.Close()

	// The token is still unexpired but the session state is authoritative.
	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/profile", nil, cookie), -1)
	if err != nil {
		t.Fatalf("profile request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for logged-out session, got %d", response.StatusCode)
	}
}

func TestGarbageCookieIsRejected(t *testing.T) {
	app, _ := newRadSafeTestApp(t)
	signupAndExtractAuthCookie(t, app, "Ada", "ada@x.com", "secret1")

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/profile", nil, authCookieName+"=not-a-token"), -1)
	if err != nil {
		t.Fatalf("profile request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for a garbage token, got %d", response.StatusCode)
	}
}
