package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"

	"radsafe/internal/nav"
	"radsafe/internal/profile"
	"radsafe/internal/session"
	"radsafe/internal/store"
	"radsafe/internal/telemetry"
)

func newRadSafeTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()
	return newRadSafeTestAppWithRemote(t, "")
}

func newRadSafeTestAppWithRemote(t *testing.T, remoteURL string) (*fiber.App, *store.Store) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "radsafe-test.db")
	database, err := store.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	persisted := store.New(database)
	profileClient := profile.NewClient(remoteURL)
	sessions := session.NewManager(persisted, profileClient)
	router := nav.NewRouter()
	reconciler := profile.NewReconciler(profileClient, sessions, router)

	handler := NewHandler(sessions, router, reconciler, telemetry.NewService(), telemetry.NewAlertFeed(), "test-secret-key", false)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, persisted
}

func jsonRequest(t *testing.T, method string, path string, payload any, cookie string) *http.Request {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		serialized, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request payload: %v", err)
		}
		body = bytes.NewReader(serialized)
	} else {
		body = bytes.NewReader(nil)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}
	return request
}

func signupAndExtractAuthCookie(t *testing.T, app *fiber.App, name string, email string, password string) string {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/auth/signup", fiber.Map{
		"name":     name,
		"email":    email,
		"password": password,
	}, "")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("signup request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected signup status 201, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("auth cookie is missing in signup response")
	return ""
}

func loginAndExtractAuthCookie(t *testing.T, app *fiber.App, email string, password string) string {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    email,
		"password": password,
	}, "")

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected login status 200, got %d", response.StatusCode)
	}

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}

	t.Fatal("auth cookie is missing in login response")
	return ""
}
