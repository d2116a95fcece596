package api

import (
	"net/http"
	"testing"

	"radsafe/internal/models"
)

func TestCurrentRadiationShape(t *testing.T) {
	app, _ := newRadSafeTestApp(t)

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/radiation/current", nil, ""), -1)
	if err != nil {
		t.Fatalf("current reading request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	reading := models.Reading{}
	decodeJSONBody(t, response.Body, &reading)
	if reading.Unit != "µSv/h" {
		t.Fatalf("expected µSv/h unit, got %q", reading.Unit)
	}
	if reading.Level < 0.10 || reading.Level > 0.20 {
		t.Fatalf("reading %.2f outside background band", reading.Level)
	}
	if reading.Status != models.StatusSafe {
		t.Fatalf("background reading must be safe, got %q", reading.Status)
	}
}

func TestRadiationHistoryShape(t *testing.T) {
	app, _ := newRadSafeTestApp(t)

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/radiation/history", nil, ""), -1)
	if err != nil {
		t.Fatalf("history request failed: %v", err)
	}
	defer response.Body.Close()

	payload := struct {
		History []models.HistoryPoint `json:"history"`
		Count   int                   `json:"count"`
		Average float64               `json:"average"`
	}{}
	decodeJSONBody(t, response.Body, &payload)
	if payload.Count != 10 || len(payload.History) != 10 {
		t.Fatalf("expected 10 history points, got count=%d len=%d", payload.Count, len(payload.History))
	}
	if payload.Average < 0.10 || payload.Average > 0.20 {
		t.Fatalf("average %.2f outside background band", payload.Average)
	}
}

func TestSearchRadiation(t *testing.T) {
	app, _ := newRadSafeTestApp(t)

	missing, err := app.Test(jsonRequest(t, http.MethodGet, "/api/radiation/search", nil, ""), -1)
	if err != nil {
		t.Fatalf("search request failed: %v", err)
	}
	missing.Body.Close()
	if missing.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400 without a location, got %d", missing.StatusCode)
	}

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/radiation/search?location=City+Center", nil, ""), -1)
	if err != nil {
		t.Fatalf("search request failed: %v", err)
	}
	defer response.Body.Close()

	first := models.LocationReading{}
	decodeJSONBody(t, response.Body, &first)
	if first.Location != "City Center" {
		t.Fatalf("expected location echoed back, got %q", first.Location)
	}

	repeat, err := app.Test(jsonRequest(t, http.MethodGet, "/api/radiation/search?location=City+Center", nil, ""), -1)
	if err != nil {
		t.Fatalf("repeat search request failed: %v", err)
	}
	defer repeat.Body.Close()

	second := models.LocationReading{}
	decodeJSONBody(t, repeat.Body, &second)
	if first.Level != second.Level || first.Latitude != second.Latitude {
		t.Fatalf("repeated searches must agree: %+v vs %+v", first, second)
	}
}
