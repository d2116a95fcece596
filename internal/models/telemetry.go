package models

import "time"

// Radiation status bands used across readings and alerts.
const (
	StatusSafe    = "safe"
	StatusWarning = "warning"
	StatusDanger  = "danger"
)

type Reading struct {
	Level     float64   `json:"radiation_level"`
	Unit      string    `json:"unit"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type HistoryPoint struct {
	Value     float64   `json:"value"`
	Time      string    `json:"time"`
	Timestamp time.Time `json:"timestamp"`
}

type LocationReading struct {
	Location  string    `json:"location"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Level     float64   `json:"level"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type Alert struct {
	ID      string    `json:"id"`
	Type    string    `json:"type"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Time    time.Time `json:"time"`
	Read    bool      `json:"read"`
}

type Device struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Status  string `json:"status"`
	Battery int    `json:"battery"`
	Signal  int    `json:"signal"`
}

type ChatMessage struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
