package telemetry

import "radsafe/internal/models"

// Devices returns the demo sensor roster shown on the connectivity screen.
func Devices() []models.Device {
	return []models.Device{
		{ID: "RAD-092", Name: "Pocket Monitor v2", Status: "connected", Battery: 84, Signal: 92},
		{ID: "RAD-HUB-1", Name: "Home Hub Sensor", Status: "connected", Battery: 100, Signal: 88},
		{ID: "RAD-CAR-X", Name: "Car Deck Sensor", Status: "low_battery", Battery: 12, Signal: 61},
	}
}
