package telemetry

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"radsafe/internal/models"
)

// AlertFeed keeps the in-memory alert inbox, seeded with the demo entries
// the client ships with.
type AlertFeed struct {
	mu     sync.Mutex
	alerts []models.Alert
}

func NewAlertFeed() *AlertFeed {
	now := time.Now()
	return &AlertFeed{alerts: []models.Alert{
		{
			ID:      uuid.NewString(),
			Type:    models.StatusDanger,
			Title:   "High Radiation Level",
			Message: "Sensor detected 0.61 µSv/h in City Center.",
			Time:    now.Add(-10 * time.Minute),
			Read:    false,
		},
		{
			ID:      uuid.NewString(),
			Type:    "info",
			Title:   "Weekly Report Ready",
			Message: "Your radiation exposure trends for the week are available.",
			Time:    now.Add(-2 * time.Hour),
			Read:    false,
		},
		{
			ID:      uuid.NewString(),
			Type:    models.StatusSafe,
			Title:   "Safe Zone Detected",
			Message: "Residential Zone A remains within optimal levels.",
			Time:    now.Add(-24 * time.Hour),
			Read:    true,
		},
		{
			ID:      uuid.NewString(),
			Type:    models.StatusWarning,
			Title:   "Battery Low",
			Message: "Car Deck Sensor battery is below 15%.",
			Time:    now.Add(-24 * time.Hour),
			Read:    true,
		},
	}}
}

// List returns the alerts newest first.
func (feed *AlertFeed) List() []models.Alert {
	feed.mu.Lock()
	defer feed.mu.Unlock()

	listed := make([]models.Alert, len(feed.alerts))
	copy(listed, feed.alerts)
	sort.SliceStable(listed, func(i, j int) bool {
		return listed[i].Time.After(listed[j].Time)
	})
	return listed
}

// MarkRead flags one alert as read; reports whether the id was known.
func (feed *AlertFeed) MarkRead(id string) bool {
	feed.mu.Lock()
	defer feed.mu.Unlock()

	for index := range feed.alerts {
		if feed.alerts[index].ID == id {
			feed.alerts[index].Read = true
			return true
		}
	}
	return false
}

// Clear empties the inbox.
func (feed *AlertFeed) Clear() {
	feed.mu.Lock()
	defer feed.mu.Unlock()
	feed.alerts = feed.alerts[:0]
}

// Unread counts the alerts still marked unread.
func (feed *AlertFeed) Unread() int {
	feed.mu.Lock()
	defer feed.mu.Unlock()

	count := 0
	for _, alert := range feed.alerts {
		if !alert.Read {
			count++
		}
	}
	return count
}
