package telemetry

import (
	"hash/fnv"
	"math"
	"math/rand"
	"sync"
	"time"

	"radsafe/internal/models"
)

// Background band and status thresholds for the simulated sensor.
const (
	backgroundMin    = 0.10
	backgroundMax    = 0.20
	warningThreshold = 0.25

	searchBase = 0.05
	searchSpan = 1.50
	// Location-search readings span a wider band with their own cut-offs.
	searchWarningThreshold = 0.20
	searchDangerThreshold  = 0.50

	readingUnit     = "µSv/h"
	historyLength   = 10
	historyInterval = 5 * time.Minute
)

// Service produces the demo telemetry stream: random readings inside the
// background band plus deterministic per-location search results.
type Service struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

func NewService() *Service {
	return &Service{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
		now: time.Now,
	}
}

// StatusForLevel maps a background reading to its status band.
func StatusForLevel(level float64) string {
	if level < warningThreshold {
		return models.StatusSafe
	}
	return models.StatusWarning
}

// SearchStatusForLevel maps a location-search reading to its status band.
func SearchStatusForLevel(level float64) string {
	switch {
	case level < searchWarningThreshold:
		return models.StatusSafe
	case level < searchDangerThreshold:
		return models.StatusWarning
	default:
		return models.StatusDanger
	}
}

func statusMessage(status string) string {
	if status == models.StatusSafe {
		return "Normal background radiation"
	}
	return "Elevated level detected"
}

// CurrentReading returns one simulated sensor reading.
func (service *Service) CurrentReading() models.Reading {
	level := service.randomLevel()
	status := StatusForLevel(level)
	return models.Reading{
		Level:     level,
		Unit:      readingUnit,
		Status:    status,
		Message:   statusMessage(status),
		Timestamp: service.now(),
	}
}

// History returns the last readings at five-minute intervals, newest
// first, plus their average.
func (service *Service) History() ([]models.HistoryPoint, float64) {
	points := make([]models.HistoryPoint, 0, historyLength)
	sum := 0.0
	now := service.now()
	for index := 0; index < historyLength; index++ {
		timestamp := now.Add(-time.Duration(index) * historyInterval)
		value := service.randomLevel()
		sum += value
		points = append(points, models.HistoryPoint{
			Value:     value,
			Time:      timestamp.Format("15:04"),
			Timestamp: timestamp,
		})
	}
	return points, roundLevel(sum / historyLength)
}

// SearchLocation simulates a reading for a named place. The level and the
// pseudo-coordinates are derived from the location text, so repeated
// searches for the same place agree.
func (service *Service) SearchLocation(location string) models.LocationReading {
	seed := locationSeed(location)
	fraction := float64(seed%1000) / 1000.0
	level := roundLevel(searchBase + fraction*searchSpan)

	return models.LocationReading{
		Location:  location,
		Latitude:  -90 + float64(seed%180000)/1000.0,
		Longitude: -180 + float64((seed/7)%360000)/1000.0,
		Level:     level,
		Status:    SearchStatusForLevel(level),
		Timestamp: service.now(),
	}
}

func (service *Service) randomLevel() float64 {
	service.mu.Lock()
	defer service.mu.Unlock()
	return roundLevel(backgroundMin + service.rnd.Float64()*(backgroundMax-backgroundMin))
}

func roundLevel(level float64) float64 {
	return math.Round(level*100) / 100
}

func locationSeed(location string) uint64 {
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(location))
	return hasher.Sum64()
}
