// Package store holds the authoritative in-memory trip state. Every mutation
// is mediated through the backend gateway; derived collections
// (recommendations, weather, route statistics) are recomputed as a reaction
// to trip changes. One store instance exists per application session.
package store

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/wayfarer-labs/wayfarer/internal/pkg/logger"
	"github.com/wayfarer-labs/wayfarer/internal/pkg/models"
	"github.com/wayfarer-labs/wayfarer/services/planner"
)

// Snapshot is a point-in-time copy of the store state. Observers only ever
// see whole snapshots; the store never hands out references into its own
// mutable state.
type Snapshot struct {
	Trips            []models.Trip             `json:"trips"`
	CurrentTrip      *models.Trip              `json:"current_trip,omitempty"`
	Recommendations  []models.Recommendation   `json:"recommendations"`
	WeatherForecasts []models.WeatherForecast  `json:"weather_forecasts"`
	IsLoading        bool                      `json:"is_loading"`
	Error            string                    `json:"error,omitempty"`
}

// Store is the single source of truth for the user's trips.
type Store struct {
	backend planner.TripBackend
	fuel    models.FuelConfig
	logger  *logger.ZapLogger

	mu               sync.RWMutex
	trips            []models.Trip
	currentTrip      *models.Trip
	recommendations  []models.Recommendation
	weatherForecasts []models.WeatherForecast
	loading          bool
	lastError        string

	// Generation counters guard the derived collections against stale
	// in-flight responses: a response is discarded when a newer load has
	// been issued for the same resource since it started.
	recGen     uint64
	weatherGen uint64
	routeGen   uint64

	// Fingerprint of the stop list the route statistics were last computed
	// for; recompute only fires when it changes.
	lastRouteFingerprint string

	rngMu sync.Mutex
	rng   *rand.Rand
}

// New creates a trip store backed by the given gateway.
func New(backend planner.TripBackend, fuel models.FuelConfig, zapLogger *logger.ZapLogger) *Store {
	return &Store{
		backend: backend,
		fuel:    fuel,
		logger:  zapLogger,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Trips:            copyTrips(s.trips),
		Recommendations:  append([]models.Recommendation(nil), s.recommendations...),
		WeatherForecasts: append([]models.WeatherForecast(nil), s.weatherForecasts...),
		IsLoading:        s.loading,
		Error:            s.lastError,
	}
	if s.currentTrip != nil {
		trip := copyTrip(*s.currentTrip)
		snap.CurrentTrip = &trip
	}
	return snap
}

// CurrentTrip returns a copy of the currently selected trip, or nil.
func (s *Store) CurrentTrip() *models.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.currentTrip == nil {
		return nil
	}
	trip := copyTrip(*s.currentTrip)
	return &trip
}

// SetCurrentTrip selects a trip locally. No network call is made and
// membership in the known trip list is not validated.
func (s *Store) SetCurrentTrip(trip *models.Trip) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if trip == nil {
		s.currentTrip = nil
		s.lastRouteFingerprint = ""
		return
	}

	selected := copyTrip(*trip)
	s.currentTrip = &selected
	// A fresh selection gets a fresh recompute baseline.
	s.lastRouteFingerprint = ""
}

// beginOp marks the store as loading; clearError additionally resets the
// error slot.
func (s *Store) beginOp(clearError bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	if clearError {
		s.lastError = ""
	}
}

// failOp records a user-facing error and clears the loading flag.
func (s *Store) failOp(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.lastError = message
}

// currentTripID returns the id of the selected trip, or "" when none is.
func (s *Store) currentTripID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.currentTrip == nil {
		return ""
	}
	return s.currentTrip.ID
}

// normalizeTrip guarantees a trip carries a stops slice.
func normalizeTrip(trip models.Trip) models.Trip {
	if trip.Stops == nil {
		trip.Stops = []models.Stop{}
	}
	return trip
}

func copyTrip(trip models.Trip) models.Trip {
	// make keeps an empty stops slice non-nil, preserving normalization.
	stops := make([]models.Stop, len(trip.Stops))
	copy(stops, trip.Stops)
	trip.Stops = stops
	return trip
}

func copyTrips(trips []models.Trip) []models.Trip {
	out := make([]models.Trip, len(trips))
	for i, trip := range trips {
		out[i] = copyTrip(trip)
	}
	return out
}

// routeFingerprint identifies the stop composition of a trip: recompute of
// route statistics fires only when it changes.
func routeFingerprint(trip *models.Trip) string {
	if trip == nil {
		return ""
	}
	ids := make([]string, 0, len(trip.Stops)+1)
	ids = append(ids, trip.ID)
	for _, stop := range trip.Stops {
		ids = append(ids, stop.ID)
	}
	return strings.Join(ids, "|")
}
