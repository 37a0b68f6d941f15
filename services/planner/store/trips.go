package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/wayfarer-labs/wayfarer/internal/pkg/models"
)

// ErrNameRequired is returned by CreateTrip when the draft has no name.
var ErrNameRequired = errors.New("trip name is required")

// LoadTrips fetches all trips for the session and replaces the trip list.
// When no trip was selected yet, the first fetched trip becomes current.
// On failure the previous state is left untouched and the error slot is set.
func (s *Store) LoadTrips(ctx context.Context) {
	s.beginOp(true)

	trips, err := s.backend.GetTrips(ctx)
	if err != nil {
		s.failOp(err.Error())
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	normalized := make([]models.Trip, len(trips))
	for i, trip := range trips {
		normalized[i] = normalizeTrip(trip)
	}

	s.trips = normalized
	if s.currentTrip == nil && len(normalized) > 0 {
		first := copyTrip(normalized[0])
		s.currentTrip = &first
	}
	s.loading = false
}

// CreateTrip validates the draft, persists it and makes the new trip
// current. Unlike the read-style operations the failure is also returned so
// a caller can abort a multi-step flow.
func (s *Store) CreateTrip(ctx context.Context, draft *models.TripDraft) (*models.Trip, error) {
	if draft == nil || strings.TrimSpace(draft.Name) == "" {
		return nil, ErrNameRequired
	}

	s.beginOp(true)

	created, err := s.backend.CreateTrip(ctx, draft)
	if err != nil {
		s.failOp(err.Error())
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trip := normalizeTrip(*created)
	s.trips = append([]models.Trip{trip}, s.trips...)
	current := copyTrip(trip)
	s.currentTrip = &current
	s.lastRouteFingerprint = ""
	s.loading = false

	result := copyTrip(trip)
	return &result, nil
}

// UpdateTrip persists new trip fields and merges the server response into
// the trip list (and the current selection when it is the same trip).
func (s *Store) UpdateTrip(ctx context.Context, tripID string, draft *models.TripDraft) (*models.Trip, error) {
	s.beginOp(true)

	updated, err := s.backend.UpdateTrip(ctx, tripID, draft)
	if err != nil {
		s.failOp(err.Error())
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	trip := normalizeTrip(*updated)
	for i := range s.trips {
		if s.trips[i].ID == trip.ID {
			// The list payload may omit stops; keep the known ones.
			if len(trip.Stops) == 0 && len(s.trips[i].Stops) > 0 {
				trip.Stops = append([]models.Stop(nil), s.trips[i].Stops...)
			}
			s.trips[i] = trip
			break
		}
	}
	if s.currentTrip != nil && s.currentTrip.ID == trip.ID {
		current := copyTrip(trip)
		s.currentTrip = &current
	}
	s.loading = false

	result := copyTrip(trip)
	return &result, nil
}

// DeleteTrip removes a trip remotely and locally. When the deleted trip was
// current, selection falls back to the first remaining trip.
func (s *Store) DeleteTrip(ctx context.Context, tripID string) error {
	s.beginOp(true)

	if err := s.backend.DeleteTrip(ctx, tripID); err != nil {
		s.failOp(err.Error())
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	remaining := make([]models.Trip, 0, len(s.trips))
	for _, trip := range s.trips {
		if trip.ID != tripID {
			remaining = append(remaining, trip)
		}
	}
	s.trips = remaining

	if s.currentTrip != nil && s.currentTrip.ID == tripID {
		if len(remaining) > 0 {
			first := copyTrip(remaining[0])
			s.currentTrip = &first
		} else {
			s.currentTrip = nil
		}
		s.lastRouteFingerprint = ""
	}
	s.loading = false
	return nil
}

// UpdateRouteType changes the routing preference of the current trip. This
// is a local-only mutation: route type is not persisted to the backend, a
// deliberate asymmetry with the other trip fields.
func (s *Store) UpdateRouteType(routeType models.RouteType) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentTrip == nil {
		return
	}

	trip := copyTrip(*s.currentTrip)
	trip.RouteType = routeType
	trip.UpdatedAt = time.Now()
	s.currentTrip = &trip
	s.syncCurrentIntoListLocked()
}

// syncCurrentIntoListLocked mirrors the current trip back into the trip
// list. Callers must hold s.mu.
func (s *Store) syncCurrentIntoListLocked() {
	if s.currentTrip == nil {
		return
	}
	for i := range s.trips {
		if s.trips[i].ID == s.currentTrip.ID {
			s.trips[i] = copyTrip(*s.currentTrip)
			return
		}
	}
}
