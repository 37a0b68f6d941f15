package store

import (
	"context"
	"time"

	"github.com/wayfarer-labs/wayfarer/internal/pkg/models"
)

// AddStop persists a stop draft against the current trip and appends the
// server-returned stop. No-op when no trip is selected or the draft is nil.
// There is no optimistic insertion: on failure the stop list is unchanged.
func (s *Store) AddStop(ctx context.Context, draft *models.StopDraft) {
	tripID := s.currentTripID()
	if tripID == "" || draft == nil {
		return
	}

	if draft.Type == "" {
		draft.Type = models.StopTypeWaypoint
	}

	s.beginOp(true)

	stop, err := s.backend.AddStop(ctx, tripID, draft)
	if err != nil {
		s.failOp(err.Error())
		return
	}

	s.mu.Lock()
	if s.currentTrip == nil || s.currentTrip.ID != tripID {
		// Selection changed while the request was in flight; the result
		// no longer belongs to the current trip.
		s.loading = false
		s.mu.Unlock()
		return
	}

	trip := copyTrip(*s.currentTrip)
	trip.Stops = append(trip.Stops, *stop)
	trip.UpdatedAt = time.Now()
	s.currentTrip = &trip
	s.syncCurrentIntoListLocked()
	s.loading = false
	s.mu.Unlock()

	s.maybeRecalculateStats(ctx)
}

// RemoveStop deletes a stop remotely, then filters it out of the current
// trip. Removing an id that is already absent leaves the list unchanged.
// No-op when no trip is selected.
func (s *Store) RemoveStop(ctx context.Context, stopID string) {
	tripID := s.currentTripID()
	if tripID == "" {
		return
	}

	s.beginOp(true)

	if err := s.backend.RemoveStop(ctx, tripID, stopID); err != nil {
		s.failOp(err.Error())
		return
	}

	s.mu.Lock()
	if s.currentTrip == nil || s.currentTrip.ID != tripID {
		s.loading = false
		s.mu.Unlock()
		return
	}

	trip := copyTrip(*s.currentTrip)
	filtered := make([]models.Stop, 0, len(trip.Stops))
	for _, stop := range trip.Stops {
		if stop.ID != stopID {
			filtered = append(filtered, stop)
		}
	}
	trip.Stops = filtered
	trip.UpdatedAt = time.Now()
	s.currentTrip = &trip
	s.syncCurrentIntoListLocked()
	s.loading = false
	s.mu.Unlock()

	s.maybeRecalculateStats(ctx)
}

// ReorderStops submits a 1-based order mapping for newOrder and, on success,
// replaces the current trip's stop sequence with newOrder verbatim. The
// caller's ordering is authoritative. No-op when no trip is selected.
func (s *Store) ReorderStops(ctx context.Context, newOrder []models.Stop) {
	tripID := s.currentTripID()
	if tripID == "" {
		return
	}

	orders := make([]models.StopOrder, len(newOrder))
	for i, stop := range newOrder {
		orders[i] = models.StopOrder{ID: stop.ID, Order: i + 1}
	}

	s.beginOp(true)

	if err := s.backend.ReorderStops(ctx, tripID, orders); err != nil {
		s.failOp(err.Error())
		return
	}

	s.mu.Lock()
	if s.currentTrip == nil || s.currentTrip.ID != tripID {
		s.loading = false
		s.mu.Unlock()
		return
	}

	trip := copyTrip(*s.currentTrip)
	trip.Stops = append([]models.Stop(nil), newOrder...)
	trip.UpdatedAt = time.Now()
	s.currentTrip = &trip
	s.syncCurrentIntoListLocked()
	s.loading = false
	s.mu.Unlock()

	s.maybeRecalculateStats(ctx)
}
