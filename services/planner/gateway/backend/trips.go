package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wayfarer-labs/wayfarer/internal/pkg/models"
)

// tripListResponse tolerates both a paginated envelope and a bare array.
type tripListResponse struct {
	Results []models.Trip `json:"results"`
}

// GetTrips fetches all trips for the session.
func (g *Gateway) GetTrips(ctx context.Context) ([]models.Trip, error) {
	var raw json.RawMessage
	if err := g.doJSON(ctx, http.MethodGet, "/trips/", nil, &raw); err != nil {
		return nil, fmt.Errorf("failed to get trips: %w", err)
	}

	// The backend may return either {"results": [...]} or a plain list.
	var envelope tripListResponse
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Results != nil {
		return envelope.Results, nil
	}

	var trips []models.Trip
	if err := json.Unmarshal(raw, &trips); err != nil {
		return nil, fmt.Errorf("failed to parse trips response: %w", err)
	}
	return trips, nil
}

// CreateTrip creates a trip from a draft.
func (g *Gateway) CreateTrip(ctx context.Context, draft *models.TripDraft) (*models.Trip, error) {
	var trip models.Trip
	if err := g.doJSON(ctx, http.MethodPost, "/trips/", draft, &trip); err != nil {
		return nil, fmt.Errorf("failed to create trip: %w", err)
	}
	return &trip, nil
}

// GetTrip fetches a single trip with its stops.
func (g *Gateway) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	var trip models.Trip
	if err := g.doJSON(ctx, http.MethodGet, "/trips/"+tripID+"/", nil, &trip); err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return &trip, nil
}

// UpdateTrip replaces the mutable fields of a trip.
func (g *Gateway) UpdateTrip(ctx context.Context, tripID string, draft *models.TripDraft) (*models.Trip, error) {
	var trip models.Trip
	if err := g.doJSON(ctx, http.MethodPut, "/trips/"+tripID+"/", draft, &trip); err != nil {
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}
	return &trip, nil
}

// DeleteTrip removes a trip.
func (g *Gateway) DeleteTrip(ctx context.Context, tripID string) error {
	if err := g.doJSON(ctx, http.MethodDelete, "/trips/"+tripID+"/", nil, nil); err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	return nil
}

// AddStop appends a stop to a trip. The server assigns the id and order.
func (g *Gateway) AddStop(ctx context.Context, tripID string, draft *models.StopDraft) (*models.Stop, error) {
	var stop models.Stop
	if err := g.doJSON(ctx, http.MethodPost, "/trips/"+tripID+"/stops/", draft, &stop); err != nil {
		return nil, fmt.Errorf("failed to add stop: %w", err)
	}
	return &stop, nil
}

// RemoveStop deletes a stop from a trip.
func (g *Gateway) RemoveStop(ctx context.Context, tripID, stopID string) error {
	if err := g.doJSON(ctx, http.MethodDelete, "/trips/"+tripID+"/stops/"+stopID+"/", nil, nil); err != nil {
		return fmt.Errorf("failed to remove stop: %w", err)
	}
	return nil
}

// ReorderStops submits the full order mapping for a trip's stops.
func (g *Gateway) ReorderStops(ctx context.Context, tripID string, orders []models.StopOrder) error {
	payload := map[string][]models.StopOrder{"stop_orders": orders}
	if err := g.doJSON(ctx, http.MethodPost, "/trips/"+tripID+"/stops/reorder/", payload, nil); err != nil {
		return fmt.Errorf("failed to reorder stops: %w", err)
	}
	return nil
}
