// Package planner defines the contracts between the trip reconciliation
// layer and its two external data-access boundaries: the trip backend REST
// API and the geocoding provider.
package planner

import (
	"context"

	"github.com/wayfarer-labs/wayfarer/internal/pkg/models"
	"github.com/wayfarer-labs/wayfarer/services/planner/gateway/geoapify"
)

//go:generate mockgen -destination=mocks/mock_backend.go -package=mocks github.com/wayfarer-labs/wayfarer/services/planner TripBackend
//go:generate mockgen -destination=mocks/mock_geocoder.go -package=mocks github.com/wayfarer-labs/wayfarer/services/planner Geocoder

// TripBackend is the authenticated trip backend API. Read paths (SearchPlaces,
// WeatherForecast, NearbyRecommendations, CalculateRoute) degrade to
// synthesized placeholder data instead of failing; write paths propagate
// errors to the caller.
type TripBackend interface {
	// Auth
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)

	// Trips
	GetTrips(ctx context.Context) ([]models.Trip, error)
	CreateTrip(ctx context.Context, draft *models.TripDraft) (*models.Trip, error)
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)
	UpdateTrip(ctx context.Context, tripID string, draft *models.TripDraft) (*models.Trip, error)
	DeleteTrip(ctx context.Context, tripID string) error

	// Stops
	AddStop(ctx context.Context, tripID string, draft *models.StopDraft) (*models.Stop, error)
	RemoveStop(ctx context.Context, tripID, stopID string) error
	ReorderStops(ctx context.Context, tripID string, orders []models.StopOrder) error

	// Derived data
	SearchPlaces(ctx context.Context, query string) (*models.PlacesSearchResponse, error)
	WeatherForecast(ctx context.Context, lat, lng float64) (*models.WeatherResponse, error)
	NearbyRecommendations(ctx context.Context, lat, lng float64, placeType string) (*models.PlacesSearchResponse, error)
	CalculateRoute(ctx context.Context, waypoints []models.Waypoint) (*models.RouteStats, error)
}

// Geocoder is the third-party geocoding/static-map provider. It is tried
// before the backend for place search.
type Geocoder interface {
	SearchPlaces(ctx context.Context, query string, opts *geoapify.SearchOptions) ([]models.SearchResult, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) ([]models.SearchResult, error)
	StaticMapURL(req geoapify.StaticMapRequest) string
}

// SyntheticProvider synthesizes placeholder responses shaped like real
// backend payloads, used when the backend read paths are unavailable.
type SyntheticProvider interface {
	Places(query string) *models.PlacesSearchResponse
	Weather(lat, lng float64) *models.WeatherResponse
	Recommendations(lat, lng float64, placeType string) *models.PlacesSearchResponse
	Route(waypoints []models.Waypoint) *models.RouteStats
}
