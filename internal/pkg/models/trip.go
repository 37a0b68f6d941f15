package models

import (
	"time"
)

// RouteType is the routing preference attached to a trip.
type RouteType string

const (
	RouteTypeFastest RouteType = "fastest"
	RouteTypeScenic  RouteType = "scenic"
	RouteTypeCustom  RouteType = "custom"
)

// StopType tags the role a stop plays within its trip.
type StopType string

const (
	StopTypeStart       StopType = "start"
	StopTypeDestination StopType = "destination"
	StopTypeWaypoint    StopType = "waypoint"
)

// Trip represents a named road-trip itinerary. Stops are ordered; the order
// is the order presented to the user and the order submitted for route
// calculation. TotalDistance, TotalTime and EstimatedFuelCost are derived
// values and are recomputed whenever the stop list changes.
type Trip struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description,omitempty"`
	Stops             []Stop     `json:"stops"`
	RouteType         RouteType  `json:"route_type"`
	TotalDistance     float64    `json:"total_distance"` // miles
	TotalTime         float64    `json:"total_time"`     // hours
	EstimatedFuelCost float64    `json:"estimated_fuel_cost"`
	FuelEfficiency    float64    `json:"fuel_efficiency,omitempty"` // mpg, falls back to configured default
	FuelPrice         float64    `json:"fuel_price,omitempty"`      // $/gallon, falls back to configured default
	StartDate         *time.Time `json:"start_date,omitempty"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Stop represents a single waypoint in a trip. Coordinates are absent until
// the stop has been geocoded.
type Stop struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Address        string   `json:"address"`
	Lat            *float64 `json:"lat,omitempty"`
	Lng            *float64 `json:"lng,omitempty"`
	ArrivalTime    string   `json:"arrival_time,omitempty"`
	DepartureTime  string   `json:"departure_time,omitempty"`
	TravelTime     string   `json:"travel_time,omitempty"`     // leg arriving at this stop
	TravelDistance string   `json:"travel_distance,omitempty"` // leg arriving at this stop
	Type           StopType `json:"type,omitempty"`
	Order          int      `json:"order,omitempty"`
}

// HasCoordinates reports whether the stop has been geocoded.
func (s *Stop) HasCoordinates() bool {
	return s.Lat != nil && s.Lng != nil
}

// TripDraft carries the user-supplied fields for creating or updating a trip.
type TripDraft struct {
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	RouteType      RouteType `json:"route_type,omitempty"`
	StartDate      string    `json:"start_date,omitempty"`
	EndDate        string    `json:"end_date,omitempty"`
	FuelEfficiency float64   `json:"fuel_efficiency,omitempty"`
	FuelPrice      float64   `json:"fuel_price,omitempty"`
}

// StopDraft carries the user-supplied fields for adding a stop to a trip.
type StopDraft struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Lat     *float64 `json:"latitude,omitempty"`
	Lng     *float64 `json:"longitude,omitempty"`
	Type    StopType `json:"stop_type,omitempty"`
}

// StopOrder is one entry of the batch reorder payload: the stop id and its
// new 1-based position.
type StopOrder struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// Waypoint is a bare coordinate pair submitted for route calculation.
type Waypoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
