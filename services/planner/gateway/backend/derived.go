package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/wayfarer-labs/wayfarer/internal/pkg/logger"
	"github.com/wayfarer-labs/wayfarer/internal/pkg/models"
)

// SearchPlaces queries the backend place search. On failure the synthetic
// provider fills in; the caller never sees an error.
func (g *Gateway) SearchPlaces(ctx context.Context, query string) (*models.PlacesSearchResponse, error) {
	var resp models.PlacesSearchResponse
	path := "/places/search/?q=" + url.QueryEscape(query)
	if err := g.readJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		g.logger.Warn("Places search unavailable, substituting synthetic results",
			logger.Err(err), logger.String("query", query))
		return g.synthetic.Places(query), nil
	}
	return &resp, nil
}

// WeatherForecast fetches current conditions for a coordinate, with a
// synthetic substitute on failure.
func (g *Gateway) WeatherForecast(ctx context.Context, lat, lng float64) (*models.WeatherResponse, error) {
	var resp models.WeatherResponse
	path := fmt.Sprintf("/weather/current/?lat=%g&lng=%g", lat, lng)
	if err := g.readJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		g.logger.Warn("Weather service unavailable, substituting synthetic forecast",
			logger.Err(err), logger.Float64("lat", lat), logger.Float64("lng", lng))
		return g.synthetic.Weather(lat, lng), nil
	}
	return &resp, nil
}

// NearbyRecommendations fetches recommended places near a coordinate,
// optionally filtered by type, with a synthetic substitute on failure.
func (g *Gateway) NearbyRecommendations(ctx context.Context, lat, lng float64, placeType string) (*models.PlacesSearchResponse, error) {
	var resp models.PlacesSearchResponse
	var path string
	if placeType != "" {
		path = fmt.Sprintf("/recommendations/nearby/?lat=%g&lng=%g&type=%s", lat, lng, url.QueryEscape(placeType))
	} else {
		path = fmt.Sprintf("/recommendations/?lat=%g&lng=%g", lat, lng)
	}

	if err := g.readJSON(ctx, http.MethodGet, path, nil, &resp); err != nil {
		g.logger.Warn("Recommendations service unavailable, substituting synthetic results",
			logger.Err(err), logger.Float64("lat", lat), logger.Float64("lng", lng))
		return g.synthetic.Recommendations(lat, lng, placeType), nil
	}
	return &resp, nil
}

// CalculateRoute submits the ordered waypoint list for route calculation,
// with a synthetic estimate on failure.
func (g *Gateway) CalculateRoute(ctx context.Context, waypoints []models.Waypoint) (*models.RouteStats, error) {
	var resp models.RouteStats
	payload := &models.RouteRequest{Waypoints: waypoints}
	if err := g.readJSON(ctx, http.MethodPost, "/routes/calculate/", payload, &resp); err != nil {
		g.logger.Warn("Route service unavailable, substituting synthetic estimate",
			logger.Err(err), logger.Int("waypoints", len(waypoints)))
		return g.synthetic.Route(waypoints), nil
	}
	return &resp, nil
}
