package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wayfarer-labs/wayfarer/internal/pkg/logger"
	"github.com/wayfarer-labs/wayfarer/internal/pkg/models"
)

const (
	durationOvernight  = "Overnight"
	durationRestaurant = "1-2 hrs"
	durationAttraction = "2-3 hrs"
)

// CalculateTripStats recomputes the derived route statistics of the current
// trip by submitting its ordered coordinate-bearing stops for route
// calculation. Requires at least two geocoded stops. Fuel cost is derived as
// distance / efficiency * price, using per-trip values when the trip carries
// them and the configured defaults otherwise.
func (s *Store) CalculateTripStats(ctx context.Context) {
	s.mu.Lock()
	if s.currentTrip == nil || len(s.currentTrip.Stops) < 2 {
		s.mu.Unlock()
		return
	}

	tripID := s.currentTrip.ID
	waypoints := make([]models.Waypoint, 0, len(s.currentTrip.Stops))
	for _, stop := range s.currentTrip.Stops {
		if stop.HasCoordinates() {
			waypoints = append(waypoints, models.Waypoint{Lat: *stop.Lat, Lng: *stop.Lng})
		}
	}
	if len(waypoints) < 2 {
		s.mu.Unlock()
		return
	}

	efficiency := s.currentTrip.FuelEfficiency
	if efficiency == 0 {
		efficiency = s.fuel.EfficiencyMPG
	}
	price := s.currentTrip.FuelPrice
	if price == 0 {
		price = s.fuel.PricePerGallon
	}

	s.routeGen++
	gen := s.routeGen
	s.mu.Unlock()

	stats, err := s.backend.CalculateRoute(ctx, waypoints)
	if err != nil {
		s.logger.Warn("Failed to calculate route", logger.Err(err), logger.String("trip_id", tripID))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.routeGen || s.currentTrip == nil || s.currentTrip.ID != tripID {
		// A newer calculation was issued or the selection changed; this
		// result is stale.
		return
	}

	trip := copyTrip(*s.currentTrip)
	trip.TotalDistance = stats.TotalDistance
	trip.TotalTime = stats.TotalTime
	trip.EstimatedFuelCost = stats.TotalDistance / efficiency * price
	trip.UpdatedAt = time.Now()
	s.currentTrip = &trip
	s.syncCurrentIntoListLocked()
}

// maybeRecalculateStats triggers a stats recompute when the stop composition
// of the current trip changed since the last one.
func (s *Store) maybeRecalculateStats(ctx context.Context) {
	s.mu.Lock()
	fingerprint := routeFingerprint(s.currentTrip)
	if fingerprint == s.lastRouteFingerprint {
		s.mu.Unlock()
		return
	}
	s.lastRouteFingerprint = fingerprint

	coordStops := 0
	if s.currentTrip != nil {
		for _, stop := range s.currentTrip.Stops {
			if stop.HasCoordinates() {
				coordStops++
			}
		}
	}
	s.mu.Unlock()

	if coordStops >= 2 {
		s.CalculateTripStats(ctx)
	}
}

// LoadRecommendations fetches nearby places for the given coordinate and
// replaces the recommendation list wholesale. No-op when either coordinate
// is absent. Failure records an error and leaves the previous list in place.
func (s *Store) LoadRecommendations(ctx context.Context, lat, lng *float64) {
	if lat == nil || lng == nil {
		return
	}

	s.beginOp(true)

	s.mu.Lock()
	s.recGen++
	gen := s.recGen
	s.mu.Unlock()

	resp, err := s.backend.NearbyRecommendations(ctx, *lat, *lng, "")
	if err != nil {
		s.failOp("Failed to load recommendations")
		return
	}

	recommendations := make([]models.Recommendation, 0, len(resp.Results))
	for _, place := range resp.Results {
		recommendations = append(recommendations, s.buildRecommendation(place))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false
	if gen != s.recGen {
		// A newer load was issued while this one was in flight.
		return
	}
	s.recommendations = recommendations
}

// buildRecommendation classifies a place by its category tags and fills in
// the presentation fields the backend does not supply.
func (s *Store) buildRecommendation(place models.PlaceResult) models.Recommendation {
	kind, duration := classifyPlace(place.Types)

	rating := 0.0
	if place.Rating != nil {
		rating = *place.Rating
	}

	tags := place.Types
	if len(tags) > 3 {
		tags = tags[:3]
	}
	humanized := make([]string, len(tags))
	for i, tag := range tags {
		humanized[i] = humanizeTag(tag)
	}

	s.rngMu.Lock()
	distance := fmt.Sprintf("%.1f mi", s.rng.Float64()*5+0.5)
	imageURL := fmt.Sprintf("https://images.unsplash.com/photo-%d?w=300&q=80",
		1500000000000+s.rng.Intn(100000000))
	s.rngMu.Unlock()

	return models.Recommendation{
		ID:          place.PlaceID,
		Name:        place.Name,
		Type:        kind,
		Rating:      rating,
		Distance:    distance,
		Duration:    duration,
		Description: fmt.Sprintf("Highly rated %s in the area.", strings.ToLower(place.Name)),
		ImageURL:    imageURL,
		Tags:        humanized,
		Lat:         place.Latitude,
		Lng:         place.Longitude,
		PriceLevel:  place.PriceLevel,
	}
}

// classifyPlace buckets a place into restaurant, accommodation or
// attraction by substring-matching its category tags.
func classifyPlace(types []string) (models.RecommendationType, string) {
	if hasTag(types, "restaurant") {
		return models.RecommendationRestaurant, durationRestaurant
	}
	if hasTag(types, "lodging") {
		return models.RecommendationAccommodation, durationOvernight
	}
	return models.RecommendationAttraction, durationAttraction
}

func hasTag(types []string, substring string) bool {
	for _, t := range types {
		if strings.Contains(t, substring) {
			return true
		}
	}
	return false
}

// humanizeTag turns a provider tag like "tourist_attraction" into
// "Tourist Attraction".
func humanizeTag(tag string) string {
	words := strings.Split(strings.ReplaceAll(tag, "_", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

// LoadWeatherForecasts fetches a forecast for every coordinate-bearing stop
// of the current trip concurrently and joins them all-or-nothing: a single
// failing fetch fails the batch and the previous list is kept. Forecasts are
// produced in stop order; each one is dated by its position offset from
// today, a simplification standing in for per-day itinerary scheduling.
func (s *Store) LoadWeatherForecasts(ctx context.Context) {
	s.mu.RLock()
	if s.currentTrip == nil || len(s.currentTrip.Stops) == 0 {
		s.mu.RUnlock()
		return
	}
	type target struct {
		name     string
		lat, lng float64
	}
	targets := make([]target, 0, len(s.currentTrip.Stops))
	for _, stop := range s.currentTrip.Stops {
		if stop.HasCoordinates() {
			targets = append(targets, target{name: stop.Name, lat: *stop.Lat, lng: *stop.Lng})
		}
	}
	s.mu.RUnlock()

	if len(targets) == 0 {
		return
	}

	s.beginOp(false)

	s.mu.Lock()
	s.weatherGen++
	gen := s.weatherGen
	s.mu.Unlock()

	now := time.Now()
	forecasts := make([]models.WeatherForecast, len(targets))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, tgt := range targets {
		i, tgt := i, tgt
		group.Go(func() error {
			weather, err := s.backend.WeatherForecast(groupCtx, tgt.lat, tgt.lng)
			if err != nil {
				return err
			}
			humidity := weather.Current.Humidity
			windSpeed := weather.Current.WindMPH
			forecasts[i] = models.WeatherForecast{
				Location:    tgt.name,
				Temperature: weather.Current.TempF,
				Condition:   weather.Current.Condition.Text,
				Icon:        weather.Current.Condition.Icon,
				Humidity:    &humidity,
				WindSpeed:   &windSpeed,
				Date:        now.AddDate(0, 0, i),
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		s.failOp("Failed to load weather data")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false
	if gen != s.weatherGen {
		return
	}
	s.weatherForecasts = forecasts
}
