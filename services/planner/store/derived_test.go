package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-labs/wayfarer/internal/pkg/models"
	"github.com/wayfarer-labs/wayfarer/services/planner/mocks"
)

func TestLoadRecommendations_NilCoordinate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: an absent coordinate must not reach the backend.
	mockBackend := mocks.NewMockTripBackend(ctrl)
	s := New(mockBackend, defaultFuel(), newTestLogger(t))

	s.LoadRecommendations(context.Background(), nil, coord(-74))
	s.LoadRecommendations(context.Background(), coord(40), nil)

	assert.Empty(t, s.Snapshot().Recommendations)
}

func TestLoadRecommendations_Classification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rating := 4.4
	mockBackend := mocks.NewMockTripBackend(ctrl)
	mockBackend.EXPECT().
		NearbyRecommendations(gomock.Any(), 40.0, -74.0, "").
		Return(&models.PlacesSearchResponse{Results: []models.PlaceResult{
			{PlaceID: "p1", Name: "Roadside Inn", Types: []string{"lodging", "point_of_interest"}},
			{PlaceID: "p2", Name: "Blue Plate", Rating: &rating, Types: []string{"restaurant", "food"}},
			{PlaceID: "p3", Name: "Canyon Overlook", Types: []string{"tourist_attraction", "park", "natural_feature", "extra"}},
		}}, nil)

	s := New(mockBackend, defaultFuel(), newTestLogger(t))
	s.LoadRecommendations(context.Background(), coord(40), coord(-74))

	snap := s.Snapshot()
	require.Len(t, snap.Recommendations, 3)

	inn := snap.Recommendations[0]
	assert.Equal(t, models.RecommendationAccommodation, inn.Type)
	assert.Equal(t, "Overnight", inn.Duration)

	diner := snap.Recommendations[1]
	assert.Equal(t, models.RecommendationRestaurant, diner.Type)
	assert.Equal(t, "1-2 hrs", diner.Duration)
	assert.Equal(t, 4.4, diner.Rating)

	overlook := snap.Recommendations[2]
	assert.Equal(t, models.RecommendationAttraction, overlook.Type)
	assert.Equal(t, "2-3 hrs", overlook.Duration)
	assert.Equal(t, []string{"Tourist Attraction", "Park", "Natural Feature"}, overlook.Tags,
		"tags are the first three categories, humanized")
	assert.Equal(t, "Highly rated canyon overlook in the area.", overlook.Description)
}

func TestLoadRecommendations_Error_KeepsPriorList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := mocks.NewMockTripBackend(ctrl)
	mockBackend.EXPECT().
		NearbyRecommendations(gomock.Any(), 40.0, -74.0, "").
		Return(&models.PlacesSearchResponse{Results: []models.PlaceResult{
			{PlaceID: "p1", Name: "Keeper", Types: []string{"park"}},
		}}, nil)
	mockBackend.EXPECT().
		NearbyRecommendations(gomock.Any(), 41.0, -75.0, "").
		Return(nil, errors.New("boom"))

	s := New(mockBackend, defaultFuel(), newTestLogger(t))
	s.LoadRecommendations(context.Background(), coord(40), coord(-74))
	s.LoadRecommendations(context.Background(), coord(41), coord(-75))

	snap := s.Snapshot()
	assert.Equal(t, "Failed to load recommendations", snap.Error)
	require.Len(t, snap.Recommendations, 1, "prior list survives a failed load")
	assert.Equal(t, "Keeper", snap.Recommendations[0].Name)
}

func TestLoadRecommendations_StaleResponseDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := mocks.NewMockTripBackend(ctrl)
	s := New(mockBackend, defaultFuel(), newTestLogger(t))

	mockBackend.EXPECT().
		NearbyRecommendations(gomock.Any(), 40.0, -74.0, "").
		DoAndReturn(func(context.Context, float64, float64, string) (*models.PlacesSearchResponse, error) {
			// A newer load is issued while this one is still in flight.
			s.mu.Lock()
			s.recGen++
			s.mu.Unlock()
			return &models.PlacesSearchResponse{Results: []models.PlaceResult{
				{PlaceID: "stale", Name: "Stale", Types: []string{"park"}},
			}}, nil
		})

	s.LoadRecommendations(context.Background(), coord(40), coord(-74))

	assert.Empty(t, s.Snapshot().Recommendations, "stale response must not be committed")
}

func weatherFor(name string, temp float64) *models.WeatherResponse {
	return &models.WeatherResponse{
		Location: name,
		Current: models.CurrentWeather{
			TempF:     temp,
			Condition: models.WeatherCondition{Text: "Sunny"},
			Humidity:  40,
			WindMPH:   8,
		},
	}
}

func TestLoadWeatherForecasts_NoStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := mocks.NewMockTripBackend(ctrl)
	mockBackend.EXPECT().
		GetTrips(gomock.Any()).
		Return([]models.Trip{{ID: "t1"}}, nil)

	s := New(mockBackend, defaultFuel(), newTestLogger(t))
	s.LoadTrips(context.Background())

	s.LoadWeatherForecasts(context.Background())
	assert.Empty(t, s.Snapshot().WeatherForecasts)
}

func TestLoadWeatherForecasts_DateOffsets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := mocks.NewMockTripBackend(ctrl)
	mockBackend.EXPECT().
		GetTrips(gomock.Any()).
		Return([]models.Trip{{ID: "t1", Stops: []models.Stop{
			{ID: "s1", Name: "NYC", Lat: coord(40), Lng: coord(-74)},
			{ID: "s2", Name: "Philly"}, // not geocoded, skipped
			{ID: "s3", Name: "DC", Lat: coord(38.9), Lng: coord(-77)},
		}}}, nil)
	mockBackend.EXPECT().
		WeatherForecast(gomock.Any(), 40.0, -74.0).
		Return(weatherFor("NYC", 72), nil)
	mockBackend.EXPECT().
		WeatherForecast(gomock.Any(), 38.9, -77.0).
		Return(weatherFor("DC", 75), nil)

	s := New(mockBackend, defaultFuel(), newTestLogger(t))
	s.LoadTrips(context.Background())

	s.LoadWeatherForecasts(context.Background())

	snap := s.Snapshot()
	require.Len(t, snap.WeatherForecasts, 2, "one forecast per coordinate-bearing stop")

	first, second := snap.WeatherForecasts[0], snap.WeatherForecasts[1]
	assert.Equal(t, "NYC", first.Location)
	assert.Equal(t, "DC", second.Location)
	assert.Equal(t, 72.0, first.Temperature)
	assert.WithinDuration(t, time.Now(), first.Date, time.Minute, "first forecast is dated today")
	assert.Equal(t, 24*time.Hour, second.Date.Sub(first.Date), "each later stop is one day out")
}

func TestLoadWeatherForecasts_SingleFailureFailsBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := mocks.NewMockTripBackend(ctrl)
	mockBackend.EXPECT().
		GetTrips(gomock.Any()).
		Return([]models.Trip{{ID: "t1", Stops: []models.Stop{
			{ID: "s1", Name: "NYC", Lat: coord(40), Lng: coord(-74)},
			{ID: "s2", Name: "DC", Lat: coord(38.9), Lng: coord(-77)},
		}}}, nil)
	mockBackend.EXPECT().
		WeatherForecast(gomock.Any(), 40.0, -74.0).
		Return(nil, errors.New("upstream down"))
	// The sibling fetch may or may not start before the group cancels.
	mockBackend.EXPECT().
		WeatherForecast(gomock.Any(), 38.9, -77.0).
		Return(weatherFor("DC", 75), nil).
		AnyTimes()

	s := New(mockBackend, defaultFuel(), newTestLogger(t))
	s.LoadTrips(context.Background())

	s.LoadWeatherForecasts(context.Background())

	snap := s.Snapshot()
	assert.Equal(t, "Failed to load weather data", snap.Error)
	assert.Empty(t, snap.WeatherForecasts, "all-or-nothing, nothing is committed")
}

func TestCalculateTripStats_RequiresTwoGeocodedStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No route expectation: one geocoded stop is not enough.
	mockBackend := mocks.NewMockTripBackend(ctrl)
	mockBackend.EXPECT().
		GetTrips(gomock.Any()).
		Return([]models.Trip{{ID: "t1", Stops: []models.Stop{
			{ID: "s1", Lat: coord(40), Lng: coord(-74)},
			{ID: "s2"},
		}}}, nil)

	s := New(mockBackend, defaultFuel(), newTestLogger(t))
	s.LoadTrips(context.Background())

	s.CalculateTripStats(context.Background())
	assert.Zero(t, s.CurrentTrip().TotalDistance)
}

func TestCalculateTripStats_PerTripFuelOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := mocks.NewMockTripBackend(ctrl)
	mockBackend.EXPECT().
		GetTrips(gomock.Any()).
		Return([]models.Trip{{
			ID:             "t1",
			FuelEfficiency: 30,
			FuelPrice:      4,
			Stops: []models.Stop{
				{ID: "s1", Lat: coord(40), Lng: coord(-74)},
				{ID: "s2", Lat: coord(34), Lng: coord(-118)},
			},
		}}, nil)
	mockBackend.EXPECT().
		CalculateRoute(gomock.Any(), gomock.Any()).
		Return(&models.RouteStats{TotalDistance: 300, TotalTime: 5}, nil)

	s := New(mockBackend, defaultFuel(), newTestLogger(t))
	s.LoadTrips(context.Background())

	s.CalculateTripStats(context.Background())

	trip := s.CurrentTrip()
	require.NotNil(t, trip)
	assert.InDelta(t, 40.0, trip.EstimatedFuelCost, 1e-9, "300mi / 30mpg * $4.00")
}

func TestCalculateTripStats_SelectionChangeDiscardsResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := mocks.NewMockTripBackend(ctrl)
	s := New(mockBackend, defaultFuel(), newTestLogger(t))

	mockBackend.EXPECT().
		GetTrips(gomock.Any()).
		Return([]models.Trip{{ID: "t1", Stops: []models.Stop{
			{ID: "s1", Lat: coord(40), Lng: coord(-74)},
			{ID: "s2", Lat: coord(34), Lng: coord(-118)},
		}}}, nil)
	mockBackend.EXPECT().
		CalculateRoute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []models.Waypoint) (*models.RouteStats, error) {
			// The user switches trips while the calculation is in flight.
			s.SetCurrentTrip(&models.Trip{ID: "t2"})
			return &models.RouteStats{TotalDistance: 300, TotalTime: 5}, nil
		})

	s.LoadTrips(context.Background())
	s.CalculateTripStats(context.Background())

	trip := s.CurrentTrip()
	require.NotNil(t, trip)
	assert.Equal(t, "t2", trip.ID)
	assert.Zero(t, trip.TotalDistance, "stale result is not written into the new selection")
}
