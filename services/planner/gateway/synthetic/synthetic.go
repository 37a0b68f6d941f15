// Package synthetic generates placeholder payloads shaped like real backend
// responses. The backend gateway substitutes them when a read path fails, so
// calling code never has to branch on provenance.
//
// Generation is deterministic: the rand source is seeded from the geohash of
// the reference coordinate (or a hash of the query text), so the same input
// always yields the same stand-in data.
package synthetic

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/rand"
	"strings"

	"github.com/mmcloughlin/geohash"
	"github.com/wayfarer-labs/wayfarer/internal/pkg/models"
)

var conditions = []string{"Sunny", "Partly Cloudy", "Light Rain", "Clear", "Overcast"}

const (
	milesPerSegment = 150.0
	averageSpeedMPH = 60.0
)

// Generator synthesizes placeholder data.
type Generator struct{}

// NewGenerator creates a synthetic data generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Places synthesizes a two-result place search echoing the query.
func (g *Generator) Places(query string) *models.PlacesSearchResponse {
	rng := rngFor(seedFromText(query))
	rating1, rating2 := 4.5, 4.2

	return &models.PlacesSearchResponse{
		Results: []models.PlaceResult{
			{
				PlaceID:   fmt.Sprintf("place_%s_1", seedTag(query)),
				Name:      query + " National Park",
				Address:   query + ", State, USA",
				Latitude:  40.7128 + rng.Float64()*10,
				Longitude: -74.006 + rng.Float64()*10,
				Rating:    &rating1,
				Types:     []string{"park", "tourist_attraction"},
			},
			{
				PlaceID:   fmt.Sprintf("place_%s_2", seedTag(query)),
				Name:      query + " Downtown",
				Address:   "Downtown " + query + ", State, USA",
				Latitude:  40.7128 + rng.Float64()*10,
				Longitude: -74.006 + rng.Float64()*10,
				Rating:    &rating2,
				Types:     []string{"locality", "political"},
			},
		},
	}
}

// Weather synthesizes current conditions for a coordinate.
func (g *Generator) Weather(lat, lng float64) *models.WeatherResponse {
	rng := rngFor(seedFromCoordinate(lat, lng))
	condition := conditions[rng.Intn(len(conditions))]

	return &models.WeatherResponse{
		Location: fmt.Sprintf("Location (%.2f, %.2f)", lat, lng),
		Current: models.CurrentWeather{
			TempF: 65 + rng.Float64()*25,
			Condition: models.WeatherCondition{
				Text: condition,
				Icon: strings.ReplaceAll(strings.ToLower(condition), " ", "_"),
			},
			Humidity: 40 + rng.Float64()*40,
			WindMPH:  rng.Float64() * 15,
		},
	}
}

// Recommendations synthesizes three nearby places around a coordinate.
func (g *Generator) Recommendations(lat, lng float64, placeType string) *models.PlacesSearchResponse {
	rng := rngFor(seedFromCoordinate(lat, lng))

	kind := placeType
	if kind == "" {
		kind = "establishment"
	}
	label := placeType
	if label == "" {
		label = "Place"
	}

	results := make([]models.PlaceResult, 0, 3)
	for i := 0; i < 3; i++ {
		rating := 3.5 + rng.Float64()*1.5
		priceLevel := rng.Intn(4) + 1
		results = append(results, models.PlaceResult{
			PlaceID:        fmt.Sprintf("%s_%s_%d", kind, seedTag(fmt.Sprintf("%f,%f", lat, lng)), i),
			Name:           fmt.Sprintf("Suggested %s %d", label, i+1),
			Rating:         &rating,
			PriceLevel:     &priceLevel,
			Types:          []string{kind},
			Latitude:       lat + (rng.Float64()-0.5)*0.1,
			Longitude:      lng + (rng.Float64()-0.5)*0.1,
			BusinessStatus: "OPERATIONAL",
		})
	}

	return &models.PlacesSearchResponse{Results: results}
}

// Route synthesizes route statistics for an ordered waypoint list: a fixed
// distance per segment at a fixed average speed.
func (g *Generator) Route(waypoints []models.Waypoint) *models.RouteStats {
	if len(waypoints) < 2 {
		return &models.RouteStats{Legs: []models.RouteLeg{}}
	}

	totalDistance := float64(len(waypoints)) * milesPerSegment
	totalTime := math.Round(totalDistance/averageSpeedMPH*10) / 10

	legs := make([]models.RouteLeg, 0, len(waypoints)-1)
	for i := 0; i < len(waypoints)-1; i++ {
		legs = append(legs, models.RouteLeg{
			Distance: models.LegMetric{Text: "150 miles", Value: milesPerSegment},
			Duration: models.LegMetric{Text: "2.5 hours", Value: milesPerSegment / averageSpeedMPH},
		})
	}

	return &models.RouteStats{
		TotalDistance: math.Round(totalDistance),
		TotalTime:     totalTime,
		Legs:          legs,
	}
}

func rngFor(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func seedFromCoordinate(lat, lng float64) int64 {
	return seedFromText(geohash.Encode(lat, lng))
}

func seedFromText(text string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	return int64(h.Sum64())
}

func seedTag(text string) string {
	return fmt.Sprintf("%x", uint64(seedFromText(text))&0xffffff)
}
