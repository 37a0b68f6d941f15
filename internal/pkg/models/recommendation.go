package models

import "time"

// RecommendationType classifies a recommended place.
type RecommendationType string

const (
	RecommendationAttraction    RecommendationType = "attraction"
	RecommendationRestaurant    RecommendationType = "restaurant"
	RecommendationAccommodation RecommendationType = "accommodation"
)

// Recommendation is a suggested place near a reference coordinate. The list
// held by the trip store is regenerated wholesale on every load.
type Recommendation struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Type         RecommendationType `json:"type"`
	Rating       float64            `json:"rating"`
	Distance     string             `json:"distance"` // human readable, e.g. "2.3 mi"
	Duration     string             `json:"duration"` // human readable, e.g. "1-2 hrs"
	Description  string             `json:"description"`
	ImageURL     string             `json:"image_url"`
	Tags         []string           `json:"tags"`
	Lat          float64            `json:"lat"`
	Lng          float64            `json:"lng"`
	PriceLevel   *int               `json:"price_level,omitempty"`
	OpeningHours []string           `json:"opening_hours,omitempty"`
}

// WeatherForecast is a per-stop forecast. One entry is produced for every
// coordinate-bearing stop, in stop order; the date is offset by the stop's
// position in the itinerary.
type WeatherForecast struct {
	Location    string    `json:"location"`
	Temperature float64   `json:"temperature"` // fahrenheit
	Condition   string    `json:"condition"`
	Icon        string    `json:"icon,omitempty"`
	Humidity    *float64  `json:"humidity,omitempty"`
	WindSpeed   *float64  `json:"wind_speed,omitempty"` // mph
	Date        time.Time `json:"date"`
}

// WeatherResponse is the backend payload for weather/current.
type WeatherResponse struct {
	Location string         `json:"location"`
	Current  CurrentWeather `json:"current"`
}

// CurrentWeather holds the observed conditions inside a WeatherResponse.
type CurrentWeather struct {
	TempF     float64          `json:"temp_f"`
	Condition WeatherCondition `json:"condition"`
	Humidity  float64          `json:"humidity"`
	WindMPH   float64          `json:"wind_mph"`
}

// WeatherCondition is the textual condition inside a weather payload.
type WeatherCondition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}
