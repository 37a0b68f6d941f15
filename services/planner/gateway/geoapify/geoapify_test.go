package geoapify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const searchResponse = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"properties": {
				"place_id": "p1",
				"name": "Zion National Park",
				"formatted": "Zion National Park, Springdale, UT, United States",
				"place_type": "park",
				"categories": ["national_park", "leisure"],
				"lat": 37.2982,
				"lon": -113.0263
			},
			"geometry": {"type": "Point", "coordinates": [-113.0263, 37.2982]}
		},
		{
			"type": "Feature",
			"properties": {
				"place_id": "p2",
				"formatted": "Springdale, UT, United States",
				"place_type": "city"
			},
			"geometry": {"type": "Point", "coordinates": [-113.0189, 37.1889]}
		}
	]
}`

func TestSearchPlaces_ConvertsLonIntoLng(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/search", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(searchResponse))
	}))
	defer server.Close()

	gw := NewGateway(server.URL, "test-key", 5*time.Second)

	results, err := gw.SearchPlaces(context.Background(), "zion", nil)
	require.NoError(t, err)

	assert.Equal(t, "zion", gotQuery.Get("text"))
	assert.Equal(t, "test-key", gotQuery.Get("apiKey"))
	assert.Equal(t, "geojson", gotQuery.Get("format"))
	assert.Equal(t, "10", gotQuery.Get("limit"))

	require.Len(t, results, 2)
	park := results[0]
	assert.Equal(t, "p1", park.ID)
	assert.Equal(t, "Zion National Park", park.Name)
	assert.Equal(t, 37.2982, park.Lat)
	assert.Equal(t, -113.0263, park.Lng, "provider lon must land in Lng")
	assert.Equal(t, "park", park.Type)
	assert.Equal(t, []string{"national_park", "leisure"}, park.Categories)

	town := results[1]
	assert.Equal(t, "Springdale", town.Name, "name falls back to the first formatted segment")
}

func TestSearchPlaces_BiasAndFilters(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"type":"FeatureCollection","features":[]}`))
	}))
	defer server.Close()

	gw := NewGateway(server.URL, "test-key", 5*time.Second)

	opts := &SearchOptions{
		Limit:       5,
		Bias:        &Bias{Lat: 37.3, Lon: -113.0},
		CountryCode: "us",
		BBox:        &BBox{MinLon: -114, MinLat: 36, MaxLon: -112, MaxLat: 38},
	}
	results, err := gw.SearchPlaces(context.Background(), "zion", opts)
	require.NoError(t, err)
	assert.Empty(t, results)

	assert.Equal(t, "5", gotQuery.Get("limit"))
	assert.Equal(t, "proximity:-113,37.3", gotQuery.Get("bias"), "bias is lon,lat order")
	assert.Equal(t, []string{"countrycode:us", "rect:-114,36,-112,38"}, gotQuery["filter"])
}

func TestSearchPlaces_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	gw := NewGateway(server.URL, "bad-key", 5*time.Second)

	_, err := gw.SearchPlaces(context.Background(), "zion", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "geoapify api error: 401")
}

func TestReverseGeocode(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/reverse", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(searchResponse))
	}))
	defer server.Close()

	gw := NewGateway(server.URL, "test-key", 5*time.Second)

	results, err := gw.ReverseGeocode(context.Background(), 37.2982, -113.0263)
	require.NoError(t, err)
	assert.Equal(t, "37.2982", gotQuery.Get("lat"))
	assert.Equal(t, "-113.0263", gotQuery.Get("lon"))
	assert.Len(t, results, 2)
}

func TestStaticMapURL(t *testing.T) {
	gw := NewGateway("https://maps.example.com/v1", "test-key", 5*time.Second)

	rawURL := gw.StaticMapURL(StaticMapRequest{
		CenterLat: 37.3,
		CenterLon: -113.0,
		Zoom:      9,
		Width:     600,
		Height:    400,
		Markers: []Marker{
			{Lat: 37.2982, Lon: -113.0263, Text: "Zion"},
			{Lat: 37.1889, Lon: -113.0189, Color: "blue", Size: MarkerSmall},
		},
	})

	parsed, err := url.Parse(rawURL)
	require.NoError(t, err)
	assert.Equal(t, "/v1/staticmap", parsed.Path)

	query := parsed.Query()
	assert.Equal(t, "osm-carto", query.Get("style"), "style defaults when unset")
	assert.Equal(t, "lonlat:-113,37.3", query.Get("center"))
	assert.Equal(t, "9", query.Get("zoom"))
	assert.Equal(t, "test-key", query.Get("apiKey"))

	markers := query["marker"]
	require.Len(t, markers, 2)
	assert.Equal(t, "lonlat:-113.0263,37.2982;red;medium;text:Zion", markers[0])
	assert.Equal(t, "lonlat:-113.0189,37.1889;blue;small", markers[1])
}
