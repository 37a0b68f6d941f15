// Package geoapify wraps the Geoapify geocoding and static-map API.
package geoapify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	httpclient "github.com/wayfarer-labs/wayfarer/internal/pkg/http"
	"github.com/wayfarer-labs/wayfarer/internal/pkg/models"
)

const defaultStyle = "osm-carto"

// Gateway is an HTTP client for the Geoapify API.
type Gateway struct {
	client *httpclient.Client
	apiKey string
}

// NewGateway creates a new Geoapify gateway.
func NewGateway(baseURL, apiKey string, timeout time.Duration) *Gateway {
	return &Gateway{
		client: httpclient.NewClient(strings.TrimSuffix(baseURL, "/"), timeout),
		apiKey: apiKey,
	}
}

// SearchPlaces performs a forward geocoding search and converts the results
// into the application's SearchResult shape.
func (g *Gateway) SearchPlaces(ctx context.Context, query string, opts *SearchOptions) ([]models.SearchResult, error) {
	limit := 10
	if opts != nil && opts.Limit > 0 {
		limit = opts.Limit
	}

	params := url.Values{}
	params.Set("text", query)
	params.Set("apiKey", g.apiKey)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("format", "geojson")

	if opts != nil {
		if opts.Bias != nil {
			params.Add("bias", fmt.Sprintf("proximity:%g,%g", opts.Bias.Lon, opts.Bias.Lat))
		}
		if opts.CountryCode != "" {
			params.Add("filter", "countrycode:"+opts.CountryCode)
		}
		if opts.BBox != nil {
			params.Add("filter", fmt.Sprintf("rect:%g,%g,%g,%g",
				opts.BBox.MinLon, opts.BBox.MinLat, opts.BBox.MaxLon, opts.BBox.MaxLat))
		}
	}

	collection, err := g.getFeatures(ctx, "/geocode/search", params)
	if err != nil {
		return nil, err
	}

	return convertFeatures(collection.Features), nil
}

// ReverseGeocode resolves a coordinate into place candidates.
func (g *Gateway) ReverseGeocode(ctx context.Context, lat, lon float64) ([]models.SearchResult, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("apiKey", g.apiKey)
	params.Set("format", "geojson")

	collection, err := g.getFeatures(ctx, "/geocode/reverse", params)
	if err != nil {
		return nil, err
	}

	return convertFeatures(collection.Features), nil
}

// StaticMapURL builds the URL of a static map image with overlaid markers.
// No network call is made.
func (g *Gateway) StaticMapURL(req StaticMapRequest) string {
	style := req.Style
	if style == "" {
		style = defaultStyle
	}

	params := url.Values{}
	params.Set("style", style)
	params.Set("width", strconv.Itoa(req.Width))
	params.Set("height", strconv.Itoa(req.Height))
	params.Set("center", fmt.Sprintf("lonlat:%g,%g", req.CenterLon, req.CenterLat))
	params.Set("zoom", strconv.Itoa(req.Zoom))
	params.Set("apiKey", g.apiKey)

	for _, marker := range req.Markers {
		color := marker.Color
		if color == "" {
			color = "red"
		}
		size := marker.Size
		if size == "" {
			size = MarkerMedium
		}
		parts := []string{
			fmt.Sprintf("lonlat:%g,%g", marker.Lon, marker.Lat),
			color,
			string(size),
		}
		if marker.Text != "" {
			parts = append(parts, "text:"+url.QueryEscape(marker.Text))
		}
		params.Add("marker", strings.Join(parts, ";"))
	}

	return g.client.BaseURL + "/staticmap?" + params.Encode()
}

func (g *Gateway) getFeatures(ctx context.Context, path string, params url.Values) (*FeatureCollection, error) {
	reqURL := g.client.BaseURL + path + "?" + params.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	resp, err := g.client.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send geocoding request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geoapify api error: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	var collection FeatureCollection
	if err := json.Unmarshal(respBody, &collection); err != nil {
		return nil, fmt.Errorf("failed to parse geocoding response: %w", err)
	}

	return &collection, nil
}

// convertFeatures maps provider features into SearchResults. The provider
// geometry is [lon, lat]; the application convention is lat/lng, so the
// longitude lands in Lng.
func convertFeatures(features []Feature) []models.SearchResult {
	results := make([]models.SearchResult, 0, len(features))
	for _, feature := range features {
		props := feature.Properties
		lon, lat := feature.Geometry.Coordinates[0], feature.Geometry.Coordinates[1]

		name := props.Name
		if name == "" {
			name = strings.SplitN(props.Formatted, ",", 2)[0]
		}

		results = append(results, models.SearchResult{
			ID:         props.PlaceID,
			Name:       name,
			Address:    props.Formatted,
			Lat:        lat,
			Lng:        lon,
			Type:       props.PlaceType,
			Categories: props.Categories,
		})
	}
	return results
}
