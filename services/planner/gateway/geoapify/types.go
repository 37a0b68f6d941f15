package geoapify

// Place is the property bag of one geocoding feature as returned by the
// provider. The provider names the longitude field "lon"; conversion into
// the application's SearchResult maps it onto "lng".
type Place struct {
	PlaceID      string   `json:"place_id"`
	Formatted    string   `json:"formatted"`
	Name         string   `json:"name,omitempty"`
	AddressLine1 string   `json:"address_line1,omitempty"`
	AddressLine2 string   `json:"address_line2,omitempty"`
	City         string   `json:"city,omitempty"`
	State        string   `json:"state,omitempty"`
	Country      string   `json:"country,omitempty"`
	Postcode     string   `json:"postcode,omitempty"`
	Lat          float64  `json:"lat"`
	Lon          float64  `json:"lon"`
	PlaceType    string   `json:"place_type"`
	Categories   []string `json:"categories,omitempty"`
}

// Feature is one entry of a geocoding feature collection.
type Feature struct {
	Type       string  `json:"type"`
	Properties Place   `json:"properties"`
	Geometry   Geometry `json:"geometry"`
}

// Geometry carries the feature coordinates as [longitude, latitude].
type Geometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// FeatureCollection is the geojson response shape of the search and reverse
// geocoding endpoints.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Bias prioritizes results near a coordinate.
type Bias struct {
	Lat float64
	Lon float64
}

// BBox is a bounding box filter: min lon, min lat, max lon, max lat.
type BBox struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

// SearchOptions tune a forward geocoding search.
type SearchOptions struct {
	Limit       int
	Bias        *Bias
	CountryCode string
	BBox        *BBox
}

// MarkerSize is the size of a static map marker.
type MarkerSize string

const (
	MarkerSmall  MarkerSize = "small"
	MarkerMedium MarkerSize = "medium"
	MarkerLarge  MarkerSize = "large"
)

// Marker is one overlaid marker on a static map.
type Marker struct {
	Lat   float64    `json:"lat"`
	Lon   float64    `json:"lon"`
	Color string     `json:"color,omitempty"`
	Size  MarkerSize `json:"size,omitempty"`
	Text  string     `json:"text,omitempty"`
}

// StaticMapRequest describes a static map image. Building the URL performs
// no network call.
type StaticMapRequest struct {
	CenterLat float64  `json:"center_lat"`
	CenterLon float64  `json:"center_lon"`
	Zoom      int      `json:"zoom,omitempty"`
	Width     int      `json:"width,omitempty"`
	Height    int      `json:"height,omitempty"`
	Style     string   `json:"style,omitempty"`
	Markers   []Marker `json:"markers,omitempty"`
}
