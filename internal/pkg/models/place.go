package models

// SearchResult is a transient candidate location produced by a place search.
// It is never persisted; it lives inside a search session until it is either
// converted into a stop or cleared.
type SearchResult struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	Type       string   `json:"type"`
	Rating     *float64 `json:"rating,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// PlaceResult is one entry of the backend places payload, shared by the
// search and recommendations resources.
type PlaceResult struct {
	PlaceID        string   `json:"place_id"`
	Name           string   `json:"name"`
	Address        string   `json:"address,omitempty"`
	Latitude       float64  `json:"latitude"`
	Longitude      float64  `json:"longitude"`
	Rating         *float64 `json:"rating,omitempty"`
	PriceLevel     *int     `json:"price_level,omitempty"`
	Types          []string `json:"types"`
	BusinessStatus string   `json:"business_status,omitempty"`
}

// PlacesSearchResponse is the backend payload for places/search and
// recommendations queries.
type PlacesSearchResponse struct {
	Results []PlaceResult `json:"results"`
}
