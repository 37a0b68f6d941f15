// Package search holds the ephemeral place-search state for a single UI
// surface. Each session owns its own result list; concurrent sessions
// (header search, panel search) never share state.
package search

import (
	"context"
	"strings"
	"sync"

	"github.com/wayfarer-labs/wayfarer/internal/pkg/logger"
	"github.com/wayfarer-labs/wayfarer/internal/pkg/models"
	"github.com/wayfarer-labs/wayfarer/services/planner"
)

// provider is one strategy in the ordered fallback chain. Providers are
// tried in sequence and exactly one provider's results are used per query,
// never a merge.
type provider struct {
	name string
	run  func(ctx context.Context, query string) ([]models.SearchResult, error)
}

// attempt records how a single provider call finished, so the fallback
// order stays auditable in logs and tests.
type attempt struct {
	provider string
	err      error
}

// Snapshot is a point-in-time copy of the session state.
type Snapshot struct {
	Results   []models.SearchResult `json:"results"`
	IsLoading bool                  `json:"is_loading"`
	Error     string                `json:"error,omitempty"`
}

// Session drives one place-name query at a time through the provider chain.
type Session struct {
	providers []provider
	logger    *logger.ZapLogger

	mu        sync.RWMutex
	results   []models.SearchResult
	loading   bool
	lastError string
}

// NewSession builds a session that queries the geocoding provider first and
// falls back to the trip backend's place search.
func NewSession(geocoder planner.Geocoder, backend planner.TripBackend, zapLogger *logger.ZapLogger) *Session {
	return &Session{
		providers: []provider{
			{
				name: "geoapify",
				run: func(ctx context.Context, query string) ([]models.SearchResult, error) {
					return geocoder.SearchPlaces(ctx, query, nil)
				},
			},
			{
				name: "backend",
				run: func(ctx context.Context, query string) ([]models.SearchResult, error) {
					resp, err := backend.SearchPlaces(ctx, query)
					if err != nil {
						return nil, err
					}
					return placesToSearchResults(resp), nil
				},
			},
		},
		logger: zapLogger,
	}
}

// SearchPlaces resolves a query against the provider chain. A blank query
// clears the result list without touching the network and is not an error.
// When every provider fails, the result list is cleared and an error is
// recorded.
func (s *Session) SearchPlaces(ctx context.Context, query string) {
	if strings.TrimSpace(query) == "" {
		s.mu.Lock()
		s.results = nil
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.loading = true
	s.lastError = ""
	s.mu.Unlock()

	attempts := make([]attempt, 0, len(s.providers))
	for _, p := range s.providers {
		results, err := p.run(ctx, query)
		if err != nil {
			attempts = append(attempts, attempt{provider: p.name, err: err})
			s.logger.Warn("Place search provider failed",
				logger.String("provider", p.name),
				logger.Err(err))
			continue
		}

		s.mu.Lock()
		s.loading = false
		s.results = results
		s.mu.Unlock()
		return
	}

	names := make([]string, len(attempts))
	for i, a := range attempts {
		names[i] = a.provider
	}
	s.logger.Error("Place search exhausted all providers",
		logger.Strings("providers", names))

	s.mu.Lock()
	s.loading = false
	s.results = nil
	s.lastError = "Search failed. Please try again."
	s.mu.Unlock()
}

// ClearResults drops the result list and any recorded error.
func (s *Session) ClearResults() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = nil
	s.lastError = ""
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Results:   append([]models.SearchResult(nil), s.results...),
		IsLoading: s.loading,
		Error:     s.lastError,
	}
}

// Results returns a copy of the current result list.
func (s *Session) Results() []models.SearchResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.SearchResult(nil), s.results...)
}

// placesToSearchResults adapts the backend places payload into the
// session's result shape.
func placesToSearchResults(resp *models.PlacesSearchResponse) []models.SearchResult {
	if resp == nil {
		return nil
	}
	results := make([]models.SearchResult, 0, len(resp.Results))
	for _, place := range resp.Results {
		kind := "establishment"
		if len(place.Types) > 0 {
			kind = place.Types[0]
		}
		results = append(results, models.SearchResult{
			ID:         place.PlaceID,
			Name:       place.Name,
			Address:    place.Address,
			Lat:        place.Latitude,
			Lng:        place.Longitude,
			Type:       kind,
			Rating:     place.Rating,
			Categories: place.Types,
		})
	}
	return results
}
