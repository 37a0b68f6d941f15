package search

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-labs/wayfarer/internal/pkg/logger"
	"github.com/wayfarer-labs/wayfarer/internal/pkg/models"
	"github.com/wayfarer-labs/wayfarer/services/planner/mocks"
)

func newTestLogger(t *testing.T) *logger.ZapLogger {
	zapLogger, err := logger.NewZapLogger(logger.ConsoleLogger, "error", "")
	require.NoError(t, err)
	return zapLogger
}

func TestSearchPlaces_BlankQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: a blank query must not touch any provider.
	mockGeocoder := mocks.NewMockGeocoder(ctrl)
	mockBackend := mocks.NewMockTripBackend(ctrl)

	session := NewSession(mockGeocoder, mockBackend, newTestLogger(t))

	for _, query := range []string{"", "   "} {
		session.SearchPlaces(context.Background(), query)
		snap := session.Snapshot()
		assert.Empty(t, snap.Results)
		assert.Empty(t, snap.Error)
		assert.False(t, snap.IsLoading)
	}
}

func TestSearchPlaces_GeocoderFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeocoder := mocks.NewMockGeocoder(ctrl)
	mockBackend := mocks.NewMockTripBackend(ctrl)

	mockGeocoder.EXPECT().
		SearchPlaces(gomock.Any(), "moab", gomock.Nil()).
		Return([]models.SearchResult{{ID: "g1", Name: "Moab"}}, nil)
	// No backend expectation: the first provider succeeded.

	session := NewSession(mockGeocoder, mockBackend, newTestLogger(t))
	session.SearchPlaces(context.Background(), "moab")

	snap := session.Snapshot()
	require.Len(t, snap.Results, 1)
	assert.Equal(t, "g1", snap.Results[0].ID)
	assert.Empty(t, snap.Error)
	assert.False(t, snap.IsLoading)
}

func TestSearchPlaces_FallsBackToBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeocoder := mocks.NewMockGeocoder(ctrl)
	mockBackend := mocks.NewMockTripBackend(ctrl)

	mockGeocoder.EXPECT().
		SearchPlaces(gomock.Any(), "moab", gomock.Nil()).
		Return(nil, errors.New("quota exceeded"))
	mockBackend.EXPECT().
		SearchPlaces(gomock.Any(), "moab").
		Return(&models.PlacesSearchResponse{Results: []models.PlaceResult{
			{PlaceID: "b1", Name: "Moab", Latitude: 38.57, Longitude: -109.55, Types: []string{"locality", "political"}},
			{PlaceID: "b2", Name: "Untyped Spot", Latitude: 38.6, Longitude: -109.6},
		}}, nil)

	session := NewSession(mockGeocoder, mockBackend, newTestLogger(t))
	session.SearchPlaces(context.Background(), "moab")

	snap := session.Snapshot()
	require.Len(t, snap.Results, 2)
	result := snap.Results[0]
	assert.Equal(t, "b1", result.ID)
	assert.Equal(t, 38.57, result.Lat)
	assert.Equal(t, -109.55, result.Lng)
	assert.Equal(t, "locality", result.Type, "first category becomes the result type")
	assert.Equal(t, "establishment", snap.Results[1].Type, "category-less places default to establishment")
	assert.Empty(t, snap.Error)
}

func TestSearchPlaces_AllProvidersFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeocoder := mocks.NewMockGeocoder(ctrl)
	mockBackend := mocks.NewMockTripBackend(ctrl)

	mockGeocoder.EXPECT().
		SearchPlaces(gomock.Any(), "moab", gomock.Nil()).
		Return(nil, errors.New("quota exceeded"))
	mockBackend.EXPECT().
		SearchPlaces(gomock.Any(), "moab").
		Return(nil, errors.New("backend down"))

	session := NewSession(mockGeocoder, mockBackend, newTestLogger(t))
	session.SearchPlaces(context.Background(), "moab")

	snap := session.Snapshot()
	assert.Empty(t, snap.Results)
	assert.Equal(t, "Search failed. Please try again.", snap.Error)
	assert.False(t, snap.IsLoading)
}

func TestSearchPlaces_NewQueryClearsPriorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeocoder := mocks.NewMockGeocoder(ctrl)
	mockBackend := mocks.NewMockTripBackend(ctrl)

	mockGeocoder.EXPECT().
		SearchPlaces(gomock.Any(), "bad", gomock.Nil()).
		Return(nil, errors.New("quota exceeded"))
	mockBackend.EXPECT().
		SearchPlaces(gomock.Any(), "bad").
		Return(nil, errors.New("backend down"))
	mockGeocoder.EXPECT().
		SearchPlaces(gomock.Any(), "good", gomock.Nil()).
		Return([]models.SearchResult{{ID: "g1"}}, nil)

	session := NewSession(mockGeocoder, mockBackend, newTestLogger(t))
	session.SearchPlaces(context.Background(), "bad")
	session.SearchPlaces(context.Background(), "good")

	snap := session.Snapshot()
	assert.Empty(t, snap.Error)
	assert.Len(t, snap.Results, 1)
}

func TestClearResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeocoder := mocks.NewMockGeocoder(ctrl)
	mockBackend := mocks.NewMockTripBackend(ctrl)

	mockGeocoder.EXPECT().
		SearchPlaces(gomock.Any(), "bad", gomock.Nil()).
		Return(nil, errors.New("quota exceeded"))
	mockBackend.EXPECT().
		SearchPlaces(gomock.Any(), "bad").
		Return(nil, errors.New("backend down"))

	session := NewSession(mockGeocoder, mockBackend, newTestLogger(t))
	session.SearchPlaces(context.Background(), "bad")
	session.ClearResults()

	snap := session.Snapshot()
	assert.Empty(t, snap.Results)
	assert.Empty(t, snap.Error, "clearResults also clears the error slot")
}

func TestSessions_DoNotShareState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockGeocoder := mocks.NewMockGeocoder(ctrl)
	mockBackend := mocks.NewMockTripBackend(ctrl)

	mockGeocoder.EXPECT().
		SearchPlaces(gomock.Any(), "moab", gomock.Nil()).
		Return([]models.SearchResult{{ID: "g1"}}, nil)

	header := NewSession(mockGeocoder, mockBackend, newTestLogger(t))
	panel := NewSession(mockGeocoder, mockBackend, newTestLogger(t))

	header.SearchPlaces(context.Background(), "moab")

	assert.Len(t, header.Results(), 1)
	assert.Empty(t, panel.Results())
}
