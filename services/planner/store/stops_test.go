package store

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfarer-labs/wayfarer/internal/pkg/models"
	"github.com/wayfarer-labs/wayfarer/services/planner/mocks"
)

func coord(v float64) *float64 { return &v }

// loadSingleTrip seeds the store with one trip through the public API.
func loadSingleTrip(t *testing.T, mockBackend *mocks.MockTripBackend, trip models.Trip) *Store {
	t.Helper()
	mockBackend.EXPECT().
		GetTrips(gomock.Any()).
		Return([]models.Trip{trip}, nil)

	s := New(mockBackend, defaultFuel(), newTestLogger(t))
	s.LoadTrips(context.Background())
	return s
}

func TestAddStop_NoCurrentTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No expectations: without a current trip nothing may reach the backend.
	mockBackend := mocks.NewMockTripBackend(ctrl)
	s := New(mockBackend, defaultFuel(), newTestLogger(t))

	s.AddStop(context.Background(), &models.StopDraft{Name: "Nowhere"})
	assert.Nil(t, s.CurrentTrip())
}

func TestAddStop_NilDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No AddStop expectation: a nil draft never reaches the backend.
	mockBackend := mocks.NewMockTripBackend(ctrl)
	s := loadSingleTrip(t, mockBackend, models.Trip{ID: "t1"})

	s.AddStop(context.Background(), nil)

	trip := s.CurrentTrip()
	require.NotNil(t, trip)
	assert.Empty(t, trip.Stops)
}

func TestAddStop_DefaultsTypeAndAppends(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := mocks.NewMockTripBackend(ctrl)
	mockBackend.EXPECT().
		AddStop(gomock.Any(), "t1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, draft *models.StopDraft) (*models.Stop, error) {
			assert.Equal(t, models.StopTypeWaypoint, draft.Type)
			return &models.Stop{ID: "s2", Name: draft.Name, Type: draft.Type}, nil
		})

	s := loadSingleTrip(t, mockBackend, models.Trip{
		ID:    "t1",
		Stops: []models.Stop{{ID: "s1", Name: "Start"}},
	})

	s.AddStop(context.Background(), &models.StopDraft{Name: "Diner"})

	trip := s.CurrentTrip()
	require.NotNil(t, trip)
	require.Len(t, trip.Stops, 2)
	assert.Equal(t, "s2", trip.Stops[1].ID, "server-returned stop is appended")
	assert.Empty(t, s.Snapshot().Error)
}

func TestAddStop_Error_NoOptimisticInsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := mocks.NewMockTripBackend(ctrl)
	mockBackend.EXPECT().
		AddStop(gomock.Any(), "t1", gomock.Any()).
		Return(nil, errors.New("stop rejected"))

	s := loadSingleTrip(t, mockBackend, models.Trip{
		ID:    "t1",
		Stops: []models.Stop{{ID: "s1"}},
	})

	s.AddStop(context.Background(), &models.StopDraft{Name: "Diner"})

	trip := s.CurrentTrip()
	require.NotNil(t, trip)
	assert.Len(t, trip.Stops, 1, "no optimistic insertion on failure")
	assert.Equal(t, "stop rejected", s.Snapshot().Error)
}

func TestAddStop_TriggersRouteRecalculation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := mocks.NewMockTripBackend(ctrl)
	mockBackend.EXPECT().
		AddStop(gomock.Any(), "t1", gomock.Any()).
		Return(&models.Stop{ID: "s2", Name: "LA", Lat: coord(34), Lng: coord(-118)}, nil)
	mockBackend.EXPECT().
		CalculateRoute(gomock.Any(), []models.Waypoint{{Lat: 40, Lng: -74}, {Lat: 34, Lng: -118}}).
		Return(&models.RouteStats{TotalDistance: 300, TotalTime: 5}, nil)

	s := loadSingleTrip(t, mockBackend, models.Trip{
		ID:    "t1",
		Stops: []models.Stop{{ID: "s1", Name: "NYC", Lat: coord(40), Lng: coord(-74)}},
	})

	s.AddStop(context.Background(), &models.StopDraft{Name: "LA", Lat: coord(34), Lng: coord(-118)})

	trip := s.CurrentTrip()
	require.NotNil(t, trip)
	assert.Equal(t, 300.0, trip.TotalDistance)
	assert.Equal(t, 5.0, trip.TotalTime)
	assert.InDelta(t, 42.0, trip.EstimatedFuelCost, 1e-9, "300mi / 25mpg * $3.50")
}

func TestRemoveStop_AbsentID_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := mocks.NewMockTripBackend(ctrl)
	mockBackend.EXPECT().
		RemoveStop(gomock.Any(), "t1", "missing").
		Return(nil)

	s := loadSingleTrip(t, mockBackend, models.Trip{
		ID:    "t1",
		Stops: []models.Stop{{ID: "s1"}, {ID: "s2"}},
	})

	s.RemoveStop(context.Background(), "missing")

	trip := s.CurrentTrip()
	require.NotNil(t, trip)
	require.Len(t, trip.Stops, 2)
	assert.Equal(t, "s1", trip.Stops[0].ID)
	assert.Equal(t, "s2", trip.Stops[1].ID)
}

func TestRemoveStop_Error_ListUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := mocks.NewMockTripBackend(ctrl)
	mockBackend.EXPECT().
		RemoveStop(gomock.Any(), "t1", "s1").
		Return(errors.New("not allowed"))

	s := loadSingleTrip(t, mockBackend, models.Trip{
		ID:    "t1",
		Stops: []models.Stop{{ID: "s1"}},
	})

	s.RemoveStop(context.Background(), "s1")

	trip := s.CurrentTrip()
	require.NotNil(t, trip)
	assert.Len(t, trip.Stops, 1)
	assert.Equal(t, "not allowed", s.Snapshot().Error)
}

func TestAddThenRemove_RestoresList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := mocks.NewMockTripBackend(ctrl)
	mockBackend.EXPECT().
		AddStop(gomock.Any(), "t1", gomock.Any()).
		Return(&models.Stop{ID: "s2", Name: "Detour"}, nil)
	mockBackend.EXPECT().
		RemoveStop(gomock.Any(), "t1", "s2").
		Return(nil)

	s := loadSingleTrip(t, mockBackend, models.Trip{
		ID:    "t1",
		Stops: []models.Stop{{ID: "s1", Name: "Start"}},
	})
	before := s.CurrentTrip().Stops

	s.AddStop(context.Background(), &models.StopDraft{Name: "Detour"})
	s.RemoveStop(context.Background(), "s2")

	after := s.CurrentTrip().Stops
	assert.Equal(t, before, after)
}

func TestReorderStops_IdentityPreserved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	a := models.Stop{ID: "a", Name: "A"}
	b := models.Stop{ID: "b", Name: "B"}
	c := models.Stop{ID: "c", Name: "C"}

	mockBackend := mocks.NewMockTripBackend(ctrl)
	mockBackend.EXPECT().
		ReorderStops(gomock.Any(), "t1", []models.StopOrder{
			{ID: "c", Order: 1},
			{ID: "a", Order: 2},
			{ID: "b", Order: 3},
		}).
		Return(nil)

	s := loadSingleTrip(t, mockBackend, models.Trip{
		ID:    "t1",
		Stops: []models.Stop{a, b, c},
	})

	newOrder := []models.Stop{c, a, b}
	s.ReorderStops(context.Background(), newOrder)

	trip := s.CurrentTrip()
	require.NotNil(t, trip)
	assert.Equal(t, newOrder, trip.Stops, "caller ordering is authoritative, no re-sorting")
}

func TestReorderStops_Error_KeepsPriorOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBackend := mocks.NewMockTripBackend(ctrl)
	mockBackend.EXPECT().
		ReorderStops(gomock.Any(), "t1", gomock.Any()).
		Return(errors.New("conflict"))

	s := loadSingleTrip(t, mockBackend, models.Trip{
		ID:    "t1",
		Stops: []models.Stop{{ID: "a"}, {ID: "b"}},
	})

	s.ReorderStops(context.Background(), []models.Stop{{ID: "b"}, {ID: "a"}})

	trip := s.CurrentTrip()
	require.NotNil(t, trip)
	assert.Equal(t, "a", trip.Stops[0].ID)
	assert.Equal(t, "conflict", s.Snapshot().Error)
}
