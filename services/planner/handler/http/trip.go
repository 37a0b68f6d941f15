package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wayfarer-labs/wayfarer/internal/pkg/models"
	"github.com/wayfarer-labs/wayfarer/internal/utils"
	"github.com/wayfarer-labs/wayfarer/services/planner/store"
)

// TripHandler exposes the trip store over HTTP. Every response carries a
// fresh state snapshot so the caller never observes a partially applied
// mutation.
type TripHandler struct {
	store *store.Store
}

// NewTripHandler creates a new trip handler.
func NewTripHandler(tripStore *store.Store) *TripHandler {
	return &TripHandler{store: tripStore}
}

// ListTrips loads all trips and returns the resulting snapshot.
func (h *TripHandler) ListTrips(c echo.Context) error {
	h.store.LoadTrips(c.Request().Context())

	snap := h.store.Snapshot()
	if snap.Error != "" {
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, snap.Error)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", snap)
}

// State returns the current snapshot without touching the network.
func (h *TripHandler) State(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "State retrieved successfully", h.store.Snapshot())
}

// CreateTrip creates a trip from the posted draft and makes it current.
func (h *TripHandler) CreateTrip(c echo.Context) error {
	var draft models.TripDraft
	if err := c.Bind(&draft); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trip, err := h.store.CreateTrip(c.Request().Context(), &draft)
	if err != nil {
		if errors.Is(err, store.ErrNameRequired) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip created successfully", trip)
}

// SelectTrip switches the current trip to the one with the given id. The
// trip must already be in the loaded list.
func (h *TripHandler) SelectTrip(c echo.Context) error {
	tripID := c.Param("id")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	snap := h.store.Snapshot()
	for i := range snap.Trips {
		if snap.Trips[i].ID == tripID {
			h.store.SetCurrentTrip(&snap.Trips[i])
			return utils.SuccessResponse(c, http.StatusOK, "Trip selected successfully", snap.Trips[i])
		}
	}
	return utils.NotFoundResponse(c, "Trip not found")
}

// UpdateTrip applies the posted draft to an existing trip.
func (h *TripHandler) UpdateTrip(c echo.Context) error {
	tripID := c.Param("id")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var draft models.TripDraft
	if err := c.Bind(&draft); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	trip, err := h.store.UpdateTrip(c.Request().Context(), tripID, &draft)
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip updated successfully", trip)
}

// DeleteTrip removes a trip remotely and from the local list.
func (h *TripHandler) DeleteTrip(c echo.Context) error {
	tripID := c.Param("id")
	if tripID == "" {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	if err := h.store.DeleteTrip(c.Request().Context(), tripID); err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Trip deleted successfully", nil)
}

// UpdateRouteType changes the current trip's routing preference. Local
// only, nothing is persisted remotely.
func (h *TripHandler) UpdateRouteType(c echo.Context) error {
	var req struct {
		RouteType models.RouteType `json:"route_type"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	switch req.RouteType {
	case models.RouteTypeFastest, models.RouteTypeScenic, models.RouteTypeCustom:
	default:
		return utils.BadRequestResponse(c, "Invalid route type")
	}

	h.store.UpdateRouteType(req.RouteType)
	return utils.SuccessResponse(c, http.StatusOK, "Route type updated successfully", h.store.CurrentTrip())
}

// AddStop appends a stop to the current trip.
func (h *TripHandler) AddStop(c echo.Context) error {
	var draft models.StopDraft
	if err := c.Bind(&draft); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	h.store.AddStop(c.Request().Context(), &draft)

	snap := h.store.Snapshot()
	if snap.Error != "" {
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, snap.Error)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stop added successfully", snap.CurrentTrip)
}

// RemoveStop deletes a stop from the current trip.
func (h *TripHandler) RemoveStop(c echo.Context) error {
	stopID := c.Param("stopId")
	if stopID == "" {
		return utils.BadRequestResponse(c, "Invalid stop ID")
	}

	h.store.RemoveStop(c.Request().Context(), stopID)

	snap := h.store.Snapshot()
	if snap.Error != "" {
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, snap.Error)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stop removed successfully", snap.CurrentTrip)
}

// ReorderStops replaces the current trip's stop order with the posted list.
func (h *TripHandler) ReorderStops(c echo.Context) error {
	var req struct {
		Stops []models.Stop `json:"stops"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	h.store.ReorderStops(c.Request().Context(), req.Stops)

	snap := h.store.Snapshot()
	if snap.Error != "" {
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, snap.Error)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stops reordered successfully", snap.CurrentTrip)
}

// Recommendations loads nearby places around the given coordinate.
func (h *TripHandler) Recommendations(c echo.Context) error {
	lat, err := parseCoordinate(c.QueryParam("lat"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude")
	}
	lng, err := parseCoordinate(c.QueryParam("lng"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude")
	}

	h.store.LoadRecommendations(c.Request().Context(), lat, lng)

	snap := h.store.Snapshot()
	if snap.Error != "" {
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, snap.Error)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Recommendations retrieved successfully", snap.Recommendations)
}

// Weather loads forecasts for every geocoded stop of the current trip.
func (h *TripHandler) Weather(c echo.Context) error {
	h.store.LoadWeatherForecasts(c.Request().Context())

	snap := h.store.Snapshot()
	if snap.Error != "" {
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, snap.Error)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Weather retrieved successfully", snap.WeatherForecasts)
}

// parseCoordinate reads an optional coordinate query parameter. An empty
// value yields nil, which downstream treats as "coordinate absent".
func parseCoordinate(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
