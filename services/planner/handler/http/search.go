package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wayfarer-labs/wayfarer/internal/pkg/logger"
	"github.com/wayfarer-labs/wayfarer/internal/utils"
	"github.com/wayfarer-labs/wayfarer/services/planner"
	"github.com/wayfarer-labs/wayfarer/services/planner/gateway/geoapify"
	"github.com/wayfarer-labs/wayfarer/services/planner/search"
)

// SearchHandler handles place-search requests. Each request runs inside its
// own search session, so concurrent searches never share result state.
type SearchHandler struct {
	geocoder planner.Geocoder
	backend  planner.TripBackend
	logger   *logger.ZapLogger
}

// NewSearchHandler creates a new search handler.
func NewSearchHandler(geocoder planner.Geocoder, backend planner.TripBackend, zapLogger *logger.ZapLogger) *SearchHandler {
	return &SearchHandler{
		geocoder: geocoder,
		backend:  backend,
		logger:   zapLogger,
	}
}

// SearchPlaces resolves a text query through the provider chain.
func (h *SearchHandler) SearchPlaces(c echo.Context) error {
	session := search.NewSession(h.geocoder, h.backend, h.logger)
	session.SearchPlaces(c.Request().Context(), c.QueryParam("q"))

	snap := session.Snapshot()
	if snap.Error != "" {
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, snap.Error)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Search completed successfully", snap.Results)
}

// ReverseGeocode resolves a coordinate into place candidates.
func (h *SearchHandler) ReverseGeocode(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid latitude")
	}
	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid longitude")
	}

	results, err := h.geocoder.ReverseGeocode(c.Request().Context(), lat, lon)
	if err != nil {
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "Reverse geocode completed successfully", results)
}

// StaticMap builds a static map image URL for the posted markers. Pure URL
// construction, no provider call is made.
func (h *SearchHandler) StaticMap(c echo.Context) error {
	var req geoapify.StaticMapRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	url := h.geocoder.StaticMapURL(req)
	return utils.SuccessResponse(c, http.StatusOK, "Static map URL built successfully", map[string]string{"url": url})
}
