package handler

import (
	"github.com/labstack/echo/v4"

	httphandler "github.com/wayfarer-labs/wayfarer/services/planner/handler/http"
)

// Handler coordinates the HTTP handlers of the planner service.
type Handler struct {
	authHandler   *httphandler.AuthHandler
	tripHandler   *httphandler.TripHandler
	searchHandler *httphandler.SearchHandler
}

// NewHandler creates and initializes all handlers.
func NewHandler(
	authHandler *httphandler.AuthHandler,
	tripHandler *httphandler.TripHandler,
	searchHandler *httphandler.SearchHandler,
) *Handler {
	return &Handler{
		authHandler:   authHandler,
		tripHandler:   tripHandler,
		searchHandler: searchHandler,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)
	authGroup.POST("/logout", h.authHandler.Logout)
	authGroup.GET("/me", h.authHandler.Me)

	tripGroup := e.Group("/trips")
	tripGroup.GET("", h.tripHandler.ListTrips)
	tripGroup.POST("", h.tripHandler.CreateTrip)
	tripGroup.GET("/state", h.tripHandler.State)
	tripGroup.POST("/:id/select", h.tripHandler.SelectTrip)
	tripGroup.PATCH("/:id", h.tripHandler.UpdateTrip)
	tripGroup.DELETE("/:id", h.tripHandler.DeleteTrip)
	tripGroup.PUT("/route-type", h.tripHandler.UpdateRouteType)

	tripGroup.POST("/stops", h.tripHandler.AddStop)
	tripGroup.DELETE("/stops/:stopId", h.tripHandler.RemoveStop)
	tripGroup.PUT("/stops/reorder", h.tripHandler.ReorderStops)

	tripGroup.GET("/recommendations", h.tripHandler.Recommendations)
	tripGroup.GET("/weather", h.tripHandler.Weather)

	placeGroup := e.Group("/places")
	placeGroup.GET("/search", h.searchHandler.SearchPlaces)
	placeGroup.GET("/reverse", h.searchHandler.ReverseGeocode)
	placeGroup.POST("/static-map", h.searchHandler.StaticMap)
}
