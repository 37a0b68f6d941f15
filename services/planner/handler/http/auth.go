package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wayfarer-labs/wayfarer/internal/pkg/logger"
	"github.com/wayfarer-labs/wayfarer/internal/pkg/models"
	"github.com/wayfarer-labs/wayfarer/internal/utils"
	"github.com/wayfarer-labs/wayfarer/services/planner"
)

// AuthHandler handles HTTP requests for the authentication lifecycle.
type AuthHandler struct {
	backend planner.TripBackend
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(backend planner.TripBackend) *AuthHandler {
	return &AuthHandler{backend: backend}
}

// Register handles account registration requests.
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.backend.Register(c.Request().Context(), &req)
	if err != nil {
		logger.Warn("Registration failed",
			logger.Err(err),
			logger.String("email", req.Email),
		)
		return utils.ErrorResponseHandler(c, http.StatusBadGateway, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Registered successfully", resp.User)
}

// Login handles login requests; tokens are stored locally on success.
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.backend.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		logger.Warn("Login failed",
			logger.Err(err),
			logger.String("email", req.Email),
		)
		return utils.UnauthorizedResponse(c, err.Error())
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", resp.User)
}

// Logout clears local credentials after best-effort server-side
// invalidation.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.backend.Logout(c.Request().Context()); err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to log out")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// Me returns the authenticated account.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.backend.CurrentUser(c.Request().Context())
	if err != nil {
		return utils.UnauthorizedResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, http.StatusOK, "User retrieved successfully", user)
}
