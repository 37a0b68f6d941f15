package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wayfarer-labs/wayfarer/internal/pkg/logger"
	"github.com/wayfarer-labs/wayfarer/internal/pkg/models"
)

// Register creates an account and stores the issued credential pair.
func (g *Gateway) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := g.doJSON(ctx, http.MethodPost, "/auth/register/", req, &resp); err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	if err := g.storeTokens(resp.Tokens); err != nil {
		return nil, err
	}

	return &resp, nil
}

// Login authenticates and stores the issued credential pair.
func (g *Gateway) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	payload := &models.LoginRequest{Email: email, Password: password}
	if err := g.doJSON(ctx, http.MethodPost, "/auth/login/", payload, &resp); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if err := g.storeTokens(resp.Tokens); err != nil {
		return nil, err
	}

	return &resp, nil
}

// Logout invalidates the refresh credential server-side on a best-effort
// basis, then always clears local storage.
func (g *Gateway) Logout(ctx context.Context) error {
	if refresh := g.tokens.RefreshToken(); refresh != "" {
		payload := map[string]string{"refresh_token": refresh}
		if err := g.doJSON(ctx, http.MethodPost, "/auth/logout/", payload, nil); err != nil {
			g.logger.Warn("Server-side logout failed, clearing local credentials anyway", logger.Err(err))
		}
	}

	return g.tokens.Clear()
}

// CurrentUser returns the authenticated account.
func (g *Gateway) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := g.doJSON(ctx, http.MethodGet, "/auth/me/", nil, &user); err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return &user, nil
}

func (g *Gateway) storeTokens(tokens models.AuthTokens) error {
	if tokens.Access == "" {
		return nil
	}
	if err := g.tokens.SetTokens(tokens.Access, tokens.Refresh); err != nil {
		return fmt.Errorf("failed to store credentials: %w", err)
	}
	return nil
}
