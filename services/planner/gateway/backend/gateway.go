// Package backend is the typed HTTP client for the trip backend REST API.
// Every request carries the stored bearer credential when one is present.
// Mutation failures propagate to the caller; the derived-data read paths
// degrade to synthesized placeholder responses instead.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wayfarer-labs/wayfarer/internal/pkg/circuitbreaker"
	httpclient "github.com/wayfarer-labs/wayfarer/internal/pkg/http"
	"github.com/wayfarer-labs/wayfarer/internal/pkg/logger"
	"github.com/wayfarer-labs/wayfarer/internal/pkg/models"
	"github.com/wayfarer-labs/wayfarer/internal/pkg/retry"
	"github.com/wayfarer-labs/wayfarer/internal/pkg/tokenstore"
	"github.com/wayfarer-labs/wayfarer/services/planner"
)

// Gateway is an HTTP client for the trip backend.
type Gateway struct {
	client    *httpclient.Client
	tokens    tokenstore.Store
	synthetic planner.SyntheticProvider
	retrier   *retry.Retrier
	breaker   *circuitbreaker.CircuitBreaker
	logger    *logger.ZapLogger
}

// NewGateway creates a new backend gateway. Read paths are retried with
// backoff and guarded by a circuit breaker; once both give up, the synthetic
// provider fills in.
func NewGateway(cfg models.BackendConfig, tokens tokenstore.Store, synth planner.SyntheticProvider, zapLogger *logger.ZapLogger) *Gateway {
	retryConfig := retry.DefaultConfig()
	retryConfig.RetryableFunc = func(err error) bool {
		if apiErr, ok := err.(*APIError); ok {
			return apiErr.Status >= http.StatusInternalServerError
		}
		// Transport and parse failures are worth another attempt
		return true
	}

	return &Gateway{
		client:    httpclient.NewClient(strings.TrimSuffix(cfg.BaseURL, "/"), time.Duration(cfg.Timeout)*time.Second),
		tokens:    tokens,
		synthetic: synth,
		retrier:   retry.New(retryConfig, zapLogger),
		breaker:   circuitbreaker.New(circuitbreaker.DefaultConfig("trip-backend"), zapLogger),
		logger:    zapLogger,
	}
}

// APIError is a non-success response from the backend, carrying the clearest
// message the server supplied.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// errorBody is the structured error payload the backend returns on failure.
type errorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func newAPIError(status int, body []byte) *APIError {
	var parsed errorBody
	_ = json.Unmarshal(body, &parsed)

	message := parsed.Error
	if message == "" {
		message = parsed.Detail
	}
	if message == "" {
		message = fmt.Sprintf("HTTP error! status: %d", status)
	}

	return &APIError{Status: status, Message: message}
}

// doJSON issues an authenticated JSON request and decodes the response into
// out when out is non-nil.
func (g *Gateway) doJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		reqBody, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(reqBody)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, g.client.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	if access := g.tokens.AccessToken(); access != "" {
		httpReq.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := g.client.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newAPIError(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// readJSON is doJSON wrapped in the breaker and retrier, used by the
// degradable read paths.
func (g *Gateway) readJSON(ctx context.Context, method, path string, payload, out interface{}) error {
	return g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.retrier.Execute(ctx, func(ctx context.Context) error {
			return g.doJSON(ctx, method, path, payload, out)
		})
	})
}
