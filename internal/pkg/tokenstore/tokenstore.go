// Package tokenstore persists the bearer credential pair issued by the trip
// backend. Storage is a single JSON file so credentials survive process
// restarts, mirroring what browser local storage does for the web client.
package tokenstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Store is the credential storage interface the backend gateway depends on.
type Store interface {
	AccessToken() string
	RefreshToken() string
	SetTokens(access, refresh string) error
	Clear() error
}

type storedTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// FileStore keeps the tokens in memory and mirrors them to a JSON file.
type FileStore struct {
	mu     sync.RWMutex
	path   string
	tokens storedTokens
}

// NewFileStore creates a store backed by the given file path. An existing
// file is loaded; a missing file is not an error.
func NewFileStore(path string) (*FileStore, error) {
	fs := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fs, nil
		}
		return nil, fmt.Errorf("failed to read token file: %w", err)
	}

	if err := json.Unmarshal(data, &fs.tokens); err != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", err)
	}

	return fs, nil
}

// AccessToken returns the stored access credential, empty when absent.
func (fs *FileStore) AccessToken() string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.tokens.AccessToken
}

// RefreshToken returns the stored refresh credential, empty when absent.
func (fs *FileStore) RefreshToken() string {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return fs.tokens.RefreshToken
}

// SetTokens stores both credentials and persists them.
func (fs *FileStore) SetTokens(access, refresh string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.tokens = storedTokens{AccessToken: access, RefreshToken: refresh}
	return fs.persist()
}

// Clear removes both credentials and deletes the backing file.
func (fs *FileStore) Clear() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.tokens = storedTokens{}
	if err := os.Remove(fs.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}
	return nil
}

func (fs *FileStore) persist() error {
	data, err := json.Marshal(fs.tokens)
	if err != nil {
		return fmt.Errorf("failed to marshal tokens: %w", err)
	}

	if dir := filepath.Dir(fs.path); dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return fmt.Errorf("failed to create token directory: %w", err)
		}
	}

	if err := os.WriteFile(fs.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}
	return nil
}

// AccessExpired reports whether the stored access token carries an exp claim
// in the past. The token is parsed unverified; the backend is the authority,
// this is only used to decide whether a session is worth resuming.
func (fs *FileStore) AccessExpired(now time.Time) bool {
	token := fs.AccessToken()
	if token == "" {
		return true
	}

	claims := &jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return true
	}

	if claims.ExpiresAt == nil {
		// No exp claim, let the backend decide
		return false
	}

	return claims.ExpiresAt.Time.Before(now)
}
