// Package store persists the session token pair on the local device.
// The on-disk format is a small JSON file holding two opaque string
// entries, accessToken and refreshToken.
package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

const (
	// CredentialsDirName is the name of the credentials directory
	CredentialsDirName = ".orbit"

	// CredentialsFileName is the name of the credentials file
	CredentialsFileName = "credentials.json"
)

// Store is the local token store. Implementations must be safe for
// concurrent use; SaveTokens and Clear must never leave exactly one
// of the two tokens behind.
type Store interface {
	// AccessToken returns the stored access token, or "" if none is stored
	AccessToken() (string, error)

	// RefreshToken returns the stored refresh token, or "" if none is stored
	RefreshToken() (string, error)

	// SaveTokens stores both tokens, replacing any existing pair
	SaveTokens(accessToken, refreshToken string) error

	// SaveAccessToken replaces only the access token, keeping the refresh token
	SaveAccessToken(accessToken string) error

	// Clear removes both tokens
	Clear() error
}

// credentials is the on-disk shape of the token pair
type credentials struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// FileStore keeps the token pair in a JSON file with owner-only
// permissions. Both tokens live in one file, so a pair update is a
// single write and a reader never observes half a pair.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store at the default location under the
// user's home directory
func NewFileStore() (*FileStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(homeDir, CredentialsDirName, CredentialsFileName)
	return &FileStore{path: path}, nil
}

// NewFileStoreWithPath creates a store backed by a custom file path.
// This is useful for testing.
func NewFileStoreWithPath(path string) *FileStore {
	return &FileStore{path: path}
}

// load reads the credentials file, returning an empty pair if the
// file doesn't exist. Callers must hold s.mu.
func (s *FileStore) load() (*credentials, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &credentials{}, nil
		}
		return nil, err
	}

	var creds credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}

	return &creds, nil
}

// save writes the credentials file with restricted permissions.
// Callers must hold s.mu.
func (s *FileStore) save(creds *credentials) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(creds, "", "  ")
	if err != nil {
		return err
	}

	// Owner read/write only
	return os.WriteFile(s.path, data, 0600)
}

// AccessToken returns the stored access token, or "" if none is stored
func (s *FileStore) AccessToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.load()
	if err != nil {
		return "", err
	}
	return creds.AccessToken, nil
}

// RefreshToken returns the stored refresh token, or "" if none is stored
func (s *FileStore) RefreshToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.load()
	if err != nil {
		return "", err
	}
	return creds.RefreshToken, nil
}

// SaveTokens stores both tokens, replacing any existing pair
func (s *FileStore) SaveTokens(accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.save(&credentials{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// SaveAccessToken replaces only the access token, keeping the refresh token
func (s *FileStore) SaveAccessToken(accessToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds, err := s.load()
	if err != nil {
		return err
	}

	creds.AccessToken = accessToken
	return s.save(creds)
}

// Clear removes both tokens
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Path returns the path to the credentials file
func (s *FileStore) Path() string {
	return s.path
}
