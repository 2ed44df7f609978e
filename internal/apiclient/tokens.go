package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Credentials are the token pair issued by the backend's login endpoint.
type Credentials struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// TokenStore persists credentials between runs.
type TokenStore interface {
	Load() (Credentials, error)
	Save(Credentials) error
	Clear() error
}

// FileTokenStore keeps credentials as JSON in a single file.
type FileTokenStore struct {
	Path string
}

// Load returns the stored credentials, or empty ones if the file is missing.
func (s FileTokenStore) Load() (Credentials, error) {
	var c Credentials
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("reading credentials: %w", err)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing credentials: %w", err)
	}
	return c, nil
}

// Save writes credentials readable only by the owner.
func (s FileTokenStore) Save(c Credentials) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding credentials: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return fmt.Errorf("creating credentials directory: %w", err)
	}
	if err := os.WriteFile(s.Path, data, 0o600); err != nil {
		return fmt.Errorf("writing credentials: %w", err)
	}
	return nil
}

// Clear removes stored credentials. A missing file is not an error.
func (s FileTokenStore) Clear() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing credentials: %w", err)
	}
	return nil
}

// MemoryTokenStore holds credentials in memory.
type MemoryTokenStore struct {
	Credentials Credentials
}

func (s *MemoryTokenStore) Load() (Credentials, error) { return s.Credentials, nil }

func (s *MemoryTokenStore) Save(c Credentials) error {
	s.Credentials = c
	return nil
}

func (s *MemoryTokenStore) Clear() error {
	s.Credentials = Credentials{}
	return nil
}
