package kv

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	stateDirName  = "shopd"
	stateFileName = "state.json"
)

// FileStore persists keys as a single JSON object in a file under the user's
// config directory (~/.config/shopd/state.json).
type FileStore struct {
	path string
}

// NewFileStore creates a store at the default location.
func NewFileStore() (*FileStore, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	dir := filepath.Join(homeDir, ".config", stateDirName)
	return &FileStore{path: filepath.Join(dir, stateFileName)}, nil
}

// NewFileStoreAt creates a store backed by an explicit file path.
func NewFileStoreAt(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) load() (map[string]string, error) {
	// A missing file is an empty store
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return map[string]string{}, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	entries := map[string]string{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}

	return entries, nil
}

func (s *FileStore) save(entries map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}

	return nil
}

// Get returns the value for key, or false when the key is absent or the
// backing file is unreadable.
func (s *FileStore) Get(key string) (string, bool) {
	entries, err := s.load()
	if err != nil {
		return "", false
	}

	value, ok := entries[key]
	return value, ok
}

// Set writes key to the backing file, creating it if needed.
func (s *FileStore) Set(key, value string) error {
	entries, err := s.load()
	if err != nil {
		// An unreadable file is replaced rather than kept broken
		entries = map[string]string{}
	}

	entries[key] = value
	return s.save(entries)
}

// Remove deletes key. Removing an absent key is not an error.
func (s *FileStore) Remove(key string) error {
	entries, err := s.load()
	if err != nil {
		return nil
	}

	if _, ok := entries[key]; !ok {
		return nil
	}

	delete(entries, key)
	return s.save(entries)
}
