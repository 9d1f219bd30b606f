package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore implements Store on the local filesystem, one file per key.
type FileStore struct {
	basePath string
}

// NewFileStore creates a file-backed store rooted at basePath, creating
// the directory if needed.
func NewFileStore(basePath string) (*FileStore, error) {
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("store: resolve base path: %w", err)
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("store: create base directory: %w", err)
	}
	return &FileStore{basePath: abs}, nil
}

// Get reads the value stored for key.
func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("store: read %q: %w", key, err)
	}
	return string(data), true, nil
}

// Set writes value for key, creating intermediate directories for
// namespaced keys like "features/checkout-v2".
func (s *FileStore) Set(_ context.Context, key string, value string) error {
	path := s.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("store: create directory for %q: %w", key, err)
	}
	if err := os.WriteFile(path, []byte(value), 0o600); err != nil {
		return fmt.Errorf("store: write %q: %w", key, err)
	}
	return nil
}

// Delete removes the file for key. Returns nil if the key does not exist.
func (s *FileStore) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("store: delete %q: %w", key, err)
	}
	return nil
}

// path maps a key to a file path under the base directory. Cleaning the
// key keeps it from escaping the base path.
func (s *FileStore) path(key string) string {
	clean := filepath.Clean("/" + strings.ReplaceAll(key, "\\", "/"))
	return filepath.Join(s.basePath, clean)
}
