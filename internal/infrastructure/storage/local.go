// Package storage provides image storage backends for normalized uploads.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/baerenfell/backend/internal/application/upload"
)

// Ensure LocalImageStorage implements upload.ImageStorage
var _ upload.ImageStorage = (*LocalImageStorage)(nil)

// LocalImageStorage stores images on the local disk. It is the default
// backend; the files are served as static assets under the public base URL.
type LocalImageStorage struct {
	baseDir       string
	publicBaseURL string
}

// NewLocalImageStorage creates a disk-backed image storage rooted at baseDir.
func NewLocalImageStorage(baseDir, publicBaseURL string) *LocalImageStorage {
	return &LocalImageStorage{
		baseDir:       baseDir,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

// Put writes the image bytes, creating intermediate directories as needed.
func (s *LocalImageStorage) Put(_ context.Context, key string, data []byte, _ string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write upload %s: %w", key, err)
	}
	return nil
}

// Delete removes the image. Deleting an absent image is not an error.
func (s *LocalImageStorage) Delete(_ context.Context, key string) error {
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete upload %s: %w", key, err)
	}
	return nil
}

// Exists reports whether an image is stored under the key.
func (s *LocalImageStorage) Exists(_ context.Context, key string) (bool, error) {
	path, err := s.resolve(key)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat upload %s: %w", key, err)
	}
	return true, nil
}

// PublicURL returns the URL path clients use to fetch the image.
func (s *LocalImageStorage) PublicURL(key string) string {
	return s.publicBaseURL + "/" + key
}

// BaseDir returns the storage root, used to mount the static file route.
func (s *LocalImageStorage) BaseDir() string {
	return s.baseDir
}

func (s *LocalImageStorage) resolve(key string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.baseDir, cleaned), nil
}
