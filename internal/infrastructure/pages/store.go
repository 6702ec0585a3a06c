package pages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store persists rendered pages under a base directory, e.g.
// <pagesDir>/products/<slug>.html and <pagesDir>/artists/<slug>.html.
type Store struct {
	baseDir string
}

// NewStore creates a filesystem-backed page store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// WritePage atomically-ish writes a page at the given relative path,
// creating intermediate directories as needed.
func (s *Store) WritePage(_ context.Context, relPath string, content []byte) error {
	path, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create page directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write page %s: %w", relPath, err)
	}
	return nil
}

// DeletePage removes a page. A missing page is not an error: deletion is
// invoked for slugs that may never have been rendered.
func (s *Store) DeletePage(_ context.Context, relPath string) error {
	path, err := s.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete page %s: %w", relPath, err)
	}
	return nil
}

// resolve joins relPath under the base directory and rejects paths that
// would escape it.
func (s *Store) resolve(relPath string) (string, error) {
	cleaned := filepath.Clean(relPath)
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid page path %q", relPath)
	}
	return filepath.Join(s.baseDir, cleaned), nil
}
