// Package storage persists uploaded ticket images under the configured
// media root. Files are named with a random short ID so uploads never
// collide and never leak the original filename.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"litrevu/internal/shared/id"
	"litrevu/internal/shared/logger"
)

// allowedExtensions is the upload whitelist.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// MediaStorage stores and removes uploaded files, addressed by a path
// relative to the media root.
type MediaStorage interface {
	Save(originalName string, r io.Reader) (string, error)
	Delete(relPath string) error
	AbsolutePath(relPath string) string
	Root() string
}

type LocalMediaStorage struct {
	root   string
	logger logger.Interface
}

func NewLocalMediaStorage(root string, log logger.Interface) (*LocalMediaStorage, error) {
	if root == "" {
		return nil, fmt.Errorf("media root is required")
	}
	if err := os.MkdirAll(filepath.Join(root, "tickets"), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media root: %w", err)
	}
	return &LocalMediaStorage{root: root, logger: log}, nil
}

// Save writes the upload under the media root and returns its relative path,
// e.g. "tickets/ab12Cd34Ef56.png".
func (s *LocalMediaStorage) Save(originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("unsupported image type: %q", ext)
	}

	relPath := filepath.Join("tickets", id.MustGenerate(16)+ext)
	absPath := filepath.Join(s.root, relPath)

	f, err := os.OpenFile(absPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(absPath)
		return "", fmt.Errorf("failed to write media file: %w", err)
	}

	return filepath.ToSlash(relPath), nil
}

// Delete removes a stored file. A missing file is not an error: the record is
// the source of truth and a stray delete only gets logged.
func (s *LocalMediaStorage) Delete(relPath string) error {
	if relPath == "" {
		return nil
	}

	absPath := s.AbsolutePath(relPath)
	if err := os.Remove(absPath); err != nil {
		if os.IsNotExist(err) {
			s.logger.Warnw("media file already missing", "path", relPath)
			return nil
		}
		return fmt.Errorf("failed to delete media file: %w", err)
	}
	return nil
}

func (s *LocalMediaStorage) AbsolutePath(relPath string) string {
	return filepath.Join(s.root, filepath.FromSlash(relPath))
}

func (s *LocalMediaStorage) Root() string {
	return s.root
}

// IsAllowedExtension reports whether a filename carries an accepted image
// extension. Handlers use it to reject uploads before buffering them.
func IsAllowedExtension(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}
