// Package storage persists ticket attachments on the local filesystem.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStorage writes files under a base directory using UUID-derived
// names so concurrent uploads of the same filename never collide.
type LocalStorage struct {
	basePath string
	maxSize  int64
}

func NewLocalStorage(basePath string, maxSize int64) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{basePath: basePath, maxSize: maxSize}, nil
}

// Save writes the content to disk and returns the stored name, the full
// path and the number of bytes written. Content larger than the
// configured limit is rejected and the partial file removed.
func (s *LocalStorage) Save(content io.Reader, originalName string) (string, string, int64, error) {
	ext := filepath.Ext(originalName)
	storedName := uuid.New().String() + ext
	fullPath := filepath.Join(s.basePath, storedName)

	dst, err := os.Create(fullPath)
	if err != nil {
		return "", "", 0, fmt.Errorf("failed to create attachment file: %w", err)
	}
	defer dst.Close()

	reader := content
	if s.maxSize > 0 {
		reader = io.LimitReader(content, s.maxSize+1)
	}

	size, err := io.Copy(dst, reader)
	if err != nil {
		os.Remove(fullPath)
		return "", "", 0, fmt.Errorf("failed to write attachment file: %w", err)
	}
	if s.maxSize > 0 && size > s.maxSize {
		os.Remove(fullPath)
		return "", "", 0, fmt.Errorf("file exceeds maximum size of %d bytes", s.maxSize)
	}

	return storedName, fullPath, size, nil
}

// Remove deletes a stored file. A missing file is not an error.
func (s *LocalStorage) Remove(storedName string) error {
	fullPath := filepath.Join(s.basePath, filepath.Base(storedName))
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(fullPath)
}
