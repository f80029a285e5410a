// Package localstorage provides local file system storage implementation.
package localstorage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrNotADirectory is returned when the storage path is not a directory.
var ErrNotADirectory = errors.New("not a directory")

// LocalStorage implements storage interface for local file system.
type LocalStorage struct {
	dirpath string
}

// NewLocalStorage creates a new LocalStorage instance.
func NewLocalStorage(dirpath string) *LocalStorage {
	return &LocalStorage{
		dirpath: dirpath,
	}
}

// Check verifies that the storage directory exists.
func (s *LocalStorage) Check() error {
	stat, err := os.Stat(s.dirpath)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", s.dirpath, err)
	}
	if !stat.IsDir() {
		return fmt.Errorf("%s: %w", s.dirpath, ErrNotADirectory)
	}
	return nil
}

// SaveFile writes src to dstFilename inside the storage directory.
// The content goes to a temporary file first, renamed once complete.
func (s *LocalStorage) SaveFile(ctx context.Context, src io.Reader, dstFilename string, _ int64) error {
	if ctx.Err() != nil {
		return fmt.Errorf("operation cancelled before starting: %w", ctx.Err())
	}

	dstPath := filepath.Join(s.dirpath, dstFilename)
	tmpPath := dstPath + ".tmp"
	//nolint:gosec // G304: File creation is intentional for report storage
	fDst, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", tmpPath, err)
	}

	if _, err := io.Copy(fDst, src); err != nil {
		_ = fDst.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write to destination: %w", err)
	}
	if err := fDst.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close destination: %w", err)
	}
	if err := os.Rename(tmpPath, dstPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename %s: %w", tmpPath, err)
	}
	return nil
}
