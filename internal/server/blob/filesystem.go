package blob

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dkireev/filedepot/internal/shared"
)

// FilesystemStore writes payloads as individual files under a base directory.
type FilesystemStore struct {
	baseDir string
}

func NewFilesystemStore(baseDir string) (*FilesystemStore, error) {
	if err := os.MkdirAll(baseDir, 0o770); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", baseDir, err)
	}
	return &FilesystemStore{baseDir: baseDir}, nil
}

func (s *FilesystemStore) Write(ctx context.Context, data []byte) (string, error) {
	path := filepath.Join(s.baseDir, uuid.New().String())
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("%w: blob write: %s", shared.ErrorUnavailable, err)
	}
	return path, nil
}

func (s *FilesystemStore) Read(ctx context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, shared.ErrorNotFound
		}
		return nil, fmt.Errorf("%w: blob read: %s", shared.ErrorUnavailable, err)
	}
	return data, nil
}
