package kv

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/2beens/mapty/pkg"
)

var _ Store = (*FileStore)(nil)

// FileStore keeps one file per key under dir.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := pkg.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("storage dir [%s]: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".json")
}

func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	value, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read [%s]: %w", key, err)
	}
	return value, nil
}

func (s *FileStore) Set(_ context.Context, key string, value []byte) error {
	if err := pkg.WriteFileAtomic(s.path(key), value); err != nil {
		return fmt.Errorf("write [%s]: %w", key, err)
	}
	return nil
}
