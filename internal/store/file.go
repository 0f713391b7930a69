package store

import (
	"context"
	"fmt"
	"path/filepath"

	"fjacquet/budget-tracker/internal/fileutils"
)

// FileKV stores each key as <key>.json inside a data directory.
type FileKV struct {
	dir string
}

// NewFileKV creates the data directory if needed.
func NewFileKV(dir string) (*FileKV, error) {
	if err := fileutils.EnsureDirectoryExists(dir); err != nil {
		return nil, fmt.Errorf("error preparing data directory %s: %w", dir, err)
	}
	return &FileKV{dir: dir}, nil
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *FileKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	data, ok, err := fileutils.ReadFileIfExists(f.path(key))
	if err != nil {
		return nil, false, fmt.Errorf("error reading %s: %w", key, err)
	}
	return data, ok, nil
}

func (f *FileKV) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := fileutils.WriteFileAtomic(f.path(key), value, 0o600); err != nil {
		return fmt.Errorf("error writing %s: %w", key, err)
	}
	return nil
}

func (f *FileKV) Close() error { return nil }
