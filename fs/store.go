// Package fs implements unveil.ArtifactStore on the local filesystem.
package fs

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/unveil"
)

// Ensure Store implements unveil.ArtifactStore at compile time.
var _ unveil.ArtifactStore = (*Store)(nil)

// Store keeps artifacts as files below a base directory, one file per key.
// Keys ending in ".gz" are gzip-compressed on Put and decompressed on Get.
// Writes go to a temporary file that is renamed into place, so readers
// never observe a partially written artifact.
type Store struct {
	baseDir string
}

// NewStore creates a new Store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Put stores data under key, replacing any previous artifact.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fullPath, err := s.path(key)
	if err != nil {
		return err
	}

	if isCompressed(key) {
		if data, err = compress(data); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(fullPath), filepath.Base(fullPath)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fullPath)
}

// Get returns the artifact stored under key.
// Returns ENOTFOUND if no artifact exists.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fullPath, err := s.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(fullPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, unveil.Errorf(unveil.ENOTFOUND, "artifact %q not found", key)
	} else if err != nil {
		return nil, err
	}

	if isCompressed(key) {
		return decompress(data)
	}
	return data, nil
}

// path maps a slash-separated key to a file below the base directory.
func (s *Store) path(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || path.Clean(key) != key || strings.HasPrefix(key, "../") || key == ".." {
		return "", unveil.Errorf(unveil.EINVALID, "invalid artifact key %q", key)
	}
	return filepath.Join(s.baseDir, filepath.FromSlash(key)), nil
}

func isCompressed(key string) bool {
	return strings.HasSuffix(key, ".gz")
}

func compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, unveil.Errorf(unveil.EINVALID, "artifact is not gzip data: %v", err)
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
