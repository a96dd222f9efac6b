// Package cache stores the raw upstream JSON documents on disk, one file
// per resource (weapon.json, stat.json, module.json). Bytes are kept
// verbatim so a cache hit round-trips the exact upstream payload.
package cache

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"tfdsearch/internal/api"
	"tfdsearch/internal/logging"
)

// ErrCacheMiss is returned when a resource has no cached copy.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a directory of resource blobs.
type Cache struct {
	dir string
	log *zap.Logger
}

// New returns a Cache rooted at dir. The directory is created lazily on
// first write.
func New(dir string) *Cache {
	return &Cache{dir: dir, log: logging.Named("cache")}
}

// Dir returns the cache directory.
func (c *Cache) Dir() string { return c.dir }

// Path returns the on-disk location of a resource blob.
func (c *Cache) Path(res api.Resource) string {
	return filepath.Join(c.dir, string(res)+".json")
}

// Exists reports whether a resource has a cached copy.
func (c *Cache) Exists(res api.Resource) bool {
	_, err := os.Stat(c.Path(res))
	return err == nil
}

// Read returns the cached bytes for a resource.
func (c *Cache) Read(res api.Resource) ([]byte, error) {
	data, err := os.ReadFile(c.Path(res))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", res, ErrCacheMiss)
		}
		return nil, fmt.Errorf("read cache %s: %w", res, err)
	}
	return data, nil
}

// Write stores a resource blob atomically (temp file + rename) so a crash
// mid-write never leaves a truncated document behind.
func (c *Cache) Write(res api.Resource, data []byte) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmp, err := os.CreateTemp(c.dir, string(res)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write cache %s: %w", res, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, c.Path(res)); err != nil {
		return fmt.Errorf("commit cache %s: %w", res, err)
	}

	c.log.Debug("cached resource",
		zap.String("resource", string(res)),
		zap.Int("bytes", len(data)),
	)
	return nil
}

// Clear removes every cached resource blob. Missing files are fine.
func (c *Cache) Clear() error {
	for _, res := range api.Resources {
		if err := os.Remove(c.Path(res)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove cache %s: %w", res, err)
		}
	}
	return nil
}
