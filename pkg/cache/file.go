package cache

import (
	"context"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// FileCache stores one JSON entry file per key below a directory.
type FileCache struct {
	dir string
}

// NewFileCache opens a file cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

type entry struct {
	Key       string    `json:"key"`
	Data      []byte    `json:"data"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (e entry) expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && now.After(e.ExpiresAt)
}

func readEntry(path string) (entry, bool) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return entry{}, false
	}
	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return entry{}, false
	}
	return e, true
}

// Dir returns the cache root.
func (c *FileCache) Dir() string {
	return c.dir
}

// Get returns the entry for key. Corrupt and expired entries are removed
// and reported as misses.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if e.expired(time.Now()) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return e.Data, true, nil
}

// Set writes data under key.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	e := entry{Key: key, Data: data}
	if ttl > 0 {
		e.ExpiresAt = time.Now().Add(ttl)
	}
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}

	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

// Delete removes key.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Clear removes every entry and recreates the empty root.
func (c *FileCache) Clear() error {
	if err := os.RemoveAll(c.dir); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

// Stats summarizes what is stored on disk.
type Stats struct {
	Entries   int   // entry files, including unreadable ones
	Layouts   int   // readable entries holding a layout
	Artifacts int   // readable entries holding a rendered artifact
	Expired   int   // readable entries past their TTL
	Bytes     int64 // total size of entry files
}

// Stats walks the cache directory. A missing directory is an empty cache.
func (c *FileCache) Stats() (Stats, error) {
	var st Stats
	now := time.Now()
	err := c.walk(func(path string, size int64) error {
		st.Entries++
		st.Bytes += size
		e, ok := readEntry(path)
		if !ok {
			return nil
		}
		if e.expired(now) {
			st.Expired++
		}
		switch stageOf(e.Key) {
		case "layout":
			st.Layouts++
		case "artifact":
			st.Artifacts++
		}
		return nil
	})
	return st, err
}

// Prune removes expired and unreadable entries and returns how many were
// removed.
func (c *FileCache) Prune() (int, error) {
	removed := 0
	now := time.Now()
	err := c.walk(func(path string, _ int64) error {
		if e, ok := readEntry(path); ok && !e.expired(now) {
			return nil
		}
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return err
		}
		removed++
		return nil
	})
	return removed, err
}

func (c *FileCache) walk(fn func(path string, size int64) error) error {
	err := filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		return fn(path, info.Size())
	})
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// stageOf returns "layout" or "artifact" for keys built by DefaultKeyer,
// with or without a ScopedKeyer prefix.
func stageOf(key string) string {
	parts := strings.Split(key, ":")
	switch {
	case slices.Contains(parts, "layout"):
		return "layout"
	case slices.Contains(parts, "artifact"):
		return "artifact"
	}
	return ""
}

// Close does nothing.
func (c *FileCache) Close() error {
	return nil
}

// path shards entries by the first two hex digits of the key hash.
func (c *FileCache) path(key string) string {
	hash := Hash([]byte(key))
	return filepath.Join(c.dir, hash[:2], hash[2:]+".json")
}

var _ Cache = (*FileCache)(nil)
