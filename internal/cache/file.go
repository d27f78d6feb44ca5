package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// File implements Cache on the local filesystem, one JSON file per key:
//
//	{Dir}/
//	  {digest[0:2]}/
//	    {digest}.json
//
// Each Put writes a temp file and renames it into place, so a crash mid-write
// leaves the previous entry (or no entry) rather than a truncated one.
type File struct {
	Dir string
	ttl time.Duration
	now func() time.Time
}

// NewFile returns a file cache rooted at dir, creating it if needed.
func NewFile(dir string, ttl time.Duration) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &File{Dir: dir, ttl: ttl, now: time.Now}, nil
}

func (c *File) Get(_ context.Context, key string) (Entry, bool, error) {
	data, err := os.ReadFile(c.entryPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return Entry{}, false, nil
		}
		return Entry{}, false, fmt.Errorf("read cache entry: %w", err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Entry{}, false, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if !rec.valid(key) || expired(rec.StoredAt, c.ttl, c.now()) {
		return Entry{}, false, nil
	}
	return rec.Entry, true, nil
}

func (c *File) Put(_ context.Context, key string, entry Entry) error {
	path := c.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create cache shard: %w", err)
	}

	data, err := json.Marshal(record{Key: key, Entry: entry, StoredAt: c.now()})
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}
	if err := writeFileAtomic(path, data, 0o644); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

func (c *File) entryPath(key string) string {
	d := digest(key)
	return filepath.Join(c.Dir, d[:2], d+".json")
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		return err
	}
	_ = tmp.Sync()
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
