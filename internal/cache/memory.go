package cache

import (
	"context"
	"sync"
	"time"
)

// Memory implements Cache in process memory. Entries are lost on restart.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]record
	ttl     time.Duration
	now     func() time.Time
}

// NewMemory returns an empty in-memory cache. A zero ttl keeps entries forever.
func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		entries: make(map[string]record),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) (Entry, bool, error) {
	m.mu.RLock()
	rec, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok || !rec.valid(key) || expired(rec.StoredAt, m.ttl, m.now()) {
		return Entry{}, false, nil
	}
	return rec.Entry, true, nil
}

func (m *Memory) Put(_ context.Context, key string, entry Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = record{Key: key, Entry: entry, StoredAt: m.now()}
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
