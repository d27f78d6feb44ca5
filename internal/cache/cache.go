// Package cache stores extraction results keyed by the exact raw text that was
// extracted. Keys are never normalized: inputs differing only in whitespace or
// case are different keys.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/mwhite7112/woodpantry-recipes/internal/recipe"
)

// ErrCorrupt is returned by Get when a stored entry cannot be decoded.
var ErrCorrupt = errors.New("corrupt cache entry")

// Cache maps raw extraction input to a previously computed result.
type Cache interface {
	// Get returns the entry for key and whether one was found.
	Get(ctx context.Context, key string) (Entry, bool, error)
	// Put stores entry under key, replacing any previous entry.
	Put(ctx context.Context, key string, entry Entry) error
}

// Entry is a cached extraction result: a recipe or the error envelope of a failed
// extraction. Exactly one field is set.
type Entry struct {
	Recipe *recipe.StructuredRecipe `json:"recipe,omitempty"`
	Error  *recipe.ErrorEnvelope    `json:"error,omitempty"`
}

// record is the persisted form used by the file and redis backends. Key is kept
// so a lookup can confirm an exact match rather than trusting the digest alone.
type record struct {
	Key      string    `json:"key"`
	Entry    Entry     `json:"entry"`
	StoredAt time.Time `json:"stored_at"`
}

func (r record) valid(key string) bool {
	return r.Key == key && (r.Entry.Recipe != nil || r.Entry.Error != nil)
}

func digest(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

func expired(storedAt time.Time, ttl time.Duration, now time.Time) bool {
	return ttl > 0 && now.Sub(storedAt) >= ttl
}
