package translationcache

import (
	"context"
	"errors"
	"time"
)

// ErrEntryNotFound reports a cache miss at the repository level.
var ErrEntryNotFound = errors.New("translationcache: entry not found")

// Repository persists translation cache entries.
type Repository interface {
	// Find returns the entry matching the key tuple or ErrEntryNotFound.
	Find(ctx context.Context, key Key) (*Entry, error)
	// Upsert inserts the entry, or replaces the stored translation when the
	// key tuple already exists. Concurrent writers racing on the same key
	// must not observe an error; last writer wins.
	Upsert(ctx context.Context, entry *Entry) error
	// Touch increments the access counter and stamps last_accessed_at.
	Touch(ctx context.Context, key Key, at time.Time) error
	// Prune removes entries whose last access (or creation, when never
	// accessed) predates the supplied instant. Returns the removed count.
	Prune(ctx context.Context, olderThan time.Time) (int, error)
}
