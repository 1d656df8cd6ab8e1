package translationcache

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository stores cache entries in-memory. It mirrors the persistence
// contract closely enough for tests and single-process deployments.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries map[Key]*Entry
	now     func() time.Time
}

// NewMemoryRepository constructs an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		entries: make(map[Key]*Entry),
		now:     time.Now,
	}
}

// Find returns the stored entry or ErrEntryNotFound.
func (r *MemoryRepository) Find(_ context.Context, key Key) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[key]
	if !ok {
		return nil, ErrEntryNotFound
	}
	copied := *entry
	return &copied, nil
}

// Upsert stores the entry, replacing translation payload fields on conflict
// while preserving access bookkeeping.
func (r *MemoryRepository) Upsert(_ context.Context, entry *Entry) error {
	if entry == nil {
		return nil
	}
	key := KeyOf(entry)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[key]; ok {
		existing.TranslatedText = entry.TranslatedText
		existing.ServiceUsed = entry.ServiceUsed
		existing.CharCount = entry.CharCount
		return nil
	}

	copied := *entry
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = r.now()
	}
	r.entries[key] = &copied
	return nil
}

// Touch updates access bookkeeping for the entry.
func (r *MemoryRepository) Touch(_ context.Context, key Key, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[key]
	if !ok {
		return ErrEntryNotFound
	}
	entry.AccessCount++
	stamped := at
	entry.LastAccessedAt = &stamped
	return nil
}

// Prune drops entries not accessed since the supplied instant.
func (r *MemoryRepository) Prune(_ context.Context, olderThan time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for key, entry := range r.entries {
		reference := entry.CreatedAt
		if entry.LastAccessedAt != nil {
			reference = *entry.LastAccessedAt
		}
		if reference.Before(olderThan) {
			delete(r.entries, key)
			removed++
		}
	}
	return removed, nil
}

// Len reports the number of stored entries.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
