package translationcache

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

var errDatabaseRequired = errors.New("translationcache: bun repository requires a database")

// BunRepository persists cache entries using a Bun-backed database.
type BunRepository struct {
	db *bun.DB
}

// NewBunRepository constructs a Bun-backed repository.
func NewBunRepository(db *bun.DB) *BunRepository {
	return &BunRepository{db: db}
}

// Find returns the entry matching the key tuple.
func (r *BunRepository) Find(ctx context.Context, key Key) (*Entry, error) {
	if r.db == nil {
		return nil, errDatabaseRequired
	}
	entry := new(Entry)
	err := r.db.NewSelect().
		Model(entry).
		Where("source_text = ?", key.SourceText).
		Where("source_language = ?", key.SourceLanguage).
		Where("target_language = ?", key.TargetLanguage).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return entry, nil
}

// Upsert inserts the entry or, when the key tuple already exists, replaces
// the stored translation. The ON CONFLICT clause makes duplicate-key races
// between concurrent writers invisible: last writer wins, neither errors.
func (r *BunRepository) Upsert(ctx context.Context, entry *Entry) error {
	if r.db == nil {
		return errDatabaseRequired
	}
	if entry == nil {
		return nil
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.NewInsert().
		Model(entry).
		On("CONFLICT (source_text, source_language, target_language) DO UPDATE").
		Set("translated_text = EXCLUDED.translated_text").
		Set("service_used = EXCLUDED.service_used").
		Set("char_count = EXCLUDED.char_count").
		Exec(ctx)
	return err
}

// Touch increments access bookkeeping without reading the row first.
func (r *BunRepository) Touch(ctx context.Context, key Key, at time.Time) error {
	if r.db == nil {
		return errDatabaseRequired
	}
	result, err := r.db.NewUpdate().
		Model((*Entry)(nil)).
		Set("access_count = access_count + 1").
		Set("last_accessed_at = ?", at).
		Where("source_text = ?", key.SourceText).
		Where("source_language = ?", key.SourceLanguage).
		Where("target_language = ?", key.TargetLanguage).
		Exec(ctx)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

// Prune removes entries whose last access (or creation) predates the instant.
func (r *BunRepository) Prune(ctx context.Context, olderThan time.Time) (int, error) {
	if r.db == nil {
		return 0, errDatabaseRequired
	}
	result, err := r.db.NewDelete().
		Model((*Entry)(nil)).
		Where("COALESCE(last_accessed_at, created_at) < ?", olderThan).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return int(affected), nil
}
