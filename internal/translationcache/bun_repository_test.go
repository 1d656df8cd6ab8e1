package translationcache

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func TestBunRepositoryFindMiss(t *testing.T) {
	repo := NewBunRepository(newTestDB(t))

	_, err := repo.Find(context.Background(), Key{SourceText: "テスト", SourceLanguage: "ja", TargetLanguage: "en"})
	if !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("Find() error = %v, want ErrEntryNotFound", err)
	}
}

func TestBunRepositoryUpsertRoundTrip(t *testing.T) {
	repo := NewBunRepository(newTestDB(t))
	ctx := context.Background()

	entry := &Entry{
		SourceText:     "テスト",
		SourceLanguage: "ja",
		TargetLanguage: "en",
		TranslatedText: "test",
		ServiceUsed:    "deepl",
		CharCount:      3,
	}
	if err := repo.Upsert(ctx, entry); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	fetched, err := repo.Find(ctx, KeyOf(entry))
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if fetched.TranslatedText != "test" || fetched.ServiceUsed != "deepl" {
		t.Fatalf("Find() = %+v", fetched)
	}
}

func TestBunRepositoryUpsertConflictLastWriterWins(t *testing.T) {
	repo := NewBunRepository(newTestDB(t))
	ctx := context.Background()
	key := Key{SourceText: "こんにちは", SourceLanguage: "ja", TargetLanguage: "en"}

	first := &Entry{SourceText: key.SourceText, SourceLanguage: key.SourceLanguage, TargetLanguage: key.TargetLanguage, TranslatedText: "hello", ServiceUsed: "deepl", CharCount: 5}
	second := &Entry{SourceText: key.SourceText, SourceLanguage: key.SourceLanguage, TargetLanguage: key.TargetLanguage, TranslatedText: "hi there", ServiceUsed: "google", CharCount: 5}

	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("Upsert() first error = %v", err)
	}
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("Upsert() second error = %v", err)
	}

	fetched, err := repo.Find(ctx, key)
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if fetched.TranslatedText != "hi there" || fetched.ServiceUsed != "google" {
		t.Fatalf("Find() after conflict = %+v, want last writer", fetched)
	}
	if fetched.ID != first.ID {
		t.Fatalf("conflict produced a second row: %s vs %s", fetched.ID, first.ID)
	}
}

func TestBunRepositoryTouch(t *testing.T) {
	repo := NewBunRepository(newTestDB(t))
	ctx := context.Background()
	entry := &Entry{SourceText: "テスト", SourceLanguage: "ja", TargetLanguage: "en", TranslatedText: "test"}

	if err := repo.Upsert(ctx, entry); err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}

	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	if err := repo.Touch(ctx, KeyOf(entry), at); err != nil {
		t.Fatalf("Touch() error = %v", err)
	}
	if err := repo.Touch(ctx, KeyOf(entry), at.Add(time.Minute)); err != nil {
		t.Fatalf("Touch() second error = %v", err)
	}

	fetched, err := repo.Find(ctx, KeyOf(entry))
	if err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if fetched.AccessCount != 2 {
		t.Fatalf("AccessCount = %d, want 2", fetched.AccessCount)
	}
	if fetched.LastAccessedAt == nil {
		t.Fatal("LastAccessedAt not stamped")
	}

	if err := repo.Touch(ctx, Key{SourceText: "missing", SourceLanguage: "ja", TargetLanguage: "en"}, at); !errors.Is(err, ErrEntryNotFound) {
		t.Fatalf("Touch() missing = %v, want ErrEntryNotFound", err)
	}
}

func TestBunRepositoryPrune(t *testing.T) {
	repo := NewBunRepository(newTestDB(t))
	ctx := context.Background()

	stale := &Entry{SourceText: "古い", SourceLanguage: "ja", TargetLanguage: "en", TranslatedText: "old", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	fresh := &Entry{SourceText: "新しい", SourceLanguage: "ja", TargetLanguage: "en", TranslatedText: "new", CreatedAt: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)}
	for _, entry := range []*Entry{stale, fresh} {
		if err := repo.Upsert(ctx, entry); err != nil {
			t.Fatalf("Upsert() error = %v", err)
		}
	}

	removed, err := repo.Prune(ctx, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if removed != 1 {
		t.Fatalf("Prune() removed = %d, want 1", removed)
	}
	if _, err := repo.Find(ctx, KeyOf(fresh)); err != nil {
		t.Fatalf("fresh entry pruned: %v", err)
	}
}

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open("sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared&_fk=1")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqldb.Close() })

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.NewCreateTable().Model((*Entry)(nil)).IfNotExists().Exec(ctx); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}
