package records

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/goliatone/go-translate/internal/i18n"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	for _, model := range []any{(*InfoPage)(nil), (*DeckPage)(nil), (*Tournament)(nil)} {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			t.Fatalf("create table: %v", err)
		}
	}
	return db
}

func TestBunStoreLoadSave(t *testing.T) {
	db := newTestDB(t)
	store := NewBunStore(db)
	ctx := context.Background()

	page := &InfoPage{
		ID:          uuid.New(),
		Slug:        "shop-guide",
		Title:       "Shop Guide",
		Description: "How to buy and sell cards",
	}
	if _, err := db.NewInsert().Model(page).Exec(ctx); err != nil {
		t.Fatalf("seed insert: %v", err)
	}

	loaded, err := store.Load(ctx, TableInfoPages, page.ID)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	loaded.SetFieldMap(FieldTitle, i18n.Map{"ja": "ショップガイド"})
	loaded.SetTranslationStatus(i18n.StatusComplete)
	if err := store.Save(ctx, TableInfoPages, loaded); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	again, err := store.Load(ctx, TableInfoPages, page.ID)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	_, m, _ := again.Field(FieldTitle)
	if m["ja"] != "ショップガイド" {
		t.Fatalf("title map after save = %v", m)
	}
	if again.TranslationState() != i18n.StatusComplete {
		t.Fatalf("TranslationState() = %q", again.TranslationState())
	}
}

func TestBunStoreLoadNotFound(t *testing.T) {
	db := newTestDB(t)
	store := NewBunStore(db)

	_, err := store.Load(context.Background(), TableTournaments, uuid.New())
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Load() error = %v, want *NotFoundError", err)
	}
}

func TestBunStoreRejectsUnknownTable(t *testing.T) {
	db := newTestDB(t)
	store := NewBunStore(db)

	if _, err := store.Load(context.Background(), Table("users"), uuid.New()); !errors.Is(err, ErrTableNotAllowed) {
		t.Fatalf("Load() error = %v, want ErrTableNotAllowed", err)
	}
}
