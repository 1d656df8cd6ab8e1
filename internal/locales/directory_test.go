package locales

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

func newDirectoryDB(t *testing.T) *bun.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", t.Name())
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	if _, err := db.NewCreateTable().Model((*Locale)(nil)).IfNotExists().Exec(context.Background()); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

func TestSeedDirectory(t *testing.T) {
	db := newDirectoryDB(t)
	ctx := context.Background()
	supported := NewSet("ja", "en", "zh-tw")

	if err := SeedDirectory(ctx, db, supported); err != nil {
		t.Fatalf("SeedDirectory() error = %v", err)
	}

	rows, err := ListDirectory(ctx, db)
	if err != nil {
		t.Fatalf("ListDirectory() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("ListDirectory() = %d rows, want 3", len(rows))
	}
	// ordered by code
	if rows[0].Code != "en" || rows[1].Code != "ja" || rows[2].Code != "zh-tw" {
		t.Fatalf("codes = %s, %s, %s", rows[0].Code, rows[1].Code, rows[2].Code)
	}
	if rows[1].NativeName != "日本語" {
		t.Fatalf("ja native name = %q", rows[1].NativeName)
	}

	// reseeding must not duplicate rows
	if err := SeedDirectory(ctx, db, supported); err != nil {
		t.Fatalf("SeedDirectory() reseed error = %v", err)
	}
	rows, _ = ListDirectory(ctx, db)
	if len(rows) != 3 {
		t.Fatalf("after reseed = %d rows, want 3", len(rows))
	}
}

func TestDisplayNamesFallback(t *testing.T) {
	name, native := DisplayNames("xx")
	if name != "xx" || native != "xx" {
		t.Fatalf("DisplayNames(xx) = %q, %q", name, native)
	}
}
