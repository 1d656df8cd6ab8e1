package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	translate "github.com/goliatone/go-translate"
	"github.com/goliatone/go-translate/internal/di"
	"github.com/goliatone/go-translate/internal/provider"
	"github.com/goliatone/go-translate/internal/records"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// Demo server: sqlite storage, a canned provider, and the module routes on
// :8080. Try:
//
//	curl -X POST localhost:8080/api/i18n/translate \
//	  -d '{"text":"こんにちは","sourceLang":"ja","targetLang":"en"}'
func main() {
	ctx := context.Background()

	sqldb, err := sql.Open("sqlite3", "file:translate-demo?mode=memory&cache=shared&_fk=1")
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer db.Close()

	if err := translate.CreateTables(ctx, db); err != nil {
		log.Fatalf("create tables: %v", err)
	}

	cfg := translate.DefaultConfig()
	cfg.Locales = []string{"ja", "en", "zh-tw"}
	cfg.Logging.Format = "pretty"

	if err := translate.SeedLocales(ctx, db, cfg); err != nil {
		log.Fatalf("seed locales: %v", err)
	}

	client := provider.NewStaticClient().
		Map("こんにちは", "en", "Hello").
		Map("こんにちは", "zh-tw", "你好").
		Map("大会ルール", "en", "Tournament Rules").
		Map("大会ルール", "zh-tw", "比賽規則")

	module, err := translate.New(cfg, di.WithBunDB(db), di.WithProviderClient(client))
	if err != nil {
		log.Fatalf("build module: %v", err)
	}

	page := &records.InfoPage{
		ID:          uuid.New(),
		Slug:        "tournament-rules",
		Title:       "大会ルール",
		Description: "参加方法について",
	}
	if _, err := db.NewInsert().Model(page).Exec(ctx); err != nil {
		log.Fatalf("seed page: %v", err)
	}
	if _, err := module.Bulk().TranslateRecord(ctx, "info_pages", page.ID, nil); err != nil {
		log.Fatalf("bulk translate: %v", err)
	}
	log.Printf("seeded info page %s, localized read: /api/i18n/content/info_pages/%s?locale=en", page.Slug, page.ID)

	mux := http.NewServeMux()
	module.RegisterRoutes(mux)

	server := &http.Server{
		Addr:              ":8080",
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("listening on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
