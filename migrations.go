package translate

import (
	"context"
	"embed"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-translate/internal/locales"
	"github.com/goliatone/go-translate/internal/records"
	"github.com/goliatone/go-translate/internal/translationcache"
)

//go:embed data/sql/migrations/*.sql
var migrationsFS embed.FS

// GetMigrationsFS returns the embedded migration files for this package.
func GetMigrationsFS() embed.FS {
	return migrationsFS
}

// Models returns every bun model the module persists, in creation order.
func Models() []any {
	return []any{
		(*translationcache.Entry)(nil),
		(*locales.Locale)(nil),
		(*records.InfoPage)(nil),
		(*records.DeckPage)(nil),
		(*records.Tournament)(nil),
	}
}

// RegisterModels registers the module models with bun so relation metadata
// resolves before queries run.
func RegisterModels(db *bun.DB) {
	db.RegisterModel(Models()...)
}

// CreateTables creates the module tables. Embedded and test setups use this
// instead of the SQL migrations.
func CreateTables(ctx context.Context, db *bun.DB) error {
	for _, model := range Models() {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

// SeedLocales upserts the locale directory rows for the supported set.
func SeedLocales(ctx context.Context, db *bun.DB, cfg Config) error {
	return locales.SeedDirectory(ctx, db, locales.NewSet(cfg.Locales...))
}
