package locales

import (
	"context"
	"time"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Locale is the directory row hosts read to render language pickers. The
// resolver works off the configured closed set; this table only carries
// display metadata.
type Locale struct {
	bun.BaseModel `bun:"table:locales,alias:lc"`

	ID         uuid.UUID `bun:",pk,type:uuid"                                 json:"id"`
	Code       string    `bun:"code,notnull,unique"                           json:"code"`
	Name       string    `bun:"name,notnull"                                  json:"name"`
	NativeName string    `bun:"native_name"                                   json:"native_name"`
	Enabled    bool      `bun:"enabled,notnull,default:true"                  json:"enabled"`
	CreatedAt  time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt  time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// NewLocaleRepository constructs the directory repository.
func NewLocaleRepository(db *bun.DB) repository.Repository[*Locale] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Locale]{
		NewRecord: func() *Locale { return &Locale{} },
		GetID: func(l *Locale) uuid.UUID {
			return l.ID
		},
		SetID: func(l *Locale, id uuid.UUID) {
			l.ID = id
		},
		GetIdentifier: func() string {
			return "code"
		},
		GetIdentifierValue: func(l *Locale) string {
			return l.Code
		},
	})
}

// localeNames maps supported tags to English and native display names.
var localeNames = map[Tag][2]string{
	"ja":    {"Japanese", "日本語"},
	"en":    {"English", "English"},
	"zh-cn": {"Chinese (Simplified)", "简体中文"},
	"zh-tw": {"Chinese (Traditional)", "繁體中文"},
	"ko":    {"Korean", "한국어"},
	"fr":    {"French", "Français"},
	"es":    {"Spanish", "Español"},
	"de":    {"German", "Deutsch"},
	"id":    {"Indonesian", "Bahasa Indonesia"},
	"he":    {"Hebrew", "עברית"},
	"pt":    {"Portuguese", "Português"},
	"it":    {"Italian", "Italiano"},
	"th":    {"Thai", "ไทย"},
	"vi":    {"Vietnamese", "Tiếng Việt"},
}

// DisplayNames returns the English and native names for a tag. Unknown tags
// fall back to the raw code so seeding never drops a configured locale.
func DisplayNames(tag Tag) (name, native string) {
	if names, ok := localeNames[tag]; ok {
		return names[0], names[1]
	}
	return tag.String(), tag.String()
}

// SeedDirectory upserts one directory row per supported locale. Existing
// rows keep their enabled flag; only display names are refreshed.
func SeedDirectory(ctx context.Context, db *bun.DB, supported Set) error {
	for _, tag := range supported.Tags() {
		name, native := DisplayNames(tag)
		locale := &Locale{
			ID:         uuid.New(),
			Code:       tag.String(),
			Name:       name,
			NativeName: native,
			Enabled:    true,
		}
		_, err := db.NewInsert().
			Model(locale).
			On("CONFLICT (code) DO UPDATE").
			Set("name = EXCLUDED.name").
			Set("native_name = EXCLUDED.native_name").
			Exec(ctx)
		if err != nil {
			return err
		}
	}
	return nil
}

// ListDirectory returns the enabled directory rows ordered by code.
func ListDirectory(ctx context.Context, db *bun.DB) ([]*Locale, error) {
	var out []*Locale
	err := db.NewSelect().
		Model(&out).
		Where("enabled = ?", true).
		Order("code ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return out, nil
}
