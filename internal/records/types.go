package records

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-translate/internal/i18n"
	"github.com/goliatone/go-translate/internal/locales"
)

// Table names the content tables eligible for bulk translation. The set is a
// closed allow-list: arbitrary table names never reach storage.
type Table string

const (
	TableInfoPages   Table = "info_pages"
	TableDeckPages   Table = "deck_pages"
	TableTournaments Table = "tournaments"
)

// ErrTableNotAllowed rejects tables outside the allow-list.
var ErrTableNotAllowed = errors.New("records: table not allowed")

// ParseTable validates a raw table name against the allow-list.
func ParseTable(raw string) (Table, error) {
	switch Table(raw) {
	case TableInfoPages, TableDeckPages, TableTournaments:
		return Table(raw), nil
	}
	return "", fmt.Errorf("%w: %q", ErrTableNotAllowed, raw)
}

// NotFoundError describes a missing content record.
type NotFoundError struct {
	Table Table
	Key   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("records: %s %q not found", e.Table, e.Key)
}

// Record is the view of a content row the translation layer works with:
// named base-value fields, their multilingual sibling maps, and a lifecycle
// status owned by the bulk translator.
type Record interface {
	RecordID() uuid.UUID
	// Field returns the base value and multilingual map for a named field.
	// ok is false for fields the record type does not carry.
	Field(name string) (base string, m i18n.Map, ok bool)
	// SetFieldMap replaces the multilingual map of a named field. Unknown
	// names are ignored.
	SetFieldMap(name string, m i18n.Map)
	SetTranslationStatus(status i18n.Status)
	TranslationState() i18n.Status
}

// CardCarrier is implemented by records embedding a structured card list
// whose elements carry their own localizable pack names.
type CardCarrier interface {
	CardList() []DeckCard
	SetLocalizedCards(byLocale map[locales.Tag][]DeckCard)
}

// DeckCard is one entry of a deck's card list. Pack names are the only
// localized attribute; card names stay in their printed language.
type DeckCard struct {
	Name     string   `json:"name"`
	PackName string   `json:"pack_name"`
	PackI18N i18n.Map `json:"pack_name_i18n,omitempty"`
	Count    int      `json:"count"`
}

// InfoPage is an informational article (news, guides, rules).
type InfoPage struct {
	bun.BaseModel `bun:"table:info_pages,alias:ip"`

	ID              uuid.UUID   `bun:",pk,type:uuid"                                 json:"id"`
	Slug            string      `bun:"slug,notnull,unique"                           json:"slug"`
	Title           string      `bun:"title,notnull"                                 json:"title"`
	Description     string      `bun:"description"                                   json:"description"`
	Body            string      `bun:"body"                                          json:"body"`
	TitleI18N       i18n.Map    `bun:"title_i18n,type:jsonb"                         json:"title_i18n,omitempty"`
	DescriptionI18N i18n.Map    `bun:"description_i18n,type:jsonb"                   json:"description_i18n,omitempty"`
	BodyI18N        i18n.Map    `bun:"body_i18n,type:jsonb"                          json:"body_i18n,omitempty"`
	Status          i18n.Status `bun:"translation_status,notnull,default:'none'"     json:"translation_status"`
	CreatedAt       time.Time   `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time   `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// DeckPage is a published deck list with per-card pack attribution.
type DeckPage struct {
	bun.BaseModel `bun:"table:deck_pages,alias:dp"`

	ID              uuid.UUID                   `bun:",pk,type:uuid"                                 json:"id"`
	Slug            string                      `bun:"slug,notnull,unique"                           json:"slug"`
	Title           string                      `bun:"title,notnull"                                 json:"title"`
	Description     string                      `bun:"description"                                   json:"description"`
	TitleI18N       i18n.Map                    `bun:"title_i18n,type:jsonb"                         json:"title_i18n,omitempty"`
	DescriptionI18N i18n.Map                    `bun:"description_i18n,type:jsonb"                   json:"description_i18n,omitempty"`
	Cards           []DeckCard                  `bun:"cards,type:jsonb"                              json:"cards,omitempty"`
	CardsI18N       map[locales.Tag][]DeckCard  `bun:"cards_i18n,type:jsonb"                         json:"cards_i18n,omitempty"`
	Status          i18n.Status                 `bun:"translation_status,notnull,default:'none'"     json:"translation_status"`
	CreatedAt       time.Time                   `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time                   `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// Tournament is an event announcement.
type Tournament struct {
	bun.BaseModel `bun:"table:tournaments,alias:tr"`

	ID              uuid.UUID   `bun:",pk,type:uuid"                                 json:"id"`
	Slug            string      `bun:"slug,notnull,unique"                           json:"slug"`
	Title           string      `bun:"title,notnull"                                 json:"title"`
	Description     string      `bun:"description"                                   json:"description"`
	TitleI18N       i18n.Map    `bun:"title_i18n,type:jsonb"                         json:"title_i18n,omitempty"`
	DescriptionI18N i18n.Map    `bun:"description_i18n,type:jsonb"                   json:"description_i18n,omitempty"`
	EventDate       *time.Time  `bun:"event_date,nullzero"                           json:"event_date,omitempty"`
	Status          i18n.Status `bun:"translation_status,notnull,default:'none'"     json:"translation_status"`
	CreatedAt       time.Time   `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt       time.Time   `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
