package translationcache

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Entry is a persisted translation cache row. The (source_text,
// source_language, target_language) tuple is unique; everything else is
// bookkeeping that may be updated after creation.
type Entry struct {
	bun.BaseModel `bun:"table:translation_cache,alias:tc"`

	ID             uuid.UUID  `bun:",pk,type:uuid"                                  json:"id"`
	SourceText     string     `bun:"source_text,notnull,unique:translation_cache_key"     json:"source_text"`
	SourceLanguage string     `bun:"source_language,notnull,unique:translation_cache_key" json:"source_language"`
	TargetLanguage string     `bun:"target_language,notnull,unique:translation_cache_key" json:"target_language"`
	TranslatedText string     `bun:"translated_text,notnull"                        json:"translated_text"`
	ServiceUsed    string     `bun:"service_used"                                   json:"service_used,omitempty"`
	CharCount      int        `bun:"char_count,notnull,default:0"                   json:"char_count"`
	AccessCount    int64      `bun:"access_count,notnull,default:0"                 json:"access_count"`
	LastAccessedAt *time.Time `bun:"last_accessed_at,nullzero"                      json:"last_accessed_at,omitempty"`
	CreatedAt      time.Time  `bun:"created_at,nullzero,default:current_timestamp"  json:"created_at"`
}

// Key identifies a cache entry by its content-addressed tuple.
type Key struct {
	SourceText     string
	SourceLanguage string
	TargetLanguage string
}

// KeyOf returns the entry's key tuple.
func KeyOf(entry *Entry) Key {
	if entry == nil {
		return Key{}
	}
	return Key{
		SourceText:     entry.SourceText,
		SourceLanguage: entry.SourceLanguage,
		TargetLanguage: entry.TargetLanguage,
	}
}
