package interfaces

import "context"

// CachedTranslation is the read view of a translation cache entry.
type CachedTranslation struct {
	TranslatedText string
	Service        string
}

// TranslationCache is a read-through persistent cache of machine translation
// results keyed by the exact (text, source locale, target locale) tuple.
type TranslationCache interface {
	// Lookup returns the cached translation for the key tuple. A miss is
	// reported through the boolean, not an error.
	Lookup(ctx context.Context, text, sourceLocale, targetLocale string) (CachedTranslation, bool, error)
	// Store persists a translation. Storing an already-present key is not an
	// error; the write is an idempotent upsert.
	Store(ctx context.Context, text, sourceLocale, targetLocale, translated, service string) error
}
