package i18n

import "github.com/goliatone/go-translate/internal/locales"

// Map is a per-field multilingual sibling map: locale tag to translated
// string. A missing key means "not yet translated"; consumers fall back to
// the base value, never to an empty string.
type Map map[locales.Tag]string

// Clone returns a shallow copy of the map.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	for tag, value := range m {
		out[tag] = value
	}
	return out
}

// Status tracks the translation lifecycle of a record. It is mutated only by
// the bulk translator.
type Status string

const (
	StatusNone     Status = "none"
	StatusPending  Status = "pending"
	StatusPartial  Status = "partial"
	StatusComplete Status = "complete"
)

// Valid reports whether the status is one of the known lifecycle markers.
func (s Status) Valid() bool {
	switch s {
	case StatusNone, StatusPending, StatusPartial, StatusComplete:
		return true
	}
	return false
}
