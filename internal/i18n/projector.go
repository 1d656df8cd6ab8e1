package i18n

import "github.com/goliatone/go-translate/internal/locales"

// Projector localizes multilingual fields against a base locale. It is a
// pure value type: projection never mutates its inputs and never fails.
type Projector struct {
	baseLocale locales.Tag
}

// NewProjector constructs a projector for the given base (authoring) locale.
func NewProjector(baseLocale locales.Tag) Projector {
	return Projector{baseLocale: baseLocale}
}

// BaseLocale returns the authoring locale.
func (p Projector) BaseLocale() locales.Tag {
	return p.baseLocale
}

// Project returns the localized value of a single field. The base value is
// returned when the requested locale is the base locale, the map is absent,
// the key is missing, or the stored value is empty (an empty translation is
// treated as missing so content never renders blank).
func (p Projector) Project(base string, m Map, locale locales.Tag) string {
	if locale == p.baseLocale || len(m) == 0 {
		return base
	}
	if value, ok := m[locale]; ok && value != "" {
		return value
	}
	return base
}

// ProjectedField pairs a localized value with whether a translation was used.
type ProjectedField struct {
	Value      string
	Translated bool
}

// ProjectField is Project with provenance, used by handlers that surface
// which fields fell back to the base language.
func (p Projector) ProjectField(base string, m Map, locale locales.Tag) ProjectedField {
	if locale == p.baseLocale || len(m) == 0 {
		return ProjectedField{Value: base}
	}
	if value, ok := m[locale]; ok && value != "" {
		return ProjectedField{Value: value, Translated: true}
	}
	return ProjectedField{Value: base}
}

// ProjectSlice localizes a slice element-wise. Elements without a usable
// translation degrade individually to their base value; one missing element
// never fails the rest of the projection.
func ProjectSlice[T any](p Projector, items []T, locale locales.Tag, project func(item T, p Projector, locale locales.Tag) T) []T {
	if len(items) == 0 {
		return items
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = project(item, p, locale)
	}
	return out
}
