package locales

import "strings"

// Tag is a normalized locale identifier: lower-cased language subtag,
// optionally followed by a single "-" and a lower-cased region subtag
// (e.g. "ja", "en", "zh-cn", "zh-tw").
type Tag string

// aliases maps well-known variant spellings onto canonical tags.
var aliases = map[string]Tag{
	"zh-hans": "zh-cn",
	"zh-hant": "zh-tw",
	"zh-sg":   "zh-cn",
	"zh-hk":   "zh-tw",
	"zh-mo":   "zh-tw",
	"in":      "id",
	"iw":      "he",
}

// Normalize canonicalizes a raw locale string: case folding, "_" separators
// replaced by "-", extra subtags dropped, known aliases resolved. Malformed
// or empty input yields the empty tag.
func Normalize(raw string) Tag {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return ""
	}
	value = strings.ReplaceAll(value, "_", "-")

	parts := strings.Split(value, "-")
	lang := parts[0]
	if lang == "" || len(lang) > 8 || !isAlpha(lang) {
		return ""
	}
	tag := lang
	if len(parts) > 1 && parts[1] != "" && len(parts[1]) <= 4 {
		tag = lang + "-" + parts[1]
	}
	if alias, ok := aliases[tag]; ok {
		return alias
	}
	if alias, ok := aliases[lang]; ok && tag == lang {
		return alias
	}
	return Tag(tag)
}

// Base returns the language subtag without any region ("zh-cn" -> "zh").
func (t Tag) Base() Tag {
	value := string(t)
	if idx := strings.IndexByte(value, '-'); idx > 0 {
		return Tag(value[:idx])
	}
	return t
}

// String implements fmt.Stringer.
func (t Tag) String() string {
	return string(t)
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Set is a fixed, ordered collection of supported locales. Order is
// significant: it drives bulk translation fan-out and list endpoints.
type Set struct {
	ordered []Tag
	index   map[Tag]struct{}
}

// NewSet builds a supported-locale set from raw tags, normalizing and
// deduplicating while preserving first-seen order.
func NewSet(raw ...string) Set {
	set := Set{index: make(map[Tag]struct{}, len(raw))}
	for _, value := range raw {
		tag := Normalize(value)
		if tag == "" {
			continue
		}
		if _, ok := set.index[tag]; ok {
			continue
		}
		set.index[tag] = struct{}{}
		set.ordered = append(set.ordered, tag)
	}
	return set
}

// Contains reports membership of an already-normalized tag.
func (s Set) Contains(tag Tag) bool {
	_, ok := s.index[tag]
	return ok
}

// Tags returns the supported tags in configuration order.
func (s Set) Tags() []Tag {
	out := make([]Tag, len(s.ordered))
	copy(out, s.ordered)
	return out
}

// Len returns the number of supported locales.
func (s Set) Len() int {
	return len(s.ordered)
}

// MatchPrefix returns the supported tag matching the candidate either
// exactly or by language prefix ("en-us" -> "en", "zh" -> "zh-cn" when only
// regional variants are supported).
func (s Set) MatchPrefix(tag Tag) (Tag, bool) {
	if tag == "" {
		return "", false
	}
	if s.Contains(tag) {
		return tag, true
	}
	base := tag.Base()
	if base != tag && s.Contains(base) {
		return base, true
	}
	for _, candidate := range s.ordered {
		if candidate.Base() == base {
			return candidate, true
		}
	}
	return "", false
}
