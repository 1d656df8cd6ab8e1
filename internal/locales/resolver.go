package locales

import (
	"sort"
	"strconv"
	"strings"
)

// Resolver determines the effective display locale for a request from an
// explicit parameter, an Accept-Language header, or the configured default.
// Resolution never fails: the result is always a member of the supported set.
type Resolver struct {
	supported Set
	fallback  Tag
}

// NewResolver constructs a resolver over the supported set. The default tag
// must be a member of the set; when it is not, the first supported tag is
// used so Resolve can keep its never-fails contract.
func NewResolver(supported Set, defaultLocale Tag) *Resolver {
	fallback := Normalize(string(defaultLocale))
	if !supported.Contains(fallback) {
		tags := supported.Tags()
		if len(tags) > 0 {
			fallback = tags[0]
		}
	}
	return &Resolver{supported: supported, fallback: fallback}
}

// Default returns the fallback locale.
func (r *Resolver) Default() Tag {
	return r.fallback
}

// Supported returns the underlying supported set.
func (r *Resolver) Supported() Set {
	return r.supported
}

// Resolve picks the effective locale. An explicit parameter wins when it
// normalizes to a supported tag; otherwise the Accept-Language header is
// consulted in descending quality order with language-prefix matching;
// otherwise the default applies.
func (r *Resolver) Resolve(explicit, acceptLanguage string) Tag {
	if tag := Normalize(explicit); tag != "" {
		if matched, ok := r.supported.MatchPrefix(tag); ok {
			return matched
		}
	}
	for _, tag := range parseAcceptLanguage(acceptLanguage) {
		if matched, ok := r.supported.MatchPrefix(tag); ok {
			return matched
		}
	}
	return r.fallback
}

type weightedTag struct {
	tag     Tag
	quality float64
	order   int
}

// parseAcceptLanguage parses the weighted preference list syntax
// ("ja,en-US;q=0.9,en;q=0.8") into tags sorted by descending quality.
// Entries with q=0 and unparsable entries are dropped.
func parseAcceptLanguage(header string) []Tag {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil
	}

	var entries []weightedTag
	for i, part := range strings.Split(header, ",") {
		fields := strings.Split(part, ";")
		tag := Normalize(fields[0])
		if tag == "" || tag == "*" {
			continue
		}
		quality := 1.0
		for _, field := range fields[1:] {
			field = strings.TrimSpace(field)
			if !strings.HasPrefix(field, "q=") {
				continue
			}
			parsed, err := strconv.ParseFloat(field[2:], 64)
			if err != nil || parsed < 0 || parsed > 1 {
				quality = 0
				break
			}
			quality = parsed
		}
		if quality <= 0 {
			continue
		}
		entries = append(entries, weightedTag{tag: tag, quality: quality, order: i})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].quality == entries[j].quality {
			return entries[i].order < entries[j].order
		}
		return entries[i].quality > entries[j].quality
	})

	out := make([]Tag, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.tag)
	}
	return out
}
