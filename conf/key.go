package conf

import (
	"log/slog"
	"regexp"

	"github.com/sahilm/fuzzy"
)

// maxSuggestions caps the fuzzy near-miss suggestions attached to a failed
// key lookup.
const maxSuggestions = 3

// ResolveKey maps a full or shorthand key to the unique full path it names in
// the flattened document.
//
// An exact key match wins immediately, so a fully qualified path never trips
// the ambiguity check against sibling suffixes. Otherwise the key is treated
// as a shorthand and matched as a trailing segment sequence: the anchored
// pattern `(^|\.)key$` guarantees that "tags" matches "build.tags" but not
// "system_tags_backup", because the match must begin at the start of a key or
// immediately after a "." boundary and must reach the end of the key.
//
// With unique on, more than one suffix match fails with [ErrAmbiguousKey];
// with unique off, the first match in sorted key order is returned. Zero
// matches fail with [ErrKeyNotFound] carrying near-miss suggestions.
func (f FlatConfig) ResolveKey(key string, unique bool) (string, error) {
	if _, ok := f[key]; ok {
		return key, nil
	}

	pattern, err := suffixPattern(key)
	if err != nil {
		return "", ErrInvalidPath.Wrap(err).
			With(slog.String("key", key))
	}

	var matches []string

	for _, full := range f.Keys() {
		if pattern.MatchString(full) {
			matches = append(matches, full)
		}
	}

	switch {
	case len(matches) == 0:
		return "", ErrKeyNotFound.
			With(
				slog.String("key", key),
				slog.Any("suggestions", f.Suggest(key)),
			)

	case len(matches) > 1 && unique:
		return "", ErrAmbiguousKey.
			With(
				slog.String("key", key),
				slog.Any("matches", matches),
			)
	}

	return matches[0], nil
}

// suffixPattern builds the anchored suffix pattern for a shorthand key.
// All regexp metacharacters in the key (notably "[" and "]" from array
// segments) are escaped.
func suffixPattern(key string) (*regexp.Regexp, error) {
	return regexp.Compile(`(^|\.)` + regexp.QuoteMeta(key) + `$`)
}

// Suggest returns the closest known paths to key, for "did you mean"
// diagnostics on failed lookups.
func (f FlatConfig) Suggest(key string) []string {
	matches := fuzzy.Find(key, f.Keys())

	suggestions := make([]string, 0, maxSuggestions)
	for _, m := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}

		suggestions = append(suggestions, m.Str)
	}

	return suggestions
}
