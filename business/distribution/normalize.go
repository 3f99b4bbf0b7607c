package distribution

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds a free-text category or name into its comparable form:
// lowercase, accents stripped, every run of non [a-z0-9] characters collapsed
// into a single space, trimmed. Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	if s == "" {
		return ""
	}

	// transformers carry state, build one per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingSpace := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
			continue
		}
		pendingSpace = true
	}

	return b.String()
}

// keywords splits a normalized query into words longer than two characters.
func keywords(normalized string) []string {
	fields := strings.Fields(normalized)
	out := fields[:0]
	for _, f := range fields {
		if len(f) > 2 {
			out = append(out, f)
		}
	}
	return out
}

// containsTerm reports whether term appears in field. Empty values never match.
func containsTerm(field, term string) bool {
	if field == "" || term == "" {
		return false
	}
	return strings.Contains(field, term)
}

// containsWord reports whether term appears in field as whole words, so
// "mobile" matches "pieces mobile" but not "automobile". Both sides must be
// normalized.
func containsWord(field, term string) bool {
	if field == "" || term == "" {
		return false
	}
	return strings.Contains(" "+field+" ", " "+term+" ")
}
