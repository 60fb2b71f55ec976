package editais

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combining matches the combining diacritical marks block (U+0300–U+036F)
// produced by canonical decomposition of accented Latin letters.
var combining = runes.Predicate(func(r rune) bool {
	return r >= 0x0300 && r <= 0x036f
})

var stripMarks = transform.Chain(norm.NFD, runes.Remove(combining))

// Normalize lower-cases text, applies Unicode canonical decomposition,
// strips combining diacritical marks, and trims surrounding whitespace.
// It is pure, total, and idempotent; empty input yields an empty string.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	lowered := strings.ToLower(text)
	out, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		// The transform chain cannot fail on valid UTF-8; fall back to the
		// lowered form for malformed input rather than erroring.
		out = lowered
	}
	return strings.TrimSpace(out)
}
