package editais

import "strings"

// Snippet extracts a bounded excerpt around the most relevant part of text.
// It looks for the first anchor keyword whose surrounding context also
// contains the search term, then falls back to the context around the term
// itself. Returns the empty string when neither is present.
func Snippet(text string, anchors []string, term string) string {
	normalized := Normalize(text)
	normalizedTerm := Normalize(term)

	for _, anchor := range anchors {
		idx := strings.Index(normalized, Normalize(anchor))
		if idx < 0 {
			continue
		}
		ctx := sliceAround(text, idx, 200)
		if strings.Contains(Normalize(ctx), normalizedTerm) {
			return collapseWhitespace(ctx)
		}
	}

	if idx := strings.Index(normalized, normalizedTerm); idx >= 0 {
		return collapseWhitespace(sliceAround(text, idx, 150))
	}

	return ""
}

// Truncate shortens text to at most n runes, appending an ellipsis when
// anything was cut.
func Truncate(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "..."
}

// sliceAround returns up to radius bytes on each side of idx, clamped to
// the string and adjusted to valid rune boundaries.
func sliceAround(text string, idx, radius int) string {
	start := idx - radius
	if start < 0 {
		start = 0
	}
	end := idx + radius
	if end > len(text) {
		end = len(text)
	}
	for start > 0 && !isRuneStart(text[start]) {
		start--
	}
	for end < len(text) && !isRuneStart(text[end]) {
		end++
	}
	return text[start:end]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
