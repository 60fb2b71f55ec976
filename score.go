package editais

import (
	"regexp"
	"strings"
)

// ElementKind hints at the markup element a text fragment came from.
type ElementKind string

// Element kinds recognized by the scorer.
const (
	ElementHeading   ElementKind = "heading"
	ElementLink      ElementKind = "link"
	ElementParagraph ElementKind = "paragraph"
	ElementList      ElementKind = "list"
	ElementImage     ElementKind = "image"
)

// baseScores holds the per-element-kind base score.
var baseScores = map[ElementKind]int{
	ElementHeading:   15,
	ElementLink:      10,
	ElementParagraph: 8,
	ElementList:      6,
	ElementImage:     5,
}

var dateLikeRE = regexp.MustCompile(`\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2,4}`)

// Score computes the relevance of a text fragment for a search term.
// The score is additive, deterministic, and floored at zero. The substring
// term-presence bonus here is deliberately looser than the HasRealMatch
// admission check: admission decides inclusion, this decides ranking.
func Score(text, term string, kind ElementKind) int {
	score := baseScores[kind]
	normalized := Normalize(text)

	for _, t := range (Query{Term: term}).Terms() {
		nt := Normalize(t)
		if nt == "" || !strings.Contains(normalized, nt) {
			continue
		}
		score += 20
		if normalized == nt {
			score += 50
		}
		if strings.HasPrefix(normalized, nt) {
			score += 30
		}
		if strings.HasSuffix(normalized, nt) {
			score += 25
		}
		score += strings.Count(normalized, nt) * 5
	}

	// Distinct reference keywords present in the text, weighted.
	seen := make(map[string]bool)
	for _, k := range ReferenceKeywords {
		if !seen[k] && strings.Contains(normalized, k) {
			seen[k] = true
			score += 8 * keywordWeight(k)
		}
	}

	for _, k := range EdictContextTerms {
		if strings.Contains(normalized, k) {
			score += 25
			break
		}
	}

	if dateLikeRE.MatchString(text) {
		score += 15
	}

	if kind == ElementLink {
		if strings.Contains(normalized, "edital") || strings.Contains(normalized, "licitacao") {
			score += 20
		}
		if strings.Contains(normalized, "pdf") || strings.Contains(normalized, "doc") {
			score += 15
		}
	}

	if n := len([]rune(text)); n < 10 {
		score -= 10
	} else if n > 200 {
		score -= 5
	}

	if score < 0 {
		return 0
	}
	return score
}

// HasRealMatch reports whether at least one sub-term of term occurs in text
// as a real token: bounded by a space, a hyphen, or the string edge rather
// than embedded inside a longer unrelated word ("art" inside "quarto" does
// not count). This admission check is stricter than the plain substring
// check used by Score's term-presence bonus; the two are distinct on
// purpose.
func HasRealMatch(text, term string) bool {
	normalized := Normalize(text)
	for _, t := range (Query{Term: term}).Terms() {
		nt := Normalize(t)
		if nt == "" || !strings.Contains(normalized, nt) {
			continue
		}
		if normalized == nt ||
			strings.HasPrefix(normalized, nt) ||
			strings.HasSuffix(normalized, nt) ||
			strings.Contains(normalized, nt+" ") ||
			strings.Contains(normalized, " "+nt) ||
			strings.Contains(normalized, nt+"-") ||
			strings.Contains(normalized, "-"+nt) {
			return true
		}
	}
	return false
}

// MatchedKeyword returns the first reference keyword found in the text, or
// "busca livre" when the text matched only the free search term.
func MatchedKeyword(text string) string {
	normalized := Normalize(text)
	for _, k := range ReferenceKeywords {
		if strings.Contains(normalized, k) {
			return k
		}
	}
	return "busca livre"
}
