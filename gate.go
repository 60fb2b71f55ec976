package editais

import "strings"

// Relevant is the strict admission filter used by the conservative
// extraction tier. All rules must hold:
//
//  1. The normalized text contains the normalized search term.
//  2. The text mentions at least one edict/bidding term.
//  3. The text mentions at least one culture/arts term.
//  4. For government (.gov.br) sources, the text must mention a Santa
//     Catarina locality or a national-scope phrase.
//
// This is deliberately more conservative than the free-search tier, which
// only requires HasRealMatch; the divergence between the two regimes is a
// documented design choice, not drift to reconcile.
func Relevant(text, term, sourceURL string) bool {
	normalized := Normalize(text)

	if !strings.Contains(normalized, Normalize(term)) {
		return false
	}

	if !containsAny(normalized, EdictTerms) {
		return false
	}

	if !containsAny(normalized, CultureTerms) {
		return false
	}

	if strings.Contains(sourceURL, ".gov.br") && !MentionsRegion(text) {
		return false
	}

	return true
}

// MentionsRegion reports whether text names a Santa Catarina locality or a
// national-scope phrase. Two-letter locale terms ("sc") are matched as whole
// tokens so that words like "inscrições" do not trigger the gate.
func MentionsRegion(text string) bool {
	normalized := Normalize(text)

	for _, t := range SCLocaleTerms {
		if len(t) <= 2 {
			if containsToken(normalized, t) {
				return true
			}
			continue
		}
		if strings.Contains(normalized, t) {
			return true
		}
	}

	return containsAny(normalized, NationalScopeTerms)
}

// containsAny reports whether any of the normalized terms occurs in the
// normalized text.
func containsAny(normalized string, terms []string) bool {
	for _, t := range terms {
		if strings.Contains(normalized, t) {
			return true
		}
	}
	return false
}

// containsToken reports whether tok occurs in normalized text bounded by
// non-alphanumeric characters or the string edges.
func containsToken(normalized, tok string) bool {
	idx := 0
	for {
		i := strings.Index(normalized[idx:], tok)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(tok)
		beforeOK := start == 0 || !isAlphanumeric(normalized[start-1])
		afterOK := end == len(normalized) || !isAlphanumeric(normalized[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isAlphanumeric(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b >= 'A' && b <= 'Z'
}
