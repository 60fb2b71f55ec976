package editais

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// monthNumbers maps Portuguese month names to their two-digit numbers.
var monthNumbers = map[string]string{
	"janeiro": "01", "fevereiro": "02", "março": "03", "abril": "04",
	"maio": "05", "junho": "06", "julho": "07", "agosto": "08",
	"setembro": "09", "outubro": "10", "novembro": "11", "dezembro": "12",
}

const monthAlt = `janeiro|fevereiro|março|abril|maio|junho|julho|agosto|setembro|outubro|novembro|dezembro`

// datePattern pairs a recognizer with a converter producing the extracted
// date string from its submatches.
type datePattern struct {
	re      *regexp.Regexp
	convert func(m []string) string
}

// datePatterns is the ordered recognizer list. The first matching pattern
// wins; ordering is by specificity, not generality. Patterns operate on raw
// (unnormalized) text so accented month names and labels match as written.
var datePatterns = []datePattern{
	// dd/mm/yyyy with slash, dash or dot separators.
	{
		re:      regexp.MustCompile(`(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{4})`),
		convert: func(m []string) string { return canonical(m[1], m[2], m[3]) },
	},
	// yyyy/mm/dd variants.
	{
		re:      regexp.MustCompile(`(\d{4})[/\-.](\d{1,2})[/\-.](\d{1,2})`),
		convert: func(m []string) string { return canonical(m[3], m[2], m[1]) },
	},
	// dd/mm/yy: the century is ambiguous, so the matched token is returned
	// verbatim rather than canonicalized.
	{
		re:      regexp.MustCompile(`(?:^|\D)(\d{1,2}[/\-.]\d{1,2}[/\-.]\d{2})(?:\D|$)`),
		convert: func(m []string) string { return m[1] },
	},
	// "<day> de <month> de <year>" in Portuguese.
	{
		re: regexp.MustCompile(`(?i)(\d{1,2})\s+de\s+(` + monthAlt + `)\s+de\s+(\d{4})`),
		convert: func(m []string) string {
			return canonical(m[1], monthNumber(m[2]), m[3])
		},
	},
	// "<month> de <year>": the day defaults to 01.
	{
		re: regexp.MustCompile(`(?i)(` + monthAlt + `)\s+de\s+(\d{4})`),
		convert: func(m []string) string {
			return canonical("01", monthNumber(m[1]), m[2])
		},
	},
	// Bare four-digit year in [1900, 2099] when isolated.
	{
		re:      regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`),
		convert: func(m []string) string { return canonical("01", "01", m[1]) },
	},
	// Year with contextual words.
	{
		re:      regexp.MustCompile(`(?i)\b(?:ano|em|de)\s+(\d{4})\b`),
		convert: func(m []string) string { return canonical("01", "01", m[1]) },
	},
	{
		re:      regexp.MustCompile(`(?i)\b(\d{4})\s+anos?\b`),
		convert: func(m []string) string { return canonical("01", "01", m[1]) },
	},
	// Labeled dates as published by bidding portals. The embedded numeric
	// date is extracted verbatim.
	{
		re:      regexp.MustCompile(`(?i)data\s+abertura:\s*(\d{2}/\d{2}/\d{4})`),
		convert: func(m []string) string { return m[1] },
	},
	{
		re:      regexp.MustCompile(`(?i)data\s+atualiza[çc][ãa]o:\s*(\d{2}/\d{2}/\d{4})`),
		convert: func(m []string) string { return m[1] },
	},
	{
		re:      regexp.MustCompile(`(?i)adicionado\s+em\s*(\d{2}/\d{2}/\d{4})`),
		convert: func(m []string) string { return m[1] },
	},
	{
		re:      regexp.MustCompile(`(?i)(\d{2}/\d{2}/\d{4})\s*[àa]s\s*\d{2}:\d{2}`),
		convert: func(m []string) string { return m[1] },
	},
	// Dates in edict/bidding context.
	{
		re: regexp.MustCompile(`(?i)(?:edital|licita[çc][ãa]o|sele[çc][ãa]o|concurso|chamada|concorr[êe]ncia|preg[ãa]o)\s+(?:de|em|para)\s+(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{4})`),
		convert: func(m []string) string { return canonical(m[1], m[2], m[3]) },
	},
}

// ExtractDate recognizes date expressions in text and returns the canonical
// dd/mm/yyyy form, or the raw matched token when a canonical form cannot
// confidently be produced. It returns the empty string when no pattern
// matches and never panics. The recognizer is heuristic: a four-digit number
// that is not a year can produce a false positive, which is acceptable.
func ExtractDate(text string) string {
	if text == "" {
		return ""
	}
	for _, p := range datePatterns {
		if m := p.re.FindStringSubmatch(text); m != nil {
			if out := p.convert(m); out != "" {
				return out
			}
		}
	}
	return ""
}

// canonical builds a zero-padded dd/mm/yyyy string.
func canonical(day, month, year string) string {
	return fmt.Sprintf("%s/%s/%s", pad2(day), pad2(month), year)
}

// pad2 left-pads a one-digit numeric string with a zero.
func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// monthNumber converts a Portuguese month name to its two-digit number.
// Unknown names map to "01".
func monthNumber(name string) string {
	if n, ok := monthNumbers[strings.ToLower(name)]; ok {
		return n
	}
	return "01"
}

var dateValueRE = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})$`)

// DateValue parses an extracted date string into day, month and year for
// range filtering. It accepts dd/mm/yyyy, dd-mm-yyyy and two-digit-year
// variants; ok is false when the string is not a recognizable date.
func DateValue(date string) (day, month, year int, ok bool) {
	m := dateValueRE.FindStringSubmatch(strings.TrimSpace(date))
	if m == nil {
		return 0, 0, 0, false
	}
	day, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	year, _ = strconv.Atoi(m[3])
	if year < 100 {
		if year < 50 {
			year += 2000
		} else {
			year += 1900
		}
	}
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return 0, 0, 0, false
	}
	return day, month, year, true
}
