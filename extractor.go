package editais

// Extractor is one extraction strategy: it walks a fetched page and emits
// raw candidate records for a single site or site family.
type Extractor interface {
	// Extract parses HTML and returns candidate records matching the
	// search term. Relative links are resolved against the source URL.
	// A parse failure yields an empty list and an error; the caller
	// degrades that source to zero records rather than aborting the scan.
	Extract(html string, source Source, term string) ([]Record, error)

	// Name returns the strategy's identifier (e.g., "govbr", "generic").
	Name() string
}

// ExtractorRegistry selects an extraction strategy by source URL.
type ExtractorRegistry interface {
	// GetForSource returns the strategy whose URL pattern matches the
	// source. The generic extractor is the unconditional fallback, so the
	// result is never nil.
	GetForSource(source Source) Extractor

	// Register adds a strategy for sources whose URL contains pattern.
	// Patterns are checked in registration order.
	Register(pattern string, e Extractor)

	// List returns the names of all registered strategies.
	List() []string
}

// Placeholder builds the "navigate to site" record emitted when extraction
// finds no candidates: a minimal pointer to the source is preferable to a
// silent zero-result failure.
func Placeholder(source Source, term string) Record {
	return Record{
		Title:          "Navegar em " + source.Name,
		Link:           source.URL,
		Source:         source.Hostname(),
		Excerpt:        "Acesse o site para buscar editais relacionados a \"" + term + "\"",
		Date:           SentinelDate,
		Kind:           KindWeb,
		MatchedKeyword: "navegação",
	}
}
