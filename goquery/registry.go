package goquery

import (
	"strings"

	"github.com/mapacultural/editais"
)

var _ editais.ExtractorRegistry = (*Registry)(nil)

// Registry maps URL substring patterns to extraction strategies. Patterns
// are checked in registration order, so specific hosts must be registered
// before broader ones ("fcc.sc.gov.br" before "gov.br"). Sources matching
// no pattern get the fallback extractor.
type Registry struct {
	entries  []registryEntry
	fallback editais.Extractor
}

type registryEntry struct {
	pattern   string
	extractor editais.Extractor
}

// NewRegistry creates a Registry with the given fallback extractor.
func NewRegistry(fallback editais.Extractor) *Registry {
	return &Registry{fallback: fallback}
}

// NewDefaultRegistry creates a Registry wired with the built-in DOM
// strategies. Non-DOM strategies, like the RSS extractor, are registered by
// the caller.
func NewDefaultRegistry() *Registry {
	r := NewRegistry(NewGenericExtractor())
	r.Register("culturaemercado.com.br", NewCulturaMercadoExtractor())
	r.Register("prosas.com.br", NewProsasExtractor())
	r.Register("fcc.sc.gov.br", NewFCCExtractor())
	r.Register("cultura.sc.gov.br", NewCulturaSCExtractor())
	r.Register("amfri.org.br", NewAMFRIExtractor())
	r.Register("sesc-sc.com.br", NewSESCExtractor())
	r.Register("gov.br", NewGovBRExtractor())
	return r
}

// GetForSource returns the extractor whose pattern first matches the source
// URL, or the fallback. The result is never nil.
func (r *Registry) GetForSource(source editais.Source) editais.Extractor {
	for _, e := range r.entries {
		if strings.Contains(source.URL, e.pattern) {
			return e.extractor
		}
	}
	return r.fallback
}

// Register adds an extractor for sources whose URL contains pattern.
func (r *Registry) Register(pattern string, e editais.Extractor) {
	r.entries = append(r.entries, registryEntry{pattern: pattern, extractor: e})
}

// List returns the names of all registered extractors, in registration
// order, followed by the fallback.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.entries)+1)
	for _, e := range r.entries {
		names = append(names, e.extractor.Name())
	}
	return append(names, r.fallback.Name())
}
