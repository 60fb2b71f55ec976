package mock

import "github.com/mapacultural/editais"

var _ editais.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of editais.Extractor.
type Extractor struct {
	ExtractFn func(html string, source editais.Source, term string) ([]editais.Record, error)
	NameFn    func() string
}

func (e *Extractor) Extract(html string, source editais.Source, term string) ([]editais.Record, error) {
	return e.ExtractFn(html, source, term)
}

func (e *Extractor) Name() string {
	if e.NameFn == nil {
		return "mock"
	}
	return e.NameFn()
}

var _ editais.ExtractorRegistry = (*ExtractorRegistry)(nil)

// ExtractorRegistry is a mock implementation of editais.ExtractorRegistry.
type ExtractorRegistry struct {
	GetForSourceFn func(source editais.Source) editais.Extractor
	RegisterFn     func(pattern string, e editais.Extractor)
	ListFn         func() []string
}

func (r *ExtractorRegistry) GetForSource(source editais.Source) editais.Extractor {
	return r.GetForSourceFn(source)
}

func (r *ExtractorRegistry) Register(pattern string, e editais.Extractor) {
	if r.RegisterFn != nil {
		r.RegisterFn(pattern, e)
	}
}

func (r *ExtractorRegistry) List() []string {
	if r.ListFn == nil {
		return nil
	}
	return r.ListFn()
}
