package goquery

import (
	gq "github.com/PuerkitoBio/goquery"
	"github.com/mapacultural/editais"
)

var _ editais.Extractor = (*CulturaMercadoExtractor)(nil)

const culturaMercadoCap = 25

// CulturaMercadoExtractor targets the Cultura e Mercado edict listing, a
// WordPress blog where each opportunity is a post headline.
type CulturaMercadoExtractor struct{}

// NewCulturaMercadoExtractor creates a new CulturaMercadoExtractor.
func NewCulturaMercadoExtractor() *CulturaMercadoExtractor {
	return &CulturaMercadoExtractor{}
}

// Name returns the extractor's identifier.
func (e *CulturaMercadoExtractor) Name() string { return "culturamercado" }

// Extract parses a Cultura e Mercado page and returns candidate records.
func (e *CulturaMercadoExtractor) Extract(html string, source editais.Source, term string) ([]editais.Record, error) {
	doc, base, err := parseDoc(html, source)
	if err != nil {
		return nil, err
	}

	c := newCollector(culturaMercadoCap)

	doc.Find("article, .post").Each(func(_ int, sel *gq.Selection) {
		title := elementText(sel.Find("h1 a, h2 a, h3 a, .entry-title").First())
		if title == "" {
			title = elementText(sel.Find("h1, h2, h3").First())
		}
		body := elementText(sel)
		if !editais.HasRealMatch(title, term) && !editais.HasRealMatch(body, term) {
			return
		}
		c.add(editais.Record{
			Title:          editais.Truncate(title, 120),
			Link:           nearestLink(sel, base, source),
			Source:         source.Hostname(),
			Excerpt:        editais.Truncate(body, 300),
			Date:           dateFor(body, ""),
			Kind:           editais.KindWeb,
			MatchedKeyword: editais.MatchedKeyword(title + " " + body),
			Relevance:      editais.Score(title, term, editais.ElementHeading),
		})
	})

	return c.results(source, term), nil
}
