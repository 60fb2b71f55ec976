package goquery

import (
	"strings"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/mapacultural/editais"
)

var _ editais.Extractor = (*SESCExtractor)(nil)

const sescCap = 25

// sescAnchors are the excerpt anchor keywords for SESC bidding pages.
var sescAnchors = []string{"licitação", "edital", "concorrência", "pregão"}

// SESCExtractor targets the SESC SC bidding portal. It is the conservative
// tier: candidates pass the full relevance gate instead of the loose token
// match, excerpts are anchored on bidding keywords, and relevance is fixed
// rather than scored because the gate already guarantees topical fit.
type SESCExtractor struct{}

// NewSESCExtractor creates a new SESCExtractor.
func NewSESCExtractor() *SESCExtractor {
	return &SESCExtractor{}
}

// Name returns the extractor's identifier.
func (e *SESCExtractor) Name() string { return "sesc" }

// Extract parses a SESC page and returns gated candidate records.
func (e *SESCExtractor) Extract(html string, source editais.Source, term string) ([]editais.Record, error) {
	doc, base, err := parseDoc(html, source)
	if err != nil {
		return nil, err
	}

	c := newCollector(sescCap)

	doc.Find("tr, li, article, .licitacao, .edital-item").Each(func(_ int, sel *gq.Selection) {
		text := elementText(sel)
		if !editais.Relevant(text, term, source.URL) {
			return
		}
		excerpt := editais.Snippet(text, sescAnchors, term)
		if excerpt == "" {
			excerpt = editais.Truncate(text, 200)
		}
		c.add(editais.Record{
			Title:          editais.Truncate(text, 120),
			Link:           nearestLink(sel, base, source),
			Source:         source.Hostname(),
			Excerpt:        excerpt,
			Date:           dateFor(text, ""),
			Kind:           editais.KindWeb,
			MatchedKeyword: editais.MatchedKeyword(text),
			Relevance:      sescRelevance(text),
		})
	})

	return c.results(source, term), nil
}

// sescRelevance assigns the fixed relevance for gated SESC records: edicts
// outrank other bidding modalities.
func sescRelevance(text string) int {
	if strings.Contains(editais.Normalize(text), "edital") {
		return 85
	}
	return 70
}
