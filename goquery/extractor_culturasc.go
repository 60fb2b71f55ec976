package goquery

import (
	gq "github.com/PuerkitoBio/goquery"
	"github.com/mapacultural/editais"
)

var _ editais.Extractor = (*CulturaSCExtractor)(nil)

const culturaSCCap = 15

// CulturaSCExtractor targets the Santa Catarina state culture portal, an
// Elementor-built site where announcements live in post widgets.
type CulturaSCExtractor struct{}

// NewCulturaSCExtractor creates a new CulturaSCExtractor.
func NewCulturaSCExtractor() *CulturaSCExtractor {
	return &CulturaSCExtractor{}
}

// Name returns the extractor's identifier.
func (e *CulturaSCExtractor) Name() string { return "culturasc" }

// Extract parses a cultura.sc.gov.br page and returns candidate records.
func (e *CulturaSCExtractor) Extract(html string, source editais.Source, term string) ([]editais.Record, error) {
	doc, base, err := parseDoc(html, source)
	if err != nil {
		return nil, err
	}

	c := newCollector(culturaSCCap)

	doc.Find(".elementor-post, article, .post-item").Each(func(_ int, sel *gq.Selection) {
		title := elementText(sel.Find(".elementor-post__title, h2, h3").First())
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

	doc.Find("a[href]").Each(func(_ int, sel *gq.Selection) {
		text := elementText(sel)
		if !editais.HasRealMatch(text, term) || !mentionsEdict(text) {
			return
		}
		href, _ := sel.Attr("href")
		link := resolveLink(base, href)
		if link == "" {
			return
		}
		c.add(editais.Record{
			Title:          editais.Truncate(text, 120),
			Link:           link,
			Source:         source.Hostname(),
			Excerpt:        editais.Truncate(elementText(sel.Parent()), 200),
			Date:           dateFor(text, elementText(sel.Parent())),
			Kind:           kindForURL(link),
			MatchedKeyword: editais.MatchedKeyword(text),
			Relevance:      editais.Score(text, term, editais.ElementLink),
		})
	})

	return c.results(source, term), nil
}
