package goquery

import (
	gq "github.com/PuerkitoBio/goquery"
	"github.com/mapacultural/editais"
)

var _ editais.Extractor = (*AMFRIExtractor)(nil)

const amfriCap = 10

// AMFRIExtractor targets the AMFRI municipal association site, where notices
// are published as table rows and download lists.
type AMFRIExtractor struct{}

// NewAMFRIExtractor creates a new AMFRIExtractor.
func NewAMFRIExtractor() *AMFRIExtractor {
	return &AMFRIExtractor{}
}

// Name returns the extractor's identifier.
func (e *AMFRIExtractor) Name() string { return "amfri" }

// Extract parses an AMFRI page and returns candidate records.
func (e *AMFRIExtractor) Extract(html string, source editais.Source, term string) ([]editais.Record, error) {
	doc, base, err := parseDoc(html, source)
	if err != nil {
		return nil, err
	}

	c := newCollector(amfriCap)

	doc.Find("tr, li").Each(func(_ int, sel *gq.Selection) {
		text := elementText(sel)
		if !editais.HasRealMatch(text, term) {
			return
		}
		c.add(editais.Record{
			Title:          editais.Truncate(text, 120),
			Link:           nearestLink(sel, base, source),
			Source:         source.Hostname(),
			Excerpt:        editais.Truncate(text, 300),
			Date:           dateFor(text, ""),
			Kind:           editais.KindWeb,
			MatchedKeyword: editais.MatchedKeyword(text),
			Relevance:      editais.Score(text, term, editais.ElementList),
		})
	})

	doc.Find("a[href]").Each(func(_ int, sel *gq.Selection) {
		text := elementText(sel)
		if !editais.HasRealMatch(text, term) {
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
