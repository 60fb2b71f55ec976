package goquery

import (
	gq "github.com/PuerkitoBio/goquery"
	"github.com/mapacultural/editais"
)

var _ editais.Extractor = (*FCCExtractor)(nil)

const fccCap = 25

// FCCExtractor targets the Fundação Catarinense de Cultura site, a WordPress
// install where edicts are published as posts with the date in the entry
// metadata.
type FCCExtractor struct{}

// NewFCCExtractor creates a new FCCExtractor.
func NewFCCExtractor() *FCCExtractor {
	return &FCCExtractor{}
}

// Name returns the extractor's identifier.
func (e *FCCExtractor) Name() string { return "fcc" }

// Extract parses an FCC page and returns candidate records.
func (e *FCCExtractor) Extract(html string, source editais.Source, term string) ([]editais.Record, error) {
	doc, base, err := parseDoc(html, source)
	if err != nil {
		return nil, err
	}

	c := newCollector(fccCap)

	doc.Find("article, .post, .entry").Each(func(_ int, sel *gq.Selection) {
		title := elementText(sel.Find(".entry-title, h1, h2, h3").First())
		body := elementText(sel)
		if !editais.HasRealMatch(title, term) && !editais.HasRealMatch(body, term) {
			return
		}
		meta := elementText(sel.Find(".entry-date, .posted-on, time").First())
		c.add(editais.Record{
			Title:          editais.Truncate(title, 120),
			Link:           nearestLink(sel, base, source),
			Source:         source.Hostname(),
			Excerpt:        editais.Truncate(body, 300),
			Date:           dateFor(meta, body),
			Kind:           editais.KindWeb,
			MatchedKeyword: editais.MatchedKeyword(title + " " + body),
			Relevance:      editais.Score(title, term, editais.ElementHeading),
		})
	})

	// Direct edict links outside post markup.
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
