package goquery

import (
	"strings"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/mapacultural/editais"
)

var _ editais.Extractor = (*ProsasExtractor)(nil)

const prosasCap = 25

// ProsasExtractor targets the Prosas opportunity platform, where edicts are
// cards linking into /editais detail pages.
type ProsasExtractor struct{}

// NewProsasExtractor creates a new ProsasExtractor.
func NewProsasExtractor() *ProsasExtractor {
	return &ProsasExtractor{}
}

// Name returns the extractor's identifier.
func (e *ProsasExtractor) Name() string { return "prosas" }

// Extract parses a Prosas page and returns candidate records.
func (e *ProsasExtractor) Extract(html string, source editais.Source, term string) ([]editais.Record, error) {
	doc, base, err := parseDoc(html, source)
	if err != nil {
		return nil, err
	}

	c := newCollector(prosasCap)

	doc.Find("a[href]").Each(func(_ int, sel *gq.Selection) {
		href, _ := sel.Attr("href")
		if !strings.Contains(href, "/editais") && !strings.Contains(href, "/edital") {
			return
		}
		text := elementText(sel)
		if text == "" {
			text = elementText(sel.Parent())
		}
		if !editais.HasRealMatch(text, term) {
			return
		}
		link := resolveLink(base, href)
		if link == "" {
			return
		}
		context := elementText(sel.Parent())
		c.add(editais.Record{
			Title:          editais.Truncate(text, 120),
			Link:           link,
			Source:         source.Hostname(),
			Excerpt:        editais.Truncate(context, 200),
			Date:           dateFor(text, context),
			Kind:           editais.KindWeb,
			MatchedKeyword: editais.MatchedKeyword(text),
			Relevance:      editais.Score(text, term, editais.ElementLink),
		})
	})

	// Card headlines without edict-path links.
	doc.Find("h2, h3, .card-title").Each(func(_ int, sel *gq.Selection) {
		text := elementText(sel)
		if !editais.HasRealMatch(text, term) {
			return
		}
		c.add(editais.Record{
			Title:          editais.Truncate(text, 120),
			Link:           nearestLink(sel, base, source),
			Source:         source.Hostname(),
			Excerpt:        editais.Truncate(elementText(sel.Parent()), 200),
			Date:           dateFor(elementText(sel.Parent()), ""),
			Kind:           editais.KindWeb,
			MatchedKeyword: editais.MatchedKeyword(text),
			Relevance:      editais.Score(text, term, editais.ElementHeading),
		})
	})

	return c.results(source, term), nil
}
