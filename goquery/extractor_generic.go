package goquery

import (
	"net/url"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/mapacultural/editais"
)

var _ editais.Extractor = (*GenericExtractor)(nil)

const genericCap = 30

// GenericExtractor is the fallback strategy for sources without a dedicated
// extractor. It sweeps links, headings, text blocks and image alt texts,
// admitting fragments where the search term occurs as a real token. Scoring
// is left to the shared scorer; the aggregator ranks across sources.
type GenericExtractor struct{}

// NewGenericExtractor creates a new GenericExtractor.
func NewGenericExtractor() *GenericExtractor {
	return &GenericExtractor{}
}

// Name returns the extractor's identifier.
func (e *GenericExtractor) Name() string { return "generic" }

// Extract parses HTML and returns candidate records for the search term.
func (e *GenericExtractor) Extract(html string, source editais.Source, term string) ([]editais.Record, error) {
	doc, base, err := parseDoc(html, source)
	if err != nil {
		return nil, err
	}

	c := newCollector(genericCap)

	doc.Find("a[href]").Each(func(_ int, sel *gq.Selection) {
		text := elementText(sel)
		if text == "" {
			text, _ = sel.Attr("title")
		}
		if !editais.HasRealMatch(text, term) {
			return
		}
		href, _ := sel.Attr("href")
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
			Kind:           kindForURL(link),
			MatchedKeyword: editais.MatchedKeyword(text + " " + context),
			Relevance:      editais.Score(text, term, editais.ElementLink),
		})
	})

	doc.Find("h1, h2, h3, h4").Each(func(_ int, sel *gq.Selection) {
		text := elementText(sel)
		if !editais.HasRealMatch(text, term) {
			return
		}
		c.add(editais.Record{
			Title:          editais.Truncate(text, 120),
			Link:           nearestLink(sel, base, source),
			Source:         source.Hostname(),
			Excerpt:        editais.Truncate(elementText(sel.Parent()), 200),
			Date:           dateFor(text, elementText(sel.Parent())),
			Kind:           editais.KindWeb,
			MatchedKeyword: editais.MatchedKeyword(text),
			Relevance:      editais.Score(text, term, editais.ElementHeading),
		})
	})

	doc.Find("p, li").Each(func(_ int, sel *gq.Selection) {
		text := elementText(sel)
		if len([]rune(text)) < 30 || !editais.HasRealMatch(text, term) {
			return
		}
		kind := editais.ElementParagraph
		if sel.Is("li") {
			kind = editais.ElementList
		}
		c.add(editais.Record{
			Title:          editais.Truncate(text, 120),
			Link:           nearestLink(sel, base, source),
			Source:         source.Hostname(),
			Excerpt:        editais.Truncate(text, 300),
			Date:           dateFor(text, ""),
			Kind:           editais.KindWeb,
			MatchedKeyword: editais.MatchedKeyword(text),
			Relevance:      editais.Score(text, term, kind),
		})
	})

	doc.Find("img[alt]").Each(func(_ int, sel *gq.Selection) {
		alt, _ := sel.Attr("alt")
		if !editais.HasRealMatch(alt, term) {
			return
		}
		c.add(editais.Record{
			Title:          editais.Truncate(alt, 120),
			Link:           nearestLink(sel, base, source),
			Source:         source.Hostname(),
			Excerpt:        editais.Truncate(alt, 200),
			Date:           editais.SentinelDate,
			Kind:           editais.KindWeb,
			MatchedKeyword: editais.MatchedKeyword(alt),
			Relevance:      editais.Score(alt, term, editais.ElementImage),
		})
	})

	return c.results(source, term), nil
}

// nearestLink returns the href of the element itself, a nested anchor, or an
// enclosing anchor, resolved against the base URL. Elements without any
// associated anchor point back at the source page.
func nearestLink(sel *gq.Selection, base *url.URL, source editais.Source) string {
	if href, ok := sel.Attr("href"); ok {
		if link := resolveLink(base, href); link != "" {
			return link
		}
	}
	if href, ok := sel.Find("a[href]").First().Attr("href"); ok {
		if link := resolveLink(base, href); link != "" {
			return link
		}
	}
	if href, ok := sel.Closest("a[href]").Attr("href"); ok {
		if link := resolveLink(base, href); link != "" {
			return link
		}
	}
	return source.URL
}
