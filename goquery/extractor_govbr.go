package goquery

import (
	"strings"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/mapacultural/editais"
)

var _ editais.Extractor = (*GovBRExtractor)(nil)

const govBRCap = 35

// GovBRExtractor targets gov.br portals (Plone-based). Listing pages use
// tile/card markup, and the actual edict documents are usually PDF
// attachments linked from the listing.
type GovBRExtractor struct{}

// NewGovBRExtractor creates a new GovBRExtractor.
func NewGovBRExtractor() *GovBRExtractor {
	return &GovBRExtractor{}
}

// Name returns the extractor's identifier.
func (e *GovBRExtractor) Name() string { return "govbr" }

// Extract parses a gov.br page and returns candidate records.
func (e *GovBRExtractor) Extract(html string, source editais.Source, term string) ([]editais.Record, error) {
	doc, base, err := parseDoc(html, source)
	if err != nil {
		return nil, err
	}

	c := newCollector(govBRCap)

	// Listing tiles and cards.
	doc.Find("article, .tileItem, .card, li.item-lista").Each(func(_ int, sel *gq.Selection) {
		text := elementText(sel)
		if !editais.HasRealMatch(text, term) {
			return
		}
		title := elementText(sel.Find("h1, h2, h3, .tileHeadline, .card-title").First())
		if title == "" {
			title = editais.Truncate(text, 120)
		}
		c.add(editais.Record{
			Title:          editais.Truncate(title, 120),
			Link:           nearestLink(sel, base, source),
			Source:         source.Hostname(),
			Excerpt:        editais.Truncate(text, 300),
			Date:           dateFor(text, ""),
			Kind:           editais.KindWeb,
			MatchedKeyword: keywordOr(text, "governamental"),
			Relevance:      editais.Score(title, term, editais.ElementHeading),
		})
	})

	// Document attachments. Admitted when either the anchor mentions the
	// term or it carries edict wording; gov.br pages bury relevant PDFs
	// behind generic anchor text.
	doc.Find(`a[href*=".pdf"], a[href*=".doc"]`).Each(func(_ int, sel *gq.Selection) {
		href, _ := sel.Attr("href")
		link := resolveLink(base, href)
		if link == "" || kindForURL(link) == editais.KindWeb {
			return
		}
		text := elementText(sel)
		if !editais.HasRealMatch(text, term) && !mentionsEdict(text) {
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
			MatchedKeyword: keywordOr(text, "documento"),
			Relevance:      editais.Score(text, term, editais.ElementLink),
		})
	})

	return c.results(source, term), nil
}

// keywordOr returns the matched reference keyword, or fallback when the text
// matched only the free search term.
func keywordOr(text, fallback string) string {
	if k := editais.MatchedKeyword(text); k != "busca livre" {
		return k
	}
	return fallback
}

// mentionsEdict reports whether the normalized text carries edict wording.
func mentionsEdict(text string) bool {
	normalized := editais.Normalize(text)
	for _, k := range editais.EdictContextTerms {
		if strings.Contains(normalized, k) {
			return true
		}
	}
	return false
}
