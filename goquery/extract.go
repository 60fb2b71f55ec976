// Package goquery implements HTML extraction strategies using the goquery
// library. Each extractor targets one site family; the Registry selects a
// strategy by source URL with a generic fallback.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mapacultural/editais"
)

// parseDoc parses HTML into a goquery document rooted at the source URL.
func parseDoc(html string, source editais.Source) (*goquery.Document, *url.URL, error) {
	base, err := url.Parse(source.URL)
	if err != nil {
		return nil, nil, editais.Errorf(editais.EINVALID, "invalid source URL: %v", err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, nil, editais.Errorf(editais.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, base, nil
}

// resolveLink resolves href against the base URL. Returns empty string for
// unparseable or non-HTTP hrefs; fragments are stripped so the aggregator's
// link-based deduplication is not defeated by anchor variants.
func resolveLink(base *url.URL, href string) string {
	if isNonHTTPLink(href) {
		return ""
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	return resolved.String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return href == "" ||
		href == "#" ||
		strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

// kindForURL classifies a link by its file extension.
func kindForURL(link string) editais.Kind {
	return editais.KindForLink(link)
}

// elementText returns the selection's text with whitespace collapsed.
func elementText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// dateFor extracts a date from the element text and its surrounding context.
// Listing pages commonly put the date in a sibling element rather than the
// link itself; scanning the combined text lets the most specific pattern win
// regardless of which element carries it.
func dateFor(text, context string) string {
	if d := editais.ExtractDate(strings.TrimSpace(text + " " + context)); d != "" {
		return d
	}
	return editais.SentinelDate
}

// collector accumulates records for one page, deduplicating by link and
// enforcing the extractor's record cap.
type collector struct {
	seen    map[string]bool
	records []editais.Record
	cap     int
}

func newCollector(cap int) *collector {
	return &collector{seen: make(map[string]bool), cap: cap}
}

// add appends a record unless its link was already collected or the cap is
// reached. Records failing validation are dropped.
func (c *collector) add(r editais.Record) {
	if c.full() || c.seen[r.Link] {
		return
	}
	if err := r.Validate(); err != nil {
		return
	}
	c.seen[r.Link] = true
	c.records = append(c.records, r)
}

func (c *collector) full() bool {
	return len(c.records) >= c.cap
}

// results returns the collected records, or the placeholder record when the
// page yielded nothing.
func (c *collector) results(source editais.Source, term string) []editais.Record {
	if len(c.records) == 0 {
		return []editais.Record{editais.Placeholder(source, term)}
	}
	return c.records
}
