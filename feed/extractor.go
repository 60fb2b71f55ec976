// Package feed implements an extraction strategy for RSS and Atom feeds
// using the gofeed library. Several sources publish their edicts through
// WordPress feeds that are cheaper and more stable to parse than the HTML
// listing pages.
package feed

import (
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/mapacultural/editais"
)

var _ editais.Extractor = (*Extractor)(nil)

const feedCap = 25

// Extractor parses feed XML and emits one candidate record per matching
// feed item.
type Extractor struct {
	parser *gofeed.Parser
}

// NewExtractor creates a new feed Extractor.
func NewExtractor() *Extractor {
	return &Extractor{parser: gofeed.NewParser()}
}

// Name returns the extractor's identifier.
func (e *Extractor) Name() string { return "feed" }

// Extract parses RSS/Atom content and returns candidate records for the
// search term. Items are admitted when the term occurs as a real token in
// the title or description.
func (e *Extractor) Extract(content string, source editais.Source, term string) ([]editais.Record, error) {
	parsed, err := e.parser.ParseString(content)
	if err != nil {
		return nil, editais.Errorf(editais.EINVALID, "failed to parse feed: %v", err)
	}

	records := make([]editais.Record, 0, len(parsed.Items))
	seen := make(map[string]bool)

	for _, item := range parsed.Items {
		if len(records) >= feedCap {
			break
		}
		title := strings.TrimSpace(item.Title)
		description := strings.TrimSpace(item.Description)
		if !editais.HasRealMatch(title+" "+description, term) {
			continue
		}
		link := strings.TrimSpace(item.Link)
		if link == "" || seen[link] {
			continue
		}
		seen[link] = true

		records = append(records, editais.Record{
			Title:          editais.Truncate(title, 120),
			Link:           link,
			Source:         source.Hostname(),
			Excerpt:        editais.Truncate(description, 300),
			Date:           itemDate(item),
			Kind:           editais.KindForLink(link),
			MatchedKeyword: editais.MatchedKeyword(title + " " + description),
			Relevance:      editais.Score(title, term, editais.ElementLink),
		})
	}

	if len(records) == 0 {
		return []editais.Record{editais.Placeholder(source, term)}, nil
	}
	return records, nil
}

// itemDate prefers the feed's structured publication timestamp and falls
// back to date expressions in the item text.
func itemDate(item *gofeed.Item) string {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.Format("02/01/2006")
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed.Format("02/01/2006")
	}
	if d := editais.ExtractDate(item.Title + " " + item.Description); d != "" {
		return d
	}
	return editais.SentinelDate
}
