// Package readability provides a PageCleaner backed by go-readability.
// It is an alternative to the trafilatura cleaner for pages where Mozilla's
// readability heuristics work better.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/mapacultural/editais"
)

// Ensure Cleaner implements editais.PageCleaner at compile time.
var _ editais.PageCleaner = (*Cleaner)(nil)

// Cleaner wraps go-readability to extract main content text from HTML.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// CleanText processes raw HTML and returns the boilerplate-free page text.
func (c *Cleaner) CleanText(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", editais.Errorf(editais.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", editais.Errorf(editais.EINTERNAL, "content extraction failed: %v", err)
	}

	return strings.Join(strings.Fields(article.TextContent), " "), nil
}
