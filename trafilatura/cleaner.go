// Package trafilatura wraps go-trafilatura to strip boilerplate from fetched
// pages. The conservative extraction tier evaluates its relevance gate
// against main content, so navigation chrome and footers must not leak into
// the gated text.
package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"

	"github.com/mapacultural/editais"
)

var _ editais.PageCleaner = (*Cleaner)(nil)

// Cleaner extracts the main textual content from HTML.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// CleanText returns the page's main content as plain text with whitespace
// collapsed.
func (c *Cleaner) CleanText(html string) (string, error) {
	if html == "" {
		return "", editais.Errorf(editais.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(html), opts)
	if err != nil {
		return "", editais.Errorf(editais.EINTERNAL, "content extraction failed: %v", err)
	}

	return strings.Join(strings.Fields(result.ContentText), " "), nil
}
