package mock

import "github.com/mapacultural/editais"

var _ editais.PageCleaner = (*PageCleaner)(nil)

// PageCleaner is a mock implementation of editais.PageCleaner.
type PageCleaner struct {
	CleanTextFn func(html string) (string, error)
}

func (c *PageCleaner) CleanText(html string) (string, error) {
	return c.CleanTextFn(html)
}
