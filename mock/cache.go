package mock

import (
	"context"

	"github.com/mapacultural/editais"
)

var _ editais.ResultCache = (*ResultCache)(nil)

// ResultCache is a mock implementation of editais.ResultCache.
type ResultCache struct {
	GetFn func(ctx context.Context, sourceURL, term string) ([]editais.Record, bool, error)
	PutFn func(ctx context.Context, sourceURL, term string, records []editais.Record) error
}

func (c *ResultCache) Get(ctx context.Context, sourceURL, term string) ([]editais.Record, bool, error) {
	return c.GetFn(ctx, sourceURL, term)
}

func (c *ResultCache) Put(ctx context.Context, sourceURL, term string, records []editais.Record) error {
	return c.PutFn(ctx, sourceURL, term, records)
}
