package mock

import (
	"context"

	"github.com/mapacultural/editais"
)

var _ editais.SitemapProber = (*SitemapProber)(nil)

// SitemapProber is a mock implementation of editais.SitemapProber.
type SitemapProber struct {
	ProbeEdictPathsFn func(ctx context.Context, siteURL string, limit int) ([]string, error)
}

func (p *SitemapProber) ProbeEdictPaths(ctx context.Context, siteURL string, limit int) ([]string, error) {
	return p.ProbeEdictPathsFn(ctx, siteURL, limit)
}
