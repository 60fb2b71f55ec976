package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mapacultural/editais"
)

// Ensure LoggingSitemapProber implements editais.SitemapProber.
var _ editais.SitemapProber = (*LoggingSitemapProber)(nil)

// LoggingSitemapProber wraps a SitemapProber with debug logging.
type LoggingSitemapProber struct {
	next   editais.SitemapProber
	logger *slog.Logger
}

// NewLoggingSitemapProber creates a new LoggingSitemapProber.
func NewLoggingSitemapProber(next editais.SitemapProber, logger *slog.Logger) *LoggingSitemapProber {
	return &LoggingSitemapProber{next: next, logger: logger}
}

// ProbeEdictPaths delegates to the wrapped prober and logs the operation.
func (p *LoggingSitemapProber) ProbeEdictPaths(ctx context.Context, siteURL string, limit int) (paths []string, err error) {
	defer func(begin time.Time) {
		p.logger.Info("sitemap probe",
			"url", siteURL,
			"count", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ProbeEdictPaths(ctx, siteURL, limit)
}
