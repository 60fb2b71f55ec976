// Package scan provides edict scan orchestration. It coordinates fetching,
// extraction, caching, and aggregation across the source registry.
package scan

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/mapacultural/editais"
	"github.com/mapacultural/editais/bloom"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds the scan worker pool when the Scanner does not
// override it.
const DefaultConcurrency = 5

// DefaultMinRelevance is the aggregation floor applied when the Scanner
// leaves MinRelevance at zero. Matches the display pipeline's cutoff.
const DefaultMinRelevance = 15

// sitemapProbeLimit caps how many sitemap-discovered listing pages are
// fetched per source.
const sitemapProbeLimit = 3

// Scanner orchestrates a scan of the selected sources.
type Scanner struct {
	Fetcher    editais.Fetcher
	Extractors editais.ExtractorRegistry

	// Browser, when set, is tried once after HTTP fetching gives up.
	// Headless rendering recovers the JS-built listings on some portals.
	Browser editais.Fetcher

	// Cleaner enables the strict fallback tier: when extraction finds no
	// candidates, the relevance gate is evaluated against cleaned main
	// content before the source degrades to a navigation placeholder.
	Cleaner editais.PageCleaner

	Cache       editais.ResultCache
	Sitemaps    editais.SitemapProber
	RateLimiter editais.DomainLimiter

	// Seen, when set, suppresses links remembered from earlier scans and
	// learns the links of each new result set. A false positive can hide a
	// genuinely new record; dedup within one scan stays exact regardless.
	Seen *bloom.SeenLinks

	Concurrency int
	RetryDelays []time.Duration

	// MinRelevance is the aggregation floor. Zero keeps DefaultMinRelevance;
	// a negative value disables the floor entirely.
	MinRelevance int

	// Limit truncates the final ranked list. Zero means no limit.
	Limit int
}

// Result holds the outcome of a scan operation.
type Result struct {
	Session   editais.Session
	Records   []editais.Record
	Scanned   int
	Failed    int
	FromCache int
}

// Summary converts the result into a scan history line.
func (r *Result) Summary() editais.ScanSummary {
	return editais.ScanSummary{
		Session:        r.Session,
		SourcesScanned: r.Scanned,
		RecordsFound:   len(r.Records),
	}
}

// ProgressEvent reports progress during a scan operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Source    string
	Records   int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scan progress.
type ProgressFunc func(event ProgressEvent)

// sourceResult holds the outcome of scanning a single source.
type sourceResult struct {
	position  int
	source    editais.Source
	records   []editais.Record
	fromCache bool
	err       error
}

// Scan searches the active sources for the term and returns the ranked,
// deduplicated record list. A failing source degrades to zero records; the
// scan aborts only when the context is canceled. The progress callback, if
// provided, receives events as sources complete.
func (s *Scanner) Scan(ctx context.Context, term string, sources []editais.Source, progress ProgressFunc) (*Result, error) {
	if s.Fetcher == nil || s.Extractors == nil {
		return nil, editais.Errorf(editais.EINTERNAL, "scanner requires a fetcher and an extractor registry")
	}
	if term == "" {
		return nil, editais.Errorf(editais.EINVALID, "search term required")
	}

	result := &Result{Session: editais.NewSession(term)}

	active := editais.ActiveSources(sources)
	total := len(active)
	if total == 0 {
		result.Records = []editais.Record{}
		return result, nil
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan sourceResult, total)

	var completed atomic.Int64

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, src := range active {
			i, src := i, src
			g.Go(func() error {
				resultCh <- s.scanSource(gctx, i, src, term)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in source registry order.
	ordered := make([]sourceResult, total)
	for r := range resultCh {
		completed.Add(1)
		ordered[r.position] = r

		if r.err != nil {
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressFailed,
					Completed: int(completed.Load()),
					Total:     total,
					Source:    r.source.Name,
					Error:     r.err,
				})
			}
			continue
		}

		result.Scanned++
		if r.fromCache {
			result.FromCache++
		}
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				Source:    r.source.Name,
				Records:   len(r.records),
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Exact link dedup happens in Aggregate; the Seen filter only hides
	// links surfaced by earlier scans.
	var all []editais.Record
	for _, r := range ordered {
		if r.err != nil {
			continue
		}
		for _, rec := range r.records {
			if s.Seen != nil && s.Seen.Seen(rec.Link) {
				continue
			}
			all = append(all, rec)
		}
	}

	floor := s.MinRelevance
	switch {
	case floor < 0:
		floor = 0
	case floor == 0:
		floor = DefaultMinRelevance
	}

	result.Records = editais.Aggregate(all, editais.AggregateOptions{
		MinRelevance: floor,
		Limit:        s.Limit,
	})

	if s.Seen != nil {
		for _, rec := range result.Records {
			s.Seen.Remember(rec.Link)
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return result, nil
}

// scanSource runs the per-source pipeline: cache lookup, rate limiting,
// fetch with retry, extraction, sitemap enrichment, and the strict cleaner
// fallback when extraction found nothing.
func (s *Scanner) scanSource(ctx context.Context, position int, source editais.Source, term string) sourceResult {
	result := sourceResult{
		position: position,
		source:   source,
	}

	if s.Cache != nil {
		if records, ok, err := s.Cache.Get(ctx, source.URL, term); err == nil && ok {
			result.records = records
			result.fromCache = true
			return result
		}
	}

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, source.Hostname()); err != nil {
			result.err = err
			return result
		}
	}

	html, err := s.fetch(ctx, source.URL)
	if err != nil {
		result.err = err
		return result
	}

	extractor := s.Extractors.GetForSource(source)
	records, err := extractor.Extract(html, source, term)
	if err != nil {
		result.err = err
		return result
	}

	records = append(records, s.probeSitemapPages(ctx, extractor, source, term)...)

	if onlyPlaceholder(records) && s.Cleaner != nil {
		if rec, ok := s.gatedPageRecord(html, source, term); ok {
			records = []editais.Record{rec}
		}
	}

	result.records = records

	if s.Cache != nil {
		_ = s.Cache.Put(ctx, source.URL, term, records)
	}

	return result
}

// defaultRetryDelays are the backoff pauses between fetch attempts.
func defaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// fetch retrieves a page, retrying transient failures with increasing
// pauses and falling back to the headless browser when plain HTTP gives up.
// Each attempt goes through s.Fetcher, so the verbose logging decorator
// sees retries individually.
func (s *Scanner) fetch(ctx context.Context, url string) (string, error) {
	delays := s.RetryDelays
	if delays == nil {
		delays = defaultRetryDelays()
	}

	var lastErr error
	for attempt := 0; attempt <= len(delays); attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delays[attempt-1]):
			}
		}
		html, err := s.Fetcher.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}

	if s.Browser != nil {
		return s.Browser.Fetch(ctx, url)
	}
	return "", lastErr
}

// probeSitemapPages fetches edict-listing pages discovered from the source's
// sitemap and extracts additional candidates. Enrichment failures are
// ignored; the main page's records stand on their own.
func (s *Scanner) probeSitemapPages(ctx context.Context, extractor editais.Extractor, source editais.Source, term string) []editais.Record {
	if s.Sitemaps == nil {
		return nil
	}

	paths, err := s.Sitemaps.ProbeEdictPaths(ctx, source.URL, sitemapProbeLimit)
	if err != nil {
		return nil
	}

	var out []editais.Record
	for _, p := range paths {
		if ctx.Err() != nil {
			break
		}
		if p == source.URL {
			continue
		}
		if s.RateLimiter != nil {
			if err := s.RateLimiter.Wait(ctx, source.Hostname()); err != nil {
				break
			}
		}
		html, err := s.fetch(ctx, p)
		if err != nil {
			continue
		}
		page := source
		page.URL = p
		records, err := extractor.Extract(html, page, term)
		if err != nil {
			continue
		}
		for _, rec := range records {
			if rec.MatchedKeyword == "navegação" {
				continue
			}
			out = append(out, rec)
		}
	}
	return out
}

// gatedPageRecord evaluates the strict relevance gate against cleaned main
// content and, when it passes, builds a scored record for the page itself.
func (s *Scanner) gatedPageRecord(html string, source editais.Source, term string) (editais.Record, bool) {
	text, err := s.Cleaner.CleanText(html)
	if err != nil || text == "" {
		return editais.Record{}, false
	}
	if !editais.Relevant(text, term, source.URL) {
		return editais.Record{}, false
	}

	excerpt := editais.Snippet(text, editais.EdictTerms, term)
	if excerpt == "" {
		excerpt = editais.Truncate(text, 200)
	}
	date := editais.ExtractDate(text)
	if date == "" {
		date = editais.SentinelDate
	}

	return editais.Record{
		Title:          source.Name,
		Link:           source.URL,
		Source:         source.Hostname(),
		Excerpt:        editais.Truncate(excerpt, 200),
		Date:           date,
		Kind:           editais.KindWeb,
		MatchedKeyword: editais.MatchedKeyword(text),
		Relevance:      editais.Score(excerpt, term, editais.ElementParagraph),
	}, true
}

// onlyPlaceholder reports whether extraction produced nothing beyond the
// "navigate to site" fallback record.
func onlyPlaceholder(records []editais.Record) bool {
	return len(records) == 1 && records[0].MatchedKeyword == "navegação"
}
