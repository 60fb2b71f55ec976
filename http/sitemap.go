package http

import (
	"bufio"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"

	"github.com/mapacultural/editais"
)

// Ensure SitemapProber implements editais.SitemapProber.
var _ editais.SitemapProber = (*SitemapProber)(nil)

// edictPathHints are the URL path fragments that mark a page as likely to
// carry an edict or bidding notice.
var edictPathHints = []string{
	"edital", "editais", "licitacao", "licitacoes", "selecao", "concurso",
	"chamada", "chamamento", "premio",
}

// SitemapProber discovers edict-related page URLs from site sitemaps. It
// checks robots.txt for Sitemap directives, falls back to /sitemap.xml, and
// follows sitemap indexes one level of recursion at a time.
type SitemapProber struct {
	client *http.Client
}

// NewSitemapProber creates a new SitemapProber with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapProber(client *http.Client) *SitemapProber {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapProber{client: client}
}

// ProbeEdictPaths returns up to limit sitemap URLs whose path suggests edict
// content. A site without a reachable sitemap yields an empty slice and no
// error; probing is enrichment, never a hard dependency of a scan.
func (s *SitemapProber) ProbeEdictPaths(ctx context.Context, siteURL string, limit int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := url.Parse(siteURL)
	if err != nil {
		return nil, editais.Errorf(editais.EINVALID, "invalid site URL: %v", err)
	}
	root := *base
	root.Path = ""

	sitemaps := s.findSitemapURLs(ctx, &root)
	if len(sitemaps) == 0 {
		return []string{}, nil
	}

	seenSitemaps := make(map[string]bool)
	seenURLs := make(map[string]bool)
	var out []string

	for _, sitemapURL := range sitemaps {
		if len(out) >= limit {
			break
		}
		urls, err := s.processSitemap(ctx, sitemapURL, seenSitemaps)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		for _, u := range urls {
			if len(out) >= limit {
				break
			}
			if seenURLs[u] || !looksLikeEdictPath(u) {
				continue
			}
			seenURLs[u] = true
			out = append(out, u)
		}
	}

	return out, nil
}

// looksLikeEdictPath reports whether the URL path contains an edict hint.
func looksLikeEdictPath(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	path := editais.Normalize(parsed.Path)
	for _, hint := range edictPathHints {
		if strings.Contains(path, hint) {
			return true
		}
	}
	return false
}

// findSitemapURLs discovers sitemap URLs from robots.txt or falls back to
// /sitemap.xml.
func (s *SitemapProber) findSitemapURLs(ctx context.Context, base *url.URL) []string {
	robotsURL := base.ResolveReference(&url.URL{Path: "/robots.txt"})
	if sitemaps := s.parseSitemapsFromRobots(ctx, robotsURL.String()); len(sitemaps) > 0 {
		return sitemaps
	}

	sitemapURL := base.ResolveReference(&url.URL{Path: "/sitemap.xml"})
	if s.urlExists(ctx, sitemapURL.String()) {
		return []string{sitemapURL.String()}
	}

	return nil
}

// parseSitemapsFromRobots extracts Sitemap: directives from robots.txt.
func (s *SitemapProber) parseSitemapsFromRobots(ctx context.Context, robotsURL string) []string {
	body, err := s.fetchURL(ctx, robotsURL)
	if err != nil {
		return nil
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(strings.ToLower(line), "sitemap:") {
			sitemapURL := strings.TrimSpace(line[len("sitemap:"):])
			if sitemapURL != "" {
				sitemaps = append(sitemaps, sitemapURL)
			}
		}
	}
	if scanner.Err() != nil {
		return nil
	}

	return sitemaps
}

// processSitemap fetches and parses a sitemap, handling both urlset and
// sitemapindex documents.
func (s *SitemapProber) processSitemap(ctx context.Context, sitemapURL string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if seen[sitemapURL] {
		return nil, nil
	}
	seen[sitemapURL] = true

	body, err := s.fetchURL(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, editais.Errorf(editais.EINVALID, "parsing sitemap XML: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, editais.Errorf(editais.EINVALID, "empty sitemap XML")
	}

	if root.Tag == "sitemapindex" {
		return s.processSitemapIndex(ctx, root, seen)
	}

	return parseURLSet(root), nil
}

// processSitemapIndex processes a <sitemapindex> element recursively.
func (s *SitemapProber) processSitemapIndex(ctx context.Context, root *etree.Element, seen map[string]bool) ([]string, error) {
	var allURLs []string

	for _, sitemap := range root.SelectElements("sitemap") {
		loc := sitemap.SelectElement("loc")
		if loc == nil {
			continue
		}
		sitemapURL := strings.TrimSpace(loc.Text())
		if sitemapURL == "" {
			continue
		}

		urls, err := s.processSitemap(ctx, sitemapURL, seen)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			continue
		}
		allURLs = append(allURLs, urls...)
	}

	return allURLs, nil
}

// parseURLSet extracts URLs from a <urlset> element.
func parseURLSet(root *etree.Element) []string {
	var urls []string
	for _, urlEl := range root.SelectElements("url") {
		loc := urlEl.SelectElement("loc")
		if loc == nil {
			continue
		}
		u := strings.TrimSpace(loc.Text())
		if u != "" {
			urls = append(urls, u)
		}
	}
	return urls
}

// fetchURL fetches a URL and returns the response body.
func (s *SitemapProber) fetchURL(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, editais.Errorf(editais.EINVALID, "creating request: %v", err)
	}
	setBrowserHeaders(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, editais.Errorf(editais.EUNAVAILABLE, "fetch %s: %v", targetURL, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, editais.Errorf(editais.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, targetURL)
	}

	return resp.Body, nil
}

// urlExists checks if a URL returns 200 OK.
func (s *SitemapProber) urlExists(ctx context.Context, targetURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, targetURL, nil)
	if err != nil {
		return false
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
