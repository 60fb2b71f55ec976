package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/mapacultural/editais"
	"github.com/mapacultural/editais/bloom"
	"github.com/mapacultural/editais/feed"
	"github.com/mapacultural/editais/fs"
	"github.com/mapacultural/editais/goquery"
	edhttp "github.com/mapacultural/editais/http"
	"github.com/mapacultural/editais/readability"
	"github.com/mapacultural/editais/rod"
	"github.com/mapacultural/editais/scan"
	edslog "github.com/mapacultural/editais/slog"
	"github.com/mapacultural/editais/sqlite"
	"github.com/mapacultural/editais/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used for the result cache and scan history.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("editais"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'editais --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set EDITAIS_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	deps.DB = m.DB
	deps.Sources = editais.DefaultSources()
	deps.History = sqlite.NewHistoryService(m.DB)

	if cmd == "search" {
		logger := slog.New(slog.NewTextHandler(stderr, nil))

		var fetcher editais.Fetcher = edhttp.NewFetcher()
		var registry editais.ExtractorRegistry = newExtractorRegistry()
		var sitemaps editais.SitemapProber = edhttp.NewSitemapProber(nil)
		if cli.Search.Verbose {
			fetcher = edslog.NewLoggingFetcher(fetcher, logger)
			registry = edslog.NewLoggingRegistry(registry, logger)
			sitemaps = edslog.NewLoggingSitemapProber(sitemaps, logger)
		}

		var browser editais.Fetcher
		if cli.Search.Browser {
			b, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer b.Close()
			browser = b
		}

		var cleaner editais.PageCleaner = trafilatura.NewCleaner()
		if cli.Search.Cleaner == "readability" {
			cleaner = readability.NewCleaner()
		}

		deps.Scanner = &scan.Scanner{
			Fetcher:     fetcher,
			Browser:     browser,
			Extractors:  registry,
			Cleaner:     cleaner,
			Cache:       sqlite.NewResultCache(m.DB),
			Sitemaps:    sitemaps,
			RateLimiter: scan.NewDomainLimiter(1.0),
		}
		if cli.Search.NewOnly {
			deps.Scanner.Seen = loadSeenLinks(m.seenPath())
		}
	}

	runErr := kongCtx.Run(deps)

	if deps.Scanner != nil && deps.Scanner.Seen != nil {
		if err := saveSeenLinks(m.seenPath(), deps.Scanner.Seen); err != nil {
			fmt.Fprintf(stderr, "warning: failed to save seen links: %v\n", err)
		}
	}

	return runErr
}

// seenPath is the file the --new-only filter persists to, next to the
// database.
func (m *Main) seenPath() string {
	return m.DBPath + ".seen"
}

// loadSeenLinks restores the seen-links filter, starting fresh when the
// file is missing or unreadable.
func loadSeenLinks(path string) *bloom.SeenLinks {
	f, err := os.Open(path)
	if err != nil {
		return bloom.NewSeenLinks(bloom.DefaultExpectedLinks, bloom.DefaultFalsePositiveRate)
	}
	defer f.Close()

	seen, err := bloom.ReadSeenLinks(f)
	if err != nil {
		return bloom.NewSeenLinks(bloom.DefaultExpectedLinks, bloom.DefaultFalsePositiveRate)
	}
	return seen
}

func saveSeenLinks(path string, seen *bloom.SeenLinks) error {
	return fs.WriteAtomic(path, func(w io.Writer) error {
		_, err := seen.WriteTo(w)
		return err
	})
}

func defaultDBPath() string {
	if path := os.Getenv("EDITAIS_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "editais.db"
	}
	dir := filepath.Join(home, ".editais")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "editais.db")
}

// newExtractorRegistry wires all site extraction strategies. The feed
// pattern comes first so RSS sources never fall through to the DOM
// strategy for the same host.
func newExtractorRegistry() *goquery.Registry {
	registry := goquery.NewRegistry(goquery.NewGenericExtractor())
	registry.Register("/feed", feed.NewExtractor())
	registry.Register("culturaemercado.com.br", goquery.NewCulturaMercadoExtractor())
	registry.Register("prosas.com.br", goquery.NewProsasExtractor())
	registry.Register("fcc.sc.gov.br", goquery.NewFCCExtractor())
	registry.Register("cultura.sc.gov.br", goquery.NewCulturaSCExtractor())
	registry.Register("amfri.org.br", goquery.NewAMFRIExtractor())
	registry.Register("sesc-sc.com.br", goquery.NewSESCExtractor())
	registry.Register("gov.br", goquery.NewGovBRExtractor())
	return registry
}
