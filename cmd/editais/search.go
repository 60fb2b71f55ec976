package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mapacultural/editais"
	"github.com/mapacultural/editais/fs"
	"github.com/mapacultural/editais/scan"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	sources, err := c.selectSources(deps.Sources)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", editais.ErrorMessage(err))
		return err
	}

	deps.Scanner.Concurrency = c.Concurrency
	if c.MinRelevance <= 0 {
		deps.Scanner.MinRelevance = -1
	} else {
		deps.Scanner.MinRelevance = c.MinRelevance
	}
	// Display truncation never applies to export.
	if c.Format == "text" {
		deps.Scanner.Limit = c.Limit
	}

	progress := func(event scan.ProgressEvent) {
		switch event.Type {
		case scan.ProgressStarted:
			fmt.Fprintf(deps.Stderr, "Scanning %d sources for %q...\n", event.Total, c.Term)
		case scan.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.Source, editais.ErrorMessage(event.Error))
		case scan.ProgressFinished:
			// Summary printed after the scan completes
		}
	}

	result, err := deps.Scanner.Scan(deps.Ctx, c.Term, sources, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", editais.ErrorMessage(err))
		return err
	}

	if deps.History != nil {
		if err := deps.History.RecordScan(deps.Ctx, result.Session, result.Scanned, len(result.Records)); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: failed to record scan history: %s\n", editais.ErrorMessage(err))
		}
	}

	fmt.Fprintf(deps.Stderr, "Scanned %d sources (%d failed, %d from cache): %d records\n",
		result.Scanned, result.Failed, result.FromCache, len(result.Records))

	if c.Output != "" {
		path := c.Output
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			path = filepath.Join(path, fs.ExportName(result.Session, c.Format))
		}
		if err := fs.WriteAtomic(path, func(w io.Writer) error {
			return c.write(w, result.Records)
		}); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(deps.Stderr, "Wrote %s\n", path)
		return nil
	}

	return c.write(deps.Stdout, result.Records)
}

// write serializes records in the selected format.
func (c *SearchCmd) write(w io.Writer, records []editais.Record) error {
	switch c.Format {
	case "csv":
		return editais.WriteCSV(w, records)
	case "json":
		return editais.WriteJSON(w, records)
	default:
		writeText(w, records)
		return nil
	}
}

// selectSources resolves the --source flags against the registry, or
// returns the full registry when none were given.
func (c *SearchCmd) selectSources(all []editais.Source) ([]editais.Source, error) {
	if len(c.Source) == 0 {
		return all, nil
	}
	selected := make([]editais.Source, 0, len(c.Source))
	for _, id := range c.Source {
		s, ok := editais.FindSource(all, id)
		if !ok {
			return nil, editais.Errorf(editais.ENOTFOUND, "unknown source %q", id)
		}
		selected = append(selected, s)
	}
	return selected, nil
}

func writeText(w io.Writer, records []editais.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No records found.")
		return
	}
	for i, r := range records {
		fmt.Fprintf(w, "%2d. [%3d] %s\n", i+1, r.Relevance, r.Title)
		fmt.Fprintf(w, "    %s | %s | %s | %s\n", r.Source, r.Date, r.Kind, r.MatchedKeyword)
		fmt.Fprintf(w, "    %s\n", r.Link)
		if r.Excerpt != "" {
			fmt.Fprintf(w, "    %s\n", editais.Truncate(r.Excerpt, 160))
		}
	}
}
