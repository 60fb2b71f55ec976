package main

import (
	"context"
	"io"

	"github.com/mapacultural/editais"
	"github.com/mapacultural/editais/scan"
	"github.com/mapacultural/editais/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	DB      *sqlite.DB
	Sources []editais.Source
	Scanner *scan.Scanner
	History *sqlite.HistoryService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Search  SearchCmd  `cmd:"" help:"Scan the source registry for a search term"`
	Sources SourcesCmd `cmd:"" help:"List the registered sources"`
	History HistoryCmd `cmd:"" help:"Show recent scans"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Term         string   `arg:"" help:"Search term"`
	Source       []string `short:"s" help:"Restrict the scan to source IDs (repeatable)"`
	Concurrency  int      `short:"c" default:"5" help:"Concurrent source limit"`
	MinRelevance int      `default:"15" help:"Suppress records scoring below this floor (0 disables)"`
	Limit        int      `short:"n" help:"Maximum records to display"`
	Format       string   `enum:"text,csv,json" default:"text" help:"Output format"`
	Output       string   `short:"o" type:"path" help:"Write results to a file instead of stdout"`
	Browser      bool     `help:"Enable the headless browser fallback"`
	NewOnly      bool     `help:"Hide results surfaced by earlier scans"`
	Cleaner      string   `enum:"trafilatura,readability" default:"trafilatura" help:"Main-content extraction engine for the strict tier"`
	Verbose      bool     `short:"v" help:"Log pipeline activity"`
}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct {
	Category string `help:"Only show sources in this category"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int `short:"n" default:"20" help:"Number of scans to show"`
}
