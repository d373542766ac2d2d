package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/helixdoc"
	"github.com/fwojciec/helixdoc/extract"
)

// SectionCounter counts titled reference sections in raw HTML.
type SectionCounter interface {
	CountSections(html string) int
}

// OutputOpener creates the writer for an output path. The returned closer
// flushes and closes the underlying file.
type OutputOpener func(path string) (helixdoc.EndpointWriter, io.Closer, error)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Config Config

	Loader     helixdoc.DocumentLoader
	Extractor  *extract.Extractor
	Detector   SectionCounter
	OpenOutput OutputOpener
	Snapshots  helixdoc.SnapshotService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `type:"path" help:"YAML config file (env: HELIXDOC_CONFIG)"`
	DB      string `type:"path" help:"SQLite database for snapshots (env: HELIXDOC_DB)"`
	Verbose bool   `short:"v" help:"Log every fetch, cache access and write"`

	Extract   ExtractCmd   `cmd:"" help:"Extract endpoints from the Helix API reference"`
	Snapshots SnapshotsCmd `cmd:"" help:"List stored snapshots"`
	Endpoints EndpointsCmd `cmd:"" help:"List endpoints of a stored snapshot"`
	Delete    DeleteCmd    `cmd:"" help:"Delete a stored snapshot"`
}

// ExtractCmd is the "extract" subcommand. Zero values fall back to the
// config file, environment and built-in defaults.
type ExtractCmd struct {
	URL     string        `help:"Reference page URL"`
	BaseURL string        `name:"base-url" help:"Helix API base URL stripped from endpoint paths"`
	Cache   string        `type:"path" help:"Cache directory (env: HELIXDOC_CACHE)"`
	Refresh bool          `help:"Ignore the cached page and fetch a fresh copy"`
	MaxAge  time.Duration `name:"max-age" help:"Refetch when the cached page is older than this (0 never expires)"`
	Browser bool          `help:"Render the page in headless Chrome"`
	Timeout time.Duration `short:"t" help:"Fetch timeout"`
	Retries *int          `help:"Fetch retries with exponential backoff"`
	RPS     float64       `name:"rps" help:"Maximum requests per second"`
	Out     []string      `short:"o" type:"path" help:"Output file, format chosen by extension: .csv, .json or .xml (repeatable)"`
	Compact bool          `help:"Write JSON outputs without indentation"`
	Preview bool          `short:"p" help:"Print the endpoint listing without writing files"`
}

// SnapshotsCmd is the "snapshots" subcommand.
type SnapshotsCmd struct {
	Limit int `short:"n" default:"20" help:"Maximum snapshots to list"`
}

// EndpointsCmd is the "endpoints" subcommand.
type EndpointsCmd struct {
	SnapshotID string `arg:"" name:"snapshot-id" help:"Snapshot ID"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	SnapshotID string `arg:"" name:"snapshot-id" help:"Snapshot ID"`
	Force      bool   `help:"Confirm deletion"`
}
