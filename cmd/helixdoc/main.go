// Command helixdoc extracts endpoint records from the Twitch Helix API
// reference page.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/helixdoc"
	"github.com/fwojciec/helixdoc/extract"
	"github.com/fwojciec/helixdoc/fs"
	"github.com/fwojciec/helixdoc/goquery"
	helixhttp "github.com/fwojciec/helixdoc/http"
	"github.com/fwojciec/helixdoc/load"
	"github.com/fwojciec/helixdoc/rod"
	helixslog "github.com/fwojciec/helixdoc/slog"
	"github.com/fwojciec/helixdoc/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Getenv reads environment variables. Defaults to os.Getenv.
	Getenv func(string) string

	// SQLite database, opened only for commands that need it.
	DB *sqlite.DB

	// Fetcher overrides the network fetcher for end-to-end testing.
	Fetcher helixdoc.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Getenv: os.Getenv}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB == nil {
		return nil
	}
	db := m.DB
	m.DB = nil
	return db.Close()
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("helixdoc"),
		kong.Description("Extract endpoint records from the Twitch Helix API reference"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'helixdoc --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := ResolveConfig(cli, m.Getenv)
	if err != nil {
		return err
	}
	deps.Config = cfg
	deps.Logger = newLogger(stderr, cfg.Verbose)

	defer m.Close()

	cmd := strings.Fields(kongCtx.Command())[0]
	switch cmd {
	case "extract":
		err := m.wireExtract(deps, cli.Extract.Preview)
		if m.Fetcher != nil {
			defer m.closeFetcher(deps)
		}
		if err != nil {
			return err
		}
	case "snapshots", "endpoints", "delete":
		if deps.Config.DBPath == "" {
			deps.Config.DBPath = defaultDBPath()
		}
		if err := m.openDB(deps); err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

// wireExtract builds the loading and writing pipeline for extract.
func (m *Main) wireExtract(deps *Dependencies, preview bool) error {
	cfg := deps.Config
	logger := deps.Logger

	fetcher := m.Fetcher
	if fetcher == nil {
		var err error
		fetcher, err = newFetcher(cfg)
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed to use --browser")
			return fmt.Errorf("failed to start browser: %w", err)
		}
	}

	deps.Loader = helixslog.NewLoggingLoader(&load.Loader{
		Fetcher:     helixslog.NewLoggingFetcher(fetcher, logger),
		Cache:       helixslog.NewLoggingCache(fs.NewCache(cfg.CachePath), logger),
		Parser:      goquery.NewParser(),
		MaxAge:      cfg.MaxAge,
		Refresh:     cfg.Refresh,
		RetryDelays: load.RetryDelays(cfg.Retries),
		Logger:      logger,
	}, logger)
	m.Fetcher = fetcher

	deps.Extractor = &extract.Extractor{
		ReferenceURL: cfg.ReferenceURL,
		BaseURL:      cfg.BaseURL,
		Logger:       logger,
	}
	deps.Detector = goquery.NewDetector()
	deps.OpenOutput = NewFileOpener(cfg.Compact)

	if cfg.DBPath != "" && !preview {
		return m.openDB(deps)
	}
	return nil
}

func (m *Main) closeFetcher(deps *Dependencies) {
	if err := m.Fetcher.Close(); err != nil {
		deps.Logger.Warn("close fetcher", "err", err)
	}
}

func (m *Main) openDB(deps *Dependencies) error {
	m.DB = sqlite.NewDB(deps.Config.DBPath)
	if err := m.DB.Open(); err != nil {
		m.DB = nil
		fmt.Fprintf(deps.Stderr, "Hint: Set %s to use a different database path\n", EnvDB)
		return fmt.Errorf("failed to open database at %q: %w", deps.Config.DBPath, err)
	}
	deps.Snapshots = sqlite.NewSnapshotService(m.DB)
	return nil
}

func newFetcher(cfg Config) (helixdoc.Fetcher, error) {
	if cfg.Browser {
		return rod.NewFetcher(rod.WithFetchTimeout(cfg.Timeout))
	}
	return helixhttp.NewFetcher(
		helixhttp.WithTimeout(cfg.Timeout),
		helixhttp.WithRateLimit(cfg.RPS),
	), nil
}

// newLogger logs warnings by default and everything when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "helixdoc.db"
	}
	dir := filepath.Join(home, ".helixdoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "helixdoc.db")
}
