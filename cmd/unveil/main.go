package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/unveil"
	unveilfs "github.com/fwojciec/unveil/fs"
	"github.com/fwojciec/unveil/goquery"
	"github.com/fwojciec/unveil/harvest"
	unveilhttp "github.com/fwojciec/unveil/http"
	"github.com/fwojciec/unveil/oryx"
	unveilslog "github.com/fwojciec/unveil/slog"
	"github.com/fwojciec/unveil/sqlite"
	"github.com/fwojciec/unveil/yale"
	"github.com/fwojciec/unveil/yaml"
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
	// Config overrides the configuration file when set before Run().
	Config *unveil.Config

	// Fetcher overrides the HTTP fetcher when set before Run().
	Fetcher unveil.Fetcher

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("unveil"),
		kong.Description("Extract structured records from conflict trackers."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'unveil --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg := m.Config
	if cfg == nil {
		if cfg, err = yaml.LoadConfig(cli.Config); err != nil {
			fmt.Fprintf(stderr, "Hint: Set UNVEIL_CONFIG or --config to point at a valid configuration file\n")
			return err
		}
	}
	logger := unveilslog.NewLogger(cfg.Log, stderr)

	deps.Config = cfg
	deps.Logger = logger
	deps.Parser = goquery.NewParser()
	deps.Extractors = newRegistry(logger)

	cmd := strings.Fields(kongCtx.Command())[0]

	if cmd == "run" || cmd == "runs" || cmd == "records" {
		if err := os.MkdirAll(filepath.Dir(cfg.Database), 0o755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
		m.DB = sqlite.NewDB(cfg.Database)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set UNVEIL_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cfg.Database, err)
		}
		defer m.Close()

		deps.Runs = sqlite.NewRunService(m.DB)
		deps.Records = sqlite.NewRecordService(m.DB)
	}

	if cmd == "run" {
		fetcher := m.Fetcher
		if fetcher == nil {
			fetcher = unveilhttp.NewFetcher(unveilhttp.WithTimeout(cfg.Fetch.Timeout))
		}

		deps.Harvester = &harvest.Harvester{
			Fetcher:     unveilslog.NewLoggingFetcher(fetcher, logger),
			Limiter:     harvest.NewDomainLimiter(cfg.Fetch.RequestsPerSecond, cfg.Fetch.Burst),
			Parser:      deps.Parser,
			Extractors:  deps.Extractors,
			Artifacts:   unveilslog.NewLoggingArtifactStore(unveilfs.NewStore(cfg.DataDir), logger),
			Runs:        deps.Runs,
			Records:     deps.Records,
			Logger:      logger,
			Concurrency: cfg.Fetch.Concurrency,
			RetryDelays: cfg.Fetch.RetryDelays(),
		}
	}

	return kongCtx.Run(deps)
}

// newRegistry registers the extractor of every dataset kind.
func newRegistry(logger *slog.Logger) unveil.ExtractorRegistry {
	registry := goquery.NewRegistry(goquery.NewDetector())
	registry.Register(unveil.DatasetOryx, oryx.NewExtractor(logger))
	registry.Register(unveil.DatasetYale, yale.NewExtractor(logger))
	return unveilslog.NewLoggingRegistry(registry, logger)
}
