package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/galscrape/galscrape/config"
	"github.com/galscrape/galscrape/crawl"
	"github.com/galscrape/galscrape/goquery"
	galhttp "github.com/galscrape/galscrape/http"
	galslog "github.com/galscrape/galscrape/slog"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("galscrape"),
		kong.Description("Crawl gallery sites for media asset URLs"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'galscrape --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		return err
	}

	// Command-line flags override config file and environment values.
	if cli.Concurrency > 0 {
		cfg.Crawl.Concurrency = cli.Concurrency
	}
	if cli.Timeout > 0 {
		cfg.Fetch.Timeout = cli.Timeout
	}
	if cli.RPS > 0 {
		cfg.RateLimit.RequestsPerSecond = cli.RPS
	}

	level := cfg.LogLevel()
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	fetcher := galhttp.NewFetcher(
		galhttp.WithTimeout(cfg.Fetch.Timeout),
		galhttp.WithUserAgent(cfg.Fetch.UserAgent),
	)

	service := &crawl.Service{
		Fetcher:     galslog.NewLoggingFetcher(fetcher, logger),
		Adapters:    goquery.DefaultRegistry(),
		Concurrency: cfg.Crawl.Concurrency,
	}
	if cfg.RateLimit.RequestsPerSecond > 0 {
		service.Limiter = crawl.NewHostRateLimiter(
			cfg.RateLimit.RequestsPerSecond,
			crawl.WithBurst(cfg.RateLimit.Burst),
		)
	}

	deps.Gallery = galslog.NewLoggingGalleryService(service, logger)
	deps.JSON = cli.JSON

	return kongCtx.Run(deps)
}
