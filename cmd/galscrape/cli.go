package main

import (
	"context"
	"io"
	"time"

	"github.com/galscrape/galscrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Gallery galscrape.GalleryService

	// JSON selects machine-readable output.
	JSON bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config      string        `short:"C" help:"Path to config file"`
	Concurrency int           `short:"c" help:"Concurrent fetch limit (overrides config)"`
	Timeout     time.Duration `short:"t" help:"Fetch timeout per page (overrides config)"`
	RPS         float64       `name:"rps" help:"Per-host requests per second (overrides config)"`
	JSON        bool          `help:"Emit results as JSON"`
	Verbose     bool          `short:"v" help:"Log crawl progress to stderr"`

	Albums AlbumsCmd `cmd:"" help:"List album URLs discovered for a query"`
	Assets AssetsCmd `cmd:"" help:"List validated media asset URLs discovered for a query"`
}

// AlbumsCmd is the "albums" subcommand.
type AlbumsCmd struct {
	Source string `arg:"" help:"Source site (erome, bunkr, fapello, jpghost)"`
	Query  string `arg:"" help:"Search term, identifier or direct album URL"`
}

// AssetsCmd is the "assets" subcommand.
type AssetsCmd struct {
	Source string `arg:"" help:"Source site (erome, bunkr, fapello, jpghost)"`
	Query  string `arg:"" help:"Search term, identifier or direct album URL"`
}
