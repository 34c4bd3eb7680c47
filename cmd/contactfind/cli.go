package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/contactfind/contactfind"
	"github.com/contactfind/contactfind/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Resolver *crawl.Resolver
	Names    contactfind.NameExtractor
	Cache    contactfind.Cache
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Resolve ResolveCmd `cmd:"" help:"Resolve contact details for a list of company names"`
	Names   NamesCmd   `cmd:"" help:"Extract company names from a text file"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	Input       string        `arg:"" help:"Input CSV of company names (first column)"`
	Output      string        `short:"o" default:"contacts.csv" help:"Output CSV path"`
	Concurrency int           `short:"c" default:"5" help:"Companies resolved concurrently"`
	Delay       time.Duration `default:"1s" help:"Per-domain delay between requests"`
	Timeout     time.Duration `default:"15s" help:"Per-request timeout (plain HTTP fetcher)"`
	NoBrowser   bool          `help:"Use the plain HTTP fetcher instead of a headless browser"`
	DB          string        `help:"Contact database path (overrides CONTACTFIND_DB)"`
}

// NamesCmd is the "names" subcommand.
type NamesCmd struct {
	File     string `arg:"" help:"Text file extracted from a document"`
	CacheDir string `help:"Cache extracted name lists in this directory"`
}
