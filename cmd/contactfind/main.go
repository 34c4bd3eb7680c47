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
	"github.com/contactfind/contactfind"
	"github.com/contactfind/contactfind/crawl"
	"github.com/contactfind/contactfind/fs"
	"github.com/contactfind/contactfind/gemini"
	"github.com/contactfind/contactfind/googlemaps"
	"github.com/contactfind/contactfind/goquery"
	contacthttp "github.com/contactfind/contactfind/http"
	"github.com/contactfind/contactfind/htmltomarkdown"
	"github.com/contactfind/contactfind/rod"
	contactslog "github.com/contactfind/contactfind/slog"
	"github.com/contactfind/contactfind/sqlite"
	"github.com/contactfind/contactfind/trafilatura"
	"google.golang.org/genai"
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

	// SQLite database used by the contact store.
	DB *sqlite.DB

	// Contacts is exposed for end-to-end testing.
	Contacts contactfind.ContactService
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("contactfind"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'contactfind --help' to see available commands")
	}

	if first := args[0]; first == "help" || first == "--help" || first == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Dispatch on the parsed command, not args[0]: global flags like -v may
	// legally precede the subcommand. Kong reports the full command path
	// (e.g. "resolve <input>"); the first word names the command.
	cmd := kongCtx.Command()
	if i := strings.IndexByte(cmd, ' '); i >= 0 {
		cmd = cmd[:i]
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	if cmd == "resolve" {
		if cli.Resolve.DB != "" {
			m.DBPath = cli.Resolve.DB
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set CONTACTFIND_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()
		m.Contacts = sqlite.NewContactService(m.DB)

		sink, err := fs.NewCSVWriter(cli.Resolve.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer sink.Close()

		var fetcher contactfind.Fetcher
		if cli.Resolve.NoBrowser {
			fetcher = contacthttp.NewFetcher(contacthttp.WithTimeout(cli.Resolve.Timeout))
		} else {
			browser, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed, or pass --no-browser")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = browser
		}
		defer fetcher.Close()

		var ai contactfind.ContactExtractor
		if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
			client, err := genai.NewClient(ctx, &genai.ClientConfig{
				APIKey:  apiKey,
				Backend: genai.BackendGeminiAPI,
			})
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
				return fmt.Errorf("failed to connect to Gemini API: %w", err)
			}
			ai = gemini.NewExtractor(client)
		} else {
			fmt.Fprintln(stderr, "GEMINI_API_KEY not set; AI fallback extraction disabled")
		}

		var places contactfind.PlacesService
		if apiKey := os.Getenv("GOOGLE_MAPS_API_KEY"); apiKey != "" {
			places = googlemaps.NewPlacesService(apiKey)
		} else {
			fmt.Fprintln(stderr, "GOOGLE_MAPS_API_KEY not set; places pre-fill disabled")
		}

		rps := 1.0
		if d := cli.Resolve.Delay; d > 0 {
			rps = 1.0 / d.Seconds()
		}

		deps.Resolver = &crawl.Resolver{
			Fetcher:     contactslog.NewLoggingFetcher(fetcher, logger),
			Parser:      goquery.NewParser(),
			Extractor:   trafilatura.NewExtractor(),
			Converter:   htmltomarkdown.NewConverter(),
			AI:          ai,
			Places:      places,
			Contacts:    m.Contacts,
			Sink:        sink,
			Limiter:     crawl.NewDomainLimiter(rps),
			Sitemaps:    contacthttp.NewSitemapService(nil),
			Logger:      logger,
			Concurrency: cli.Resolve.Concurrency,
			ExtractedBy: "cli",
		}

		return kongCtx.Run(deps)
	}

	if cmd == "names" {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		deps.Names = gemini.NewNameExtractor(client)

		if dir := cli.Names.CacheDir; dir != "" {
			cache, err := fs.NewCache(dir)
			if err != nil {
				return fmt.Errorf("failed to open cache: %w", err)
			}
			deps.Cache = cache
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("CONTACTFIND_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "contactfind.db"
	}
	dir := filepath.Join(home, ".contactfind")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "contactfind.db")
}
