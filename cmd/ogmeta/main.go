package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ogmeta"
	"github.com/fwojciec/ogmeta/extract"
	"github.com/fwojciec/ogmeta/goquery"
	oghttp "github.com/fwojciec/ogmeta/http"
	"github.com/fwojciec/ogmeta/rod"
	"github.com/fwojciec/ogmeta/scrape"
	ogslog "github.com/fwojciec/ogmeta/slog"
	"github.com/fwojciec/ogmeta/sqlite"
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

	// Input for "extract -". Defaults to os.Stdin.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	PageService ogmeta.PageService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
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
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ogmeta"),
		kong.Description("Extract OpenGraph metadata from web pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ogmeta --help' to see available commands")
	}

	if first := args[0]; first == "help" || first == "--help" || first == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	if needsFetcher(cmd, cli) {
		next, err := newFetcher(cli)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: --render needs Chrome or Chromium installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher := ogslog.NewLoggingFetcher(next, logger)
		defer fetcher.Close()
		deps.Fetcher = fetcher
	}

	if cmd == "extract" || cmd == "scrape" {
		extractOpts := []extract.Option{
			extract.WithRequireType(cli.Extract.RequireType || cli.Scrape.RequireType),
		}
		if reporter := ogslog.NewReporter(logger); reporter.Enabled() {
			extractOpts = append(extractOpts, extract.WithReporter(reporter))
		}

		deps.Pairs = goquery.NewPairReader()
		deps.Extractor = ogslog.NewLoggingExtractor(extract.NewExtractor(extractOpts...), logger)
	}

	// Extraction and dry runs never touch the database.
	if cmd == "extract" || (cmd == "scrape" && cli.Scrape.DryRun) {
		if cmd == "scrape" {
			wireScraper(deps, cli, nil)
		}
		return kongCtx.Run(deps)
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set OGMETA_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.PageService = sqlite.NewPageService(m.DB)
	deps.DB = m.DB
	deps.Pages = m.PageService

	if cmd == "scrape" {
		wireScraper(deps, cli, m.PageService)
	}

	return kongCtx.Run(deps)
}

// wireScraper builds the scraper and sitemap service. pages may be nil.
func wireScraper(deps *Dependencies, cli *CLI, pages ogmeta.PageService) {
	var opts []oghttp.SitemapOption
	if cli.UserAgent != "" {
		opts = append(opts, oghttp.WithSitemapUserAgent(cli.UserAgent))
	}
	sitemaps := oghttp.NewSitemapService(sitemapClient(cli), opts...)
	deps.Sitemaps = ogslog.NewLoggingSitemapService(sitemaps, deps.Logger)
	deps.Scraper = &scrape.Scraper{
		Fetcher:     deps.Fetcher,
		Pairs:       deps.Pairs,
		Extractor:   deps.Extractor,
		Pages:       pages,
		RateLimiter: scrape.NewDomainLimiter(cli.Scrape.Rate),
		Concurrency: cli.Scrape.Concurrency,
	}
}

// sitemapClient bounds each sitemap request by the global --timeout.
func sitemapClient(cli *CLI) *http.Client {
	return &http.Client{Timeout: cli.Timeout}
}

// needsFetcher reports whether cmd downloads pages. Extracting from a file
// or stdin does not, so --render never starts a browser for it.
func needsFetcher(cmd string, cli *CLI) bool {
	switch cmd {
	case "scrape":
		return true
	case "extract":
		return isURL(cli.Extract.Source)
	}
	return false
}

// newFetcher returns the fetcher selected by the global flags.
func newFetcher(cli *CLI) (ogmeta.Fetcher, error) {
	if cli.Render {
		return rod.NewFetcher(rod.WithFetchTimeout(cli.Timeout))
	}
	opts := []oghttp.Option{oghttp.WithTimeout(cli.Timeout)}
	if cli.UserAgent != "" {
		opts = append(opts, oghttp.WithUserAgent(cli.UserAgent))
	}
	return oghttp.NewFetcher(opts...), nil
}

func defaultDBPath() string {
	if path := os.Getenv("OGMETA_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "ogmeta.db"
	}
	dir := filepath.Join(home, ".ogmeta")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "ogmeta.db")
}
