package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/ogmeta"
	"github.com/fwojciec/ogmeta/scrape"
	"github.com/fwojciec/ogmeta/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	DB        *sqlite.DB
	Pages     ogmeta.PageService
	Sitemaps  ogmeta.SitemapService
	Fetcher   ogmeta.Fetcher
	Pairs     ogmeta.PairReader
	Extractor ogmeta.Extractor
	Scraper   *scrape.Scraper
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool          `short:"v" help:"Log fetches and skipped tags to stderr"`
	Timeout   time.Duration `default:"10s" help:"Per-request fetch timeout"`
	UserAgent string        `name:"user-agent" help:"User-Agent header sent with requests"`
	Render    bool          `help:"Render pages in headless Chrome before reading tags"`

	Extract ExtractCmd `cmd:"" help:"Extract OpenGraph metadata from a URL or file"`
	Scrape  ScrapeCmd  `cmd:"" help:"Extract metadata from many URLs and store it"`
	List    ListCmd    `cmd:"" help:"List stored pages"`
	Show    ShowCmd    `cmd:"" help:"Show the stored metadata for a URL"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored page"`
	Export  ExportCmd  `cmd:"" help:"Write stored pages to a directory as JSON files"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Source      string `arg:"" help:"URL, file path, or - for stdin"`
	Format      string `short:"o" enum:"json,text" default:"json" help:"Output format (json, text)"`
	RequireType bool   `name:"require-type" help:"Fail when the document has no og:type"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	URLs        []string `arg:"" optional:"" name:"url" help:"URLs to scrape"`
	Sitemap     string   `short:"s" help:"Also scrape URLs listed in this site's sitemaps"`
	Filter      []string `short:"F" name:"filter" help:"Filter sitemap URLs by regex (repeatable)"`
	Concurrency int      `short:"c" default:"10" help:"Concurrent fetch limit"`
	Rate        float64  `default:"1" help:"Requests per second per domain (0 for no limit)"`
	RequireType bool     `name:"require-type" help:"Skip documents without og:type"`
	DryRun      bool     `name:"dry-run" help:"Extract without writing to the database"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Kind  string `short:"k" help:"Only pages of this kind (website, article, book, profile, video.movie)"`
	Limit int    `short:"n" help:"Maximum number of pages to list"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Format string `short:"o" enum:"json,text" default:"text" help:"Output format (json, text)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	URL   string `arg:"" help:"Page URL"`
	Force bool   `help:"Confirm deletion"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir  string `arg:"" help:"Output directory (replaced on success)"`
	Kind string `short:"k" help:"Only pages of this kind"`
}

// errorMessage returns the user-facing text for err. Application errors
// carry their own message; anything else is shown as is.
func errorMessage(err error) string {
	if ogmeta.ErrorCode(err) == ogmeta.EINTERNAL {
		return err.Error()
	}
	return ogmeta.ErrorMessage(err)
}
