package main

import (
	"fmt"

	"github.com/fwojciec/ogmeta"
	"github.com/fwojciec/ogmeta/scrape"
)

// maxURLDisplay is the width URLs are truncated to in progress output.
const maxURLDisplay = 72

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	// Validate regex patterns before any network access
	filter, err := ogmeta.NewURLFilter(c.Filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
		return err
	}

	urls := append([]string(nil), c.URLs...)
	if c.Sitemap != "" {
		discovered, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, c.Sitemap, filter)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", errorMessage(err))
			return err
		}
		urls = append(urls, discovered...)
	}
	urls = dedupe(urls)

	if len(urls) == 0 {
		fmt.Fprintln(deps.Stderr, "error: no URLs to scrape. Pass URLs or --sitemap.")
		return ogmeta.Errorf(ogmeta.EINVALID, "no URLs to scrape")
	}

	progress := func(event scrape.ProgressEvent) {
		switch event.Type {
		case scrape.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Scraping %d URLs\n", event.Total)
		case scrape.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %-9s %s\n",
				event.Completed, event.Total, event.Status, scrape.TruncateURL(event.URL, maxURLDisplay))
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] skip %s: %s\n",
				event.Completed, event.Total, scrape.TruncateURL(event.URL, maxURLDisplay), errorMessage(event.Error))
		case scrape.ProgressFinished:
			// Summary printed after scrape completes
		}
	}

	result, err := deps.Scraper.Scrape(deps.Ctx, urls, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error scraping: %v\n", err)
		return err
	}

	if c.DryRun {
		fmt.Fprintf(deps.Stdout, "Extracted %d, skipped %d, failed %d (dry run, nothing saved)\n",
			result.Extracted, result.Skipped, result.Failed)
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Saved %d, unchanged %d, skipped %d, failed %d\n",
		result.Saved, result.Unchanged, result.Skipped, result.Failed)
	return nil
}

// dedupe drops repeated URLs, keeping the first occurrence.
func dedupe(urls []string) []string {
	seen := make(map[string]bool, len(urls))
	out := urls[:0]
	for _, u := range urls {
		if seen[u] {
			continue
		}
		seen[u] = true
		out = append(out, u)
	}
	return out
}
