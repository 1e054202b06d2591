// Package scrape extracts OpenGraph metadata from many URLs concurrently and
// stores the results.
package scrape

import (
	"context"
	"net/url"
	"time"

	"github.com/fwojciec/ogmeta"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of URLs processed at once when
// Scraper.Concurrency is not set.
const DefaultConcurrency = 10

// Scraper fetches pages, extracts their metadata and saves it.
//
// Pages is optional: without it every extracted page is reported as
// StatusExtracted and nothing is written. RateLimiter is optional as well.
type Scraper struct {
	Fetcher     ogmeta.Fetcher
	Pairs       ogmeta.PairReader
	Extractor   ogmeta.Extractor
	Pages       ogmeta.PageService
	RateLimiter ogmeta.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
}

// Status is the outcome for a single URL.
type Status int

const (
	// StatusSaved means the page was new or its tags changed and it was written.
	StatusSaved Status = iota
	// StatusUnchanged means the stored page already had the same tags.
	StatusUnchanged
	// StatusSkipped means the document had no usable metadata.
	StatusSkipped
	// StatusExtracted means metadata was extracted but there is no store.
	StatusExtracted
	// StatusFailed means fetching, parsing or saving failed.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSaved:
		return "saved"
	case StatusUnchanged:
		return "unchanged"
	case StatusSkipped:
		return "skipped"
	case StatusExtracted:
		return "extracted"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Item is the outcome for one input URL.
type Item struct {
	URL    string
	Status Status
	Page   *ogmeta.Page
	Err    error
}

// Result holds the outcome of a scrape.
type Result struct {
	Saved     int
	Unchanged int
	Skipped   int
	Extracted int
	Failed    int

	// Items has one entry per input URL, in input order.
	Items []Item
}

// ProgressEvent reports progress during a scrape.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Status    Status
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// fetched is the outcome of the concurrent part of processing one URL.
type fetched struct {
	position int
	url      string
	page     *ogmeta.Page
	err      error
}

// Scrape processes urls and returns per-URL outcomes. Fetching and
// extraction run concurrently; saves happen one at a time as results arrive.
// Individual failures are recorded in the result; the returned error is
// non-nil only when ctx ends before the scrape finishes.
func (s *Scraper) Scrape(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(urls)
	progress(ProgressEvent{Type: ProgressStarted, Total: total})

	resultCh := make(chan fetched, total)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				resultCh <- s.fetch(gctx, i, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	result := &Result{Items: make([]Item, total)}
	completed := 0
	for f := range resultCh {
		item := s.store(ctx, f)
		result.Items[f.position] = item
		result.count(item.Status)

		completed++
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			URL:       item.URL,
			Status:    item.Status,
		}
		if item.Err != nil {
			event.Type = ProgressFailed
			event.Error = item.Err
		}
		progress(event)
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

func (r *Result) count(status Status) {
	switch status {
	case StatusSaved:
		r.Saved++
	case StatusUnchanged:
		r.Unchanged++
	case StatusSkipped:
		r.Skipped++
	case StatusExtracted:
		r.Extracted++
	case StatusFailed:
		r.Failed++
	}
}

// fetch downloads one URL and extracts its metadata.
func (s *Scraper) fetch(ctx context.Context, position int, rawURL string) fetched {
	f := fetched{position: position, url: rawURL}

	if s.RateLimiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil || u.Host == "" {
			f.err = ogmeta.Errorf(ogmeta.EINVALID, "invalid URL %q", rawURL)
			return f
		}
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			f.err = err
			return f
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, rawURL, s.Fetcher.Fetch, delays)
	if err != nil {
		f.err = err
		return f
	}

	pairs, err := s.Pairs.ReadPairs(html)
	if err != nil {
		f.err = err
		return f
	}

	m := s.Extractor.Extract(pairs)
	if m == nil {
		return f
	}
	f.page = ogmeta.NewPage(rawURL, m, HashPairs(pairs))
	return f
}

// store saves a fetched page unless the stored copy has the same hash.
func (s *Scraper) store(ctx context.Context, f fetched) Item {
	item := Item{URL: f.url, Page: f.page, Err: f.err}
	switch {
	case f.err != nil:
		item.Status = StatusFailed
		return item
	case f.page == nil:
		item.Status = StatusSkipped
		return item
	case s.Pages == nil:
		item.Status = StatusExtracted
		return item
	}

	existing, err := s.Pages.FindPageByURL(ctx, f.url)
	switch {
	case err == nil && existing.ContentHash == f.page.ContentHash:
		item.Status = StatusUnchanged
		item.Page = existing
		return item
	case err != nil && ogmeta.ErrorCode(err) != ogmeta.ENOTFOUND:
		item.Status = StatusFailed
		item.Err = err
		return item
	}

	if err := s.Pages.SavePage(ctx, f.page); err != nil {
		item.Status = StatusFailed
		item.Err = err
		return item
	}
	item.Status = StatusSaved
	return item
}
