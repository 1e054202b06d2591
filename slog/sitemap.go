package slog

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/ogmeta"
)

var _ ogmeta.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService logs each sitemap discovery with the site, the path
// scope the results are limited to, and the filter applied.
type LoggingSitemapService struct {
	next   ogmeta.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next ogmeta.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped service. A failed discovery is
// logged at warn level.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, siteURL string, filter *ogmeta.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		var include, exclude int
		if filter != nil {
			include, exclude = len(filter.Include), len(filter.Exclude)
		}
		attrs := []any{
			"site", siteURL,
			"scope", siteScope(siteURL),
			"include", include,
			"exclude", exclude,
			"urls", len(urls),
			"duration", time.Since(begin),
		}
		if err != nil {
			s.logger.WarnContext(ctx, "sitemap discovery failed", append(attrs, "err", err)...)
			return
		}
		s.logger.InfoContext(ctx, "sitemap discovery", attrs...)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, siteURL, filter)
}

// siteScope returns the path prefix discovered URLs must share.
func siteScope(siteURL string) string {
	u, err := url.Parse(siteURL)
	if err != nil || u.Path == "" {
		return "/"
	}
	return u.Path
}
