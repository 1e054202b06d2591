package mock

import (
	"context"

	"github.com/fwojciec/ogmeta"
)

var _ ogmeta.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of ogmeta.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, siteURL string, filter *ogmeta.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, siteURL string, filter *ogmeta.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, siteURL, filter)
}
