package mock

import (
	"context"

	"github.com/fwojciec/ogmeta"
)

var _ ogmeta.PageService = (*PageService)(nil)

// PageService is a mock implementation of ogmeta.PageService.
type PageService struct {
	SavePageFn      func(ctx context.Context, page *ogmeta.Page) error
	FindPageByURLFn func(ctx context.Context, url string) (*ogmeta.Page, error)
	FindPagesFn     func(ctx context.Context, filter ogmeta.PageFilter) ([]*ogmeta.Page, error)
	DeletePageFn    func(ctx context.Context, url string) error
}

func (s *PageService) SavePage(ctx context.Context, page *ogmeta.Page) error {
	return s.SavePageFn(ctx, page)
}

func (s *PageService) FindPageByURL(ctx context.Context, url string) (*ogmeta.Page, error) {
	return s.FindPageByURLFn(ctx, url)
}

func (s *PageService) FindPages(ctx context.Context, filter ogmeta.PageFilter) ([]*ogmeta.Page, error) {
	return s.FindPagesFn(ctx, filter)
}

func (s *PageService) DeletePage(ctx context.Context, url string) error {
	return s.DeletePageFn(ctx, url)
}
