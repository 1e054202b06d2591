package ogmeta

import (
	"context"
	"time"
)

// Page is the stored extraction result for a single URL.
type Page struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Kind        Kind      `json:"kind"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	ContentHash string    `json:"contentHash"`
	Metadata    Metadata  `json:"-"`
	ExtractedAt time.Time `json:"extractedAt"`
}

// NewPage returns a page for url holding m. Kind, Type and Title are
// derived from m.
func NewPage(url string, m Metadata, contentHash string) *Page {
	p := &Page{
		URL:         url,
		ContentHash: contentHash,
		Metadata:    m,
	}
	if m != nil {
		p.Kind = m.Kind()
		p.Type = m.Base().Type
		if title := m.Base().Title; title != nil {
			p.Title = *title
		}
	}
	return p
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	if p.Metadata == nil {
		return Errorf(EINVALID, "page metadata required")
	}
	return nil
}

// PageService represents a service for managing extracted pages.
type PageService interface {
	// SavePage inserts the page or replaces the stored page with the same URL.
	// The stored ID is kept on replace.
	SavePage(ctx context.Context, page *Page) error

	// FindPageByURL retrieves a page by its URL.
	// Returns ENOTFOUND if the page does not exist.
	FindPageByURL(ctx context.Context, url string) (*Page, error)

	// FindPages retrieves pages matching the filter, most recent first.
	FindPages(ctx context.Context, filter PageFilter) ([]*Page, error)

	// DeletePage permanently removes a page.
	// Returns ENOTFOUND if the page does not exist.
	DeletePage(ctx context.Context, url string) error
}

// PageFilter represents a filter for FindPages.
type PageFilter struct {
	Kind *Kind `json:"kind"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
