package http

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/ogmeta"
)

// Ensure SitemapService implements ogmeta.SitemapService.
var _ ogmeta.SitemapService = (*SitemapService)(nil)

// SitemapService discovers page URLs from sitemaps over HTTP.
type SitemapService struct {
	client    *http.Client
	userAgent string
}

// SitemapOption configures a SitemapService.
type SitemapOption func(*SitemapService)

// WithSitemapUserAgent sets the User-Agent header sent with sitemap requests.
func WithSitemapUserAgent(ua string) SitemapOption {
	return func(s *SitemapService) {
		s.userAgent = ua
	}
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client, opts ...SitemapOption) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	s := &SitemapService{client: client, userAgent: DefaultUserAgent}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DiscoverURLs returns the page URLs listed in the site's sitemaps, in
// sitemap order without duplicates. Returns an empty slice when the site has
// no sitemap.
//
// When siteURL has a path (https://example.com/blog/), only URLs under that
// path are returned.
func (s *SitemapService) DiscoverURLs(ctx context.Context, siteURL string, filter *ogmeta.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	site, err := url.Parse(siteURL)
	if err != nil || site.Host == "" {
		return nil, ogmeta.Errorf(ogmeta.EINVALID, "invalid site URL %q", siteURL)
	}
	scope := strings.TrimSuffix(site.Path, "/") + "/"
	root := &url.URL{Scheme: site.Scheme, Host: site.Host}

	sitemaps, err := s.locateSitemaps(ctx, root)
	if err != nil {
		return nil, err
	}

	w := &sitemapWalk{
		service: s,
		visited: make(map[string]bool),
		seen:    make(map[string]bool),
		keep: func(u string) bool {
			return inScope(u, scope) && filter.Match(u)
		},
		urls: []string{},
	}
	for _, sitemapURL := range sitemaps {
		if err := w.visit(ctx, sitemapURL); err != nil {
			return nil, err
		}
	}
	return w.urls, nil
}

// sitemapWalk collects URLs across a tree of sitemaps and sitemap indexes.
type sitemapWalk struct {
	service *SitemapService
	visited map[string]bool
	seen    map[string]bool
	keep    func(string) bool
	urls    []string
}

func (w *sitemapWalk) visit(ctx context.Context, sitemapURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w.visited[sitemapURL] {
		return nil
	}
	w.visited[sitemapURL] = true

	doc, err := w.service.readSitemap(ctx, sitemapURL)
	if err != nil {
		return err
	}
	root := doc.Root()
	if root == nil {
		return ogmeta.Errorf(ogmeta.EINVALID, "empty sitemap: %s", sitemapURL)
	}

	switch root.Tag {
	case "sitemapindex":
		for _, loc := range locs(root, "sitemap") {
			if err := w.visit(ctx, loc); err != nil {
				return err
			}
		}
	case "urlset":
		for _, loc := range locs(root, "url") {
			if w.seen[loc] || !w.keep(loc) {
				continue
			}
			w.seen[loc] = true
			w.urls = append(w.urls, loc)
		}
	default:
		return ogmeta.Errorf(ogmeta.EINVALID, "unexpected sitemap root <%s>: %s", root.Tag, sitemapURL)
	}
	return nil
}

// locs returns the trimmed, non-empty <loc> texts of the named children.
func locs(root *etree.Element, child string) []string {
	var out []string
	for _, el := range root.SelectElements(child) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if text := strings.TrimSpace(loc.Text()); text != "" {
			out = append(out, text)
		}
	}
	return out
}

// inScope reports whether rawURL's path lies under scope, which always ends
// in a slash. A scope of "/" admits everything.
func inScope(rawURL, scope string) bool {
	if scope == "/" {
		return true
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	// Dot segments are resolved first so /blog/../admin is not under /blog/.
	clean := path.Clean("/" + u.Path)
	return strings.HasPrefix(clean+"/", scope)
}

// locateSitemaps reads Sitemap directives from robots.txt, falling back to
// /sitemap.xml when robots.txt is missing or lists none.
func (s *SitemapService) locateSitemaps(ctx context.Context, root *url.URL) ([]string, error) {
	robots, err := s.get(ctx, root.JoinPath("robots.txt").String())
	if err == nil {
		sitemaps, err := sitemapDirectives(robots)
		robots.Close()
		if err != nil {
			return nil, err
		}
		if len(sitemaps) > 0 {
			return sitemaps, nil
		}
	} else if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	fallback := root.JoinPath("sitemap.xml").String()
	body, err := s.get(ctx, fallback)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	body.Close()
	return []string{fallback}, nil
}

func sitemapDirectives(r io.Reader) ([]string, error) {
	var sitemaps []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), ":")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "sitemap") {
			continue
		}
		if value = strings.TrimSpace(value); value != "" {
			sitemaps = append(sitemaps, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read robots.txt: %w", err)
	}
	return sitemaps, nil
}

// readSitemap fetches and parses a sitemap, transparently gunzipping
// .xml.gz files.
func (s *SitemapService) readSitemap(ctx context.Context, sitemapURL string) (*etree.Document, error) {
	body, err := s.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var r io.Reader = body
	if strings.HasSuffix(strings.ToLower(sitemapURL), ".gz") {
		gz, err := gzip.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("gunzip sitemap %s: %w", sitemapURL, err)
		}
		defer gz.Close()
		r = gz
	}

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, ogmeta.Errorf(ogmeta.EINVALID, "malformed sitemap %s: %v", sitemapURL, err)
	}
	return doc, nil
}

// get returns the body of a 200 response. The caller closes it.
func (s *SitemapService) get(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: target}
	}
	return resp.Body, nil
}
