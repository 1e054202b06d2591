// Package fs exports stored pages as JSON files.
package fs

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/ogmeta"
)

// URLToPath converts a page URL to a relative file path under its host.
// Example: https://example.com/blog/post → example.com/blog/post.json
//
// Dot segments are resolved inside the URL path, so the result never leaves
// the host directory. A query adds a hash suffix: /p?id=1 → p__<hash>.json.
func URLToPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", ogmeta.Errorf(ogmeta.EINVALID, "invalid URL %q", rawURL)
	}
	host := u.Host
	if host == "" {
		return "", ogmeta.Errorf(ogmeta.EINVALID, "URL %q has no host", rawURL)
	}
	if host == "." || host == ".." || strings.ContainsAny(host, `/\`) {
		return "", ogmeta.Errorf(ogmeta.EINVALID, "URL %q has an unusable host", rawURL)
	}

	name := strings.TrimPrefix(path.Clean("/"+u.Path), "/")
	switch {
	case name == "":
		name = "index"
	case strings.HasSuffix(u.Path, "/"):
		name += "/index"
	}
	if u.RawQuery != "" {
		name += fmt.Sprintf("__%016x", xxhash.Sum64String(u.RawQuery))
	}

	rel := filepath.Join(host, filepath.FromSlash(name)) + ".json"
	if !filepath.IsLocal(rel) {
		return "", ogmeta.Errorf(ogmeta.EINVALID, "URL %q maps outside the export directory", rawURL)
	}
	return rel, nil
}

// FormatPage encodes a page and its metadata as indented JSON.
func FormatPage(page *ogmeta.Page) ([]byte, error) {
	if err := page.Validate(); err != nil {
		return nil, err
	}
	metadata, err := ogmeta.MarshalMetadata(page.Metadata)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(struct {
		*ogmeta.Page
		Metadata json.RawMessage `json:"metadata"`
	}{page, metadata}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// Exporter writes pages under baseDir/name with all-or-nothing semantics.
// Pages are written to baseDir/name.tmp and moved into place on Commit.
type Exporter struct {
	baseDir string
	name    string

	// written maps each relative path to the URL saved there.
	written map[string]string
}

// NewExporter creates a new Exporter.
func NewExporter(baseDir, name string) *Exporter {
	return &Exporter{baseDir: baseDir, name: name, written: make(map[string]string)}
}

// Dir returns the directory the export ends up in after Commit.
func (e *Exporter) Dir() string {
	return filepath.Join(e.baseDir, e.name)
}

func (e *Exporter) tempDir() string {
	return filepath.Join(e.baseDir, e.name+".tmp")
}

// Save writes one page to the temporary directory. Two different URLs that
// map to the same file return ECONFLICT.
func (e *Exporter) Save(page *ogmeta.Page) error {
	data, err := FormatPage(page)
	if err != nil {
		return err
	}
	relPath, err := URLToPath(page.URL)
	if err != nil {
		return err
	}

	if prev, ok := e.written[relPath]; ok && prev != page.URL {
		return ogmeta.Errorf(ogmeta.ECONFLICT, "%s and %s both map to %s", prev, page.URL, relPath)
	}

	fullPath := filepath.Join(e.tempDir(), relPath)
	if rel, err := filepath.Rel(e.tempDir(), fullPath); err != nil || !filepath.IsLocal(rel) {
		return ogmeta.Errorf(ogmeta.EINVALID, "page %s maps outside the export directory", page.URL)
	}
	e.written[relPath] = page.URL
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0644)
}

// Commit replaces any previous export with the pages saved so far.
func (e *Exporter) Commit() error {
	// An empty export still produces a directory.
	if err := os.MkdirAll(e.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(e.Dir()); err != nil {
		return err
	}
	return os.Rename(e.tempDir(), e.Dir())
}

// Abort discards the pages saved so far and leaves any previous export alone.
func (e *Exporter) Abort() error {
	return os.RemoveAll(e.tempDir())
}
