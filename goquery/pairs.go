package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ogmeta"
)

// metaSelector matches the head-level meta tags that carry OpenGraph data.
const metaSelector = "head > meta[property][content]"

// Ensure PairReader implements ogmeta.PairReader at compile time.
var _ ogmeta.PairReader = (*PairReader)(nil)

// PairReader reads meta tag pairs from HTML using goquery.
type PairReader struct{}

// NewPairReader creates a new PairReader.
func NewPairReader() *PairReader {
	return &PairReader{}
}

// ReadPairs returns the property and content of every head-level meta tag
// that has both attributes, in document order. Properties are lowercased;
// content is kept verbatim.
func (r *PairReader) ReadPairs(html string) ([]ogmeta.MetaPair, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, ogmeta.Errorf(ogmeta.EINVALID, "failed to parse HTML: %v", err)
	}
	return readPairs(doc), nil
}

func readPairs(doc *goquery.Document) []ogmeta.MetaPair {
	metas := doc.Find(metaSelector)
	pairs := make([]ogmeta.MetaPair, 0, metas.Length())
	metas.Each(func(_ int, sel *goquery.Selection) {
		property, _ := sel.Attr("property")
		content, _ := sel.Attr("content")
		pairs = append(pairs, ogmeta.MetaPair{
			Property: strings.ToLower(property),
			Content:  content,
		})
	})
	return pairs
}

// Extract reads the pairs from html and runs them through ext.
// The result is nil only when ext is configured to require og:type and the
// document has none.
func Extract(html string, ext ogmeta.Extractor) (ogmeta.Metadata, error) {
	pairs, err := NewPairReader().ReadPairs(html)
	if err != nil {
		return nil, err
	}
	return ext.Extract(pairs), nil
}
