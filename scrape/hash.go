package scrape

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/ogmeta"
)

// HashPairs returns a hex xxhash of the pair sequence. Two documents with
// the same OpenGraph tags in the same order hash equal regardless of the
// rest of their markup.
func HashPairs(pairs []ogmeta.MetaPair) string {
	d := xxhash.New()
	for _, p := range pairs {
		_, _ = d.WriteString(p.Property)
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(p.Content)
		_, _ = d.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", d.Sum64())
}

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(url) <= maxLen {
		return url
	}
	if maxLen < 4 {
		return url[:maxLen]
	}
	return "..." + url[len(url)-maxLen+3:]
}
