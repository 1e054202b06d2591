package scrape_test

import (
	"testing"

	"github.com/fwojciec/ogmeta"
	"github.com/fwojciec/ogmeta/scrape"
	"github.com/stretchr/testify/assert"
)

func TestHashPairs(t *testing.T) {
	t.Parallel()

	a := []ogmeta.MetaPair{{Property: "og:title", Content: "A"}, {Property: "og:image", Content: "x"}}
	reordered := []ogmeta.MetaPair{a[1], a[0]}
	shifted := []ogmeta.MetaPair{{Property: "og:titleA", Content: ""}, {Property: "og:image", Content: "x"}}

	assert.Len(t, scrape.HashPairs(a), 16)
	assert.Equal(t, scrape.HashPairs(a), scrape.HashPairs([]ogmeta.MetaPair{a[0], a[1]}))
	assert.NotEqual(t, scrape.HashPairs(a), scrape.HashPairs(reordered))
	assert.NotEqual(t, scrape.HashPairs(a), scrape.HashPairs(shifted))
	assert.Len(t, scrape.HashPairs(nil), 16)
}

func TestTruncateURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		url    string
		maxLen int
		want   string
	}{
		{"short URL unchanged", "https://a.io/x", 20, "https://a.io/x"},
		{"keeps the tail", "https://example.com/very/long/path", 12, "...long/path"},
		{"tiny limit", "https://example.com", 3, "htt"},
		{"zero limit", "https://example.com", 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, scrape.TruncateURL(tt.url, tt.maxLen))
		})
	}
}
