package extract_test

import (
	"testing"
	"time"

	"github.com/fwojciec/ogmeta/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInteger(t *testing.T) {
	t.Parallel()

	valid := []struct {
		in   string
		want int
	}{
		{"1200", 1200},
		{"630", 630},
		{"+42", 42},
		{"-17", -17},
		{"0", 0},
		{"007", 7},
		{"12.9", 12},
		{"-12.9", -12},
		{"-0.5", 0},
		{".75", 0},
		{"3.", 3},
		{"1.2e3", 1200},
		{"1E2", 100},
		{"15e-1", 1},
		{"5e-2000", 0},
		{"0e999999", 0},
		{"2147483647", 2147483647},
		{"-2147483648", -2147483648},
		{"2147483647.99", 2147483647},
	}
	for _, tt := range valid {
		t.Run("parses "+tt.in, func(t *testing.T) {
			t.Parallel()

			got, ok := extract.ParseInteger(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	invalid := []string{
		"",
		"not-a-number",
		"12px",
		" 12",
		"12 ",
		"+",
		".",
		"e5",
		"1,200",
		"0x10",
		"1/2",
		"Inf",
		"NaN",
		"2147483648",
		"-2147483649",
		"1e10",
		"99999999999999999999",
		"1e99999999999999999999",
	}
	for _, in := range invalid {
		t.Run("rejects "+in, func(t *testing.T) {
			t.Parallel()

			_, ok := extract.ParseInteger(in)
			assert.False(t, ok)
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	t.Parallel()

	t.Run("parses UTC instant", func(t *testing.T) {
		t.Parallel()

		got, ok := extract.ParseTimestamp("2022-02-19T03:54:34Z")
		require.True(t, ok)
		assert.Equal(t, time.Date(2022, time.February, 19, 3, 54, 34, 0, time.UTC), got)
	})

	t.Run("normalizes offsets to UTC", func(t *testing.T) {
		t.Parallel()

		got, ok := extract.ParseTimestamp("2022-02-18T22:54:34-05:00")
		require.True(t, ok)
		assert.Equal(t, time.Date(2022, time.February, 19, 3, 54, 34, 0, time.UTC), got)
	})

	t.Run("keeps fractional seconds", func(t *testing.T) {
		t.Parallel()

		got, ok := extract.ParseTimestamp("2022-02-19T03:54:34.250Z")
		require.True(t, ok)
		assert.Equal(t, 250*time.Millisecond, time.Duration(got.Nanosecond()))
	})

	for _, in := range []string{"", "not-a-date", "2022-02-19", "2022-02-19 03:54:34", "1645242874"} {
		t.Run("rejects "+in, func(t *testing.T) {
			t.Parallel()

			_, ok := extract.ParseTimestamp(in)
			assert.False(t, ok)
		})
	}
}

func TestParseURI(t *testing.T) {
	t.Parallel()

	t.Run("parses absolute URI", func(t *testing.T) {
		t.Parallel()

		got, ok := extract.ParseURI("https://www.imdb.com/name/nm0000125/")
		require.True(t, ok)
		assert.Equal(t, "https://www.imdb.com/name/nm0000125/", got.String())
		assert.Equal(t, "www.imdb.com", got.Host)
	})

	t.Run("parses relative reference", func(t *testing.T) {
		t.Parallel()

		got, ok := extract.ParseURI("/authors/jane")
		require.True(t, ok)
		assert.Equal(t, "/authors/jane", got.String())
	})

	t.Run("keeps percent escapes and non-ASCII letters", func(t *testing.T) {
		t.Parallel()

		got, ok := extract.ParseURI("https://example.com/caf%C3%A9/josé")
		require.True(t, ok)
		assert.Equal(t, "/café/josé", got.Path)
	})

	for _, in := range []string{
		"", "Jane Doe", "http://[::1", "%zz", "abc%2",
		"{bad}", "<jane>", `a"b`, "http://example.com/a|b",
		`\\server\share`, "http://example.com/^x", "http://example.com/`x`",
	} {
		t.Run("rejects "+in, func(t *testing.T) {
			t.Parallel()

			_, ok := extract.ParseURI(in)
			assert.False(t, ok)
		})
	}
}
