package ogmeta_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fwojciec/ogmeta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalMetadata(t *testing.T) {
	t.Parallel()

	t.Run("round trips every kind", func(t *testing.T) {
		t.Parallel()

		for _, m := range sampleRecords(t) {
			t.Run(string(m.Kind()), func(t *testing.T) {
				t.Parallel()

				data, err := ogmeta.MarshalMetadata(m)
				require.NoError(t, err)

				got, err := ogmeta.UnmarshalMetadata(data)
				require.NoError(t, err)
				assert.Equal(t, m, got)
			})
		}
	})

	t.Run("writes kind and record", func(t *testing.T) {
		t.Parallel()

		title := "Hello"
		m := &ogmeta.Website{Common: ogmeta.Common{
			Type:             "music.song",
			Title:            &title,
			AlternateLocales: []string{},
			Images:           []ogmeta.Image{},
			Videos:           []ogmeta.Video{},
			Audios:           []ogmeta.Audio{},
		}}

		data, err := ogmeta.MarshalMetadata(m)
		require.NoError(t, err)

		var raw map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(data, &raw))
		assert.JSONEq(t, `"website"`, string(raw["kind"]))
		assert.JSONEq(t, `{"type":"music.song","title":"Hello","alternateLocales":[],"images":[],"videos":[],"audios":[]}`, string(raw["record"]))
	})

	t.Run("rejects nil metadata", func(t *testing.T) {
		t.Parallel()

		_, err := ogmeta.MarshalMetadata(nil)

		assert.Equal(t, ogmeta.EINVALID, ogmeta.ErrorCode(err))
	})
}

func TestUnmarshalMetadata(t *testing.T) {
	t.Parallel()

	t.Run("rejects unknown kind", func(t *testing.T) {
		t.Parallel()

		_, err := ogmeta.UnmarshalMetadata([]byte(`{"kind":"music.song","record":{}}`))

		assert.Equal(t, ogmeta.EINVALID, ogmeta.ErrorCode(err))
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		_, err := ogmeta.UnmarshalMetadata([]byte(`{"kind":`))

		assert.Error(t, err)
	})

	t.Run("rejects invalid author URI", func(t *testing.T) {
		t.Parallel()

		_, err := ogmeta.UnmarshalMetadata([]byte(`{"kind":"article","record":{"type":"article","authors":["not a uri"]}}`))

		assert.Error(t, err)
	})
}

func sampleRecords(t *testing.T) []ogmeta.Metadata {
	t.Helper()

	str := func(s string) *string { return &s }
	num := func(n int) *int { return &n }
	at := func(s string) *time.Time {
		v, err := time.Parse(time.RFC3339, s)
		require.NoError(t, err)
		v = v.UTC()
		return &v
	}
	uri := func(s string) ogmeta.URI {
		u, err := ogmeta.ParseURI(s)
		require.NoError(t, err)
		return u
	}
	common := func(ogType string) ogmeta.Common {
		return ogmeta.Common{
			Type:             ogType,
			Title:            str("Title"),
			URL:              str("https://example.com/"),
			Locale:           str("en_US"),
			AlternateLocales: []string{"fr_FR"},
			Images: []ogmeta.Image{{
				URL:       "https://example.com/a.png",
				SecureURL: str("https://secure.example.com/a.png"),
				MimeType:  str("image/png"),
				Width:     num(640),
				Height:    num(480),
				Alt:       str("A"),
			}},
			Videos: []ogmeta.Video{{URL: "https://example.com/v.mp4"}},
			Audios: []ogmeta.Audio{{URL: "https://example.com/a.mp3", MimeType: str("audio/mpeg")}},
		}
	}

	return []ogmeta.Metadata{
		&ogmeta.Website{Common: common("website")},
		&ogmeta.Article{
			Common:         common("article"),
			PublishedTime:  at("2022-02-18T22:54:34-05:00"),
			ExpirationTime: at("2023-01-01T00:00:00Z"),
			Authors:        []ogmeta.URI{uri("https://example.com/jane")},
			Section:        str("Tech"),
			Tags:           []string{"go", "go"},
		},
		&ogmeta.Book{
			Common:      common("book"),
			Authors:     []ogmeta.URI{},
			ISBN:        str("1234567890"),
			ReleaseDate: at("2011-08-01T00:00:00Z"),
			Tags:        []string{},
		},
		&ogmeta.Profile{
			Common:    common("profile"),
			FirstName: str("Ada"),
			Gender:    str("female"),
		},
		&ogmeta.VideoMovie{
			Common: common("video.movie"),
			Actors: []ogmeta.VideoActor{
				{Profile: uri("https://example.com/a"), Role: str("Hero")},
				{Profile: uri("https://example.com/b")},
			},
			Directors:   []ogmeta.URI{uri("https://example.com/d")},
			Writers:     []ogmeta.URI{},
			Duration:    num(8160),
			ReleaseDate: at("1996-06-07T00:00:00Z"),
			Tags:        []string{"action"},
		},
	}
}
