package ogmeta_test

import (
	"testing"

	"github.com/fwojciec/ogmeta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMetadata(t *testing.T) {
	t.Parallel()

	t.Run("aligns keys and omits absent fields", func(t *testing.T) {
		t.Parallel()

		title := "Example Domain"
		m := &ogmeta.Website{Common: ogmeta.Common{Type: "website", Title: &title}}

		result := ogmeta.FormatMetadata(m)

		expected := "kind:   website\n" +
			"type:   website\n" +
			"title:  Example Domain\n"
		assert.Equal(t, expected, result)
	})

	t.Run("describes media dimensions and type", func(t *testing.T) {
		t.Parallel()

		w, h := 400, 300
		mime := "image/jpeg"
		m := &ogmeta.Website{Common: ogmeta.Common{
			Type: "website",
			Images: []ogmeta.Image{
				{URL: "https://example.com/a.jpg", MimeType: &mime, Width: &w, Height: &h},
				{URL: "https://example.com/b.jpg", Width: &w},
			},
		}}

		result := ogmeta.FormatMetadata(m)

		assert.Contains(t, result, "image:  https://example.com/a.jpg (400x300, image/jpeg)\n")
		assert.Contains(t, result, "image:  https://example.com/b.jpg\n")
	})

	t.Run("formats movie cast and duration", func(t *testing.T) {
		t.Parallel()

		actor, err := ogmeta.ParseURI("https://example.com/actor")
		require.NoError(t, err)
		role := "Hero"
		duration := 8160
		m := &ogmeta.VideoMovie{
			Common:   ogmeta.Common{Type: "video.movie"},
			Actors:   []ogmeta.VideoActor{{Profile: actor, Role: &role}, {Profile: actor}},
			Duration: &duration,
		}

		result := ogmeta.FormatMetadata(m)

		assert.Contains(t, result, "actor:     https://example.com/actor as Hero\n")
		assert.Contains(t, result, "actor:     https://example.com/actor\n")
		assert.Contains(t, result, "duration:  8160s\n")
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, ogmeta.FormatMetadata(nil))
	})
}
