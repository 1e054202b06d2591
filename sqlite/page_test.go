package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/ogmeta"
	"github.com/fwojciec/ogmeta/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageService_SavePage(t *testing.T) {
	t.Parallel()

	t.Run("inserts new page", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(setupTestDB(t))
		page := ogmeta.NewPage("https://example.com/a", article("First"), "hash1")

		err := svc.SavePage(context.Background(), page)

		require.NoError(t, err)
		assert.NotEmpty(t, page.ID)
		assert.False(t, page.ExtractedAt.IsZero())
		assert.Equal(t, ogmeta.KindArticle, page.Kind)
	})

	t.Run("replaces page with the same URL and keeps its ID", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewPageService(setupTestDB(t))
		first := ogmeta.NewPage("https://example.com/a", article("First"), "hash1")
		require.NoError(t, svc.SavePage(ctx, first))

		second := ogmeta.NewPage("https://example.com/a", website("Second"), "hash2")
		require.NoError(t, svc.SavePage(ctx, second))

		assert.Equal(t, first.ID, second.ID)
		found, err := svc.FindPageByURL(ctx, "https://example.com/a")
		require.NoError(t, err)
		assert.Equal(t, "Second", found.Title)
		assert.Equal(t, "hash2", found.ContentHash)
		assert.Equal(t, ogmeta.KindWebsite, found.Kind)

		pages, err := svc.FindPages(ctx, ogmeta.PageFilter{})
		require.NoError(t, err)
		assert.Len(t, pages, 1)
	})

	t.Run("takes title from metadata", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewPageService(setupTestDB(t))
		page := &ogmeta.Page{URL: "https://example.com/a", Metadata: article("Real"), Title: "stale"}
		require.NoError(t, svc.SavePage(ctx, page))

		assert.Equal(t, "Real", page.Title)
		found, err := svc.FindPageByURL(ctx, "https://example.com/a")
		require.NoError(t, err)
		assert.Equal(t, "Real", found.Title)

		untitled := &ogmeta.Page{URL: "https://example.com/b", Metadata: &ogmeta.Website{Common: ogmeta.Common{Type: "website"}}, Title: "stale"}
		require.NoError(t, svc.SavePage(ctx, untitled))

		found, err = svc.FindPageByURL(ctx, "https://example.com/b")
		require.NoError(t, err)
		assert.Empty(t, found.Title)
	})

	t.Run("rejects invalid page", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(setupTestDB(t))

		err := svc.SavePage(context.Background(), &ogmeta.Page{URL: "https://example.com/a"})

		assert.Equal(t, ogmeta.EINVALID, ogmeta.ErrorCode(err))
	})
}

func TestPageService_FindPageByURL(t *testing.T) {
	t.Parallel()

	t.Run("round trips metadata", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewPageService(setupTestDB(t))
		m := article("Stored")
		page := ogmeta.NewPage("https://example.com/a", m, "hash1")
		require.NoError(t, svc.SavePage(ctx, page))

		found, err := svc.FindPageByURL(ctx, "https://example.com/a")

		require.NoError(t, err)
		assert.Equal(t, page.ID, found.ID)
		assert.Equal(t, "https://example.com/a", found.URL)
		assert.Equal(t, ogmeta.KindArticle, found.Kind)
		assert.Equal(t, "article", found.Type)
		assert.Equal(t, "Stored", found.Title)
		assert.Equal(t, m, found.Metadata)
		assert.True(t, page.ExtractedAt.Equal(found.ExtractedAt))
	})

	t.Run("returns not found for missing page", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(setupTestDB(t))

		_, err := svc.FindPageByURL(context.Background(), "https://example.com/missing")

		assert.Equal(t, ogmeta.ENOTFOUND, ogmeta.ErrorCode(err))
	})
}

func TestPageService_FindPages(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T, svc *sqlite.PageService) {
		t.Helper()
		ctx := context.Background()
		require.NoError(t, svc.SavePage(ctx, ogmeta.NewPage("https://example.com/c", website("C"), "")))
		require.NoError(t, svc.SavePage(ctx, ogmeta.NewPage("https://example.com/b", article("B"), "")))
		require.NoError(t, svc.SavePage(ctx, ogmeta.NewPage("https://example.com/a", article("A"), "")))
	}

	t.Run("returns most recent first", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(setupTestDB(t))
		seed(t, svc)

		pages, err := svc.FindPages(context.Background(), ogmeta.PageFilter{})

		require.NoError(t, err)
		require.Len(t, pages, 3)
		assert.Equal(t, "https://example.com/a", pages[0].URL)
		assert.Equal(t, "https://example.com/b", pages[1].URL)
		assert.Equal(t, "https://example.com/c", pages[2].URL)
	})

	t.Run("filters by kind", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(setupTestDB(t))
		seed(t, svc)
		kind := ogmeta.KindArticle

		pages, err := svc.FindPages(context.Background(), ogmeta.PageFilter{Kind: &kind})

		require.NoError(t, err)
		require.Len(t, pages, 2)
		for _, p := range pages {
			assert.Equal(t, ogmeta.KindArticle, p.Kind)
			assert.IsType(t, &ogmeta.Article{}, p.Metadata)
		}
	})

	t.Run("paginates", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(setupTestDB(t))
		seed(t, svc)
		ctx := context.Background()

		page1, err := svc.FindPages(ctx, ogmeta.PageFilter{Limit: 2})
		require.NoError(t, err)
		page2, err := svc.FindPages(ctx, ogmeta.PageFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		tail, err := svc.FindPages(ctx, ogmeta.PageFilter{Offset: 1})
		require.NoError(t, err)

		assert.Len(t, page1, 2)
		require.Len(t, page2, 1)
		assert.Equal(t, "https://example.com/c", page2[0].URL)
		assert.Len(t, tail, 2)
	})

	t.Run("returns empty slice when nothing matches", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(setupTestDB(t))

		pages, err := svc.FindPages(context.Background(), ogmeta.PageFilter{})

		require.NoError(t, err)
		assert.NotNil(t, pages)
		assert.Empty(t, pages)
	})
}

func TestPageService_DeletePage(t *testing.T) {
	t.Parallel()

	t.Run("removes page", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		svc := sqlite.NewPageService(setupTestDB(t))
		require.NoError(t, svc.SavePage(ctx, ogmeta.NewPage("https://example.com/a", website("A"), "")))

		require.NoError(t, svc.DeletePage(ctx, "https://example.com/a"))

		_, err := svc.FindPageByURL(ctx, "https://example.com/a")
		assert.Equal(t, ogmeta.ENOTFOUND, ogmeta.ErrorCode(err))
	})

	t.Run("returns not found for missing page", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewPageService(setupTestDB(t))

		err := svc.DeletePage(context.Background(), "https://example.com/missing")

		assert.Equal(t, ogmeta.ENOTFOUND, ogmeta.ErrorCode(err))
	})
}

func website(title string) ogmeta.Metadata {
	return &ogmeta.Website{Common: common("website", title)}
}

func article(title string) ogmeta.Metadata {
	author, _ := ogmeta.ParseURI("https://example.com/authors/jane")
	section := "News"
	return &ogmeta.Article{
		Common:  common("article", title),
		Authors: []ogmeta.URI{author},
		Section: &section,
		Tags:    []string{"go"},
	}
}

func common(ogType, title string) ogmeta.Common {
	return ogmeta.Common{
		Type:             ogType,
		Title:            &title,
		AlternateLocales: []string{},
		Images:           []ogmeta.Image{{URL: "https://example.com/a.png"}},
		Videos:           []ogmeta.Video{},
		Audios:           []ogmeta.Audio{},
	}
}
