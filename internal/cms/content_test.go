package cms

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dev-760/portfolio-v2/internal/i18n"
)

func TestPageRendersMarkdownAndFrontMatter(t *testing.T) {
	c := NewClient("../../content/pages", nil)
	page, err := c.Page(context.Background(), "statement", i18n.English)
	require.NoError(t, err)
	require.Equal(t, "Artist Statement", page.Title)
	require.False(t, page.Fallback)
	require.Equal(t, 2025, page.UpdatedAt.Year())
	require.Contains(t, string(page.HTML), "<em>corridors</em>")
	require.Contains(t, string(page.HTML), "<blockquote>")
	require.NotEmpty(t, page.SEO.Description)
}

func TestPageFallsBackToDefaultLocale(t *testing.T) {
	c := NewClient("../../content/pages", nil)
	page, err := c.Page(context.Background(), "colophon", i18n.Arabic)
	require.NoError(t, err)
	require.True(t, page.Fallback)
	require.Equal(t, i18n.English, page.Locale)
	// external links get nofollow and a new tab
	require.Contains(t, string(page.HTML), "nofollow")
	require.Contains(t, string(page.HTML), `target="_blank"`)
}

func TestPageNotFound(t *testing.T) {
	c := NewClient("../../content/pages", nil)
	for _, slug := range []string{"missing", "", "../secrets", "a/b"} {
		_, err := c.Page(context.Background(), slug, i18n.English)
		require.ErrorIs(t, err, ErrNotFound, slug)
	}
}

func TestPagesAreOrdered(t *testing.T) {
	c := NewClient("../../content/pages", nil)
	pages, err := c.Pages(context.Background(), i18n.English)
	require.NoError(t, err)
	require.Len(t, pages, 2)
	require.Equal(t, "statement", pages[0].Slug)
	require.Equal(t, "colophon", pages[1].Slug)
}

func TestCacheExpiresAndInvalidates(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "en"), 0o755))
	file := filepath.Join(dir, "en", "note.md")
	require.NoError(t, os.WriteFile(file, []byte("first"), 0o644))

	now := time.Unix(0, 0)
	c := NewClient(dir, nil)
	c.now = func() time.Time { return now }
	c.SetCacheDuration(time.Minute)

	page, err := c.Page(context.Background(), "note", i18n.English)
	require.NoError(t, err)
	require.Equal(t, "Note", page.Title)
	require.Contains(t, string(page.HTML), "first")

	require.NoError(t, os.WriteFile(file, []byte("second"), 0o644))
	page, _ = c.Page(context.Background(), "note", i18n.English)
	require.Contains(t, string(page.HTML), "first")

	now = now.Add(2 * time.Minute)
	page, _ = c.Page(context.Background(), "note", i18n.English)
	require.Contains(t, string(page.HTML), "second")

	require.NoError(t, os.WriteFile(file, []byte("third"), 0o644))
	c.Invalidate()
	page, _ = c.Page(context.Background(), "note", i18n.English)
	require.Contains(t, string(page.HTML), "third")
}

func TestRendererSanitises(t *testing.T) {
	r := NewRenderer()
	html, err := r.Render("hello <script>alert(1)</script> **world**")
	require.NoError(t, err)
	require.NotContains(t, string(html), "<script>")
	require.Contains(t, string(html), "<strong>world</strong>")

	inline := r.Inline("Images made *between* places")
	require.Equal(t, "Images made <em>between</em> places", string(inline))
	require.False(t, strings.HasPrefix(string(r.Inline("a\n\nb")), "a"))
}
