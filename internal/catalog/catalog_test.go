package catalog

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dev-760/portfolio-v2/internal/i18n"
)

func loadShipped(t *testing.T) *Catalog {
	t.Helper()
	c, err := Load("../../content")
	require.NoError(t, err)
	return c
}

func ids(list []Artwork) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.ID
	}
	return out
}

func TestShippedCatalogLoads(t *testing.T) {
	c := loadShipped(t)

	require.NotEmpty(t, c.Artworks())
	require.NotEmpty(t, c.AllSeries())
	for _, a := range c.Artworks() {
		require.True(t, IsSlug(a.ID), a.ID)
		require.True(t, a.Title.Complete(), a.ID)
	}
	require.NotEmpty(t, c.CV().Email)
	require.NotEmpty(t, c.CV().Experience)
}

func TestSequenceScopesToSeries(t *testing.T) {
	c := loadShipped(t)

	seq, s, ok := c.Sequence("passages")
	require.True(t, ok)
	require.Equal(t, "passages", s.Slug)
	require.Equal(t, []string{"uncertain-passage", "silent-field", "corridor", "threshold"}, ids(seq))

	for _, a := range seq {
		require.Equal(t, "passages", a.Series)
	}
}

func TestSequenceFallsBackToCatalog(t *testing.T) {
	c := loadShipped(t)

	for _, slug := range []string{"", "missing"} {
		seq, s, ok := c.Sequence(slug)
		require.False(t, ok, slug)
		require.Empty(t, s.Slug)
		require.Equal(t, ids(c.Artworks()), ids(seq))
	}
}

func TestSequenceReturnsCopies(t *testing.T) {
	c := loadShipped(t)

	seq, _, _ := c.Sequence("light")
	seq[0].ID = "mutated"
	again, _, _ := c.Sequence("light")
	require.NotEqual(t, "mutated", again[0].ID)
}

func TestByMood(t *testing.T) {
	c := loadShipped(t)

	require.Len(t, c.ByMood(""), len(c.Artworks()))
	require.Len(t, c.ByMood("all"), len(c.Artworks()))
	require.Nil(t, c.ByMood("sunny"))

	night := c.ByMood("night")
	require.Equal(t, []string{"baroud", "after-hours"}, ids(night))
	for _, a := range c.ByMood("Shadow") {
		require.True(t, a.HasMood(MoodShadow))
	}
}

func TestImageURLEscapesFileNames(t *testing.T) {
	require.Equal(t, "/assets/artworks/Uncertain%20Passage.jpg", ImageURL("Uncertain Passage.jpg"))
	require.Equal(t, "/assets/artworks/a.jpg", ImageURL("/a.jpg"))
	require.Empty(t, ImageURL("  "))
}

func TestSeriesCoverDefaultsToFirstArtwork(t *testing.T) {
	title := Text{i18n.English: "One", i18n.Arabic: "واحد"}
	c, err := New(
		[]Artwork{{ID: "one", Image: "one.jpg", Title: title, Mood: []Mood{MoodLight}}},
		[]Series{{Slug: "solo", Title: title, ArtworkIDs: []string{"one"}}},
		CV{},
	)
	require.NoError(t, err)
	s, ok := c.Series("solo")
	require.True(t, ok)
	require.Equal(t, "/assets/artworks/one.jpg", s.CoverURL())
	require.Equal(t, 1, s.Len())
}

func TestNewDerivesMissingIDs(t *testing.T) {
	c, err := New(
		[]Artwork{{Image: "x.jpg", Title: Text{i18n.English: "Café Noir", i18n.Arabic: "مقهى"}, Mood: []Mood{MoodNight}}},
		nil, CV{},
	)
	require.NoError(t, err)
	_, ok := c.Artwork("cafe-noir")
	require.True(t, ok)
}

func TestNewRejectsInvalidContent(t *testing.T) {
	title := Text{i18n.English: "T", i18n.Arabic: "ع"}
	ok := Artwork{ID: "a", Image: "a.jpg", Title: title, Mood: []Mood{MoodLight}}

	cases := map[string]struct {
		artworks []Artwork
		series   []Series
	}{
		"missing arabic title": {artworks: []Artwork{{ID: "a", Image: "a.jpg", Title: Text{i18n.English: "T"}, Mood: []Mood{MoodLight}}}},
		"unknown mood":         {artworks: []Artwork{{ID: "a", Image: "a.jpg", Title: title, Mood: []Mood{"sunny"}}}},
		"uppercase mood":       {artworks: []Artwork{{ID: "a", Image: "a.jpg", Title: title, Mood: []Mood{"Light"}}}},
		"no mood":              {artworks: []Artwork{{ID: "a", Image: "a.jpg", Title: title}}},
		"bad id":               {artworks: []Artwork{{ID: "A B", Image: "a.jpg", Title: title, Mood: []Mood{MoodLight}}}},
		"duplicate id":         {artworks: []Artwork{ok, ok}},
		"half quote":           {artworks: []Artwork{{ID: "a", Image: "a.jpg", Title: title, Mood: []Mood{MoodLight}, Quote: &Quote{Text: Text{i18n.English: "q"}}}}},
		"unknown member":       {artworks: []Artwork{ok}, series: []Series{{Slug: "s", Title: title, ArtworkIDs: []string{"zzz"}}}},
		"listed twice":         {artworks: []Artwork{ok}, series: []Series{{Slug: "s", Title: title, ArtworkIDs: []string{"a", "a"}}}},
		"two owners": {artworks: []Artwork{ok}, series: []Series{
			{Slug: "s", Title: title, ArtworkIDs: []string{"a"}},
			{Slug: "t", Title: title, ArtworkIDs: []string{"a"}},
		}},
		"duplicate slug": {artworks: []Artwork{ok}, series: []Series{
			{Slug: "s", Title: title},
			{Slug: "s", Title: title},
		}},
		"bad slug": {artworks: []Artwork{ok}, series: []Series{{Slug: "Not Safe", Title: title}}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := New(tc.artworks, tc.series, CV{})
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalid))
		})
	}
}

func TestLoadFSWithoutCV(t *testing.T) {
	fsys := fstest.MapFS{
		"catalog.yaml": {Data: []byte(`
artworks:
  - id: one
    image: one.jpg
    title: { en: One, ar: واحد }
    mood: [light]
`)},
	}
	c, err := LoadFS(fsys)
	require.NoError(t, err)
	require.Len(t, c.Artworks(), 1)
	require.Empty(t, c.CV().Email)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Uncertain Passage": "uncertain-passage",
		"  Look   Up! ":     "look-up",
		"Élan — vital":      "elan-vital",
		"عبور":              "",
		"2024/Series #3":    "2024-series-3",
	}
	for in, want := range cases {
		require.Equal(t, want, Slugify(in), in)
	}
	require.True(t, IsSlug("after-hours"))
	require.False(t, IsSlug("-lead"))
	require.False(t, IsSlug("double--dash"))
}
