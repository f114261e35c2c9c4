// Package catalog holds the static artwork, series and CV content of the site.
package catalog

import (
	"net/url"
	"slices"
	"strings"

	"github.com/dev-760/portfolio-v2/internal/i18n"
)

// AssetRoot is the URL prefix every artwork image resolves under.
const AssetRoot = "/assets/artworks/"

// Mood is a categorical label used for filtering.
type Mood string

const (
	MoodShadow  Mood = "shadow"
	MoodLight   Mood = "light"
	MoodPassage Mood = "passage"
	MoodNight   Mood = "night"
)

// MoodAll is the filter value that selects every artwork.
const MoodAll = "all"

// Moods lists the closed mood enumeration in display order.
var Moods = []Mood{MoodShadow, MoodLight, MoodPassage, MoodNight}

// ParseMood validates a raw filter value.
func ParseMood(raw string) (Mood, bool) {
	m := Mood(strings.ToLower(strings.TrimSpace(raw)))
	if slices.Contains(Moods, m) {
		return m, true
	}
	return "", false
}

// Text is a per-locale string.
type Text map[i18n.Locale]string

// In returns the text for l, or "" when absent.
func (t Text) In(l i18n.Locale) string {
	return strings.TrimSpace(t[l])
}

// Complete reports whether every supported locale has a value.
func (t Text) Complete() bool {
	for _, l := range i18n.Locales {
		if t.In(l) == "" {
			return false
		}
	}
	return true
}

// Empty reports whether no locale has a value.
func (t Text) Empty() bool {
	for _, l := range i18n.Locales {
		if t.In(l) != "" {
			return false
		}
	}
	return true
}

// Quote is an optional citation shown beside an artwork.
type Quote struct {
	Text   Text `yaml:"text"`
	Author Text `yaml:"author"`
}

// Artwork is a single piece in the catalog.
type Artwork struct {
	ID          string `yaml:"id"`
	Image       string `yaml:"image"`
	Title       Text   `yaml:"title"`
	Quote       *Quote `yaml:"quote"`
	Statement   Text   `yaml:"statement"`
	Description Text   `yaml:"description"`
	Mood        []Mood `yaml:"mood"`
	Year        int    `yaml:"year"`

	// Series is the slug of the series containing the artwork, if any.
	Series string `yaml:"-"`
}

// HasMood reports whether the artwork carries m.
func (a Artwork) HasMood(m Mood) bool {
	return slices.Contains(a.Mood, m)
}

// ImageURL returns the public URL of the artwork image.
func (a Artwork) ImageURL() string { return ImageURL(a.Image) }

// Series is a named, ordered grouping of artworks.
type Series struct {
	Slug        string   `yaml:"slug"`
	Title       Text     `yaml:"title"`
	Description Text     `yaml:"description"`
	Brief       Text     `yaml:"brief"`
	Cover       string   `yaml:"cover"`
	ArtworkIDs  []string `yaml:"artworks"`

	artworks []Artwork
}

// Artworks returns the series' artworks in navigation order.
func (s Series) Artworks() []Artwork {
	return slices.Clone(s.artworks)
}

// Len returns the number of artworks in the series.
func (s Series) Len() int { return len(s.artworks) }

// CoverURL returns the public URL of the series cover.
func (s Series) CoverURL() string { return ImageURL(s.Cover) }

// ImageURL resolves a file name under the artwork asset root.
func ImageURL(file string) string {
	file = strings.TrimPrefix(strings.TrimSpace(file), "/")
	if file == "" {
		return ""
	}
	return AssetRoot + url.PathEscape(file)
}

// Catalog is the immutable, validated content set.
type Catalog struct {
	artworks []Artwork
	byID     map[string]int
	series   []Series
	bySlug   map[string]int
	cv       CV
}

// Artworks returns every artwork in catalog order.
func (c *Catalog) Artworks() []Artwork {
	return slices.Clone(c.artworks)
}

// Artwork finds an artwork by id.
func (c *Catalog) Artwork(id string) (Artwork, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Artwork{}, false
	}
	return c.artworks[i], true
}

// AllSeries returns every series in catalog order.
func (c *Catalog) AllSeries() []Series {
	return slices.Clone(c.series)
}

// Series finds a series by slug.
func (c *Catalog) Series(slug string) (Series, bool) {
	i, ok := c.bySlug[slug]
	if !ok {
		return Series{}, false
	}
	return c.series[i], true
}

// ByMood filters artworks by mood; "all" (or an empty value) returns everything.
// An unknown mood yields no artworks.
func (c *Catalog) ByMood(mood string) []Artwork {
	mood = strings.TrimSpace(mood)
	if mood == "" || strings.EqualFold(mood, MoodAll) {
		return c.Artworks()
	}
	m, ok := ParseMood(mood)
	if !ok {
		return nil
	}
	var out []Artwork
	for _, a := range c.artworks {
		if a.HasMood(m) {
			out = append(out, a)
		}
	}
	return out
}

// Sequence returns the navigation sequence for a detail view. When
// seriesSlug names a known series the sequence is strictly that series'
// artworks and the series is returned with ok=true; otherwise (absent or
// unresolvable) the whole catalog is returned with ok=false.
func (c *Catalog) Sequence(seriesSlug string) ([]Artwork, Series, bool) {
	if seriesSlug != "" {
		if s, ok := c.Series(seriesSlug); ok {
			return s.Artworks(), s, true
		}
	}
	return c.Artworks(), Series{}, false
}

// CV returns the curriculum vitae content.
func (c *Catalog) CV() CV { return c.cv }
