package main

import (
	"net/url"
	"strconv"

	"github.com/dev-760/portfolio-v2/internal/catalog"
	"github.com/dev-760/portfolio-v2/internal/i18n"
	"github.com/dev-760/portfolio-v2/internal/nav"
)

// WorkView drives the work index: series cards and the mood-filtered grid.
type WorkView struct {
	Mood     string
	Filters  []MoodFilter
	Series   []SeriesCard
	Artworks []ArtworkCard
}

// MoodFilter is one filter chip.
type MoodFilter struct {
	Value    string
	LabelKey string
	Href     string
	Active   bool
}

// SeriesCard links to a series.
type SeriesCard struct {
	Slug        string
	Title       string
	Description string
	Cover       string
	Href        string
	Count       int
}

// ArtworkCard links to an artwork detail.
type ArtworkCard struct {
	ID    string
	Title string
	Image string
	Href  string
	Year  string
	Moods []string
}

func buildWorkView(lang i18n.Locale, c *catalog.Catalog, mood string) WorkView {
	active := catalog.MoodAll
	if mood != "" {
		if m, ok := catalog.ParseMood(mood); ok {
			active = string(m)
		} else if mood != catalog.MoodAll {
			active = mood
		}
	}

	v := WorkView{Mood: active}
	values := append([]string{catalog.MoodAll}, moodValues()...)
	for _, val := range values {
		href := nav.Href(lang, "/work")
		if val != catalog.MoodAll {
			href += "?" + url.Values{"mood": {val}}.Encode()
		}
		v.Filters = append(v.Filters, MoodFilter{
			Value:    val,
			LabelKey: "work.filters." + val,
			Href:     href,
			Active:   val == active,
		})
	}

	for _, s := range c.AllSeries() {
		v.Series = append(v.Series, SeriesCard{
			Slug:        s.Slug,
			Title:       s.Title.In(lang),
			Description: s.Description.In(lang),
			Cover:       s.CoverURL(),
			Href:        nav.Href(lang, "/series/"+s.Slug),
			Count:       s.Len(),
		})
	}
	for _, a := range c.ByMood(active) {
		v.Artworks = append(v.Artworks, artworkCard(lang, a, ""))
	}
	return v
}

func moodValues() []string {
	out := make([]string, len(catalog.Moods))
	for i, m := range catalog.Moods {
		out[i] = string(m)
	}
	return out
}

func artworkCard(lang i18n.Locale, a catalog.Artwork, series string) ArtworkCard {
	card := ArtworkCard{
		ID:    a.ID,
		Title: a.Title.In(lang),
		Image: a.ImageURL(),
		Href:  artworkHref(lang, a.ID, series, false),
	}
	if a.Year > 0 {
		card.Year = strconv.Itoa(a.Year)
	}
	for _, m := range a.Mood {
		card.Moods = append(card.Moods, string(m))
	}
	return card
}

// artworkHref builds a detail URL, scoped to series when set.
func artworkHref(lang i18n.Locale, id, series string, fullscreen bool) string {
	href := nav.Href(lang, "/art/"+url.PathEscape(id))
	q := url.Values{}
	if series != "" {
		q.Set("series", series)
	}
	if fullscreen {
		q.Set("view", "fullscreen")
	}
	if len(q) > 0 {
		href += "?" + q.Encode()
	}
	return href
}
