package main

import (
	"html/template"
	"net/url"

	"github.com/dev-760/portfolio-v2/internal/catalog"
	"github.com/dev-760/portfolio-v2/internal/format"
	"github.com/dev-760/portfolio-v2/internal/gallery"
	"github.com/dev-760/portfolio-v2/internal/i18n"
	"github.com/dev-760/portfolio-v2/internal/nav"
	"github.com/dev-760/portfolio-v2/internal/overlay"
)

// ArtworkView drives the artwork detail and its fullscreen overlay.
type ArtworkView struct {
	ID          string
	Title       string
	Image       string
	Year        string
	Moods       []string
	Statement   template.HTML
	Description template.HTML
	Quote       *QuoteView

	// Series is set when navigation is scoped to a series.
	Series   *SeriesRef
	Counter  string
	Previous Step
	Next     Step
	BackHref string
	BackKey  string

	Fullscreen     bool
	FullscreenHref string
	CloseHref      string
	InputEndpoint  string
}

// SeriesRef links back to the scoping series.
type SeriesRef struct {
	Slug  string
	Title string
	Href  string
}

// detailSequence resolves the navigation sequence for artwork id. A series
// that is unknown, or that does not contain the artwork, is ignored and the
// whole catalog is walked instead.
func detailSequence(c *catalog.Catalog, id, seriesSlug string) ([]catalog.Artwork, catalog.Series, bool) {
	seq, s, ok := c.Sequence(seriesSlug)
	if !ok {
		return seq, s, false
	}
	for _, a := range seq {
		if a.ID == id {
			return seq, s, true
		}
	}
	seq, _, _ = c.Sequence("")
	return seq, catalog.Series{}, false
}

func newDetailNavigator(lang i18n.Locale, seq []catalog.Artwork) *gallery.Navigator {
	return gallery.New(seq,
		gallery.WithDirection(lang.Direction()),
		gallery.WithMode(gallery.ModePaged),
		gallery.WithTransition(transition),
	)
}

func buildArtworkView(lang i18n.Locale, n *gallery.Navigator, s catalog.Series, scoped bool, ov *overlay.Controller) ArtworkView {
	a, _ := n.Current()
	series := ""
	if scoped {
		series = s.Slug
	}
	v := ArtworkView{
		ID:          a.ID,
		Title:       a.Title.In(lang),
		Image:       a.ImageURL(),
		Year:        format.Year(a.Year),
		Statement:   markdown.Inline(a.Statement.In(lang)),
		Description: markdown.Inline(a.Description.In(lang)),
		Quote:       quoteView(lang, a.Quote),
		Counter:     format.Counter(n.Position(), n.Len()),
		Previous:    detailStep(lang, n, gallery.ActionPrevious, series, "artwork.previous"),
		Next:        detailStep(lang, n, gallery.ActionNext, series, "artwork.next"),
		BackHref:    nav.Href(lang, "/work"),
		BackKey:     "series.backToWork",

		Fullscreen:     ov.IsOpen(),
		FullscreenHref: artworkHref(lang, a.ID, series, true),
		CloseHref:      artworkHref(lang, a.ID, series, false),
	}
	for _, m := range a.Mood {
		v.Moods = append(v.Moods, string(m))
	}
	if scoped {
		v.Series = &SeriesRef{
			Slug:  s.Slug,
			Title: s.Title.In(lang),
			Href:  seriesHref(lang, s.Slug, gallery.ModePaged, n.Position()+1),
		}
		v.BackHref = v.Series.Href
		v.BackKey = "artwork.backToSeries"
	}
	q := url.Values{}
	if series != "" {
		q.Set("series", series)
	}
	if v.Fullscreen {
		q.Set("view", "fullscreen")
	}
	v.InputEndpoint = nav.Href(lang, "/art/"+url.PathEscape(a.ID)+"/input")
	if len(q) > 0 {
		v.InputEndpoint += "?" + q.Encode()
	}
	return v
}

func detailStep(lang i18n.Locale, n *gallery.Navigator, a gallery.Action, series, key string) Step {
	st := Step{LabelKey: key}
	if target, ok := n.Peek(a); ok {
		st.Enabled = true
		st.Href = artworkHref(lang, n.Items()[target].ID, series, false)
	}
	return st
}
