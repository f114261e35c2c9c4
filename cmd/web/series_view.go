package main

import (
	"html/template"
	"net/url"
	"strconv"

	"github.com/dev-760/portfolio-v2/internal/catalog"
	"github.com/dev-760/portfolio-v2/internal/format"
	"github.com/dev-760/portfolio-v2/internal/gallery"
	"github.com/dev-760/portfolio-v2/internal/i18n"
	"github.com/dev-760/portfolio-v2/internal/nav"
)

// SeriesView drives the series page in book or scroll mode.
type SeriesView struct {
	Slug        string
	Title       string
	Description string
	Brief       template.HTML
	Mode        gallery.Mode
	Count       int

	BookHref   string
	ScrollHref string
	BackHref   string

	// Book mode
	Current       *Slide
	Counter       string
	Left          Step
	Right         Step
	InputEndpoint string

	// Scroll mode
	Slides []Slide
}

// Slide is one artwork as shown inside a gallery.
type Slide struct {
	Index   int
	Page    int
	ID      string
	Title   string
	Image   string
	Href    string
	Year    string
	Quote   *QuoteView
	Visible bool
}

// QuoteView is a localized citation.
type QuoteView struct {
	Text   string
	Author string
}

// Step is a directional control. LabelKey names the logical action it
// performs, which differs from its side in right-to-left layouts.
type Step struct {
	Href     string
	LabelKey string
	Enabled  bool
}

func seriesHref(lang i18n.Locale, slug string, mode gallery.Mode, page int) string {
	href := nav.Href(lang, "/series/"+url.PathEscape(slug))
	q := url.Values{}
	if mode == gallery.ModeContinuous {
		q.Set("mode", string(mode))
	} else if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	if len(q) > 0 {
		href += "?" + q.Encode()
	}
	return href
}

// parsePage turns a 1-based page parameter into an index clamped to n items.
func parsePage(raw string, n int) int {
	p, err := strconv.Atoi(raw)
	if err != nil || p < 1 || n < 1 {
		return 0
	}
	if p > n {
		return n - 1
	}
	return p - 1
}

func newSeriesNavigator(lang i18n.Locale, s catalog.Series, mode gallery.Mode) *gallery.Navigator {
	return gallery.New(s.Artworks(),
		gallery.WithDirection(lang.Direction()),
		gallery.WithMode(mode),
		gallery.WithTransition(transition),
	)
}

func buildSeriesView(lang i18n.Locale, s catalog.Series, n *gallery.Navigator) SeriesView {
	v := SeriesView{
		Slug:        s.Slug,
		Title:       s.Title.In(lang),
		Description: s.Description.In(lang),
		Brief:       markdown.Inline(s.Brief.In(lang)),
		Mode:        n.Mode(),
		Count:       n.Len(),
		BookHref:    seriesHref(lang, s.Slug, gallery.ModePaged, n.Position()+1),
		ScrollHref:  seriesHref(lang, s.Slug, gallery.ModeContinuous, 0),
		BackHref:    nav.Href(lang, "/work"),
	}

	if n.Mode() == gallery.ModeContinuous {
		for i, a := range n.Items() {
			v.Slides = append(v.Slides, slide(lang, s.Slug, i, a, n.Visible(i)))
		}
		return v
	}

	cur, ok := n.Current()
	if !ok {
		return v
	}
	sl := slide(lang, s.Slug, n.Position(), cur, true)
	v.Current = &sl
	v.Counter = format.Counter(n.Position(), n.Len())
	v.InputEndpoint = nav.Href(lang, "/series/"+url.PathEscape(s.Slug)+"/input") + "?" +
		url.Values{"page": {strconv.Itoa(n.Position() + 1)}}.Encode()
	v.Left = seriesStep(lang, s.Slug, n, gallery.ActionLeft)
	v.Right = seriesStep(lang, s.Slug, n, gallery.ActionRight)
	return v
}

func seriesStep(lang i18n.Locale, slug string, n *gallery.Navigator, a gallery.Action) Step {
	st := Step{LabelKey: stepLabel(lang, a)}
	if target, ok := n.Peek(a); ok {
		st.Enabled = true
		st.Href = seriesHref(lang, slug, gallery.ModePaged, target+1)
	}
	return st
}

// stepLabel names the side control by the logical step it performs.
func stepLabel(lang i18n.Locale, a gallery.Action) string {
	forward := a == gallery.ActionRight
	if lang.IsRTL() {
		forward = !forward
	}
	if forward {
		return "artwork.next"
	}
	return "artwork.previous"
}

func slide(lang i18n.Locale, series string, i int, a catalog.Artwork, visible bool) Slide {
	sl := Slide{
		Index:   i,
		Page:    i + 1,
		ID:      a.ID,
		Title:   a.Title.In(lang),
		Image:   a.ImageURL(),
		Href:    artworkHref(lang, a.ID, series, false),
		Quote:   quoteView(lang, a.Quote),
		Visible: visible,
	}
	if a.Year > 0 {
		sl.Year = format.Year(a.Year)
	}
	return sl
}

func quoteView(lang i18n.Locale, q *catalog.Quote) *QuoteView {
	if q == nil || q.Text.In(lang) == "" {
		return nil
	}
	return &QuoteView{Text: q.Text.In(lang), Author: q.Author.In(lang)}
}
