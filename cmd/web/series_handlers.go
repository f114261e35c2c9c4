package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dev-760/portfolio-v2/internal/gallery"
	mw "github.com/dev-760/portfolio-v2/internal/middleware"
	"github.com/dev-760/portfolio-v2/internal/seo"
	"github.com/dev-760/portfolio-v2/internal/view"
)

// SeriesHandler renders a series in book mode (one artwork, page=N) or
// scroll mode (every artwork, revealed as it enters the viewport).
func SeriesHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r.Context())
	s, ok := site.Catalog().Series(chi.URLParam(r, "slug"))
	if !ok {
		NotFoundHandler(w, r)
		return
	}
	q := r.URL.Query()
	mode := gallery.ParseMode(q.Get("mode"))
	n := newSeriesNavigator(lang, s, mode)
	if mode == gallery.ModeContinuous {
		// the first artwork is above the fold
		n.Reveal(0, 1)
	} else {
		n.Seek(parsePage(q.Get("page"), n.Len()))
	}
	sv := buildSeriesView(lang, s, n)

	if mw.IsHTMX(r.Context()) && mode == gallery.ModePaged {
		renderTemplate(w, r, "frag_series_book", map[string]any{"Lang": lang, "Series": sv})
		return
	}

	vm := newPage(r, sv.Title, sv.Description, s.CoverURL())
	vm.Series = sv
	items := make([]string, 0, s.Len())
	for _, a := range s.Artworks() {
		items = append(items, seo.Absolute(baseURL, artworkHref(lang, a.ID, s.Slug, false)))
	}
	vm.AddJSONLD(seo.Gallery(sv.Title, vm.SEO.Canonical, sv.Description, items))
	renderPage(w, r, "series", vm)
}

// SeriesInputHandler replays forwarded gestures against the book view at
// page=N. Steps are subject to the transition lock, so stacked inputs within
// one request advance at most once. htmx requests receive the updated book
// fragment; others are redirected to the resulting page.
func SeriesInputHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r.Context())
	s, ok := site.Catalog().Series(chi.URLParam(r, "slug"))
	if !ok {
		NotFoundHandler(w, r)
		return
	}
	q := r.URL.Query()
	n := newSeriesNavigator(lang, s, gallery.ModePaged)
	n.Seek(parsePage(q.Get("page"), n.Len()))

	doc := view.NewDocument(nil)
	defer doc.Close()
	unmount := n.Mount(doc)
	defer unmount()
	for _, ev := range parseInputs(q["input"]) {
		doc.Dispatch(ev)
	}

	target := seriesHref(lang, s.Slug, gallery.ModePaged, n.Position()+1)
	if mw.IsHTMX(r.Context()) {
		w.Header().Set("HX-Push-Url", target)
		renderTemplate(w, r, "frag_series_book", map[string]any{
			"Lang":   lang,
			"Series": buildSeriesView(lang, s, n),
		})
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
