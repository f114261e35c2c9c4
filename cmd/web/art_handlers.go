package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dev-760/portfolio-v2/internal/catalog"
	"github.com/dev-760/portfolio-v2/internal/gallery"
	"github.com/dev-760/portfolio-v2/internal/i18n"
	mw "github.com/dev-760/portfolio-v2/internal/middleware"
	"github.com/dev-760/portfolio-v2/internal/overlay"
	"github.com/dev-760/portfolio-v2/internal/seo"
	"github.com/dev-760/portfolio-v2/internal/view"
)

// detail is one mounted artwork detail view.
type detail struct {
	nav     *gallery.Navigator
	overlay *overlay.Controller
	series  catalog.Series
	scoped  bool
	doc     *view.Document
	unmount []func()
}

// mountDetail resolves id within the optional series scope and mounts the
// navigator and overlay on a fresh document. It reports false for an unknown
// artwork.
func mountDetail(r *http.Request, lang i18n.Locale) (*detail, bool) {
	c := site.Catalog()
	id := chi.URLParam(r, "id")
	if _, ok := c.Artwork(id); !ok {
		return nil, false
	}
	q := r.URL.Query()
	seq, s, scoped := detailSequence(c, id, q.Get("series"))
	n := newDetailNavigator(lang, seq)
	n.Select(id)

	doc := view.NewDocument(nil)
	d := &detail{nav: n, series: s, scoped: scoped, doc: doc}
	d.unmount = append(d.unmount, n.Mount(doc))
	d.overlay = overlay.New(doc, n)
	d.unmount = append(d.unmount, d.overlay.Mount())
	if q.Get("view") == "fullscreen" {
		d.overlay.Open()
	}
	return d, true
}

func (d *detail) close() {
	for i := len(d.unmount) - 1; i >= 0; i-- {
		d.unmount[i]()
	}
	d.doc.Close()
}

func (d *detail) build(lang i18n.Locale) ArtworkView {
	return buildArtworkView(lang, d.nav, d.series, d.scoped, d.overlay)
}

// ArtworkHandler renders an artwork detail. series=S scopes previous/next to
// that series; view=fullscreen opens the overlay.
func ArtworkHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r.Context())
	d, ok := mountDetail(r, lang)
	if !ok {
		NotFoundHandler(w, r)
		return
	}
	defer d.close()
	av := d.build(lang)

	a, _ := d.nav.Current()
	desc := seo.Excerpt(string(av.Statement), 160)
	if desc == "" {
		desc = seo.Excerpt(string(av.Description), 160)
	}
	vm := newPage(r, av.Title, desc, av.Image)
	vm.SEO.Canonical = seo.Absolute(baseURL, artworkHref(lang, av.ID, "", false))
	vm.SEO.OG.URL = vm.SEO.Canonical
	vm.SEO.OG.Type = "article"
	if av.Fullscreen {
		vm.BodyClass = "is-locked"
	}
	vm.Artwork = av
	series := ""
	if av.Series != nil {
		series = av.Series.Title
	}
	vm.AddJSONLD(seo.Artwork(seo.VisualArtwork{
		Name:        av.Title,
		URL:         vm.SEO.Canonical,
		Image:       seo.Absolute(baseURL, av.Image),
		Description: seo.PlainText(string(av.Description)),
		Creator:     site.Bundle().T(lang, "home.artistName"),
		Year:        a.Year,
		Lang:        string(lang),
		Series:      series,
	}))
	renderPage(w, r, "artwork", vm)
}

// ArtworkInputHandler replays forwarded gestures against the detail view and
// redirects to the resulting state: the current artwork, the series scope and
// the overlay. While the overlay is open arrow keys do not navigate.
func ArtworkInputHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r.Context())
	d, ok := mountDetail(r, lang)
	if !ok {
		NotFoundHandler(w, r)
		return
	}
	defer d.close()
	for _, ev := range parseInputs(r.URL.Query()["input"]) {
		d.doc.Dispatch(ev)
	}

	a, _ := d.nav.Current()
	series := ""
	if d.scoped {
		series = d.series.Slug
	}
	http.Redirect(w, r, artworkHref(lang, a.ID, series, d.overlay.IsOpen()), http.StatusSeeOther)
}
