package main

import (
	"net/http"
	"strings"

	mw "github.com/dev-760/portfolio-v2/internal/middleware"
	"github.com/dev-760/portfolio-v2/internal/nav"
	"github.com/dev-760/portfolio-v2/internal/seo"
)

// WorkHandler renders the work index, filtered by the mood query parameter.
// htmx requests get only the grid fragment.
func WorkHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r.Context())
	bundle := site.Bundle()
	mood := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("mood")))
	work := buildWorkView(lang, site.Catalog(), mood)

	if mw.IsHTMX(r.Context()) {
		w.Header().Set("HX-Push-Url", r.URL.RequestURI())
		renderTemplate(w, r, "frag_work_grid", map[string]any{
			"Lang": lang,
			"Work": work,
		})
		return
	}

	vm := newPage(r, bundle.T(lang, "work.title"), "", "")
	vm.Work = work
	items := make([]string, 0, len(work.Artworks))
	for _, a := range work.Artworks {
		items = append(items, seo.Absolute(baseURL, a.Href))
	}
	vm.AddJSONLD(seo.Gallery(bundle.T(lang, "work.title"), seo.Absolute(baseURL, nav.Href(lang, "/work")), bundle.T(lang, "meta.description"), items))
	renderPage(w, r, "work", vm)
}
