package main

import (
	"net/http"

	mw "github.com/dev-760/portfolio-v2/internal/middleware"
	"github.com/dev-760/portfolio-v2/internal/nav"
	"github.com/dev-760/portfolio-v2/internal/seo"
)

// CVHandler renders the curriculum vitae.
func CVHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r.Context())
	bundle := site.Bundle()
	cv := site.Catalog().CV()

	vm := newPage(r, bundle.T(lang, "cv.title"), "", "")
	vm.CV = cv
	vm.AddJSONLD(seo.Person(
		bundle.T(lang, "cv.artistName"),
		seo.Absolute(baseURL, nav.Href(lang, "/cv")),
		bundle.T(lang, "home.title"),
		cv.Email,
		socialLinks(cv.Instagram, cv.LinkedIn),
	))
	renderPage(w, r, "cv", vm)
}
