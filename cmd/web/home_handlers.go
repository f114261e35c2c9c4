package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/dev-760/portfolio-v2/internal/entry"
	mw "github.com/dev-760/portfolio-v2/internal/middleware"
	"github.com/dev-760/portfolio-v2/internal/nav"
	"github.com/dev-760/portfolio-v2/internal/observability"
	"github.com/dev-760/portfolio-v2/internal/seo"
	"github.com/dev-760/portfolio-v2/internal/view"
)

// HomeView drives the landing view.
type HomeView struct {
	WorkHref      string
	EnterEndpoint string
	DelayMS       int64
	Hero          string
	HeroAlt       string
}

// HomeHandler renders the landing view.
func HomeHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r.Context())
	bundle := site.Bundle()
	c := site.Catalog()

	home := HomeView{
		WorkHref:      nav.Href(lang, "/work"),
		EnterEndpoint: nav.Href(lang, "/enter"),
		DelayMS:       entryDelay.Milliseconds(),
	}
	if works := c.Artworks(); len(works) > 0 {
		home.Hero = works[0].ImageURL()
		home.HeroAlt = works[0].Title.In(lang)
	}

	vm := newPage(r, "", "", home.Hero)
	vm.BodyClass = "is-landing"
	vm.Breadcrumbs = nil
	vm.Home = home
	cv := c.CV()
	vm.AddJSONLD(seo.Person(
		bundle.T(lang, "home.artistName"),
		seo.Absolute(baseURL, nav.Href(lang, "/")),
		bundle.T(lang, "home.title"),
		cv.Email,
		socialLinks(cv.Instagram, cv.LinkedIn),
	))
	renderPage(w, r, "home", vm)
}

// EnterHandler replays the landing gestures the client forwarded. When one
// qualifies it holds the request for the entry delay (the fade-out) and
// redirects to the work index; otherwise it answers 204.
func EnterHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r.Context())
	events := parseInputs(r.URL.Query()["input"])

	doc := view.NewDocument(nil)
	defer doc.Close()

	done := make(chan struct{})
	ctl := entry.New(doc, entryDelay, func() { close(done) })
	unmount := ctl.Mount()
	defer unmount()

	for _, ev := range events {
		doc.Dispatch(ev)
	}
	if ctl.State() != entry.Triggered {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	select {
	case <-done:
		http.Redirect(w, r, nav.Href(lang, "/work"), http.StatusSeeOther)
	case <-r.Context().Done():
		observability.FromContext(r.Context()).Debug("entry abandoned", zap.Error(r.Context().Err()))
	}
}

func socialLinks(links ...string) []string {
	var out []string
	for _, l := range links {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}
