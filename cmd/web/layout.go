package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	handlersPkg "github.com/dev-760/portfolio-v2/internal/handlers"
	"github.com/dev-760/portfolio-v2/internal/i18n"
	mw "github.com/dev-760/portfolio-v2/internal/middleware"
	"github.com/dev-760/portfolio-v2/internal/nav"
	"github.com/dev-760/portfolio-v2/internal/observability"
	"github.com/dev-760/portfolio-v2/internal/seo"
)

// newPage fills the layout view model shared by every page. An empty title
// uses the site title as is; otherwise the site name is appended.
func newPage(r *http.Request, title, description, image string) handlersPkg.PageData {
	lang := mw.Lang(r.Context())
	bundle := site.Bundle()
	brand := bundle.T(lang, "meta.siteName")

	full := bundle.T(lang, "meta.title")
	if title != "" {
		full = title + " | " + brand
	}
	if description == "" {
		description = bundle.T(lang, "meta.description")
	}

	canonical := seo.Absolute(baseURL, r.URL.Path)
	meta := seo.New(lang, brand, full, description, canonical, seo.Absolute(baseURL, image))
	meta.Alternates = seo.Alternates(baseURL, nav.Rest(r.URL.Path))

	vm := handlersPkg.PageData{
		Title:       full,
		Lang:        lang,
		Dir:         lang.Direction(),
		SEO:         meta,
		Path:        r.URL.Path,
		Nav:         nav.Build(lang, r.URL.Path),
		Breadcrumbs: nav.Breadcrumbs(lang, r.URL.Path, crumbLabel(lang)),
		SwitchHref:  nav.SwitchLanguage(r.URL, lang.Other()),
		SwitchLang:  lang.Other(),
		CSRF:        mw.CSRFToken(r.Context()),
		Footer:      footerLinks(r, lang),
		Year:        time.Now().Year(),
	}
	vm.AddJSONLD(seo.WebSite(brand, baseURL, string(lang)))
	return vm
}

// crumbLabel names series and artwork segments by their localized titles.
func crumbLabel(lang i18n.Locale) func(section, segment string) string {
	c := site.Catalog()
	return func(section, segment string) string {
		switch section {
		case "series":
			if s, ok := c.Series(segment); ok {
				return s.Title.In(lang)
			}
		case "art":
			if a, ok := c.Artwork(segment); ok {
				return a.Title.In(lang)
			}
		}
		return ""
	}
}

func footerLinks(r *http.Request, lang i18n.Locale) []handlersPkg.PageLink {
	if pageClient == nil {
		return nil
	}
	pages, err := pageClient.Pages(r.Context(), lang)
	if err != nil {
		observability.FromContext(r.Context()).Warn("list pages", zap.Error(err))
		return nil
	}
	links := make([]handlersPkg.PageLink, 0, len(pages))
	for _, p := range pages {
		links = append(links, handlersPkg.PageLink{Href: nav.Href(lang, "/pages/"+p.Slug), Title: p.Title})
	}
	return links
}

// RootHandler redirects / to the visitor's preferred locale.
func RootHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.PreferredLocale(r, site.Bundle())
	http.Redirect(w, r, nav.Href(lang, "/"), http.StatusFound)
}

// NotFoundHandler renders the localized 404 page. Outside a valid locale
// route the locale comes from the first path segment or the visitor's
// preference.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	lang, ok := mw.LocaleFrom(r.Context())
	if !ok {
		first := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/"), "/", 2)[0]
		if l, valid := i18n.Parse(chi.URLParam(r, "locale")); valid {
			lang = l
		} else if l, valid := i18n.Parse(first); valid {
			lang = l
		} else {
			lang = mw.PreferredLocale(r, site.Bundle())
		}
		r = r.WithContext(mw.WithLocale(r.Context(), lang))
	}
	vm := newPage(r, site.Bundle().T(lang, "notFound.title"), site.Bundle().T(lang, "notFound.message"), "")
	vm.SEO.Robots = "noindex"
	vm.SEO.Alternates = nil
	vm.Breadcrumbs = nil
	vm.SwitchHref = nav.Href(lang.Other(), "/")
	renderPageStatus(w, r, http.StatusNotFound, "not_found", vm)
}

// RobotsHandler serves robots.txt pointing at the sitemap.
func RobotsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("User-agent: *\nAllow: /\nSitemap: " + seo.Absolute(baseURL, "/sitemap.xml") + "\n"))
}
