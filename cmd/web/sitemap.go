package main

import (
	"encoding/xml"
	"net/http"

	"go.uber.org/zap"

	"github.com/dev-760/portfolio-v2/internal/i18n"
	"github.com/dev-760/portfolio-v2/internal/observability"
	"github.com/dev-760/portfolio-v2/internal/seo"
)

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	NS      string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc   string        `xml:"loc"`
	Links []sitemapLink `xml:"xhtml:link"`
}

type sitemapLink struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// sitemapPaths lists every locale-less public path.
func sitemapPaths(r *http.Request) []string {
	paths := []string{"/", "/work", "/cv", "/contact"}
	c := site.Catalog()
	for _, s := range c.AllSeries() {
		paths = append(paths, "/series/"+s.Slug)
	}
	for _, a := range c.Artworks() {
		paths = append(paths, "/art/"+a.ID)
	}
	if pageClient != nil {
		pages, err := pageClient.Pages(r.Context(), i18n.Default)
		if err != nil {
			observability.FromContext(r.Context()).Warn("sitemap pages", zap.Error(err))
		}
		for _, p := range pages {
			paths = append(paths, "/pages/"+p.Slug)
		}
	}
	return paths
}

// SitemapHandler serves sitemap.xml with one entry per locale and hreflang
// alternates.
func SitemapHandler(w http.ResponseWriter, r *http.Request) {
	set := urlSet{
		NS:    "http://www.sitemaps.org/schemas/sitemap/0.9",
		XHTML: "http://www.w3.org/1999/xhtml",
	}
	for _, p := range sitemapPaths(r) {
		alts := seo.Alternates(baseURL, p)
		links := make([]sitemapLink, 0, len(alts))
		for _, a := range alts {
			links = append(links, sitemapLink{Rel: "alternate", Hreflang: a.Hreflang, Href: a.Href})
		}
		for _, a := range alts[:len(i18n.Locales)] {
			set.URLs = append(set.URLs, sitemapURL{Loc: a.Href, Links: links})
		}
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		observability.FromContext(r.Context()).Error("encode sitemap", zap.Error(err))
	}
}
