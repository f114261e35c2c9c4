// Package seo builds page metadata, hreflang alternates and schema.org
// JSON-LD payloads.
package seo

import (
	"strings"

	"github.com/dev-760/portfolio-v2/internal/i18n"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	URL         string
	SiteName    string
	Locale      string
	AltLocale   string
}

type Twitter struct {
	Card  string
	Image string
}

// Alternate is an hreflang link.
type Alternate struct {
	Href     string
	Hreflang string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	Alternates  []Alternate
}

// Absolute joins a site-relative path onto baseURL.
func Absolute(baseURL, p string) string {
	if p == "" || strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimPrefix(p, "/")
}

// Alternates returns one hreflang link per locale for the locale-less path
// rest, plus x-default pointing at the default locale.
func Alternates(baseURL, rest string) []Alternate {
	rest = "/" + strings.TrimPrefix(rest, "/")
	if rest == "/" {
		rest = ""
	}
	out := make([]Alternate, 0, len(i18n.Locales)+1)
	for _, l := range i18n.Locales {
		out = append(out, Alternate{Href: Absolute(baseURL, "/"+string(l)+rest), Hreflang: string(l)})
	}
	out = append(out, Alternate{Href: Absolute(baseURL, "/"+string(i18n.Default)+rest), Hreflang: "x-default"})
	return out
}

// New returns page metadata with Open Graph and Twitter cards filled from the
// title, description and image.
func New(l i18n.Locale, siteName, title, description, canonical, image string) Meta {
	m := Meta{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Image:       image,
			Type:        "website",
			URL:         canonical,
			SiteName:    siteName,
			Locale:      l.OGLocale(),
			AltLocale:   l.Other().OGLocale(),
		},
		Twitter: Twitter{Card: "summary", Image: image},
	}
	if image != "" {
		m.Twitter.Card = "summary_large_image"
	}
	return m
}
