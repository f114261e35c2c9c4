// Package handlers holds the view models shared by every page rendered with
// the base layout.
package handlers

import (
	"html/template"

	"github.com/dev-760/portfolio-v2/internal/i18n"
	"github.com/dev-760/portfolio-v2/internal/nav"
	"github.com/dev-760/portfolio-v2/internal/seo"
)

// PageData is the view model for pages using the shared layout.
type PageData struct {
	Title  string
	Lang   i18n.Locale
	Dir    i18n.Direction
	SEO    seo.Meta
	JSONLD []template.JS

	Path        string
	Nav         []nav.RenderedItem
	Breadcrumbs []nav.Crumb
	SwitchHref  string
	SwitchLang  i18n.Locale
	CSRF        string
	Footer      []PageLink
	Year        int

	// BodyClass lets a page opt into layout variants, e.g. the bare landing view.
	BodyClass string

	// Optional per-page view model payloads
	Home    any
	Work    any
	Series  any
	Artwork any
	CV      any
	Contact any
	Page    any
}

// PageLink is a footer link to a static page.
type PageLink struct {
	Href  string
	Title string
}

// AddJSONLD appends a structured data payload.
func (p *PageData) AddJSONLD(v any) {
	if s := seo.Script(v); s != "" {
		p.JSONLD = append(p.JSONLD, s)
	}
}
