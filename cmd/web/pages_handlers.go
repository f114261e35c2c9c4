package main

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/dev-760/portfolio-v2/internal/cms"
	mw "github.com/dev-760/portfolio-v2/internal/middleware"
	"github.com/dev-760/portfolio-v2/internal/observability"
)

// PageHandler renders a markdown page from content/pages. Pages missing in
// the requested locale fall back to the default one with a notice.
func PageHandler(w http.ResponseWriter, r *http.Request) {
	lang := mw.Lang(r.Context())
	page, err := pageClient.Page(r.Context(), chi.URLParam(r, "slug"), lang)
	if err != nil {
		if !errors.Is(err, cms.ErrNotFound) {
			observability.FromContext(r.Context()).Error("load page", zap.Error(err))
		}
		NotFoundHandler(w, r)
		return
	}

	title := page.Title
	if page.SEO.Title != "" {
		title = page.SEO.Title
	}
	desc := page.SEO.Description
	if desc == "" {
		desc = page.Summary
	}
	vm := newPage(r, title, desc, page.SEO.OGImage)
	vm.SEO.OG.Type = "article"
	if page.Fallback {
		vm.SEO.Robots = "noindex"
	}
	vm.Page = page
	renderPage(w, r, "page", vm)
}
