package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dev-760/portfolio-v2/internal/format"
	"github.com/dev-760/portfolio-v2/internal/i18n"
	"github.com/dev-760/portfolio-v2/internal/nav"
	"github.com/dev-760/portfolio-v2/internal/observability"
)

// templateSet holds the shared layout and fragments plus one clone of it per
// page, each with its own "content" block.
type templateSet struct {
	root  *template.Template
	pages map[string]*template.Template
}

var (
	tmplMu    sync.RWMutex
	tmplCache *templateSet
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"now": time.Now,
		"t": func(l i18n.Locale, key string) string {
			if site == nil {
				return key
			}
			return site.Bundle().T(l, key)
		},
		"list": func(l i18n.Locale, key string) []string {
			if site == nil {
				return nil
			}
			return site.Bundle().List(l, key)
		},
		"href":    nav.Href,
		"counter": format.Counter,
		"date":    format.Date,
		"isodate": format.ISODate,
		"add":     func(a, b int) int { return a + b },
	}
}

// parseTemplates discovers every .tmpl file. Files under pages/ each define
// "content" and are parsed into their own clone of the shared set.
func parseTemplates() (*templateSet, error) {
	var shared, pages []string
	// Recursively discover all .tmpl files. Note: ParseGlob doesn't support **.
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".tmpl") {
			return nil
		}
		rel, err := filepath.Rel(templatesDir, path)
		if err != nil {
			return err
		}
		if strings.HasPrefix(filepath.ToSlash(rel), "pages/") {
			pages = append(pages, path)
		} else {
			shared = append(shared, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(shared) == 0 || len(pages) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	root, err := template.New("_root").Funcs(templateFuncs()).ParseFiles(shared...)
	if err != nil {
		return nil, err
	}
	set := &templateSet{root: root, pages: make(map[string]*template.Template, len(pages))}
	for _, p := range pages {
		clone, err := root.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFiles(p); err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(p), ".tmpl")
		set.pages[name] = clone
	}
	return set, nil
}

// templates returns the parsed set. In dev mode templates are reparsed on
// each request.
func templates() (*templateSet, error) {
	if devMode {
		return parseTemplates()
	}
	tmplMu.RLock()
	set := tmplCache
	tmplMu.RUnlock()
	if set != nil {
		return set, nil
	}
	tmplMu.Lock()
	defer tmplMu.Unlock()
	if tmplCache == nil {
		set, err := parseTemplates()
		if err != nil {
			return nil, err
		}
		tmplCache = set
	}
	return tmplCache, nil
}

// renderPage executes the base layout with the named page's content block.
func renderPage(w http.ResponseWriter, r *http.Request, name string, data any) {
	renderPageStatus(w, r, http.StatusOK, name, data)
}

func renderPageStatus(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	set, err := templates()
	if err != nil {
		templateError(w, r, "template parse error", err)
		return
	}
	t, ok := set.pages[name]
	if !ok {
		templateError(w, r, "unknown page template", fmt.Errorf("page %q", name))
		return
	}
	execute(w, r, status, t, "base", data)
}

// renderTemplate executes a shared fragment, used for htmx swaps.
func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	set, err := templates()
	if err != nil {
		templateError(w, r, "template parse error", err)
		return
	}
	execute(w, r, http.StatusOK, set.root, name, data)
}

func execute(w http.ResponseWriter, r *http.Request, status int, t *template.Template, name string, data any) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		templateError(w, r, "template exec error", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func templateError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	observability.FromContext(r.Context()).Error(msg, zap.Error(err))
	http.Error(w, fmt.Sprintf("%s: %v", msg, err), http.StatusInternalServerError)
}
