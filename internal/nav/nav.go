// Package nav builds the localized primary navigation, breadcrumbs and the
// language switch link.
package nav

import (
	"net/url"
	"path"
	"strings"

	"github.com/dev-760/portfolio-v2/internal/i18n"
)

// Item represents a top-level navigation item.
type Item struct {
	Path     string // e.g. "/work", relative to the locale root
	LabelKey string // i18n key, e.g. "nav.work"
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
}

// Crumb represents a breadcrumb entry. If LabelKey is empty, use Label.
type Crumb struct {
	Href     string
	LabelKey string
	Label    string
	Active   bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/work", LabelKey: "nav.work"},
	{Path: "/cv", LabelKey: "nav.cv"},
	{Path: "/contact", LabelKey: "nav.contact"},
}

// sectionParents maps detail sections to the top-level item they sit under.
var sectionParents = map[string]string{
	"series": "/work",
	"art":    "/work",
}

// Href prefixes p with the locale root.
func Href(l i18n.Locale, p string) string {
	if p == "" || p == "/" {
		return "/" + string(l)
	}
	return "/" + string(l) + "/" + strings.TrimPrefix(p, "/")
}

// Build renders navigation items for l with active state given the current
// request path (including the locale prefix).
func Build(l i18n.Locale, currentPath string) []RenderedItem {
	rest := stripLocale(currentPath)
	items := make([]RenderedItem, 0, len(Main))
	for _, it := range Main {
		items = append(items, RenderedItem{
			Href:     Href(l, it.Path),
			LabelKey: it.LabelKey,
			Active:   isActive(it.Path, rest),
		})
	}
	return items
}

func isActive(itemPath, rest string) bool {
	if rest == itemPath || strings.HasPrefix(rest, itemPath+"/") {
		return true
	}
	parts := strings.SplitN(strings.TrimPrefix(rest, "/"), "/", 2)
	return sectionParents[parts[0]] == itemPath
}

// Rest returns the request path without its locale prefix.
func Rest(p string) string { return stripLocale(p) }

// stripLocale removes a leading /ar or /en segment; the result always starts
// with "/".
func stripLocale(p string) string {
	p = path.Clean("/" + p)
	parts := strings.SplitN(strings.TrimPrefix(p, "/"), "/", 2)
	if _, ok := i18n.Parse(parts[0]); ok {
		if len(parts) == 1 {
			return "/"
		}
		return "/" + parts[1]
	}
	return p
}

// SwitchLanguage returns the URL of the current page in the other locale,
// keeping the query string.
func SwitchLanguage(current *url.URL, to i18n.Locale) string {
	if current == nil {
		return Href(to, "/")
	}
	href := Href(to, stripLocale(current.Path))
	if current.RawQuery != "" {
		href += "?" + current.RawQuery
	}
	return href
}

// Breadcrumbs builds breadcrumb entries for the current path. Labels for
// detail segments (artwork and series titles) come from label; when it
// returns "" the segment is prettified.
func Breadcrumbs(l i18n.Locale, currentPath string, label func(section, segment string) string) []Crumb {
	rest := stripLocale(currentPath)
	crumbs := []Crumb{{Href: Href(l, "/"), LabelKey: "nav.home", Active: rest == "/"}}
	if rest == "/" {
		return crumbs
	}
	parts := strings.Split(strings.TrimPrefix(rest, "/"), "/")

	section := parts[0]
	if parent, ok := sectionParents[section]; ok {
		crumbs = append(crumbs, Crumb{Href: Href(l, parent), LabelKey: labelKeyFor(parent)})
		if len(parts) > 1 {
			name := ""
			if label != nil {
				name = label(section, parts[1])
			}
			if name == "" {
				name = titleFromSegment(parts[1])
			}
			crumbs = append(crumbs, Crumb{Href: Href(l, "/"+section+"/"+parts[1]), Label: name, Active: true})
		}
		return crumbs
	}

	top := "/" + section
	crumbs = append(crumbs, Crumb{
		Href:     Href(l, top),
		LabelKey: labelKeyFor(top),
		Label:    titleFromSegment(section),
		Active:   len(parts) == 1,
	})
	href := top
	for i := 1; i < len(parts); i++ {
		href += "/" + parts[i]
		crumbs = append(crumbs, Crumb{
			Href:   Href(l, href),
			Label:  titleFromSegment(parts[i]),
			Active: i == len(parts)-1,
		})
	}
	return crumbs
}

func labelKeyFor(p string) string {
	for _, it := range Main {
		if it.Path == p {
			return it.LabelKey
		}
	}
	return ""
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.ReplaceAll(seg, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
