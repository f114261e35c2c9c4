package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dev-760/portfolio-v2/internal/i18n"
)

// LocaleCookie remembers the last locale the visitor browsed in.
const LocaleCookie = "hl"

// BundleSource yields the translation bundle currently being served.
type BundleSource interface {
	Bundle() *i18n.Bundle
}

// Locale validates the {locale} route parameter. Unsupported values are handed
// to notFound; supported ones are stored in the request context, surfaced as
// Content-Language and remembered in the hl cookie.
func Locale(notFound http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l, ok := i18n.Parse(chi.URLParam(r, "locale"))
			if !ok || chi.URLParam(r, "locale") != string(l) {
				notFound(w, r)
				return
			}
			w.Header().Set("Content-Language", string(l))
			if c, err := r.Cookie(LocaleCookie); err != nil || c.Value != string(l) {
				http.SetCookie(w, &http.Cookie{
					Name:     LocaleCookie,
					Value:    string(l),
					Path:     "/",
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(365 * 24 * time.Hour),
				})
			}
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), l)))
		})
	}
}

// PreferredLocale picks a locale for requests outside a locale route: the hl
// cookie, then Accept-Language, then the default.
func PreferredLocale(r *http.Request, bundle *i18n.Bundle) i18n.Locale {
	if c, err := r.Cookie(LocaleCookie); err == nil {
		if l, ok := i18n.Parse(c.Value); ok {
			return l
		}
	}
	if bundle == nil {
		return i18n.Default
	}
	return bundle.Resolve(strings.TrimSpace(r.Header.Get("Accept-Language")))
}
