package main

import (
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	mw "github.com/dev-760/portfolio-v2/internal/middleware"
)

// newRouter builds the full route tree. secure marks cookies Secure.
func newRouter(logger *zap.Logger, secure bool) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(mw.CSRF(secure))

	r.NotFound(NotFoundHandler)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/status", StatusHandler)
	r.Get("/robots.txt", RobotsHandler)
	r.Get("/sitemap.xml", SitemapHandler)

	assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(publicDir, "assets"), devMode))
	r.Handle("/assets/*", assets)

	r.With(mw.VaryLocale).Get("/", RootHandler)

	r.Route("/{locale}", func(r chi.Router) {
		r.Use(mw.Locale(NotFoundHandler))

		r.Get("/", HomeHandler)
		r.Get("/enter", EnterHandler)
		r.Get("/work", WorkHandler)
		r.Get("/series/{slug}", SeriesHandler)
		r.Get("/series/{slug}/input", SeriesInputHandler)
		r.Get("/art/{id}", ArtworkHandler)
		r.Get("/art/{id}/input", ArtworkInputHandler)
		r.Get("/cv", CVHandler)
		r.Get("/contact", ContactHandler)
		r.Post("/contact", ContactSubmitHandler)
		r.Get("/pages/{slug}", PageHandler)
	})
	return r
}

func splitAddr(addr string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid addr %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return "", 0, fmt.Errorf("invalid port in %q: %w", addr, err)
	}
	return host, port, nil
}
