package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dev-760/portfolio-v2/internal/i18n"
	"github.com/dev-760/portfolio-v2/internal/status"
)

// newHealthMonitor registers the checks reported by /status.
func newHealthMonitor(ttl time.Duration) *status.Monitor {
	m := status.NewMonitor(ttl)
	m.Register("content", true, func(context.Context) (string, error) {
		snap := site.Snapshot()
		c := snap.Catalog
		return fmt.Sprintf("%d artworks, %d series, loaded %s",
			len(c.Artworks()), len(c.AllSeries()), snap.LoadedAt.UTC().Format(time.RFC3339)), nil
	})
	m.Register("templates", true, func(context.Context) (string, error) {
		set, err := templates()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d pages", len(set.pages)), nil
	})
	m.Register("pages", false, func(ctx context.Context) (string, error) {
		pages, err := pageClient.Pages(ctx, i18n.Default)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d pages", len(pages)), nil
	})
	return m
}

// StatusHandler reports component health as JSON. A site that is down
// answers 503 so load balancers can act on it.
func StatusHandler(w http.ResponseWriter, r *http.Request) {
	summary := health.Summary(r.Context())
	code := http.StatusOK
	if summary.State == status.Down {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(summary)
}
