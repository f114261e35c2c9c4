// Package status summarises the health of the site's local subsystems.
package status

import (
	"context"
	"slices"
	"sync"
	"time"
)

const (
	Operational = "operational"
	Degraded    = "degraded"
	Down        = "down"
)

// Summary captures an overview of the site status.
type Summary struct {
	State      string      `json:"state"`
	UpdatedAt  time.Time   `json:"updated_at"`
	Components []Component `json:"components"`
}

// Component represents the status of an individual subsystem.
type Component struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// Check probes one subsystem. A nil error reports it operational; detail is
// surfaced either way.
type Check func(ctx context.Context) (detail string, err error)

type probe struct {
	name     string
	check    Check
	critical bool
}

// Monitor runs registered checks and caches the resulting summary.
type Monitor struct {
	probes []probe
	now    func() time.Time

	mu      sync.RWMutex
	ttl     time.Duration
	cached  Summary
	expires time.Time
}

// NewMonitor builds a monitor whose summaries are reused for ttl.
func NewMonitor(ttl time.Duration) *Monitor {
	m := &Monitor{now: time.Now}
	m.SetCacheTTL(ttl)
	return m
}

// SetCacheTTL configures the cache duration (primarily for tests).
func (m *Monitor) SetCacheTTL(d time.Duration) {
	if d < 0 {
		d = 0
	}
	m.mu.Lock()
	m.ttl = d
	m.expires = time.Time{}
	m.mu.Unlock()
}

// Register adds a check. A failing critical check marks the whole site down;
// any other failure only degrades it.
func (m *Monitor) Register(name string, critical bool, check Check) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.probes = append(m.probes, probe{name: name, check: check, critical: critical})
	m.expires = time.Time{}
}

// Summary returns the cached summary or runs every check afresh.
func (m *Monitor) Summary(ctx context.Context) Summary {
	now := m.now()
	m.mu.RLock()
	if now.Before(m.expires) {
		s := cloneSummary(m.cached)
		m.mu.RUnlock()
		return s
	}
	probes := slices.Clone(m.probes)
	m.mu.RUnlock()

	summary := Summary{State: Operational, UpdatedAt: now}
	for _, p := range probes {
		c := Component{Name: p.name, Status: Operational}
		detail, err := p.check(ctx)
		c.Detail = detail
		if err != nil {
			c.Status = Degraded
			if p.critical {
				c.Status = Down
			}
			if c.Detail == "" {
				c.Detail = err.Error()
			}
		}
		summary.State = worse(summary.State, c.Status)
		summary.Components = append(summary.Components, c)
	}

	m.mu.Lock()
	m.cached = summary
	m.expires = now.Add(m.ttl)
	m.mu.Unlock()
	return cloneSummary(summary)
}

func worse(a, b string) string {
	rank := map[string]int{Operational: 0, Degraded: 1, Down: 2}
	if rank[b] > rank[a] {
		return b
	}
	return a
}

func cloneSummary(src Summary) Summary {
	dst := src
	dst.Components = slices.Clone(src.Components)
	return dst
}
