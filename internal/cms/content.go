// Package cms serves localized markdown pages from the content directory and
// renders markdown fields of the catalog.
package cms

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dev-760/portfolio-v2/internal/i18n"
)

// ErrNotFound is returned when a page cannot be located in any locale.
var ErrNotFound = errors.New("cms: not found")

// Page is a localized static page sourced from local markdown.
type Page struct {
	Slug      string
	Locale    i18n.Locale
	Title     string
	Summary   string
	Body      string
	HTML      template.HTML
	Order     int
	UpdatedAt time.Time
	SEO       PageSEO
	// Fallback is true when the page was served from another locale.
	Fallback bool
}

// PageSEO holds optional metadata overrides.
type PageSEO struct {
	Title       string
	Description string
	OGImage     string
}

type frontMatter struct {
	Title     string         `yaml:"title"`
	Summary   string         `yaml:"summary"`
	Order     int            `yaml:"order"`
	UpdatedAt string         `yaml:"updated_at"`
	SEO       frontMatterSEO `yaml:"seo"`
}

type frontMatterSEO struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	OGImage     string `yaml:"og_image"`
}

const (
	defaultPagesDir = "pages"
	defaultCacheTTL = 5 * time.Minute
)

type cacheEntry struct {
	page    Page
	expires time.Time
}

// Client reads pages from <dir>/<locale>/<slug>.md and caches them in memory.
type Client struct {
	dir      string
	renderer *Renderer
	ttl      time.Duration
	now      func() time.Time

	mu    sync.RWMutex
	items map[string]cacheEntry
}

// NewClient returns a client reading pages under dir.
func NewClient(dir string, renderer *Renderer) *Client {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = defaultPagesDir
	}
	if renderer == nil {
		renderer = NewRenderer()
	}
	return &Client{
		dir:      dir,
		renderer: renderer,
		ttl:      defaultCacheTTL,
		now:      time.Now,
		items:    map[string]cacheEntry{},
	}
}

// SetCacheDuration overrides the in-memory cache duration.
func (c *Client) SetCacheDuration(d time.Duration) {
	if d <= 0 {
		d = time.Minute
	}
	c.ttl = d
}

// Dir returns the pages directory.
func (c *Client) Dir() string { return c.dir }

// Invalidate drops every cached page.
func (c *Client) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = map[string]cacheEntry{}
}

// Page fetches a localized page, falling back to the default locale when the
// requested translation does not exist.
func (c *Client) Page(ctx context.Context, slug string, locale i18n.Locale) (Page, error) {
	if err := ctx.Err(); err != nil {
		return Page{}, err
	}
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Page{}, ErrNotFound
	}

	key := string(locale) + "|" + slug
	if page, ok := c.cached(key); ok {
		return page, nil
	}

	priority := []i18n.Locale{locale}
	if locale != i18n.Default {
		priority = append(priority, i18n.Default)
	}
	for _, candidate := range priority {
		page, err := c.read(slug, candidate)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			// parse errors stop the fallback chain
			return Page{}, err
		}
		page.Fallback = candidate != locale
		c.store(key, page)
		return page, nil
	}
	return Page{}, ErrNotFound
}

// Pages lists every page available in locale, ordered by front matter order
// and then slug.
func (c *Client) Pages(ctx context.Context, locale i18n.Locale) ([]Page, error) {
	entries, err := os.ReadDir(filepath.Join(c.dir, string(locale)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var pages []Page
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		page, err := c.Page(ctx, strings.TrimSuffix(e.Name(), ".md"), locale)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	sort.SliceStable(pages, func(i, j int) bool {
		if pages[i].Order != pages[j].Order {
			return pages[i].Order < pages[j].Order
		}
		return pages[i].Slug < pages[j].Slug
	})
	return pages, nil
}

func (c *Client) read(slug string, locale i18n.Locale) (Page, error) {
	file := filepath.Join(c.dir, string(locale), slug+".md")
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Page{}, ErrNotFound
		}
		return Page{}, err
	}
	fm, body := splitFrontMatter(string(data))
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("cms: parse front matter %s: %w", file, err)
		}
	}
	html, err := c.renderer.Render(body)
	if err != nil {
		return Page{}, fmt.Errorf("cms: render %s: %w", file, err)
	}
	page := Page{
		Slug:    slug,
		Locale:  locale,
		Title:   strings.TrimSpace(front.Title),
		Summary: strings.TrimSpace(front.Summary),
		Body:    body,
		HTML:    html,
		Order:   front.Order,
		SEO: PageSEO{
			Title:       strings.TrimSpace(front.SEO.Title),
			Description: strings.TrimSpace(front.SEO.Description),
			OGImage:     strings.TrimSpace(front.SEO.OGImage),
		},
	}
	page.UpdatedAt = parseDate(front.UpdatedAt)
	if page.UpdatedAt.IsZero() {
		if info, statErr := os.Stat(file); statErr == nil {
			page.UpdatedAt = info.ModTime()
		}
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	return page, nil
}

func (c *Client) cached(key string) (Page, bool) {
	c.mu.RLock()
	entry, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || c.now().After(entry.expires) {
		return Page{}, false
	}
	return entry.page, true
}

func (c *Client) store(key string, page Page) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cacheEntry{page: page, expires: c.now().Add(c.ttl)}
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02", "2006/01/02"} {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	parts := strings.Split(strings.TrimSpace(slug), "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.Trim(slug, "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}
