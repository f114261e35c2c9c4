package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dev-760/portfolio-v2/internal/i18n"
)

// ErrInvalid wraps every validation failure reported by Load.
var ErrInvalid = errors.New("catalog: invalid content")

const (
	catalogFile = "catalog.yaml"
	cvFile      = "cv.yaml"
)

type document struct {
	Artworks []Artwork `yaml:"artworks"`
	Series   []Series  `yaml:"series"`
}

// Load reads catalog.yaml and cv.yaml from dir.
func Load(dir string) (*Catalog, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS reads catalog.yaml and, when present, cv.yaml from the root of fsys.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	raw, err := fs.ReadFile(fsys, catalogFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", catalogFile, err)
	}
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", catalogFile, err)
	}
	var cv CV
	if raw, err := fs.ReadFile(fsys, cvFile); err == nil {
		if err := yaml.Unmarshal(raw, &cv); err != nil {
			return nil, fmt.Errorf("parse %s: %w", cvFile, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", cvFile, err)
	}
	return New(doc.Artworks, doc.Series, cv)
}

// New validates the content and builds the lookup indexes. Artworks without
// an id get one derived from their English title.
func New(artworks []Artwork, series []Series, cv CV) (*Catalog, error) {
	c := &Catalog{
		artworks: make([]Artwork, 0, len(artworks)),
		byID:     make(map[string]int, len(artworks)),
		series:   make([]Series, 0, len(series)),
		bySlug:   make(map[string]int, len(series)),
		cv:       cv,
	}
	var errs []error
	for i, a := range artworks {
		if strings.TrimSpace(a.ID) == "" {
			a.ID = Slugify(a.Title.In(i18n.English))
		}
		if err := validateArtwork(a); err != nil {
			errs = append(errs, fmt.Errorf("artwork #%d (%s): %w", i, a.ID, err))
			continue
		}
		if _, dup := c.byID[a.ID]; dup {
			errs = append(errs, fmt.Errorf("artwork %s: duplicate id", a.ID))
			continue
		}
		a.Series = ""
		c.byID[a.ID] = len(c.artworks)
		c.artworks = append(c.artworks, a)
	}
	for i, s := range series {
		if err := c.addSeries(s); err != nil {
			errs = append(errs, fmt.Errorf("series #%d (%s): %w", i, s.Slug, err))
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return c, nil
}

func (c *Catalog) addSeries(s Series) error {
	if !IsSlug(s.Slug) {
		return fmt.Errorf("slug %q is not url-safe", s.Slug)
	}
	if _, dup := c.bySlug[s.Slug]; dup {
		return errors.New("duplicate slug")
	}
	if !s.Title.Complete() {
		return errors.New("title must be set for every locale")
	}
	s.artworks = make([]Artwork, 0, len(s.ArtworkIDs))
	seen := map[string]struct{}{}
	for _, id := range s.ArtworkIDs {
		idx, ok := c.byID[id]
		if !ok {
			return fmt.Errorf("unknown artwork %q", id)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("artwork %q listed twice", id)
		}
		seen[id] = struct{}{}
		if owner := c.artworks[idx].Series; owner != "" {
			return fmt.Errorf("artwork %q already belongs to series %q", id, owner)
		}
		c.artworks[idx].Series = s.Slug
		s.artworks = append(s.artworks, c.artworks[idx])
	}
	if s.Cover == "" && len(s.artworks) > 0 {
		s.Cover = s.artworks[0].Image
	}
	c.bySlug[s.Slug] = len(c.series)
	c.series = append(c.series, s)
	return nil
}

func validateArtwork(a Artwork) error {
	if !IsSlug(a.ID) {
		return fmt.Errorf("id %q is not url-safe", a.ID)
	}
	if strings.TrimSpace(a.Image) == "" {
		return errors.New("image is required")
	}
	if !a.Title.Complete() {
		return errors.New("title must be set for every locale")
	}
	if len(a.Mood) == 0 {
		return errors.New("at least one mood is required")
	}
	for _, m := range a.Mood {
		if !slices.Contains(Moods, m) {
			return fmt.Errorf("unknown mood %q", m)
		}
	}
	if a.Quote != nil && !a.Quote.Text.Complete() {
		return errors.New("quote text must be set for every locale")
	}
	return nil
}
