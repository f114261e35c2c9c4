// Package content holds the live catalog and translation bundle and swaps them
// atomically when the files on disk change.
package content

import (
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/dev-760/portfolio-v2/internal/catalog"
	"github.com/dev-760/portfolio-v2/internal/i18n"
)

// LocalesDir is the translation directory relative to the content root.
const LocalesDir = "locales"

// Snapshot is one consistent, validated version of the site content.
type Snapshot struct {
	Catalog  *catalog.Catalog
	Bundle   *i18n.Bundle
	LoadedAt time.Time
}

// Store serves the current snapshot to concurrent readers.
type Store struct {
	dir     string
	current atomic.Pointer[Snapshot]
	logger  *zap.Logger
}

// Open loads dir and returns a store serving it. Any validation error is fatal.
func Open(dir string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{dir: dir, logger: logger}
	snap, err := load(dir)
	if err != nil {
		return nil, err
	}
	s.current.Store(snap)
	return s, nil
}

// NewStatic returns a store serving a fixed snapshot; Reload is a no-op error.
func NewStatic(c *catalog.Catalog, b *i18n.Bundle) *Store {
	s := &Store{logger: zap.NewNop()}
	s.current.Store(&Snapshot{Catalog: c, Bundle: b, LoadedAt: time.Now()})
	return s
}

// Dir returns the content root.
func (s *Store) Dir() string { return s.dir }

// Snapshot returns the content currently being served.
func (s *Store) Snapshot() *Snapshot { return s.current.Load() }

// Catalog is shorthand for Snapshot().Catalog.
func (s *Store) Catalog() *catalog.Catalog { return s.current.Load().Catalog }

// Bundle is shorthand for Snapshot().Bundle.
func (s *Store) Bundle() *i18n.Bundle { return s.current.Load().Bundle }

// Reload re-reads the content directory. On failure the previous snapshot
// keeps serving and the error is returned.
func (s *Store) Reload() error {
	if s.dir == "" {
		return fmt.Errorf("content: static store cannot reload")
	}
	snap, err := load(s.dir)
	if err != nil {
		s.logger.Warn("content reload rejected", zap.String("dir", s.dir), zap.Error(err))
		return err
	}
	s.current.Store(snap)
	s.logger.Info("content reloaded",
		zap.String("dir", s.dir),
		zap.Int("artworks", len(snap.Catalog.Artworks())),
		zap.Int("series", len(snap.Catalog.AllSeries())),
	)
	return nil
}

func load(dir string) (*Snapshot, error) {
	c, err := catalog.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	b, err := i18n.Load(filepath.Join(dir, LocalesDir))
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}
	return &Snapshot{Catalog: c, Bundle: b, LoadedAt: time.Now()}, nil
}
