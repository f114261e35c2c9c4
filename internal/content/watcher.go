package content

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounce collapses the burst of events editors emit for a single save.
const debounce = 200 * time.Millisecond

// Watch reloads the store whenever a YAML file under the content root changes,
// until ctx is cancelled. onReload, if non-nil, runs after each successful
// reload.
func (s *Store) Watch(ctx context.Context, onReload func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := addDirs(w, s.dir); err != nil {
		return err
	}
	s.logger.Info("content watcher started", zap.String("dir", s.dir))

	var timer *time.Timer
	var fire <-chan time.Time
	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(debounce)
			fire = timer.C
			return
		}
		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(debounce)
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			s.logger.Info("content watcher stopped")
			return nil

		case <-fire:
			if err := s.Reload(); err == nil && onReload != nil {
				onReload()
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&fsnotify.Create != 0 {
				if isDir(ev.Name) {
					if err := addDirs(w, ev.Name); err != nil {
						s.logger.Warn("content watcher: add dir failed", zap.String("path", ev.Name), zap.Error(err))
					}
					continue
				}
			}
			if !isContentFile(ev.Name) {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				s.logger.Debug("content changed", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
				schedule()
			}

		case werr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.logger.Error("content watcher error", zap.Error(werr))
		}
	}
}

func isContentFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".md":
		return true
	}
	return false
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func addDirs(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
