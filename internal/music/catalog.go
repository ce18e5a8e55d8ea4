package music

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	pkgLog "voice-intent/pkg/log"
)

const logPrefix = "music.Catalog"

// DefaultExtensions are the audio files picked up when none are configured.
var DefaultExtensions = []string{".mp3", ".wav", ".p3"}

// Config locates the music library.
type Config struct {
	Dir        string
	Extensions []string
}

// Catalog is the list of songs found in a directory.
type Catalog struct {
	l    pkgLog.Logger
	dir  string
	exts []string

	mu    sync.RWMutex
	names []string
}

// New creates a catalog and scans it once. A missing directory yields an empty catalog.
func New(ctx context.Context, l pkgLog.Logger, cfg Config) *Catalog {
	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	normalized := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		normalized = append(normalized, e)
	}

	c := &Catalog{l: l, dir: cfg.Dir, exts: normalized}
	if err := c.Refresh(); err != nil {
		l.Warnf(ctx, "%s: initial scan of %s: %v", logPrefix, cfg.Dir, err)
	}
	return c
}

// Names returns the song names, sorted, without extension.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.names)
}

// Refresh re-reads the directory. Subdirectories are not descended into.
func (c *Catalog) Refresh() error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("%s: read dir: %w", logPrefix, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !c.matches(e.Name()) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	slices.Sort(names)
	names = slices.Compact(names)

	c.mu.Lock()
	c.names = names
	c.mu.Unlock()

	return nil
}

func (c *Catalog) matches(name string) bool {
	return slices.Contains(c.exts, strings.ToLower(filepath.Ext(name)))
}

// Watch re-scans the directory whenever a song is added, removed or renamed.
// It blocks until ctx is done.
func (c *Catalog) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("%s: new watcher: %w", logPrefix, err)
	}
	defer w.Close()

	if err := w.Add(c.dir); err != nil {
		return fmt.Errorf("%s: watch %s: %w", logPrefix, c.dir, err)
	}
	c.l.Infof(ctx, "%s: watching %s", logPrefix, c.dir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if !c.matches(ev.Name) {
				continue
			}
			if err := c.Refresh(); err != nil {
				c.l.Warnf(ctx, "%s: rescan after %s: %v", logPrefix, ev, err)
				continue
			}
			c.l.Debugf(ctx, "%s: %d song(s) after %s", logPrefix, len(c.Names()), ev)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			c.l.Warnf(ctx, "%s: watcher error: %v", logPrefix, err)
		}
	}
}
