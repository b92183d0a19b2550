// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// watch.go - Live theme reloading via filesystem notifications.
package config

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jeranaias/patsh/internal/ui/styles"
)

// =============================================================================
// THEME WATCHER
// =============================================================================

// ThemeWatcher reloads theme files as they change on disk, so a theme
// being edited takes effect in the running shell without a restart.
type ThemeWatcher struct {
	dir      string
	registry *styles.Registry
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onReload func(name string)

	mu      sync.Mutex
	pending map[string]time.Time
}

// WatchThemes starts watching dir for theme file changes. onReload, if
// non-nil, is called with the theme name after each successful reload.
// The watcher stops when ctx is cancelled.
func WatchThemes(ctx context.Context, dir string, registry *styles.Registry, onReload func(name string)) (*ThemeWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	tw := &ThemeWatcher{
		dir:      dir,
		registry: registry,
		watcher:  watcher,
		debounce: 200 * time.Millisecond,
		onReload: onReload,
		pending:  make(map[string]time.Time),
	}

	go tw.processEvents(ctx)
	go tw.processPending(ctx)

	return tw, nil
}

// processEvents collects write/create events on theme files. Editors
// produce bursts of events per save, so reloads are debounced rather
// than applied per event.
func (tw *ThemeWatcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			tw.watcher.Close()
			return

		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !isThemeFile(event.Name) {
				continue
			}
			tw.mu.Lock()
			tw.pending[event.Name] = time.Now()
			tw.mu.Unlock()

		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("THEME_WATCH | watcher error: %v", err)
		}
	}
}

// processPending applies debounced reloads.
func (tw *ThemeWatcher) processPending(ctx context.Context) {
	ticker := time.NewTicker(tw.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			now := time.Now()
			var ready []string

			tw.mu.Lock()
			for path, changed := range tw.pending {
				if now.Sub(changed) >= tw.debounce {
					ready = append(ready, path)
					delete(tw.pending, path)
				}
			}
			tw.mu.Unlock()

			for _, path := range ready {
				tw.reload(path)
			}
		}
	}
}

// reload loads one changed theme file and swaps it into the registry.
func (tw *ThemeWatcher) reload(path string) {
	theme, err := LoadThemeFile(path, tw.registry)
	if err != nil {
		log.Printf("THEME_WATCH | reload failed for %s: %v", path, err)
		return
	}
	if err := tw.registry.Reload(theme); err != nil {
		log.Printf("THEME_WATCH | reload rejected for %s: %v", path, err)
		return
	}
	if tw.onReload != nil {
		tw.onReload(theme.Name)
	}
}
