// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// registry.go - Named theme collection with an active theme.
package styles

import (
	"fmt"
	"sort"
	"sync"

	"github.com/muesli/termenv"
)

// =============================================================================
// THEME REGISTRY
// =============================================================================

// Registry holds the known themes and tracks which one is active.
// Safe for concurrent use: the shell switches themes from a watcher
// goroutine while output renders on another.
type Registry struct {
	mu      sync.RWMutex
	themes  map[string]*Theme
	current *Theme
}

// NewRegistry creates a registry seeded with the built-in dark and
// light themes. Dark starts active.
func NewRegistry() *Registry {
	r := &Registry{themes: make(map[string]*Theme)}

	dark := DarkTheme()
	light := LightTheme()
	r.themes[dark.Name] = dark
	r.themes[light.Name] = light
	r.current = dark

	return r
}

// Register adds a theme. The theme must validate and its name must be
// unused. Use Reload to replace an existing theme.
func (r *Registry) Register(theme *Theme) error {
	if err := theme.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.themes[theme.Name]; ok {
		return fmt.Errorf("theme %q is already registered", theme.Name)
	}
	r.themes[theme.Name] = theme
	return nil
}

// Reload replaces a theme in place. If the replaced theme is active,
// the new definition takes effect immediately.
func (r *Registry) Reload(theme *Theme) error {
	if err := theme.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	wasCurrent := r.current != nil && r.current.Name == theme.Name
	r.themes[theme.Name] = theme
	if wasCurrent {
		r.current = theme
	}
	return nil
}

// SetCurrent activates a registered theme by name.
func (r *Registry) SetCurrent(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	theme, ok := r.themes[name]
	if !ok {
		return fmt.Errorf("theme %q is not registered", name)
	}
	r.current = theme
	return nil
}

// Current returns the active theme.
func (r *Registry) Current() *Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Get returns a registered theme by name.
func (r *Registry) Get(name string) (*Theme, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	theme, ok := r.themes[name]
	return theme, ok
}

// List returns registered theme names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// =============================================================================
// TERMINAL DETECTION
// =============================================================================

// DefaultThemeName picks a built-in theme from the terminal background.
func DefaultThemeName() string {
	if termenv.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

// TerminalProfile reports the terminal's detected color capability.
func TerminalProfile() termenv.Profile {
	return termenv.ColorProfile()
}
