// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jeranaias/patsh/internal/parser"
)

// =============================================================================
// COMMAND METADATA
// =============================================================================

// Handler executes a registered command with its parsed input.
type Handler func(result parser.ParseResult) error

// CommandMetadata describes one registered command.
type CommandMetadata struct {
	// Name is the primary command name. Must be non-empty and unique.
	Name string

	// Description is shown in help and completion.
	Description string

	// Aliases are alternative names. Globally unique: no alias may
	// collide with any name or any other alias.
	Aliases []string

	// Category groups commands in help output. Empty means "general".
	Category string

	// Hidden commands don't appear in listings.
	Hidden bool

	// Handler executes the command. Optional; lookup-only entries are
	// allowed.
	Handler Handler
}

// String renders the metadata for diagnostics.
func (m CommandMetadata) String() string {
	if len(m.Aliases) > 0 {
		return fmt.Sprintf("%s: %s (aliases: %s)", m.Name, m.Description, strings.Join(m.Aliases, ", "))
	}
	return fmt.Sprintf("%s: %s", m.Name, m.Description)
}

// DefaultCategory is assigned when metadata omits a category.
const DefaultCategory = "general"

// =============================================================================
// REGISTRY
// =============================================================================

// DefaultCacheSize is the default suggestion cache capacity.
const DefaultCacheSize = 128

// Registry manages available commands and serves completion suggestions.
//
// The registry is single-threaded: callers serialize mutations. Conflicts
// surface at registration time, never at lookup.
type Registry struct {
	commands   map[string]CommandMetadata
	aliases    map[string]string // alias -> command name
	categories map[string]int    // category -> command count
	cache      *suggestionCache
}

// New creates an empty registry. cacheSize bounds the suggestion cache;
// 0 disables caching.
func New(cacheSize int) *Registry {
	return &Registry{
		commands:   make(map[string]CommandMetadata),
		aliases:    make(map[string]string),
		categories: make(map[string]int),
		cache:      newSuggestionCache(cacheSize),
	}
}

// Register adds a command. Validation happens before any mutation: on a
// name or alias conflict the registry is left exactly as it was.
// Registration invalidates the whole suggestion cache, since cached
// suggestions depend on the complete command set.
func (r *Registry) Register(meta CommandMetadata) error {
	if strings.TrimSpace(meta.Name) == "" {
		return fmt.Errorf("command name cannot be empty")
	}
	if meta.Category == "" {
		meta.Category = DefaultCategory
	}

	if _, ok := r.commands[meta.Name]; ok {
		return fmt.Errorf("command %q is already registered", meta.Name)
	}
	if owner, ok := r.aliases[meta.Name]; ok {
		return fmt.Errorf("command name %q conflicts with alias for %q", meta.Name, owner)
	}

	seen := make(map[string]struct{}, len(meta.Aliases))
	for _, alias := range meta.Aliases {
		if _, ok := r.commands[alias]; ok {
			return fmt.Errorf("alias %q conflicts with existing command", alias)
		}
		if owner, ok := r.aliases[alias]; ok {
			return fmt.Errorf("alias %q is already used by command %q", alias, owner)
		}
		if _, ok := seen[alias]; ok {
			return fmt.Errorf("alias %q appears twice in registration", alias)
		}
		if alias == meta.Name {
			return fmt.Errorf("alias %q duplicates the command name", alias)
		}
		seen[alias] = struct{}{}
	}

	r.commands[meta.Name] = meta
	for _, alias := range meta.Aliases {
		r.aliases[alias] = meta.Name
	}
	r.categories[meta.Category]++

	r.cache.invalidate()
	return nil
}

// Unregister removes a command and its aliases. The category is dropped
// from the known set only when no other command still uses it. Returns
// true if the command existed.
func (r *Registry) Unregister(name string) bool {
	meta, ok := r.commands[name]
	if !ok {
		return false
	}

	for _, alias := range meta.Aliases {
		delete(r.aliases, alias)
	}
	delete(r.commands, name)

	r.categories[meta.Category]--
	if r.categories[meta.Category] <= 0 {
		delete(r.categories, meta.Category)
	}

	r.cache.invalidate()
	return true
}

// Get retrieves metadata by exact name or alias.
func (r *Registry) Get(name string) (CommandMetadata, bool) {
	if meta, ok := r.commands[name]; ok {
		return meta, true
	}
	if cmdName, ok := r.aliases[name]; ok {
		meta, ok := r.commands[cmdName]
		return meta, ok
	}
	return CommandMetadata{}, false
}

// Lookup retrieves metadata by name or alias, trying an exact match first
// and falling back to a case-insensitive scan over names and aliases.
func (r *Registry) Lookup(name string) (CommandMetadata, bool) {
	if name == "" {
		return CommandMetadata{}, false
	}

	if meta, ok := r.Get(name); ok {
		return meta, true
	}

	lower := strings.ToLower(name)
	for cmdName, meta := range r.commands {
		if strings.ToLower(cmdName) == lower {
			return meta, true
		}
	}
	for alias, cmdName := range r.aliases {
		if strings.ToLower(alias) == lower {
			if meta, ok := r.commands[cmdName]; ok {
				return meta, true
			}
		}
	}

	return CommandMetadata{}, false
}

// List returns registered commands sorted by name. A non-empty category
// filters the result.
func (r *Registry) List(category string) []CommandMetadata {
	var commands []CommandMetadata
	for _, meta := range r.commands {
		if category != "" && meta.Category != category {
			continue
		}
		commands = append(commands, meta)
	}
	sort.Slice(commands, func(i, j int) bool {
		return commands[i].Name < commands[j].Name
	})
	return commands
}

// Categories returns the sorted list of categories currently in use.
func (r *Registry) Categories() []string {
	cats := make([]string, 0, len(r.categories))
	for cat := range r.categories {
		cats = append(cats, cat)
	}
	sort.Strings(cats)
	return cats
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.commands)
}
