// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package registry provides the command registry for the shell.
//
// The registry maps command names and aliases to metadata, tracks the
// categories in use, and serves typo/completion suggestions backed by a
// bounded LRU cache. Registration is conflict-checked and atomic: a name or
// alias that collides with anything already registered leaves the registry
// untouched.
//
// # Key Types
//
//   - CommandMetadata: name, description, aliases, category, handler
//   - Registry: conflict-checked registration and cached fuzzy suggestions
//
// # Usage
//
//	reg := registry.New(registry.DefaultCacheSize)
//	err := reg.Register(registry.CommandMetadata{
//	    Name:        "help",
//	    Description: "Show available commands",
//	    Aliases:     []string{"h"},
//	})
//
//	if meta, ok := reg.Lookup("HELP"); ok {
//	    // case-insensitive fallback matched
//	}
//
//	suggestions := reg.Suggestions("hepl", 5) // ["help", ...]
package registry
