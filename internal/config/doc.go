// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for patsh.
//
// Configuration lives in ~/.patsh/config.toml with sensible defaults, an
// environment override for the theme, and validation. Custom themes are
// YAML files in the theme directory; they support inheritance from any
// registered theme and can be hot-reloaded while the shell runs.
//
// Configuration precedence:
//   - PATSH_THEME environment variable (theme only)
//   - ~/.patsh/config.toml
//   - Built-in defaults
package config
