// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses patsh command-line arguments.
//
// patsh is primarily an interactive shell, so the surface is small:
// a couple of subcommands (version, themes, help) and flags that
// override configuration for one run. Unknown subcommands get a
// typo suggestion.
package cli
