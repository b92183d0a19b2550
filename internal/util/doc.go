// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions shared across patsh packages.
//
// # Key Functions
//
//   - SplitWords: quote-aware command line tokenization
//   - TruncateRunes: rune-safe string truncation with ellipsis
//   - RuneLen: character count for UTF-8 strings
package util
