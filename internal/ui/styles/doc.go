// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the design token system for patsh output.
//
// Styling is split into semantic tokens and themes. Tokens carry meaning
// (a status, a hierarchy level, an emphasis weight); themes map tokens to
// lip gloss styles. Components request tokens, never colors, so swapping
// the active theme restyles everything at once.
//
// # Key Types
//
//   - CategoryToken, HierarchyToken, StatusToken, EmphasisToken: semantic tokens
//   - Theme: one complete token-to-style mapping, with MergeWith inheritance
//   - Registry: named themes plus the current active one
//   - ConsoleSink: executor.OutputSink that renders through the active theme
//
// # Usage
//
//	reg := styles.NewRegistry()
//	style := reg.Current().Status(styles.StatusError)
//	fmt.Println(style.Render("something broke"))
package styles
