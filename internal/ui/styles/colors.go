// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// colors.go - Base palette for the built-in themes.
// ANSI 16-color codes so the built-ins degrade gracefully on basic
// terminals; custom themes are free to use hex colors.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// ANSI PALETTE
// =============================================================================

var (
	Black   = lipgloss.Color("0")
	Red     = lipgloss.Color("1")
	Green   = lipgloss.Color("2")
	Yellow  = lipgloss.Color("3")
	Blue    = lipgloss.Color("4")
	Magenta = lipgloss.Color("5")
	Cyan    = lipgloss.Color("6")
	White   = lipgloss.Color("7")

	BrightBlack  = lipgloss.Color("8")
	BrightYellow = lipgloss.Color("11")
)
