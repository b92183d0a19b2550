// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// theme.go - Theme model: token-to-style mappings with inheritance.
package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// THEME
// =============================================================================

// Theme maps every design token to a concrete lip gloss style. A theme
// is complete by construction: Validate rejects partial mappings, so
// resolution never has to handle a missing token at render time.
type Theme struct {
	// Name uniquely identifies the theme in a registry.
	Name string

	// Extends names the parent theme when this theme was produced by
	// MergeWith. Informational only.
	Extends string

	Categories  map[CategoryToken]lipgloss.Style
	Hierarchies map[HierarchyToken]lipgloss.Style
	Statuses    map[StatusToken]lipgloss.Style
	Emphases    map[EmphasisToken]lipgloss.Style
}

// Category resolves a category token.
func (t *Theme) Category(token CategoryToken) lipgloss.Style {
	return t.Categories[token]
}

// Hierarchy resolves a hierarchy token.
func (t *Theme) Hierarchy(token HierarchyToken) lipgloss.Style {
	return t.Hierarchies[token]
}

// Status resolves a status token.
func (t *Theme) Status(token StatusToken) lipgloss.Style {
	return t.Statuses[token]
}

// Emphasis resolves an emphasis token.
func (t *Theme) Emphasis(token EmphasisToken) lipgloss.Style {
	return t.Emphases[token]
}

// Validate checks that the theme maps every token of every kind.
func (t *Theme) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("theme has no name")
	}
	for _, token := range AllCategories() {
		if _, ok := t.Categories[token]; !ok {
			return fmt.Errorf("theme %q: missing category token %q", t.Name, token)
		}
	}
	for _, token := range AllHierarchies() {
		if _, ok := t.Hierarchies[token]; !ok {
			return fmt.Errorf("theme %q: missing hierarchy token %q", t.Name, token)
		}
	}
	for _, token := range AllStatuses() {
		if _, ok := t.Statuses[token]; !ok {
			return fmt.Errorf("theme %q: missing status token %q", t.Name, token)
		}
	}
	for _, token := range AllEmphases() {
		if _, ok := t.Emphases[token]; !ok {
			return fmt.Errorf("theme %q: missing emphasis token %q", t.Name, token)
		}
	}
	return nil
}

// MergeWith layers other on top of this theme: other's mappings win on
// collision, this theme fills the gaps. The result takes other's name
// and records this theme as its parent. Neither input is modified.
func (t *Theme) MergeWith(other *Theme) *Theme {
	merged := &Theme{
		Name:        other.Name,
		Extends:     t.Name,
		Categories:  make(map[CategoryToken]lipgloss.Style, len(t.Categories)),
		Hierarchies: make(map[HierarchyToken]lipgloss.Style, len(t.Hierarchies)),
		Statuses:    make(map[StatusToken]lipgloss.Style, len(t.Statuses)),
		Emphases:    make(map[EmphasisToken]lipgloss.Style, len(t.Emphases)),
	}

	for token, style := range t.Categories {
		merged.Categories[token] = style
	}
	for token, style := range other.Categories {
		merged.Categories[token] = style
	}
	for token, style := range t.Hierarchies {
		merged.Hierarchies[token] = style
	}
	for token, style := range other.Hierarchies {
		merged.Hierarchies[token] = style
	}
	for token, style := range t.Statuses {
		merged.Statuses[token] = style
	}
	for token, style := range other.Statuses {
		merged.Statuses[token] = style
	}
	for token, style := range t.Emphases {
		merged.Emphases[token] = style
	}
	for token, style := range other.Emphases {
		merged.Emphases[token] = style
	}

	return merged
}

// =============================================================================
// BUILT-IN THEMES
// =============================================================================

// sharedHierarchies and sharedEmphases are identical across the
// built-ins; only the color choices differ between dark and light.

func sharedHierarchies() map[HierarchyToken]lipgloss.Style {
	return map[HierarchyToken]lipgloss.Style{
		Primary:    lipgloss.NewStyle().Bold(true),
		Secondary:  lipgloss.NewStyle(),
		Tertiary:   lipgloss.NewStyle().Faint(true),
		Quaternary: lipgloss.NewStyle().Faint(true).Italic(true),
	}
}

func sharedEmphases() map[EmphasisToken]lipgloss.Style {
	return map[EmphasisToken]lipgloss.Style{
		Strong: lipgloss.NewStyle().Bold(true),
		Normal: lipgloss.NewStyle(),
		Subtle: lipgloss.NewStyle().Faint(true),
	}
}

// DarkTheme builds the default theme for dark terminals.
func DarkTheme() *Theme {
	return &Theme{
		Name: "dark",
		Categories: map[CategoryToken]lipgloss.Style{
			Cat1: lipgloss.NewStyle().Foreground(Cyan),
			Cat2: lipgloss.NewStyle().Foreground(Magenta),
			Cat3: lipgloss.NewStyle().Foreground(Yellow),
			Cat4: lipgloss.NewStyle().Foreground(Green),
			Cat5: lipgloss.NewStyle().Foreground(Blue),
			Cat6: lipgloss.NewStyle().Foreground(Red),
			Cat7: lipgloss.NewStyle().Foreground(White),
			Cat8: lipgloss.NewStyle().Foreground(BrightBlack),
		},
		Hierarchies: sharedHierarchies(),
		Statuses: map[StatusToken]lipgloss.Style{
			StatusSuccess: lipgloss.NewStyle().Foreground(Green),
			StatusError:   lipgloss.NewStyle().Foreground(Red).Bold(true),
			StatusWarning: lipgloss.NewStyle().Foreground(Yellow),
			StatusInfo:    lipgloss.NewStyle().Foreground(Blue),
			StatusMuted:   lipgloss.NewStyle().Foreground(BrightBlack),
			StatusRunning: lipgloss.NewStyle().Foreground(Cyan).Italic(true),
		},
		Emphases: sharedEmphases(),
	}
}

// LightTheme builds the default theme for light terminals.
func LightTheme() *Theme {
	return &Theme{
		Name: "light",
		Categories: map[CategoryToken]lipgloss.Style{
			Cat1: lipgloss.NewStyle().Foreground(Blue),
			Cat2: lipgloss.NewStyle().Foreground(Magenta),
			Cat3: lipgloss.NewStyle().Foreground(BrightYellow),
			Cat4: lipgloss.NewStyle().Foreground(Green),
			Cat5: lipgloss.NewStyle().Foreground(Cyan),
			Cat6: lipgloss.NewStyle().Foreground(Red),
			Cat7: lipgloss.NewStyle().Foreground(Black),
			Cat8: lipgloss.NewStyle().Foreground(BrightBlack),
		},
		Hierarchies: sharedHierarchies(),
		Statuses: map[StatusToken]lipgloss.Style{
			StatusSuccess: lipgloss.NewStyle().Foreground(Green),
			StatusError:   lipgloss.NewStyle().Foreground(Red).Bold(true),
			StatusWarning: lipgloss.NewStyle().Foreground(BrightYellow),
			StatusInfo:    lipgloss.NewStyle().Foreground(Blue),
			StatusMuted:   lipgloss.NewStyle().Foreground(BrightBlack),
			StatusRunning: lipgloss.NewStyle().Foreground(Cyan).Italic(true),
		},
		Emphases: sharedEmphases(),
	}
}
