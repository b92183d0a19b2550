// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// theme.go - YAML theme files with validation and inheritance.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/jeranaias/patsh/internal/ui/styles"
)

// =============================================================================
// THEME LOAD ERRORS
// =============================================================================

// ThemeLoadError describes why a theme file was rejected.
type ThemeLoadError struct {
	Path    string
	Message string
}

func (e *ThemeLoadError) Error() string {
	if e.Path == "" {
		return "theme load failed: " + e.Message
	}
	return fmt.Sprintf("theme load failed for %s: %s", e.Path, e.Message)
}

func themeErr(path, format string, args ...any) error {
	return &ThemeLoadError{Path: path, Message: fmt.Sprintf(format, args...)}
}

// =============================================================================
// THEME FILE FORMAT
// =============================================================================

// themeFile is the YAML shape of a custom theme. Every token of every
// section must be mapped unless the theme extends another; extension
// happens after validation, on a complete base.
type themeFile struct {
	Name        string            `yaml:"name"`
	Extends     string            `yaml:"extends"`
	Categories  map[string]string `yaml:"categories"`
	Hierarchies map[string]string `yaml:"hierarchies"`
	Statuses    map[string]string `yaml:"statuses"`
	Emphases    map[string]string `yaml:"emphases"`
}

// validate checks that every required token is present in its section.
func (f *themeFile) validate(path string) error {
	if strings.TrimSpace(f.Name) == "" {
		return themeErr(path, "missing required 'name' field")
	}
	for _, token := range styles.AllCategories() {
		if _, ok := f.Categories[string(token)]; !ok {
			return themeErr(path, "missing category token: %s", token)
		}
	}
	for _, token := range styles.AllHierarchies() {
		if _, ok := f.Hierarchies[string(token)]; !ok {
			return themeErr(path, "missing hierarchy token: %s", token)
		}
	}
	for _, token := range styles.AllStatuses() {
		if _, ok := f.Statuses[string(token)]; !ok {
			return themeErr(path, "missing status token: %s", token)
		}
	}
	for _, token := range styles.AllEmphases() {
		if _, ok := f.Emphases[string(token)]; !ok {
			return themeErr(path, "missing emphasis token: %s", token)
		}
	}
	return nil
}

// =============================================================================
// STYLE SPEC PARSING
// =============================================================================

// namedColors maps theme-file color names to ANSI palette entries.
var namedColors = map[string]lipgloss.Color{
	"black":   lipgloss.Color("0"),
	"red":     lipgloss.Color("1"),
	"green":   lipgloss.Color("2"),
	"yellow":  lipgloss.Color("3"),
	"blue":    lipgloss.Color("4"),
	"magenta": lipgloss.Color("5"),
	"cyan":    lipgloss.Color("6"),
	"white":   lipgloss.Color("7"),

	"bright_black":   lipgloss.Color("8"),
	"bright_red":     lipgloss.Color("9"),
	"bright_green":   lipgloss.Color("10"),
	"bright_yellow":  lipgloss.Color("11"),
	"bright_blue":    lipgloss.Color("12"),
	"bright_magenta": lipgloss.Color("13"),
	"bright_cyan":    lipgloss.Color("14"),
	"bright_white":   lipgloss.Color("15"),
}

// parseStyle converts a space-separated style spec like "red bold" or
// "#7C3AED italic" into a lip gloss style. "default" is a valid no-op.
func parseStyle(spec string) (lipgloss.Style, error) {
	style := lipgloss.NewStyle()

	for _, word := range strings.Fields(spec) {
		switch strings.ToLower(word) {
		case "default":
			// no-op
		case "bold":
			style = style.Bold(true)
		case "italic":
			style = style.Italic(true)
		case "dim", "faint":
			style = style.Faint(true)
		case "underline":
			style = style.Underline(true)
		case "strikethrough":
			style = style.Strikethrough(true)
		default:
			if color, ok := namedColors[strings.ToLower(word)]; ok {
				style = style.Foreground(color)
			} else if strings.HasPrefix(word, "#") && (len(word) == 4 || len(word) == 7) {
				style = style.Foreground(lipgloss.Color(word))
			} else {
				return style, fmt.Errorf("unknown style word %q", word)
			}
		}
	}

	return style, nil
}

// =============================================================================
// THEME LOADING
// =============================================================================

// LoadThemeFile loads one YAML theme file. When the file extends a
// registered theme, the result is the parent merged with the file's
// mappings; the file still has to be complete on its own, keeping
// custom themes readable without chasing the inheritance chain.
func LoadThemeFile(path string, registry *styles.Registry) (*styles.Theme, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, err
		}
		return nil, themeErr(path, "read failed: %v", err)
	}

	var file themeFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, themeErr(path, "invalid YAML: %v", err)
	}
	if err := file.validate(path); err != nil {
		return nil, err
	}

	theme := &styles.Theme{
		Name:        file.Name,
		Extends:     file.Extends,
		Categories:  make(map[styles.CategoryToken]lipgloss.Style, len(file.Categories)),
		Hierarchies: make(map[styles.HierarchyToken]lipgloss.Style, len(file.Hierarchies)),
		Statuses:    make(map[styles.StatusToken]lipgloss.Style, len(file.Statuses)),
		Emphases:    make(map[styles.EmphasisToken]lipgloss.Style, len(file.Emphases)),
	}

	for token, spec := range file.Categories {
		style, err := parseStyle(spec)
		if err != nil {
			return nil, themeErr(path, "categories.%s: %v", token, err)
		}
		theme.Categories[styles.CategoryToken(token)] = style
	}
	for token, spec := range file.Hierarchies {
		style, err := parseStyle(spec)
		if err != nil {
			return nil, themeErr(path, "hierarchies.%s: %v", token, err)
		}
		theme.Hierarchies[styles.HierarchyToken(token)] = style
	}
	for token, spec := range file.Statuses {
		style, err := parseStyle(spec)
		if err != nil {
			return nil, themeErr(path, "statuses.%s: %v", token, err)
		}
		theme.Statuses[styles.StatusToken(token)] = style
	}
	for token, spec := range file.Emphases {
		style, err := parseStyle(spec)
		if err != nil {
			return nil, themeErr(path, "emphases.%s: %v", token, err)
		}
		theme.Emphases[styles.EmphasisToken(token)] = style
	}

	if file.Extends != "" {
		parent, ok := registry.Get(file.Extends)
		if !ok {
			return nil, themeErr(path, "parent theme %q not found", file.Extends)
		}
		theme = parent.MergeWith(theme)
	}

	return theme, nil
}

// LoadUserThemes loads and registers every *.yaml theme in dir. A bad
// theme file is logged and skipped; it never takes the shell down.
func LoadUserThemes(dir string, registry *styles.Registry) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	var loaded []string
	for _, entry := range entries {
		if entry.IsDir() || !isThemeFile(entry.Name()) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		theme, err := LoadThemeFile(path, registry)
		if err != nil {
			log.Printf("THEME_LOAD | skipping %s: %v", path, err)
			continue
		}
		if err := registry.Register(theme); err != nil {
			log.Printf("THEME_LOAD | skipping %s: %v", path, err)
			continue
		}
		loaded = append(loaded, theme.Name)
	}
	return loaded
}

func isThemeFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}

// InitializeThemes loads user themes and activates the configured one.
// An unknown configured theme falls back to the default with a log
// line rather than an error.
func InitializeThemes(cfg *Config, registry *styles.Registry) error {
	dir, err := cfg.ThemesDir()
	if err != nil {
		return err
	}
	LoadUserThemes(dir, registry)

	if err := registry.SetCurrent(cfg.Theme); err != nil {
		log.Printf("THEME | %v, using %q", err, styles.DefaultThemeName())
		return registry.SetCurrent(styles.DefaultThemeName())
	}
	return nil
}
