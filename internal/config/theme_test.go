// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/patsh/internal/ui/styles"
)

const completeTheme = `
name: ocean
categories:
  cat_1: cyan
  cat_2: magenta
  cat_3: yellow
  cat_4: green
  cat_5: blue
  cat_6: red
  cat_7: white
  cat_8: bright_black
hierarchies:
  primary: bold
  secondary: default
  tertiary: dim
  quaternary: dim italic
statuses:
  success: green
  error: magenta bold
  warning: yellow
  info: blue
  muted: bright_black
  running: cyan italic
emphases:
  strong: bold
  normal: default
  subtle: dim
`

func writeTheme(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// =============================================================================
// LOADING TESTS
// =============================================================================

func TestLoadThemeFile(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "ocean.yaml", completeTheme)

	theme, err := LoadThemeFile(path, styles.NewRegistry())
	require.NoError(t, err)

	assert.Equal(t, "ocean", theme.Name)
	assert.NoError(t, theme.Validate())
	assert.Equal(t, styles.Magenta, theme.Status(styles.StatusError).GetForeground())
	assert.True(t, theme.Status(styles.StatusError).GetBold())
}

func TestLoadThemeFileMissingToken(t *testing.T) {
	broken := strings.Replace(completeTheme, "  running: cyan italic\n", "", 1)
	path := writeTheme(t, t.TempDir(), "broken.yaml", broken)

	_, err := LoadThemeFile(path, styles.NewRegistry())
	require.Error(t, err)
	var loadErr *ThemeLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Message, "running")
}

func TestLoadThemeFileMissingName(t *testing.T) {
	broken := strings.Replace(completeTheme, "name: ocean\n", "", 1)
	path := writeTheme(t, t.TempDir(), "broken.yaml", broken)

	_, err := LoadThemeFile(path, styles.NewRegistry())
	assert.Error(t, err)
}

func TestLoadThemeFileInvalidYAML(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "broken.yaml", "name: [oops")

	_, err := LoadThemeFile(path, styles.NewRegistry())
	var loadErr *ThemeLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadThemeFileUnknownStyleWord(t *testing.T) {
	broken := strings.Replace(completeTheme, "success: green", "success: chartreuse-ish", 1)
	path := writeTheme(t, t.TempDir(), "broken.yaml", broken)

	_, err := LoadThemeFile(path, styles.NewRegistry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chartreuse-ish")
}

func TestLoadThemeFileNotFound(t *testing.T) {
	_, err := LoadThemeFile(filepath.Join(t.TempDir(), "nope.yaml"), styles.NewRegistry())
	assert.True(t, os.IsNotExist(err))
}

// =============================================================================
// INHERITANCE TESTS
// =============================================================================

func TestLoadThemeFileExtends(t *testing.T) {
	content := strings.Replace(completeTheme, "name: ocean", "name: ocean\nextends: dark", 1)
	path := writeTheme(t, t.TempDir(), "ocean.yaml", content)

	theme, err := LoadThemeFile(path, styles.NewRegistry())
	require.NoError(t, err)

	assert.Equal(t, "ocean", theme.Name)
	assert.Equal(t, "dark", theme.Extends)
	// The file's own mapping wins over the parent's
	assert.Equal(t, styles.Magenta, theme.Status(styles.StatusError).GetForeground())
}

func TestLoadThemeFileUnknownParent(t *testing.T) {
	content := strings.Replace(completeTheme, "name: ocean", "name: ocean\nextends: nonexistent", 1)
	path := writeTheme(t, t.TempDir(), "ocean.yaml", content)

	_, err := LoadThemeFile(path, styles.NewRegistry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nonexistent")
}

// =============================================================================
// STYLE SPEC TESTS
// =============================================================================

func TestParseStyle(t *testing.T) {
	tests := []struct {
		spec    string
		wantErr bool
	}{
		{"red bold", false},
		{"default", false},
		{"#7C3AED italic", false},
		{"#ABC", false},
		{"bright_cyan underline", false},
		{"", false},
		{"notacolor", true},
		{"#12345", true},
	}

	for _, tc := range tests {
		_, err := parseStyle(tc.spec)
		if tc.wantErr {
			assert.Error(t, err, "spec %q", tc.spec)
		} else {
			assert.NoError(t, err, "spec %q", tc.spec)
		}
	}
}

// =============================================================================
// DIRECTORY LOADING TESTS
// =============================================================================

func TestLoadUserThemesSkipsBadFiles(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "ocean.yaml", completeTheme)
	writeTheme(t, dir, "broken.yaml", "name: [oops")
	writeTheme(t, dir, "notes.txt", "not a theme")

	registry := styles.NewRegistry()
	loaded := LoadUserThemes(dir, registry)

	assert.Equal(t, []string{"ocean"}, loaded)
	_, ok := registry.Get("ocean")
	assert.True(t, ok)
}

func TestLoadUserThemesMissingDir(t *testing.T) {
	loaded := LoadUserThemes(filepath.Join(t.TempDir(), "nope"), styles.NewRegistry())
	assert.Empty(t, loaded)
}

func TestInitializeThemesFallsBack(t *testing.T) {
	cfg := Default()
	cfg.Theme = "does-not-exist"
	cfg.ThemeDir = t.TempDir()

	registry := styles.NewRegistry()
	require.NoError(t, InitializeThemes(cfg, registry))

	name := registry.Current().Name
	assert.Contains(t, []string{"dark", "light"}, name)
}

func TestInitializeThemesActivatesCustom(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "ocean.yaml", completeTheme)

	cfg := Default()
	cfg.Theme = "ocean"
	cfg.ThemeDir = dir

	registry := styles.NewRegistry()
	require.NoError(t, InitializeThemes(cfg, registry))
	assert.Equal(t, "ocean", registry.Current().Name)
}

// =============================================================================
// WATCHER TESTS
// =============================================================================

func TestWatchThemesReloads(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "ocean.yaml", completeTheme)

	registry := styles.NewRegistry()
	LoadUserThemes(dir, registry)
	require.NoError(t, registry.SetCurrent("ocean"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan string, 4)
	_, err := WatchThemes(ctx, dir, registry, func(name string) { reloaded <- name })
	require.NoError(t, err)

	// Change the error status from magenta to cyan and rewrite the file
	edited := strings.Replace(completeTheme, "error: magenta bold", "error: cyan bold", 1)
	writeTheme(t, dir, "ocean.yaml", edited)

	select {
	case name := <-reloaded:
		assert.Equal(t, "ocean", name)
	case <-time.After(5 * time.Second):
		t.Fatal("theme reload never happened")
	}

	got := registry.Current().Status(styles.StatusError).GetForeground()
	assert.Equal(t, styles.Cyan, got, "active theme picked up the edit")
}
