// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/patsh/internal/executor"
)

// =============================================================================
// THEME TESTS
// =============================================================================

func TestBuiltinThemesComplete(t *testing.T) {
	for _, theme := range []*Theme{DarkTheme(), LightTheme()} {
		if err := theme.Validate(); err != nil {
			t.Errorf("built-in theme %q incomplete: %v", theme.Name, err)
		}
	}
}

func TestValidateRejectsPartialTheme(t *testing.T) {
	theme := DarkTheme()
	theme.Name = "broken"
	delete(theme.Statuses, StatusRunning)

	err := theme.Validate()
	if err == nil {
		t.Fatal("expected validation error for missing status token")
	}
	if !strings.Contains(err.Error(), "running") {
		t.Errorf("error should name the missing token, got: %v", err)
	}
}

func TestValidateRejectsUnnamedTheme(t *testing.T) {
	theme := DarkTheme()
	theme.Name = ""
	if theme.Validate() == nil {
		t.Error("expected validation error for empty name")
	}
}

func TestMergeWithOverrideWins(t *testing.T) {
	base := DarkTheme()
	override := &Theme{
		Name: "custom",
		Statuses: map[StatusToken]lipgloss.Style{
			StatusError: lipgloss.NewStyle().Foreground(Magenta),
		},
	}

	merged := base.MergeWith(override)

	if merged.Name != "custom" {
		t.Errorf("merged name = %q, want custom", merged.Name)
	}
	if merged.Extends != "dark" {
		t.Errorf("merged extends = %q, want dark", merged.Extends)
	}
	if got := merged.Status(StatusError).GetForeground(); got != Magenta {
		t.Errorf("overridden error foreground = %v, want magenta", got)
	}
	// Unoverridden tokens come from the base
	if got := merged.Status(StatusSuccess).GetForeground(); got != Green {
		t.Errorf("inherited success foreground = %v, want green", got)
	}
	if err := merged.Validate(); err != nil {
		t.Errorf("merge over a complete base must be complete: %v", err)
	}
}

func TestMergeWithDoesNotMutateInputs(t *testing.T) {
	base := DarkTheme()
	override := &Theme{
		Name: "custom",
		Statuses: map[StatusToken]lipgloss.Style{
			StatusError: lipgloss.NewStyle().Foreground(Magenta),
		},
	}

	base.MergeWith(override)

	if got := base.Status(StatusError).GetForeground(); got != Red {
		t.Errorf("base error foreground changed to %v", got)
	}
	if len(override.Categories) != 0 {
		t.Error("override gained category mappings")
	}
}

// =============================================================================
// REGISTRY TESTS
// =============================================================================

func TestRegistryDefaults(t *testing.T) {
	reg := NewRegistry()

	if got := reg.Current().Name; got != "dark" {
		t.Errorf("default current theme = %q, want dark", got)
	}
	names := reg.List()
	if len(names) != 2 || names[0] != "dark" || names[1] != "light" {
		t.Errorf("List() = %v, want [dark light]", names)
	}
}

func TestRegistryRegisterDuplicate(t *testing.T) {
	reg := NewRegistry()
	theme := DarkTheme() // name "dark" already taken

	if err := reg.Register(theme); err == nil {
		t.Error("expected error registering duplicate theme name")
	}
}

func TestRegistryRegisterInvalid(t *testing.T) {
	reg := NewRegistry()
	theme := DarkTheme()
	theme.Name = "partial"
	theme.Emphases = nil

	if err := reg.Register(theme); err == nil {
		t.Error("expected error registering incomplete theme")
	}
}

func TestRegistrySetCurrent(t *testing.T) {
	reg := NewRegistry()

	if err := reg.SetCurrent("light"); err != nil {
		t.Fatalf("SetCurrent(light) = %v", err)
	}
	if got := reg.Current().Name; got != "light" {
		t.Errorf("current = %q, want light", got)
	}

	if err := reg.SetCurrent("nope"); err == nil {
		t.Error("expected error for unknown theme")
	}
	if got := reg.Current().Name; got != "light" {
		t.Errorf("failed SetCurrent changed current to %q", got)
	}
}

func TestRegistryReloadSwapsActiveTheme(t *testing.T) {
	reg := NewRegistry()

	replacement := DarkTheme()
	replacement.Statuses[StatusError] = lipgloss.NewStyle().Foreground(Magenta)

	if err := reg.Reload(replacement); err != nil {
		t.Fatalf("Reload() = %v", err)
	}
	if got := reg.Current().Status(StatusError).GetForeground(); got != Magenta {
		t.Errorf("active theme not swapped, error foreground = %v", got)
	}
}

// =============================================================================
// CONSOLE SINK TESTS
// =============================================================================

func TestConsoleSinkWritesLines(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, NewRegistry())

	sink.Line(executor.Stdout, "normal output")
	sink.Line(executor.Stderr, "error output")
	sink.Status(executor.StatusSuccess, "Command completed successfully")

	out := buf.String()
	for _, want := range []string{"normal output", "error output", "Command completed successfully"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, "\n"); got != 3 {
		t.Errorf("expected 3 newline-terminated lines, got %d", got)
	}
}

func TestStatusTokenMapping(t *testing.T) {
	tests := []struct {
		status executor.Status
		want   StatusToken
	}{
		{executor.StatusRunning, StatusRunning},
		{executor.StatusSuccess, StatusSuccess},
		{executor.StatusFailed, StatusError},
		{executor.StatusTimeout, StatusWarning},
		{executor.StatusInterrupted, StatusWarning},
	}

	for _, tc := range tests {
		if got := statusToken(tc.status); got != tc.want {
			t.Errorf("statusToken(%v) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func TestDefaultThemeName(t *testing.T) {
	name := DefaultThemeName()
	if name != "dark" && name != "light" {
		t.Errorf("DefaultThemeName() = %q", name)
	}
}
