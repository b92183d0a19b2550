// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !windows

package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/patsh/internal/config"
	"github.com/jeranaias/patsh/internal/executor"
	"github.com/jeranaias/patsh/internal/ui/styles"
)

// newTestShell builds a shell whose output, including executor output,
// goes to the returned buffer.
func newTestShell(t *testing.T) (*Shell, *bytes.Buffer) {
	t.Helper()

	cfg := config.Default()
	cfg.Welcome = false
	cfg.ThemeDir = t.TempDir()

	sh, err := New(cfg)
	require.NoError(t, err)

	var buf bytes.Buffer
	sh.out = &buf
	sh.exec = executor.NewWithTimeout(styles.NewConsoleSink(&buf, sh.themes), cfg.CommandTimeout())

	return sh, &buf
}

// =============================================================================
// WIRING TESTS
// =============================================================================

func TestBuiltinsRegistered(t *testing.T) {
	sh, _ := newTestShell(t)

	for _, name := range []string{"help", "exit", "echo", "theme", "history", "clear"} {
		meta, ok := sh.registry.Get(name)
		require.True(t, ok, "builtin %q missing", name)
		assert.NotNil(t, meta.Handler, "builtin %q has no handler", name)
	}

	// quit resolves as an alias of exit
	meta, ok := sh.registry.Get("quit")
	require.True(t, ok)
	assert.Equal(t, "exit", meta.Name)
}

func TestPipelineOrder(t *testing.T) {
	sh, _ := newTestShell(t)
	assert.Equal(t, 2, sh.pipeline.Len())
}

// =============================================================================
// DISPATCH TESTS
// =============================================================================

func TestExecuteEcho(t *testing.T) {
	sh, buf := newTestShell(t)

	sh.Execute(context.Background(), "echo hello world")

	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "world")
}

func TestExecuteUnknownCommandSuggests(t *testing.T) {
	sh, buf := newTestShell(t)

	sh.Execute(context.Background(), "hepl")

	out := buf.String()
	assert.Contains(t, out, "Unknown command: hepl")
	assert.Contains(t, out, "Did you mean")
	assert.Contains(t, out, "help")
}

func TestExecuteUnknownCommandNoSuggestions(t *testing.T) {
	sh, buf := newTestShell(t)

	sh.Execute(context.Background(), "xqzvkjw")

	out := buf.String()
	assert.Contains(t, out, "Unknown command: xqzvkjw")
	assert.Contains(t, out, "Type 'help' for available commands")
}

func TestExecuteParseError(t *testing.T) {
	sh, buf := newTestShell(t)

	sh.Execute(context.Background(), "echo 'unclosed")

	assert.Contains(t, buf.String(), "Parse error")
}

func TestExecuteRecordsHistory(t *testing.T) {
	sh, _ := newTestShell(t)

	sh.Execute(context.Background(), "echo one")
	sh.Execute(context.Background(), "echo 'broken")
	sh.Execute(context.Background(), "echo two")

	// Parse failures never reach history
	assert.Equal(t, []string{"echo one", "echo two"}, sh.sess.History)
}

// =============================================================================
// SHELL PASSTHROUGH TESTS
// =============================================================================

func TestExecuteShellCommand(t *testing.T) {
	sh, buf := newTestShell(t)

	sh.Execute(context.Background(), "!echo external")

	assert.Contains(t, buf.String(), "external")
}

func TestShellCommandMetacharactersInert(t *testing.T) {
	sh, buf := newTestShell(t)

	sh.Execute(context.Background(), "!echo a; echo b")

	// Spawned without a shell: the semicolon is a literal argument
	assert.Contains(t, buf.String(), "a; echo b")
}

func TestBareBangIsParseError(t *testing.T) {
	sh, buf := newTestShell(t)

	sh.Execute(context.Background(), "!")

	assert.Contains(t, buf.String(), "Parse error")
}

// =============================================================================
// BUILTIN BEHAVIOR TESTS
// =============================================================================

func TestThemeCommand(t *testing.T) {
	sh, buf := newTestShell(t)

	sh.Execute(context.Background(), "theme")
	assert.Contains(t, buf.String(), "Current theme: dark")
	assert.Contains(t, buf.String(), "light")

	buf.Reset()
	sh.Execute(context.Background(), "theme light")
	assert.Contains(t, buf.String(), "Switched to 'light' theme")
	assert.Equal(t, "light", sh.themes.Current().Name)

	buf.Reset()
	sh.Execute(context.Background(), "theme nonexistent")
	assert.Contains(t, buf.String(), "not found")
	assert.Equal(t, "light", sh.themes.Current().Name, "failed switch keeps the active theme")
}

func TestHistoryCommand(t *testing.T) {
	sh, buf := newTestShell(t)

	sh.Execute(context.Background(), "echo first")
	sh.Execute(context.Background(), "theme")
	buf.Reset()

	sh.Execute(context.Background(), "history")

	out := buf.String()
	assert.Contains(t, out, "echo first")
	assert.Contains(t, out, "theme")
}

func TestHistoryIncludesItself(t *testing.T) {
	sh, buf := newTestShell(t)

	sh.Execute(context.Background(), "history")

	// "history" itself is recorded before the handler runs, so the
	// handler sees exactly one entry
	assert.Contains(t, buf.String(), "history")
}

func TestExitStopsLoop(t *testing.T) {
	sh, buf := newTestShell(t)
	sh.running = true

	sh.Execute(context.Background(), "exit")

	assert.False(t, sh.running)
	assert.Contains(t, buf.String(), "Goodbye!")
}

func TestQuitAlias(t *testing.T) {
	sh, _ := newTestShell(t)
	sh.running = true

	sh.Execute(context.Background(), "quit")

	assert.False(t, sh.running)
}

func TestHelpListsBuiltins(t *testing.T) {
	sh, buf := newTestShell(t)

	sh.Execute(context.Background(), "help")

	out := buf.String()
	for _, name := range []string{"help", "exit", "echo", "theme"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "builtin")
}

func TestEchoUsage(t *testing.T) {
	sh, buf := newTestShell(t)

	sh.Execute(context.Background(), "echo")

	assert.Contains(t, buf.String(), "Usage: echo <text>")
}

// =============================================================================
// WELCOME TESTS
// =============================================================================

func TestWelcomeScreen(t *testing.T) {
	sh, buf := newTestShell(t)

	sh.showWelcome()

	out := buf.String()
	assert.Contains(t, out, "Version "+Version)
	assert.Contains(t, out, "Theme: dark")
	assert.Contains(t, out, "Quick Start:")
}

func TestCenterLine(t *testing.T) {
	centered := centerLine("abc", 3, 11)
	assert.Equal(t, "    abc", centered)

	// Content wider than the terminal is left untouched
	wide := strings.Repeat("x", 100)
	assert.Equal(t, wide, centerLine(wide, 100, 80))
}
