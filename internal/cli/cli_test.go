// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import "testing"

func TestParseArgsDefaults(t *testing.T) {
	cmd, args := ParseArgs(nil)
	if cmd != CmdShell {
		t.Errorf("no args should start the shell, got %v", cmd)
	}
	if args.Theme != "" || args.TimeoutSecs != 0 || args.NoWelcome || args.Quiet {
		t.Errorf("no args should leave overrides zero, got %+v", args)
	}
}

func TestParseArgsSubcommands(t *testing.T) {
	tests := []struct {
		input []string
		want  Command
	}{
		{[]string{"shell"}, CmdShell},
		{[]string{"version"}, CmdVersion},
		{[]string{"--version"}, CmdVersion},
		{[]string{"-v"}, CmdVersion},
		{[]string{"themes"}, CmdThemes},
		{[]string{"help"}, CmdHelp},
		{[]string{"--help"}, CmdHelp},
		{[]string{"-h"}, CmdHelp},
	}

	for _, tc := range tests {
		cmd, _ := ParseArgs(tc.input)
		if cmd != tc.want {
			t.Errorf("ParseArgs(%v) = %v, want %v", tc.input, cmd, tc.want)
		}
	}
}

func TestParseArgsFlags(t *testing.T) {
	cmd, args := ParseArgs([]string{"--theme", "light", "--timeout=60", "--no-welcome", "-q"})

	if cmd != CmdShell {
		t.Fatalf("cmd = %v, want CmdShell", cmd)
	}
	if args.Theme != "light" {
		t.Errorf("Theme = %q, want light", args.Theme)
	}
	if args.TimeoutSecs != 60 {
		t.Errorf("TimeoutSecs = %d, want 60", args.TimeoutSecs)
	}
	if !args.NoWelcome || !args.Quiet {
		t.Errorf("boolean flags not set: %+v", args)
	}
}

func TestParseArgsEqualsForm(t *testing.T) {
	_, args := ParseArgs([]string{"--theme=ocean"})
	if args.Theme != "ocean" {
		t.Errorf("Theme = %q, want ocean", args.Theme)
	}
}

func TestParseArgsInvalidTimeout(t *testing.T) {
	_, args := ParseArgs([]string{"--timeout", "banana"})
	if args.TimeoutSecs != 0 {
		t.Errorf("invalid timeout should stay 0, got %d", args.TimeoutSecs)
	}

	_, args = ParseArgs([]string{"--timeout", "-5"})
	if args.TimeoutSecs != 0 {
		t.Errorf("negative timeout should stay 0, got %d", args.TimeoutSecs)
	}
}

func TestParseArgsUnknown(t *testing.T) {
	cmd, args := ParseArgs([]string{"shall"})
	if cmd != CmdUnknown {
		t.Fatalf("cmd = %v, want CmdUnknown", cmd)
	}
	if args.Unknown != "shall" {
		t.Errorf("Unknown = %q, want shall", args.Unknown)
	}

	cmd, args = ParseArgs([]string{"--bogus"})
	if cmd != CmdUnknown || args.Unknown != "--bogus" {
		t.Errorf("unknown flag not reported: cmd=%v args=%+v", cmd, args)
	}
}

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"shel", "shell"},
		{"shall", "shell"},
		{"vesion", "version"},
		{"theems", "themes"},
		{"hepl", "help"},
		{"x", ""},
		{"completely-unrelated", ""},
	}

	for _, tc := range tests {
		if got := SuggestCommand(tc.input); got != tc.want {
			t.Errorf("SuggestCommand(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
