// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package parser

import (
	"strings"

	"github.com/jeranaias/patsh/internal/session"
)

// =============================================================================
// SHELL PARSER
// =============================================================================

// ShellParser handles input prefixed with the shell sentinel "!". The
// remainder after the sentinel is preserved completely uninterpreted for the
// subprocess executor; the shell itself owns its grammar.
type ShellParser struct{}

// NewShellParser creates a shell parser.
func NewShellParser() *ShellParser {
	return &ShellParser{}
}

// CanParse returns true iff the trimmed input starts with "!" and has a
// non-empty remainder.
func (p *ShellParser) CanParse(input string, sess *session.Session) bool {
	trimmed := strings.TrimSpace(input)
	if !strings.HasPrefix(trimmed, ShellSentinel) {
		return false
	}
	return strings.TrimSpace(trimmed[len(ShellSentinel):]) != ""
}

// Parse returns a ParseResult with the sentinel as the command and the
// remainder carried verbatim in ShellCommand.
func (p *ShellParser) Parse(input string, sess *session.Session) (ParseResult, error) {
	if !p.CanParse(input, sess) {
		trimmed := strings.TrimSpace(input)
		switch {
		case trimmed == "":
			return ParseResult{}, NewParseError(ErrEmptyInput,
				"Empty input cannot be parsed",
				"Enter a shell command prefixed with '!'")
		case !strings.HasPrefix(trimmed, ShellSentinel):
			return ParseResult{}, NewParseError(ErrNotShellCommand,
				"Not a shell command (must start with '!')",
				"Use '!' prefix for shell commands")
		default:
			return ParseResult{}, NewParseError(ErrEmptyShellCommand,
				"Shell command prefix found but no command specified",
				"Add a command after the '!' prefix")
		}
	}

	trimmed := strings.TrimSpace(input)
	return ParseResult{
		Command:      ShellSentinel,
		Flags:        make(map[string]struct{}),
		Options:      make(map[string]string),
		RawInput:     input,
		ShellCommand: strings.TrimSpace(trimmed[len(ShellSentinel):]),
	}, nil
}

// Suggest completes common shell commands behind the "!" prefix.
func (p *ShellParser) Suggest(partial string) []string {
	defaults := []string{"!ls", "!pwd", "!ps", "!grep", "!find"}

	if !strings.HasPrefix(partial, ShellSentinel) {
		return defaults
	}

	shellPartial := strings.TrimSpace(partial[len(ShellSentinel):])
	if shellPartial == "" {
		return defaults
	}

	common := []string{"ls", "pwd", "ps", "grep", "find", "cat", "less", "head", "tail"}
	var suggestions []string
	for _, cmd := range common {
		if strings.HasPrefix(cmd, shellPartial) {
			suggestions = append(suggestions, ShellSentinel+cmd)
		}
	}
	return suggestions
}
