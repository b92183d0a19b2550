// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package parser

import (
	"github.com/jeranaias/patsh/internal/session"
)

// =============================================================================
// PARSE RESULT
// =============================================================================

// ShellSentinel is the command token assigned to shell pass-through results.
const ShellSentinel = "!"

// ParseResult is the structured outcome of interpreting one input line.
// A result is constructed fresh per Parse call and never mutated afterwards.
type ParseResult struct {
	// Command is the main command token parsed from the input.
	Command string

	// Args are the positional arguments in input order.
	Args []string

	// Flags is the set of boolean switches (without dashes). Short flags
	// bundle character-wise ("-abc" yields a, b, c); a valueless long
	// option ("--verbose") lands in the same set.
	Flags map[string]struct{}

	// Options maps long option keys to their values.
	Options map[string]string

	// RawInput is the original input string, byte for byte.
	RawInput string

	// ShellCommand is the uninterpreted remainder after the shell
	// sentinel. Set if and only if Command is ShellSentinel.
	ShellCommand string
}

// HasFlag reports whether the flag is present.
func (r ParseResult) HasFlag(flag string) bool {
	_, ok := r.Flags[flag]
	return ok
}

// Option returns the value for key, or the default when absent.
func (r ParseResult) Option(key, def string) string {
	if v, ok := r.Options[key]; ok {
		return v
	}
	return def
}

// =============================================================================
// PARSE ERRORS
// =============================================================================

// ErrorType categorizes a parse failure.
type ErrorType string

const (
	ErrEmptyInput        ErrorType = "EMPTY_INPUT"
	ErrInvalidInput      ErrorType = "INVALID_INPUT"
	ErrQuoteMismatch     ErrorType = "QUOTE_MISMATCH"
	ErrNoParsers         ErrorType = "NO_PARSERS"
	ErrNoMatchingParser  ErrorType = "NO_MATCHING_PARSER"
	ErrParserError       ErrorType = "PARSER_ERROR"
	ErrNotShellCommand   ErrorType = "NOT_SHELL_COMMAND"
	ErrEmptyShellCommand ErrorType = "EMPTY_SHELL_COMMAND"
)

// ParseError is a typed parse failure carrying a bounded suggestion list.
type ParseError struct {
	Type        ErrorType
	Message     string
	Suggestions []string
}

// NewParseError creates a ParseError of the given type.
func NewParseError(errType ErrorType, message string, suggestions ...string) *ParseError {
	return &ParseError{
		Type:        errType,
		Message:     message,
		Suggestions: suggestions,
	}
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return string(e.Type) + ": " + e.Message
}

// =============================================================================
// PARSER INTERFACE
// =============================================================================

// Parser is the capability every parser variant implements.
type Parser interface {
	// CanParse reports whether this parser claims the input. It must be
	// total: it never panics and never returns an error, for any input.
	CanParse(input string, sess *session.Session) bool

	// Parse interprets the input into a ParseResult. Failures are
	// reported as *ParseError.
	Parse(input string, sess *session.Session) (ParseResult, error)

	// Suggest returns completion suggestions for a partial input. The
	// returned list is always finite and may be empty.
	Suggest(partial string) []string
}
