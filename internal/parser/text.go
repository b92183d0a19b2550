// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package parser

import (
	"errors"
	"strings"

	"github.com/jeranaias/patsh/internal/session"
	"github.com/jeranaias/patsh/internal/util"
)

// =============================================================================
// TEXT PARSER
// =============================================================================

// TextParser parses standard text commands with positional arguments,
// short/long flags, and key=value options. Quote handling follows shell
// conventions via util.SplitWords.
type TextParser struct{}

// NewTextParser creates a text parser.
func NewTextParser() *TextParser {
	return &TextParser{}
}

// CanParse returns true for non-empty input that does not start with the
// shell sentinel.
func (p *TextParser) CanParse(input string, sess *session.Session) bool {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return false
	}
	// Shell commands belong to the shell parser
	return !strings.HasPrefix(trimmed, ShellSentinel)
}

// Parse tokenizes the input and classifies tokens into the command, the
// positional arguments, flags, and options.
//
// Token classification, left to right after the command token:
//   - "--key=value" becomes an option
//   - "--key value" consumes the next token as the value when it does not
//     start with "-"; otherwise "--key" becomes a flag
//   - "-xyz" adds the flags x, y, and z
//   - anything else is a positional argument
func (p *TextParser) Parse(input string, sess *session.Session) (ParseResult, error) {
	if !p.CanParse(input, sess) {
		if strings.TrimSpace(input) == "" {
			return ParseResult{}, NewParseError(ErrEmptyInput,
				"Empty input cannot be parsed",
				"Enter a command to execute")
		}
		return ParseResult{}, NewParseError(ErrInvalidInput,
			"Input cannot be parsed by text parser",
			"Check command format")
	}

	tokens, err := util.SplitWords(strings.TrimSpace(input))
	if err != nil {
		if errors.Is(err, util.ErrUnclosedQuote) {
			return ParseResult{}, NewParseError(ErrQuoteMismatch,
				"Syntax error in command: "+err.Error(),
				"Check quote pairing", "Escape special characters")
		}
		return ParseResult{}, NewParseError(ErrInvalidInput,
			"Syntax error in command: "+err.Error(),
			"Check command format")
	}

	if len(tokens) == 0 {
		return ParseResult{}, NewParseError(ErrEmptyInput,
			"No command found after parsing",
			"Enter a valid command")
	}

	result := ParseResult{
		Command:  tokens[0],
		Flags:    make(map[string]struct{}),
		Options:  make(map[string]string),
		RawInput: input,
	}

	for i := 1; i < len(tokens); i++ {
		token := tokens[i]

		switch {
		case strings.HasPrefix(token, "--") && len(token) > 2:
			key := token[2:]
			if eq := strings.Index(key, "="); eq >= 0 {
				// --key=value
				result.Options[key[:eq]] = key[eq+1:]
			} else if i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "-") {
				// --key value: single-token lookahead
				result.Options[key] = tokens[i+1]
				i++
			} else {
				// Valueless long option folds into the flag set
				result.Flags[key] = struct{}{}
			}

		case strings.HasPrefix(token, "-") && len(token) > 1:
			// POSIX bundling: each character is an independent flag
			for _, char := range token[1:] {
				result.Flags[string(char)] = struct{}{}
			}

		default:
			result.Args = append(result.Args, token)
		}
	}

	return result, nil
}

// Suggest returns completion suggestions for partial input. The base text
// parser has no command knowledge and returns an empty list; registry-aware
// callers layer suggestions on top.
func (p *TextParser) Suggest(partial string) []string {
	return []string{}
}
