// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"errors"
	"unicode"
)

// ErrUnclosedQuote is returned by SplitWords when input ends inside a
// quoted region.
var ErrUnclosedQuote = errors.New("no closing quote")

// SplitWords splits a command line into tokens, respecting quotes.
// Supports both single and double quotes for arguments with spaces, and
// backslash escapes for quote characters inside quoted regions. Quotes are
// removed from the resulting tokens; an explicitly quoted empty string
// ("" or '') is preserved as an empty token.
//
// Returns ErrUnclosedQuote if the input ends while a quote is still open.
func SplitWords(input string) ([]string, error) {
	var tokens []string
	var current []rune
	var inSingleQuote, inDoubleQuote, quoted bool

	runes := []rune(input)
	for i := 0; i < len(runes); i++ {
		char := runes[i]

		switch {
		case char == '\'' && !inDoubleQuote:
			inSingleQuote = !inSingleQuote
			quoted = true

		case char == '"' && !inSingleQuote:
			inDoubleQuote = !inDoubleQuote
			quoted = true

		case char == '\\' && i+1 < len(runes) && (inDoubleQuote || inSingleQuote):
			// Escape sequence inside quotes
			next := runes[i+1]
			if next == '"' || next == '\'' || next == '\\' {
				current = append(current, next)
				i++
			} else {
				current = append(current, char)
			}

		case unicode.IsSpace(char) && !inSingleQuote && !inDoubleQuote:
			// Space outside quotes ends the current token
			if len(current) > 0 || quoted {
				tokens = append(tokens, string(current))
				current = current[:0]
				quoted = false
			}

		default:
			current = append(current, char)
		}
	}

	if inSingleQuote || inDoubleQuote {
		return nil, ErrUnclosedQuote
	}

	if len(current) > 0 || quoted {
		tokens = append(tokens, string(current))
	}

	return tokens, nil
}
