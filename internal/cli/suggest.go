// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// suggest.go - Subcommand suggestion for typo correction.
package cli

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// validCommands is the list of patsh subcommands and their aliases.
var validCommands = []string{
	"shell",
	"themes",
	"version",
	"help",
}

// SuggestCommand returns a subcommand close to the input, or "" when
// nothing is within the acceptable edit distance.
func SuggestCommand(input string) string {
	input = strings.ToLower(input)

	// Very short inputs are more likely intentional than typos
	if len(input) < 2 {
		return ""
	}

	maxDistance := 1
	if len(input) >= 4 {
		maxDistance = 2
	}
	if len(input) > 8 {
		maxDistance = 3
	}

	bestMatch := ""
	bestDistance := -1
	for _, cmd := range validCommands {
		distance := levenshtein.ComputeDistance(input, cmd)
		if distance == 0 {
			return ""
		}
		if distance <= maxDistance && (bestDistance == -1 || distance < bestDistance) {
			bestDistance = distance
			bestMatch = cmd
		}
	}
	return bestMatch
}
