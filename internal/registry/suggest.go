// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// suggest.go - Cached command suggestions for typo correction and completion.
package registry

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// commonCommands is offered for empty partial input, filtered to what is
// actually registered.
var commonCommands = []string{"help", "list", "status", "config", "quit"}

// Suggestions returns up to limit command name suggestions for the partial
// input. Results are cached per (partial, limit); every register/unregister
// invalidates the cache, so repeated calls are stable between mutations.
func (r *Registry) Suggestions(partial string, limit int) []string {
	if limit <= 0 {
		return []string{}
	}

	if cached, ok := r.cache.get(partial, limit); ok {
		return cached
	}

	result := r.computeSuggestions(partial, limit)
	r.cache.put(partial, limit, result)
	return result
}

// TypoSuggestions returns corrections for a potentially misspelled command.
func (r *Registry) TypoSuggestions(typo string) []string {
	return r.Suggestions(typo, 10)
}

// computeSuggestions performs the actual suggestion computation: exact
// prefix matches over names and aliases first, then fuzzy near-matches by
// edit distance, deduplicated preserving first-seen order.
func (r *Registry) computeSuggestions(partial string, limit int) []string {
	if partial == "" {
		available := make([]string, 0, len(commonCommands))
		for _, cmd := range commonCommands {
			if _, ok := r.commands[cmd]; ok {
				available = append(available, cmd)
			}
		}
		if len(available) > limit {
			available = available[:limit]
		}
		return available
	}

	allNames := make([]string, 0, len(r.commands)+len(r.aliases))
	for name := range r.commands {
		allNames = append(allNames, name)
	}
	for alias := range r.aliases {
		allNames = append(allNames, alias)
	}
	// Map iteration order is random; sort for stable output
	sort.Strings(allNames)

	partialLower := strings.ToLower(partial)

	var prefixMatches []string
	for _, name := range allNames {
		if strings.HasPrefix(strings.ToLower(name), partialLower) {
			prefixMatches = append(prefixMatches, name)
		}
	}

	// Request roughly twice the limit so deduplication against the prefix
	// matches still leaves enough candidates.
	fuzzyMatches := closeMatches(partial, allNames, limit*2)

	suggestions := make([]string, 0, limit)
	seen := make(map[string]struct{})
	for _, group := range [][]string{prefixMatches, fuzzyMatches} {
		for _, name := range group {
			if _, ok := seen[name]; ok {
				continue
			}
			suggestions = append(suggestions, name)
			seen[name] = struct{}{}
			if len(suggestions) >= limit {
				return suggestions
			}
		}
	}
	return suggestions
}

// closeMatches returns up to n candidates within edit distance of the
// input, closest first. The acceptable distance scales with input length,
// which catches transpositions like "hepl" -> "help" without suggesting
// wildly unrelated names.
func closeMatches(input string, candidates []string, n int) []string {
	maxDistance := 1
	if len(input) >= 4 {
		maxDistance = 2
	}
	if len(input) > 8 {
		maxDistance = 3
	}

	type scored struct {
		name     string
		distance int
	}

	inputLower := strings.ToLower(input)
	var matches []scored
	for _, candidate := range candidates {
		distance := levenshtein.ComputeDistance(inputLower, strings.ToLower(candidate))
		if distance <= maxDistance {
			matches = append(matches, scored{name: candidate, distance: distance})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	if len(matches) > n {
		matches = matches[:n]
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.name
	}
	return names
}
