// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package parser

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jeranaias/patsh/internal/session"
)

// =============================================================================
// PIPELINE
// =============================================================================

// Condition gates a parser in the pipeline. A parser whose condition returns
// false is skipped for that input. A panicking condition is treated as a
// non-match, never propagated.
type Condition func(input string, sess *session.Session) bool

// pipelineEntry stores one registered parser with its routing metadata.
type pipelineEntry struct {
	parser    Parser
	condition Condition
	priority  int
	seq       int // insertion order, tie-breaker for equal priorities
}

// Pipeline routes input to the appropriate parser.
//
// Parsers are kept sorted descending by priority with ties broken by
// insertion order. Dispatch is a total order, not a search: the single
// highest-priority matching parser parses, and its failure is final for
// that input. Registration is expected at startup; the pipeline is not safe
// for concurrent mutation.
type Pipeline struct {
	entries []pipelineEntry
	nextSeq int
}

// NewPipeline creates an empty parser pipeline.
func NewPipeline() *Pipeline {
	return &Pipeline{}
}

// AddParser adds a parser with an optional condition and a priority.
// Higher priorities dispatch first. The re-sort on every add is fine:
// registration happens at startup.
func (p *Pipeline) AddParser(parser Parser, condition Condition, priority int) {
	p.entries = append(p.entries, pipelineEntry{
		parser:    parser,
		condition: condition,
		priority:  priority,
		seq:       p.nextSeq,
	})
	p.nextSeq++

	sort.SliceStable(p.entries, func(i, j int) bool {
		if p.entries[i].priority != p.entries[j].priority {
			return p.entries[i].priority > p.entries[j].priority
		}
		return p.entries[i].seq < p.entries[j].seq
	})
}

// RemoveParser removes a parser by identity. Returns true if it was found.
func (p *Pipeline) RemoveParser(parser Parser) bool {
	for i, entry := range p.entries {
		if entry.parser == parser {
			p.entries = append(p.entries[:i], p.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes all parsers from the pipeline.
func (p *Pipeline) Clear() {
	p.entries = nil
}

// Len returns the number of registered parsers.
func (p *Pipeline) Len() int {
	return len(p.entries)
}

// Parse routes the input to the highest-priority matching parser.
//
// Matching consults the entry condition (when present) and the parser's
// CanParse. Exactly one parser is delegated to; if its Parse fails there is
// no backtracking to the next candidate. A *ParseError from the delegate is
// returned unchanged; a panic is wrapped as PARSER_ERROR.
func (p *Pipeline) Parse(input string, sess *session.Session) (ParseResult, error) {
	if len(p.entries) == 0 {
		return ParseResult{}, NewParseError(ErrNoParsers,
			"No parsers available in pipeline",
			"Add parsers to the pipeline")
	}

	var match *pipelineEntry
	var conditionErrors []string

	for i := range p.entries {
		entry := &p.entries[i]

		ok, condErr := evalCondition(entry.condition, input, sess)
		if condErr != "" {
			conditionErrors = append(conditionErrors, condErr)
			continue
		}
		if !ok {
			continue
		}

		if entry.parser.CanParse(input, sess) {
			match = entry
			break
		}
	}

	if match == nil {
		msg := "No parser can handle the input"
		if len(conditionErrors) > 0 {
			msg += ". Condition errors: " + strings.Join(conditionErrors, "; ")
		}
		return ParseResult{}, NewParseError(ErrNoMatchingParser, msg,
			"Check input format",
			"Add appropriate parser to pipeline")
	}

	return delegateParse(match.parser, input, sess)
}

// evalCondition runs the condition with panic recovery. An absent condition
// matches. A panic is reported as text and treated as non-match.
func evalCondition(cond Condition, input string, sess *session.Session) (ok bool, condErr string) {
	if cond == nil {
		return true, ""
	}
	defer func() {
		if r := recover(); r != nil {
			ok = false
			condErr = fmt.Sprintf("Condition failed for parser: %v", r)
		}
	}()
	return cond(input, sess), ""
}

// delegateParse invokes the chosen parser with panic recovery. ParseErrors
// pass through; anything else becomes PARSER_ERROR.
func delegateParse(parser Parser, input string, sess *session.Session) (result ParseResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = ParseResult{}
			err = NewParseError(ErrParserError,
				fmt.Sprintf("Parser failed: %v", r),
				"Check input format", "Try a different parser")
		}
	}()

	result, err = parser.Parse(input, sess)
	if err != nil {
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			return ParseResult{}, NewParseError(ErrParserError,
				"Parser failed: "+err.Error(),
				"Check input format", "Try a different parser")
		}
	}
	return result, err
}
