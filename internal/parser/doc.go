// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package parser provides the multi-parser dispatch pipeline that turns a raw
// input line into structured command data.
//
// Each parser implements the Parser interface: a total, non-panicking
// applicability test (CanParse), the actual Parse, and completion
// suggestions. The Pipeline holds parsers ordered by priority and routes each
// input line to the single highest-priority parser that claims it; there is
// no backtracking to lower-priority parsers when that parse fails.
//
// # Key Types
//
//   - ParseResult: structured outcome of interpreting one input line
//   - ParseError: typed parse failure with a bounded suggestion list
//   - TextParser: commands with positional args, POSIX flag bundles, and options
//   - ShellParser: pass-through for input prefixed with the shell sentinel "!"
//   - Pipeline: priority-ordered parser dispatch
//
// # Usage
//
//	pipe := parser.NewPipeline()
//	pipe.AddParser(parser.NewShellParser(), nil, 10)
//	pipe.AddParser(parser.NewTextParser(), nil, 5)
//
//	result, err := pipe.Parse("git commit -am 'wip'", sess)
package parser
