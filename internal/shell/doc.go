// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package shell implements the interactive patsh REPL.
//
// The shell wires the parser pipeline, command registry and executor
// together: input is parsed by the highest-priority matching parser,
// "!"-prefixed input runs as an external command, registered commands
// dispatch to their handlers, and unknown commands get typo
// suggestions. Output is themed through the styles registry.
//
// # Usage
//
//	sh, err := shell.New(cfg)
//	if err != nil { ... }
//	defer sh.Close()
//	sh.Run(ctx)
package shell
