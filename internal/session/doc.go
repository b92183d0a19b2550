// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session provides the shared session state for an interactive shell.
//
// The session carries the parse mode, the command history, and a free-form
// key-value store. Parsers read it for condition predicates; the shell
// mutates it as commands are processed. The session is owned by the
// application entry point and passed by pointer to the parser pipeline.
//
// # Key Types
//
//   - Session: mode, history, and key-value state for one shell run
//
// # Usage
//
//	sess := session.New(session.ModeInteractive)
//	sess.AddHistory("ls -la")
//	sess.SetState("verbose", "1")
package session
