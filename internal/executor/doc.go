// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package executor runs external commands with captured, streamed output.
//
// The executor never surfaces expected command failures as Go errors: a
// command that exits non-zero, times out, cannot be found, or is killed
// still produces a Result describing what happened. Errors are reserved
// for conditions the caller cannot interpret from an exit code.
//
// # Key Types
//
//   - Executor: runs commands, forwarding output to an OutputSink
//   - Request: one command invocation (argv or string form)
//   - Result: exit code, captured streams, timeout/interrupt flags
//   - OutputSink: destination for streamed lines and status updates
//
// # Usage
//
//	exec := executor.New(sink)
//	result := exec.Run(ctx, executor.Request{Command: "ls -la"})
//	if !result.Success() {
//	    fmt.Println(result.Stderr)
//	}
//
// By default commands are spawned directly without a shell, so shell
// metacharacters in arguments are inert. Request.AllowShellFeatures
// opts in to shell interpretation for trusted input only.
package executor
