// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// sink.go - Themed console output for command execution.
package styles

import (
	"fmt"
	"io"
	"sync"

	"github.com/jeranaias/patsh/internal/executor"
)

// ConsoleSink renders executor output through the active theme: stdout
// lines in normal emphasis, stderr lines in error status, lifecycle
// updates in their matching status token.
type ConsoleSink struct {
	mu       sync.Mutex
	out      io.Writer
	registry *Registry
}

// NewConsoleSink creates a sink writing themed lines to out.
func NewConsoleSink(out io.Writer, registry *Registry) *ConsoleSink {
	return &ConsoleSink{out: out, registry: registry}
}

// Line renders one command output line. Safe for the concurrent calls
// made by the executor's stdout and stderr drains.
func (s *ConsoleSink) Line(stream executor.Stream, line string) {
	theme := s.registry.Current()

	var rendered string
	if stream == executor.Stderr {
		rendered = theme.Status(StatusError).Render(line)
	} else {
		rendered = theme.Emphasis(Normal).Render(line)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, rendered)
}

// Status renders a lifecycle update such as "Running: ls -la".
func (s *ConsoleSink) Status(status executor.Status, message string) {
	theme := s.registry.Current()
	style := theme.Status(statusToken(status))

	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.out, style.Render(message))
}

// statusToken maps executor lifecycle states onto status tokens.
func statusToken(status executor.Status) StatusToken {
	switch status {
	case executor.StatusRunning:
		return StatusRunning
	case executor.StatusSuccess:
		return StatusSuccess
	case executor.StatusTimeout, executor.StatusInterrupted:
		return StatusWarning
	default:
		return StatusError
	}
}
