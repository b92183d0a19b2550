// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"os"

	"github.com/google/uuid"
)

// =============================================================================
// SESSION MODES
// =============================================================================

// Mode identifies how input lines reach the shell.
type Mode string

const (
	// ModeInteractive is the default mode for a live prompt.
	ModeInteractive Mode = "interactive"

	// ModeBatch is used when lines are fed from a script or pipe.
	ModeBatch Mode = "batch"
)

// =============================================================================
// SESSION STATE
// =============================================================================

// Session holds the state shared between the shell loop and the parsers.
//
// A Session is not safe for concurrent mutation; the shell loop is the
// single writer.
type Session struct {
	// ID uniquely identifies this session.
	ID string

	// Mode is the current parse mode.
	Mode Mode

	// History is the ordered list of raw input lines processed so far.
	History []string

	// WorkingDir is the directory shell commands run in when set.
	WorkingDir string

	state map[string]string
}

// New creates a session in the given mode with an empty history.
// The working directory defaults to the process working directory.
func New(mode Mode) *Session {
	wd, err := os.Getwd()
	if err != nil {
		wd = ""
	}
	return &Session{
		ID:         uuid.New().String(),
		Mode:       mode,
		WorkingDir: wd,
		state:      make(map[string]string),
	}
}

// AddHistory appends a raw input line to the session history.
func (s *Session) AddHistory(line string) {
	s.History = append(s.History, line)
}

// ClearHistory removes all history entries.
func (s *Session) ClearHistory() {
	s.History = nil
}

// State returns the value stored under key, or the default when absent.
func (s *Session) State(key, def string) string {
	if v, ok := s.state[key]; ok {
		return v
	}
	return def
}

// SetState stores a value under key.
func (s *Session) SetState(key, value string) {
	if s.state == nil {
		s.state = make(map[string]string)
	}
	s.state[key] = value
}

// HasState reports whether key is present in the session state.
func (s *Session) HasState(key string) bool {
	_, ok := s.state[key]
	return ok
}
