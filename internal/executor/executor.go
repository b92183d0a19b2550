// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// executor.go - Subprocess execution with concurrent stream capture.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/jeranaias/patsh/internal/util"
)

// =============================================================================
// STREAMS AND STATUS
// =============================================================================

// Stream identifies which output stream a line came from.
type Stream int

const (
	// Stdout is the child's standard output.
	Stdout Stream = iota
	// Stderr is the child's standard error.
	Stderr
)

// Status classifies lifecycle updates emitted around a command run.
type Status int

const (
	// StatusRunning is emitted once before the command is spawned.
	StatusRunning Status = iota
	// StatusSuccess means the command exited zero.
	StatusSuccess
	// StatusFailed means the command exited non-zero or could not spawn.
	StatusFailed
	// StatusTimeout means the command was killed after exceeding its timeout.
	StatusTimeout
	// StatusInterrupted means the command was killed by cancellation.
	StatusInterrupted
)

// OutputSink receives streamed command output and status updates.
// Implementations must be safe for concurrent Line calls: stdout and
// stderr are drained by separate goroutines.
type OutputSink interface {
	// Line delivers one complete output line, without its trailing newline.
	Line(stream Stream, line string)
	// Status delivers a lifecycle update such as "Running: ls -la".
	Status(status Status, message string)
}

// =============================================================================
// RESULT
// =============================================================================

// Result describes a completed command run.
type Result struct {
	// ExitCode is the process exit code. -1 means the command never ran
	// to completion: invalid syntax, empty command, or timeout.
	ExitCode int

	// Stdout and Stderr hold the captured output lines joined with "\n".
	Stdout string
	Stderr string

	// TimedOut is set when the command was killed at its deadline.
	TimedOut bool

	// Interrupted is set when the command was killed by cancellation.
	Interrupted bool
}

// Success reports whether the command completed normally with exit code
// zero. Derived only; nothing stores it.
func (r Result) Success() bool {
	return r.ExitCode == 0 && !r.TimedOut && !r.Interrupted
}

// =============================================================================
// EXECUTOR
// =============================================================================

// DefaultTimeout bounds commands that don't specify their own.
const DefaultTimeout = 30 * time.Second

// readChunkSize is the pipe read granularity. Small enough to keep
// streamed output responsive for slow producers.
const readChunkSize = 1024

// Request describes one command invocation. Exactly one of Command or
// Argv should be set; Argv wins when both are.
type Request struct {
	// Command is the command as a single string. Without
	// AllowShellFeatures it is split into argv with quote-aware
	// tokenization and spawned directly.
	Command string

	// Argv is the command as an explicit argument vector, spawned
	// literally. Joined with spaces for display only.
	Argv []string

	// Timeout overrides the executor's default timeout. Zero means
	// use the default.
	Timeout time.Duration

	// Dir is the working directory for the child. Empty inherits.
	Dir string

	// Env entries are merged over a copy of the current environment;
	// on key collision the request value wins.
	Env map[string]string

	// AllowShellFeatures runs the command through the platform shell,
	// enabling pipes, redirects and globbing. Only for trusted input:
	// with it off, metacharacters are inert.
	AllowShellFeatures bool
}

// Executor runs external commands, capturing output and optionally
// streaming it to a sink as it arrives.
type Executor struct {
	sink           OutputSink
	defaultTimeout time.Duration

	// StreamOutput controls whether lines and status updates are
	// forwarded to the sink during the run. Captured output in the
	// Result is unaffected.
	StreamOutput bool
}

// New creates an executor that streams output to sink.
func New(sink OutputSink) *Executor {
	return &Executor{
		sink:           sink,
		defaultTimeout: DefaultTimeout,
		StreamOutput:   true,
	}
}

// NewWithTimeout creates an executor with a custom default timeout.
func NewWithTimeout(sink OutputSink, timeout time.Duration) *Executor {
	e := New(sink)
	if timeout > 0 {
		e.defaultTimeout = timeout
	}
	return e
}

// =============================================================================
// RUN
// =============================================================================

// Run executes the request and blocks until the child is fully reaped.
// Expected failures (non-zero exit, timeout, command not found) are
// reported through the Result, never as errors.
func (e *Executor) Run(ctx context.Context, req Request) Result {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = e.defaultTimeout
	}

	// Resolve the argv and display forms of the command.
	var argv []string
	var display string
	switch {
	case len(req.Argv) > 0:
		argv = req.Argv
		display = strings.Join(req.Argv, " ")
	default:
		display = req.Command
		if !req.AllowShellFeatures {
			words, err := util.SplitWords(req.Command)
			if err != nil {
				return e.failBeforeSpawn(fmt.Sprintf("Invalid command syntax: %v", err))
			}
			argv = words
		}
	}

	if !req.AllowShellFeatures && len(argv) == 0 {
		return e.failBeforeSpawn("Empty command")
	}

	e.status(StatusRunning, "Running: "+display)

	var cmd *exec.Cmd
	if req.AllowShellFeatures {
		log.Printf("SHELL_FEATURES | executing with shell interpretation: %s", display)
		cmd = shellCommand(display)
	} else {
		cmd = exec.Command(argv[0], argv[1:]...)
	}
	cmd.Dir = req.Dir
	cmd.Env = mergeEnv(req.Env)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return e.spawnFailure(err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return e.spawnFailure(err)
	}

	if err := cmd.Start(); err != nil {
		return e.spawnFailure(err)
	}

	// Drain both pipes concurrently; collectors are goroutine-owned
	// until the reap completes.
	stdoutLines := &lineCollector{}
	stderrLines := &lineCollector{}

	var drains sync.WaitGroup
	drains.Add(2)
	go func() {
		defer drains.Done()
		e.readStream(stdout, Stdout, stdoutLines)
	}()
	go func() {
		defer drains.Done()
		e.readStream(stderr, Stderr, stderrLines)
	}()

	// cmd.Wait closes the pipes, so the drains must finish first.
	waitCh := make(chan error, 1)
	go func() {
		drains.Wait()
		waitCh <- cmd.Wait()
	}()

	result := Result{ExitCode: -1}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case waitErr := <-waitCh:
		result.ExitCode = exitCode(waitErr)
	case <-timer.C:
		result.TimedOut = true
		kill(cmd, stdout, stderr)
		<-waitCh
	case <-ctx.Done():
		result.Interrupted = true
		result.ExitCode = 130
		kill(cmd, stdout, stderr)
		<-waitCh
	}

	result.Stdout = stdoutLines.join()
	result.Stderr = stderrLines.join()

	switch {
	case result.TimedOut:
		e.status(StatusTimeout, fmt.Sprintf("Command timed out after %s", timeout))
	case result.Interrupted:
		e.status(StatusInterrupted, "Command interrupted")
	case result.ExitCode == 0:
		e.status(StatusSuccess, "Command completed successfully")
	default:
		e.status(StatusFailed, fmt.Sprintf("Command failed with exit code %d", result.ExitCode))
	}

	return result
}

// failBeforeSpawn reports a failure detected before any process existed.
func (e *Executor) failBeforeSpawn(message string) Result {
	e.line(Stderr, message)
	return Result{ExitCode: -1, Stderr: message}
}

// spawnFailure classifies a Start error the way a shell would: 127 for
// a missing command, 126 for a permission problem, 1 otherwise.
func (e *Executor) spawnFailure(err error) Result {
	var message string
	var code int
	switch {
	case errors.Is(err, exec.ErrNotFound) || os.IsNotExist(err):
		message = "Command not found"
		code = 127
	case os.IsPermission(err):
		message = "Permission denied"
		code = 126
	default:
		message = fmt.Sprintf("Error executing command: %v", err)
		code = 1
	}
	e.line(Stderr, message)
	e.status(StatusFailed, fmt.Sprintf("Command failed with exit code %d", code))
	return Result{ExitCode: code, Stderr: message}
}

// =============================================================================
// STREAM DRAINING
// =============================================================================

// lineCollector accumulates output lines for one stream. Owned by a
// single drain goroutine while the process runs.
type lineCollector struct {
	lines []string
}

func (c *lineCollector) append(line string) {
	c.lines = append(c.lines, line)
}

func (c *lineCollector) join() string {
	return strings.Join(c.lines, "\n")
}

// readStream drains a pipe in fixed-size chunks, splitting complete
// lines on "\n". Invalid UTF-8 is replaced rather than failing, so
// binary output degrades gracefully. A trailing unterminated line is
// flushed at EOF, and a read error becomes one synthetic line.
func (e *Executor) readStream(pipe io.Reader, stream Stream, collector *lineCollector) {
	buf := make([]byte, readChunkSize)
	var pending []byte

	for {
		n, err := pipe.Read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			for {
				idx := bytes.IndexByte(pending, '\n')
				if idx < 0 {
					break
				}
				line := decodeLine(pending[:idx])
				pending = pending[idx+1:]
				collector.append(line)
				e.line(stream, line)
			}
		}
		if err != nil {
			// A closed pipe is the normal end of stream after a kill.
			if err != io.EOF && !errors.Is(err, os.ErrClosed) {
				errLine := fmt.Sprintf("Stream reading error: %v", err)
				collector.append(errLine)
				e.line(stream, errLine)
			}
			break
		}
	}

	if len(pending) > 0 {
		line := decodeLine(pending)
		collector.append(line)
		e.line(stream, line)
	}
}

// decodeLine converts raw bytes to a string, replacing invalid UTF-8
// sequences with U+FFFD. Never fails.
func decodeLine(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}

// =============================================================================
// HELPERS
// =============================================================================

// mergeEnv copies the current environment and overlays the overrides.
// Request values win on key collision.
func mergeEnv(overrides map[string]string) []string {
	env := os.Environ()
	if len(overrides) == 0 {
		return env
	}

	merged := make([]string, 0, len(env)+len(overrides))
	for _, entry := range env {
		key := entry
		if i := strings.IndexByte(entry, '='); i >= 0 {
			key = entry[:i]
		}
		if _, ok := overrides[key]; ok {
			continue
		}
		merged = append(merged, entry)
	}
	for key, value := range overrides {
		merged = append(merged, key+"="+value)
	}
	return merged
}

// kill terminates the child and closes the pipe read ends. Closing the
// pipes matters: a grandchild that inherited them can keep the write
// ends open after the direct child dies, which would otherwise leave
// the drain goroutines blocked forever.
func kill(cmd *exec.Cmd, pipes ...io.Closer) {
	_ = cmd.Process.Kill()
	for _, pipe := range pipes {
		_ = pipe.Close()
	}
}

// exitCode extracts the exit code from a Wait error. nil means zero;
// a non-ExitError wait failure maps to 1.
func exitCode(waitErr error) int {
	if waitErr == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}

func (e *Executor) line(stream Stream, line string) {
	if e.StreamOutput && e.sink != nil {
		e.sink.Line(stream, line)
	}
}

func (e *Executor) status(status Status, message string) {
	if e.StreamOutput && e.sink != nil {
		e.sink.Status(status, message)
	}
}
