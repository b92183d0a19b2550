// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// shell.go - Interactive REPL: input loop, routing, error display.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/patsh/internal/config"
	"github.com/jeranaias/patsh/internal/executor"
	"github.com/jeranaias/patsh/internal/parser"
	"github.com/jeranaias/patsh/internal/registry"
	"github.com/jeranaias/patsh/internal/session"
	"github.com/jeranaias/patsh/internal/ui/styles"
)

// Version is the patsh release version shown on the welcome screen.
const Version = "0.1.0"

// Parser priorities: shell passthrough outranks free text so "!" input
// never reaches the text parser.
const (
	shellParserPriority = 10
	textParserPriority  = 5
)

// =============================================================================
// SHELL
// =============================================================================

// Shell is the interactive REPL tying the parser pipeline, command
// registry and executor together.
type Shell struct {
	cfg      *config.Config
	themes   *styles.Registry
	pipeline *parser.Pipeline
	registry *registry.Registry
	exec     *executor.Executor
	sess     *session.Session

	line        *liner.State
	historyFile string
	out         io.Writer
	running     bool
}

// New creates a fully wired shell from the configuration.
func New(cfg *config.Config) (*Shell, error) {
	themes := styles.NewRegistry()
	if err := config.InitializeThemes(cfg, themes); err != nil {
		return nil, err
	}

	sink := styles.NewConsoleSink(os.Stdout, themes)
	exec := executor.NewWithTimeout(sink, cfg.CommandTimeout())
	exec.StreamOutput = cfg.StreamOutput

	pipeline := parser.NewPipeline()
	pipeline.AddParser(parser.NewShellParser(), nil, shellParserPriority)
	pipeline.AddParser(parser.NewTextParser(), nil, textParserPriority)

	sh := &Shell{
		cfg:      cfg,
		themes:   themes,
		pipeline: pipeline,
		registry: registry.New(cfg.SuggestionCacheSize),
		exec:     exec,
		sess:     session.New(session.ModeInteractive),
		out:      os.Stdout,
	}

	if err := sh.registerBuiltins(); err != nil {
		return nil, err
	}
	return sh, nil
}

// =============================================================================
// INPUT LOOP
// =============================================================================

// Run executes the REPL until exit, EOF or Ctrl+C at the prompt.
// Theme files are watched for the whole run so edits apply live.
func (s *Shell) Run(ctx context.Context) error {
	if s.cfg.Welcome {
		s.showWelcome()
	}

	if themesDir, err := s.cfg.ThemesDir(); err == nil {
		if _, err := config.WatchThemes(ctx, themesDir, s.themes, nil); err != nil && !os.IsNotExist(err) {
			// Live reload is a convenience, not a requirement
			s.printStatus(styles.StatusMuted, fmt.Sprintf("Theme watching disabled: %v", err))
		}
	}

	s.openInput()
	defer s.Close()

	s.running = true
	for s.running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		input, err := s.line.Prompt(s.prompt())
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				s.printStatus(styles.StatusMuted, "Goodbye!")
				return nil
			}
			return err
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		s.line.AppendHistory(input)

		s.Execute(ctx, input)
	}
	return nil
}

// Execute processes one line of input through the parse-and-dispatch
// pipeline. Failures are displayed, never returned: a bad command must
// not end the session.
func (s *Shell) Execute(ctx context.Context, input string) {
	result, err := s.pipeline.Parse(input, s.sess)
	if err != nil {
		var parseErr *parser.ParseError
		if errors.As(err, &parseErr) {
			s.printStatus(styles.StatusError, "Parse error: "+parseErr.Message)
			if len(parseErr.Suggestions) > 0 {
				s.printStatus(styles.StatusMuted, "Suggestions: "+strings.Join(parseErr.Suggestions, ", "))
			}
		} else {
			s.printStatus(styles.StatusError, "Unexpected error: "+err.Error())
		}
		return
	}

	s.sess.AddHistory(input)

	if result.Command == parser.ShellSentinel {
		s.runShellCommand(ctx, result)
		return
	}
	s.runRegistered(ctx, result)
}

// runShellCommand executes "!" input as an external command.
func (s *Shell) runShellCommand(ctx context.Context, result parser.ParseResult) {
	if result.ShellCommand == "" {
		s.printStatus(styles.StatusWarning, "No shell command provided")
		return
	}
	s.exec.Run(ctx, executor.Request{
		Command: result.ShellCommand,
		Timeout: s.cfg.CommandTimeout(),
		Dir:     s.sess.WorkingDir,
	})
}

// runRegistered dispatches a parsed command to its registered handler,
// or reports it unknown with typo suggestions.
func (s *Shell) runRegistered(_ context.Context, result parser.ParseResult) {
	meta, ok := s.registry.Lookup(result.Command)
	if !ok {
		s.printStatus(styles.StatusWarning, "Unknown command: "+result.Command)
		if suggestions := s.registry.TypoSuggestions(result.Command); len(suggestions) > 0 {
			if len(suggestions) > 3 {
				suggestions = suggestions[:3]
			}
			s.printStatus(styles.StatusMuted, "Did you mean: "+strings.Join(suggestions, ", ")+"?")
		} else {
			s.printStatus(styles.StatusMuted, "Type 'help' for available commands")
		}
		return
	}

	if meta.Handler == nil {
		s.printStatus(styles.StatusWarning, "Command has no handler: "+meta.Name)
		return
	}
	if err := meta.Handler(result); err != nil {
		s.printStatus(styles.StatusError, "Command failed: "+err.Error())
	}
}

// =============================================================================
// LINER SETUP
// =============================================================================

// openInput initializes line editing, completion and history.
func (s *Shell) openInput() {
	s.line = liner.NewLiner()
	s.line.SetCtrlCAborts(true)

	s.line.SetCompleter(func(line string) []string {
		prefix := strings.ToLower(line)
		var completions []string
		for _, meta := range s.registry.List("") {
			if meta.Hidden {
				continue
			}
			if strings.HasPrefix(meta.Name, prefix) {
				completions = append(completions, meta.Name)
			}
			for _, alias := range meta.Aliases {
				if strings.HasPrefix(alias, prefix) {
					completions = append(completions, alias)
				}
			}
		}
		return completions
	})

	if path, err := s.cfg.HistoryPath(); err == nil {
		s.historyFile = path
		if f, err := os.Open(path); err == nil {
			s.line.ReadHistory(f)
			f.Close()
		}
	}
}

// Close persists history and releases the terminal.
func (s *Shell) Close() {
	if s.line == nil {
		return
	}
	if s.historyFile != "" {
		if err := config.EnsureConfigDir(); err == nil {
			if f, err := os.OpenFile(s.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600); err == nil {
				s.line.WriteHistory(f)
				f.Close()
			}
		}
	}
	s.line.Close()
	s.line = nil
}

// =============================================================================
// OUTPUT HELPERS
// =============================================================================

// prompt renders the themed prompt string.
func (s *Shell) prompt() string {
	return s.themes.Current().Category(styles.Cat1).Render("patsh") + "> "
}

func (s *Shell) printStatus(token styles.StatusToken, message string) {
	style := s.themes.Current().Status(token)
	fmt.Fprintln(s.out, style.Render(message))
}

func (s *Shell) printCategory(token styles.CategoryToken, message string) {
	style := s.themes.Current().Category(token)
	fmt.Fprintln(s.out, style.Render(message))
}
