// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// builtins.go - Built-in shell commands.
package shell

import (
	"fmt"
	"strings"

	"github.com/jeranaias/patsh/internal/parser"
	"github.com/jeranaias/patsh/internal/registry"
	"github.com/jeranaias/patsh/internal/ui/styles"
	"github.com/jeranaias/patsh/internal/util"
)

// helpDescWidth caps description length in the help table.
const helpDescWidth = 60

// registerBuiltins installs the built-in commands. A conflict here is a
// programming error, so it surfaces instead of being logged away.
func (s *Shell) registerBuiltins() error {
	builtins := []registry.CommandMetadata{
		{
			Name:        "help",
			Description: "Show available commands",
			Category:    "builtin",
			Handler:     s.cmdHelp,
		},
		{
			Name:        "exit",
			Description: "Exit the shell",
			Aliases:     []string{"quit"},
			Category:    "builtin",
			Handler:     s.cmdExit,
		},
		{
			Name:        "echo",
			Description: "Echo text with theme styling",
			Category:    "builtin",
			Handler:     s.cmdEcho,
		},
		{
			Name:        "theme",
			Description: "Show or switch the active theme",
			Category:    "builtin",
			Handler:     s.cmdTheme,
		},
		{
			Name:        "history",
			Description: "Show session command history",
			Category:    "builtin",
			Handler:     s.cmdHistory,
		},
		{
			Name:        "clear",
			Description: "Clear the screen",
			Category:    "builtin",
			Handler:     s.cmdClear,
		},
	}

	for _, meta := range builtins {
		if err := s.registry.Register(meta); err != nil {
			return fmt.Errorf("builtin registration failed: %w", err)
		}
	}
	return nil
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

// cmdHelp lists registered commands grouped by category.
func (s *Shell) cmdHelp(_ parser.ParseResult) error {
	theme := s.themes.Current()
	nameStyle := theme.Category(styles.Cat1)
	descStyle := theme.Category(styles.Cat7)

	s.printCategory(styles.Cat4, "Available Commands")

	// Pad names so descriptions line up
	commands := s.visibleCommands()
	width := 0
	for _, meta := range commands {
		if l := util.RuneLen(meta.Name); l > width {
			width = l
		}
	}

	for _, category := range s.registry.Categories() {
		s.printStatus(styles.StatusMuted, "  ["+category+"]")
		for _, meta := range s.registry.List(category) {
			if meta.Hidden {
				continue
			}
			name := meta.Name
			if len(meta.Aliases) > 0 {
				name += " (" + strings.Join(meta.Aliases, ", ") + ")"
			}
			pad := width + 16 - util.RuneLen(name)
			if pad < 2 {
				pad = 2
			}
			desc := util.TruncateRunes(meta.Description, helpDescWidth)
			fmt.Fprintln(s.out, nameStyle.Render("  "+name+strings.Repeat(" ", pad))+descStyle.Render(desc))
		}
	}
	s.printStatus(styles.StatusMuted, "Prefix a line with '!' to run it as an external command")
	return nil
}

func (s *Shell) visibleCommands() []registry.CommandMetadata {
	var visible []registry.CommandMetadata
	for _, meta := range s.registry.List("") {
		if !meta.Hidden {
			visible = append(visible, meta)
		}
	}
	return visible
}

// cmdExit stops the input loop.
func (s *Shell) cmdExit(_ parser.ParseResult) error {
	s.running = false
	s.printStatus(styles.StatusSuccess, "Goodbye!")
	return nil
}

// cmdEcho prints its arguments, cycling the category palette per word
// so theme changes are easy to eyeball.
func (s *Shell) cmdEcho(result parser.ParseResult) error {
	if len(result.Args) == 0 {
		s.printStatus(styles.StatusWarning, "Usage: echo <text>")
		return nil
	}

	theme := s.themes.Current()
	categories := styles.AllCategories()

	parts := make([]string, len(result.Args))
	for i, word := range result.Args {
		parts[i] = theme.Category(categories[i%len(categories)]).Render(word)
	}
	fmt.Fprintln(s.out, strings.Join(parts, " "))
	return nil
}

// cmdTheme shows the current theme, or switches to the named one.
func (s *Shell) cmdTheme(result parser.ParseResult) error {
	if len(result.Args) == 0 {
		s.printStatus(styles.StatusInfo, "Current theme: "+s.themes.Current().Name)
		s.printStatus(styles.StatusMuted, "Available themes: "+strings.Join(s.themes.List(), ", "))
		return nil
	}

	name := strings.ToLower(result.Args[0])
	if err := s.themes.SetCurrent(name); err != nil {
		s.printStatus(styles.StatusError, "Theme '"+name+"' not found")
		s.printStatus(styles.StatusMuted, "Available themes: "+strings.Join(s.themes.List(), ", "))
		return nil
	}
	s.printStatus(styles.StatusSuccess, "Switched to '"+name+"' theme")
	return nil
}

// cmdHistory prints this session's command history, oldest first.
func (s *Shell) cmdHistory(result parser.ParseResult) error {
	history := s.sess.History
	if len(history) == 0 {
		s.printStatus(styles.StatusMuted, "No history yet")
		return nil
	}

	if result.HasFlag("clear") || (len(result.Args) > 0 && result.Args[0] == "clear") {
		s.sess.ClearHistory()
		s.printStatus(styles.StatusSuccess, "History cleared")
		return nil
	}

	digits := len(fmt.Sprint(len(history)))
	for i, line := range history {
		num := fmt.Sprintf("%*d  ", digits, i+1)
		fmt.Fprintln(s.out, s.themes.Current().Status(styles.StatusMuted).Render(num)+line)
	}
	return nil
}

// cmdClear clears the terminal.
func (s *Shell) cmdClear(_ parser.ParseResult) error {
	fmt.Fprint(s.out, "\033[2J\033[H")
	return nil
}
