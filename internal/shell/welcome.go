// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// welcome.go - Startup welcome screen.
package shell

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/jeranaias/patsh/internal/ui/styles"
)

// DefaultTerminalWidth is the fallback when width detection fails.
const DefaultTerminalWidth = 80

var bannerLines = []string{
	`             _       _     `,
	` _ __   __ _| |_ ___| |__  `,
	`| '_ \ / _' | __/ __| '_ \ `,
	`| |_) | (_| | |_\__ \ | | |`,
	`| .__/ \__,_|\__|___/_| |_|`,
	`|_|                        `,
}

// showWelcome prints the banner and quick-start hints, centered to the
// terminal width.
func (s *Shell) showWelcome() {
	width := terminalWidth()
	theme := s.themes.Current()

	fmt.Fprintln(s.out)
	banner := theme.Category(styles.Cat1)
	for _, line := range bannerLines {
		fmt.Fprintln(s.out, centerLine(banner.Render(line), runewidth.StringWidth(line), width))
	}
	fmt.Fprintln(s.out)

	info := []struct {
		token styles.CategoryToken
		text  string
	}{
		{styles.Cat2, "Version " + Version},
		{styles.Cat3, "Theme: " + theme.Name},
	}
	for _, line := range info {
		fmt.Fprintln(s.out, centerLine(theme.Category(line.token).Render(line.text), runewidth.StringWidth(line.text), width))
	}

	fmt.Fprintln(s.out)
	s.printCategory(styles.Cat4, "Quick Start:")
	hints := []string{
		"Type 'help' to see available commands",
		"Type 'theme' to switch themes",
		"Prefix with '!' to run external commands",
		"Type 'exit' to quit",
	}
	for _, hint := range hints {
		fmt.Fprintln(s.out, "  - "+hint)
	}
	fmt.Fprintln(s.out)
}

// centerLine pads a rendered line to the terminal width. contentWidth
// is the display width of the unstyled text, since ANSI escapes must
// not count toward padding.
func centerLine(rendered string, contentWidth, termWidth int) string {
	if contentWidth >= termWidth {
		return rendered
	}
	pad := (termWidth - contentWidth) / 2
	return strings.Repeat(" ", pad) + rendered
}

// terminalWidth returns the current terminal width, defaulting to 80
// if unavailable.
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return width
}
