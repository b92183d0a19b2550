// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Argument parsing and usage output.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Version information (can be overridden at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	// CmdShell starts the interactive shell (the default).
	CmdShell Command = iota
	// CmdVersion prints version information.
	CmdVersion
	// CmdThemes lists available themes.
	CmdThemes
	// CmdHelp prints usage.
	CmdHelp
	// CmdUnknown is an unrecognized subcommand; Args.Unknown holds it.
	CmdUnknown
)

// Args holds parsed CLI arguments.
type Args struct {
	// Theme overrides the configured theme for this run.
	Theme string

	// TimeoutSecs overrides the configured command timeout. 0 means
	// use the config value.
	TimeoutSecs int

	// NoWelcome skips the welcome screen.
	NoWelcome bool

	// Quiet disables output streaming during command execution.
	Quiet bool

	// ConfigPath overrides the config file location.
	ConfigPath string

	// Unknown holds the unrecognized subcommand for CmdUnknown.
	Unknown string
}

// Parse processes os.Args and returns the command to run.
func Parse() (Command, Args) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses an explicit argument slice.
func ParseArgs(raw []string) (Command, Args) {
	cmd := CmdShell
	var args Args

	i := 0
	// Optional leading subcommand
	if len(raw) > 0 && !strings.HasPrefix(raw[0], "-") {
		switch strings.ToLower(raw[0]) {
		case "shell":
			cmd = CmdShell
		case "version", "--version", "-v":
			cmd = CmdVersion
		case "themes":
			cmd = CmdThemes
		case "help":
			cmd = CmdHelp
		default:
			args.Unknown = raw[0]
			return CmdUnknown, args
		}
		i = 1
	}

	for ; i < len(raw); i++ {
		arg := raw[i]
		name, value, hasValue := splitFlag(arg)

		switch name {
		case "--help", "-h":
			return CmdHelp, args
		case "--version", "-v":
			return CmdVersion, args
		case "--theme":
			args.Theme = flagValue(raw, &i, value, hasValue)
		case "--config":
			args.ConfigPath = flagValue(raw, &i, value, hasValue)
		case "--timeout":
			secs, err := strconv.Atoi(flagValue(raw, &i, value, hasValue))
			if err == nil && secs > 0 {
				args.TimeoutSecs = secs
			}
		case "--no-welcome":
			args.NoWelcome = true
		case "--quiet", "-q":
			args.Quiet = true
		default:
			args.Unknown = arg
			return CmdUnknown, args
		}
	}

	return cmd, args
}

// splitFlag separates "--flag=value" into its parts.
func splitFlag(arg string) (name, value string, hasValue bool) {
	if idx := strings.IndexByte(arg, '='); idx >= 0 && strings.HasPrefix(arg, "--") {
		return arg[:idx], arg[idx+1:], true
	}
	return arg, "", false
}

// flagValue returns the flag's value, consuming the next argument when
// the "--flag value" form was used.
func flagValue(raw []string, i *int, value string, hasValue bool) string {
	if hasValue {
		return value
	}
	if *i+1 < len(raw) && !strings.HasPrefix(raw[*i+1], "-") {
		*i++
		return raw[*i]
	}
	return ""
}

// =============================================================================
// USAGE
// =============================================================================

// PrintUsage writes usage information to stdout.
func PrintUsage() {
	fmt.Print(`patsh - an interactive pattern shell

Usage:
  patsh [command] [flags]

Commands:
  shell       Start the interactive shell (default)
  themes      List available themes
  version     Print version information
  help        Show this help

Flags:
  --theme <name>     Use a theme for this run
  --timeout <secs>   Command timeout in seconds
  --config <path>    Use an alternate config file
  --no-welcome       Skip the welcome screen
  -q, --quiet        Do not stream command output
  -h, --help         Show this help
`)
}

// PrintVersion writes version information to stdout.
func PrintVersion() {
	fmt.Printf("patsh %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
}
