// patsh - An interactive pattern shell.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/jeranaias/patsh/internal/cli"
	"github.com/jeranaias/patsh/internal/config"
	"github.com/jeranaias/patsh/internal/shell"
	"github.com/jeranaias/patsh/internal/ui/styles"
)

// Version information (set at build time via -ldflags)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdShell:
		runShell(args)
	case cli.CmdThemes:
		if err := listThemes(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdHelp:
		cli.PrintUsage()
	case cli.CmdUnknown:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args.Unknown)
		if suggestion := cli.SuggestCommand(args.Unknown); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr, "Run 'patsh help' for usage.")
		os.Exit(1)
	}
}

// runShell starts the interactive shell, applying CLI overrides on top
// of the loaded config.
func runShell(args cli.Args) {
	cfg, err := loadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sh, err := shell.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer sh.Close()

	// Ctrl+C during a running command interrupts the command, not the
	// shell; liner handles Ctrl+C at the prompt itself.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := sh.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// listThemes prints the built-in and user themes.
func listThemes(args cli.Args) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	registry := styles.NewRegistry()
	if err := config.InitializeThemes(cfg, registry); err != nil {
		return err
	}

	names := registry.List()
	current := registry.Current().Name
	for _, name := range names {
		marker := "  "
		if name == current {
			marker = "* "
		}
		fmt.Println(marker + name)
	}
	return nil
}

// loadConfig loads the config file and applies CLI overrides.
func loadConfig(args cli.Args) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if args.Theme != "" {
		cfg.Theme = args.Theme
	}
	if args.TimeoutSecs > 0 {
		cfg.CommandTimeoutSecs = args.TimeoutSecs
	}
	if args.NoWelcome {
		cfg.Welcome = false
	}
	if args.Quiet {
		cfg.StreamOutput = false
	}

	return cfg, nil
}
