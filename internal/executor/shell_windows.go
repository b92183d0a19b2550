// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build windows

package executor

import "os/exec"

// shellCommand builds a command that runs through cmd.exe, enabling
// pipes, redirects and other shell features.
func shellCommand(command string) *exec.Cmd {
	return exec.Command("cmd", "/C", command)
}
