// cmd/glfwbridge/console_windows.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"os"

	"github.com/apenwarr/fixconsole"
)

// attachConsole hooks stdout and stderr up to the parent's console when
// we were launched from one; GUI subsystem binaries don't get one otherwise.
func attachConsole() {
	if err := fixconsole.FixConsoleIfNeeded(); err != nil {
		fmt.Fprintf(os.Stderr, "FixConsoleIfNeeded: %v\n", err)
	}
}
