// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Command romfs-embed generates C source embedding files as ROMFS resources.
package main

import (
	"os"

	"github.com/aibor/romfs/internal/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args[1:], cmd.IO{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}))
}
