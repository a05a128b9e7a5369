// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry point for romfs-embed. It handles
// flag parsing, resource list files, error handling, and output handling.
package cmd
