// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package artifact writes ROMFS resource tables into output artifacts.
//
// The main artifact is C source with one byte array per resource and a
// lookup table, see [Header]. A [CPIO] archive of the encoded resources and a
// YAML [Manifest] can be written for inspection on the host.
//
// Artifacts are written with [WriteFile] into a temporary file first and
// renamed into place only if writing succeeded. So a failed run never leaves
// a truncated artifact behind.
package artifact
