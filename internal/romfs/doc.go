// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package romfs builds the resource table of a ROMFS: a sorted list of named,
// encoded and checksummed payloads that firmware mounts as read-only file
// system.
//
// The table is a pure function of the set of [Spec]s, the source file
// contents and the [payload.Mode]. The order of the input does not matter.
// Specs are deduplicated and sorted by logical name and source path, and each
// resource's index is its position in that order.
package romfs
