// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package artifact

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

const createMode = 0o666

// DefaultFileMode returns the permissions a newly created file gets with the
// current umask.
//
// The umask can only be read by setting it, so this must not run
// concurrently with file creation.
func DefaultFileMode() fs.FileMode {
	mask := unix.Umask(0)
	unix.Umask(mask)

	return createMode &^ fs.FileMode(mask) //nolint:gosec
}
