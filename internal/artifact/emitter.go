// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package artifact

import (
	"io"

	"github.com/aibor/romfs/internal/romfs"
)

// Emitter serializes a resource table. Resources are emitted in the given
// order in a single pass.
type Emitter interface {
	Emit(w io.Writer, resources []romfs.Resource) error
}

var (
	_ Emitter = (*Header)(nil)
	_ Emitter = (*CPIO)(nil)
	_ Emitter = (*Manifest)(nil)
)
