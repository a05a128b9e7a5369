// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package payload

import "errors"

var (
	// ErrUnknownMode is returned if an encoding mode is not known.
	ErrUnknownMode = errors.New("unknown mode")

	// ErrInvalidAlignment is returned if a [PadRule] has an alignment less
	// than 1.
	ErrInvalidAlignment = errors.New("invalid alignment")
)
