// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package artifact

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat is returned if an artifact format is not known.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrInvalidName is returned if a resource name can not be represented in
	// an artifact.
	ErrInvalidName = errors.New("invalid resource name")

	// ErrDuplicateOutput is returned if the same path is given for more than
	// one artifact.
	ErrDuplicateOutput = errors.New("duplicate output path")
)

// WriteError is returned if an artifact can not be written.
type WriteError struct {
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("write artifact %s: %v", e.Path, e.Err)
}

// Is implements the [errors.Is] interface.
func (*WriteError) Is(other error) bool {
	_, ok := other.(*WriteError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *WriteError) Unwrap() error {
	return e.Err
}
