// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package romfs

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateName is returned if the same logical name is used for
	// different source paths.
	ErrDuplicateName = errors.New("duplicate logical name")

	// ErrEmptyName is returned if a spec has no logical name.
	ErrEmptyName = errors.New("empty logical name")

	// ErrEmptySource is returned if a spec has no source path.
	ErrEmptySource = errors.New("empty source path")
)

// SourceReadError is returned if a source file can not be read. It aborts
// the whole build.
type SourceReadError struct {
	Path string
	Err  error
}

// Error implements the [error] interface.
func (e *SourceReadError) Error() string {
	return fmt.Sprintf("read source %s: %v", e.Path, e.Err)
}

// Is implements the [errors.Is] interface.
func (*SourceReadError) Is(other error) bool {
	_, ok := other.(*SourceReadError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *SourceReadError) Unwrap() error {
	return e.Err
}
