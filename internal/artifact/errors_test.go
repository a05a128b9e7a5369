// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package artifact_test

import (
	"io/fs"
	"testing"

	"github.com/aibor/romfs/internal/artifact"
	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	err := error(&artifact.WriteError{
		Path: "out.h",
		Err:  fs.ErrPermission,
	})

	//nolint:testifylint
	assert.ErrorIs(t, err, &artifact.WriteError{})
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.NotErrorIs(t, assert.AnError, &artifact.WriteError{})
	assert.EqualError(t, err, "write artifact out.h: permission denied")
}
