// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package artifact_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/aibor/romfs/internal/artifact"
	"github.com/aibor/romfs/internal/romfs"
	"github.com/cavaliergopher/cpio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type archiveEntry struct {
	name string
	mode cpio.FileMode
	body []byte
}

func readArchive(t *testing.T, archive io.Reader) []archiveEntry {
	t.Helper()

	var entries []archiveEntry

	reader := cpio.NewReader(archive)

	for {
		hdr, err := reader.Next()
		if err == io.EOF {
			break
		}

		require.NoError(t, err)

		body, err := io.ReadAll(reader)
		require.NoError(t, err)

		entries = append(entries, archiveEntry{
			name: hdr.Name,
			mode: hdr.Mode,
			body: body,
		})
	}

	return entries
}

func TestCPIO_Emit(t *testing.T) {
	resources := []romfs.Resource{
		{Index: 0, Name: "a.bin", Data: []byte{1, 2}},
		{Index: 1, Name: "boot/bootloader.bin", Data: []byte{3}},
		{Index: 2, Name: "boot/x/y.bin", Data: []byte{4}},
		{Index: 3, Name: "/scripts/../z.lua", Data: []byte{5}},
	}

	var first, second bytes.Buffer

	emitter := artifact.CPIO{}

	require.NoError(t, emitter.Emit(&first, resources))
	require.NoError(t, emitter.Emit(&second, resources))

	assert.Equal(t, first.Bytes(), second.Bytes(), "deterministic")

	expected := []archiveEntry{
		{name: "a.bin", mode: cpio.TypeReg | 0o444, body: []byte{1, 2}},
		{name: "boot", mode: cpio.TypeDir | 0o555, body: []byte{}},
		{name: "boot/bootloader.bin", mode: cpio.TypeReg | 0o444, body: []byte{3}},
		{name: "boot/x", mode: cpio.TypeDir | 0o555, body: []byte{}},
		{name: "boot/x/y.bin", mode: cpio.TypeReg | 0o444, body: []byte{4}},
		{name: "z.lua", mode: cpio.TypeReg | 0o444, body: []byte{5}},
	}

	assert.Equal(t, expected, readArchive(t, &first))
}

func TestCPIO_EmitInvalidName(t *testing.T) {
	resources := []romfs.Resource{
		{Name: "/"},
	}

	err := (&artifact.CPIO{}).Emit(io.Discard, resources)
	require.ErrorIs(t, err, artifact.ErrInvalidName)
}

func TestCPIOWriter(t *testing.T) {
	tests := []struct {
		name         string
		run          func(w *artifact.CPIOWriter) error
		expectedErr  error
		assertHeader func(t assert.TestingT, hdr *cpio.Header)
		expectedBody []byte
	}{
		{
			name: "write directory",
			run: func(w *artifact.CPIOWriter) error {
				return w.WriteDirectory("test")
			},
			assertHeader: func(t assert.TestingT, hdr *cpio.Header) {
				assert.Equal(t, "test", hdr.Name, "name")
				assert.EqualValues(t, 0o555|cpio.TypeDir, hdr.Mode, "mode")
				assert.EqualValues(t, 0, hdr.Size, "size")
			},
		},
		{
			name: "write regular",
			run: func(w *artifact.CPIOWriter) error {
				return w.WriteRegular("test", []byte("content"))
			},
			assertHeader: func(t assert.TestingT, hdr *cpio.Header) {
				assert.Equal(t, "test", hdr.Name, "name")
				assert.EqualValues(t, 0o444|cpio.TypeReg, hdr.Mode, "mode")
				assert.EqualValues(t, 7, hdr.Size, "size")
			},
			expectedBody: []byte("content"),
		},
		{
			name: "write closed",
			run: func(w *artifact.CPIOWriter) error {
				err := w.Close()
				require.NoError(t, err)

				return w.WriteDirectory("test")
			},
			expectedErr: cpio.ErrWriteAfterClose,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var archive bytes.Buffer

			w := artifact.NewCPIOWriter(&archive)

			err := tt.run(w)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.assertHeader == nil {
				return
			}

			require.NoError(t, w.Close())

			r := cpio.NewReader(&archive)

			h, err := r.Next()
			require.NoError(t, err)

			tt.assertHeader(t, h)

			if tt.expectedBody == nil {
				return
			}

			body, err := io.ReadAll(r)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedBody, body)
		})
	}
}
