// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package payload_test

import (
	"bytes"
	"testing"

	"github.com/aibor/romfs/internal/payload"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminate(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected []byte
	}{
		{
			name:     "empty",
			input:    []byte{},
			expected: []byte{0},
		},
		{
			name:     "not terminated",
			input:    []byte("abc"),
			expected: []byte("abc\x00"),
		},
		{
			name:     "terminated",
			input:    []byte("abc\x00"),
			expected: []byte("abc\x00"),
		},
		{
			name:     "zero inside",
			input:    []byte("a\x00c"),
			expected: []byte("a\x00c\x00"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := bytes.Clone(tt.input)

			assert.Equal(t, tt.expected, payload.Terminate(input))
			assert.Equal(t, tt.input, input, "input untouched")
		})
	}
}

func TestCompress(t *testing.T) {
	data := bytes.Repeat([]byte("ROMFS resource "), 64)

	first, err := payload.Compress(data)
	require.NoError(t, err)

	second, err := payload.Compress(bytes.Clone(data))
	require.NoError(t, err)

	assert.Equal(t, first, second, "deterministic")
	assert.Less(t, len(first), len(data), "compressed")

	// Header: magic, deflate, no flags, zero mtime.
	require.Greater(t, len(first), 10)
	assert.Equal(t, []byte{0x1f, 0x8b, 0x08, 0x00, 0, 0, 0, 0}, first[:8])
	assert.Equal(t, byte(255), first[9], "os")

	decompressed, err := payload.Decompress(first)
	require.NoError(t, err)
	assert.Equal(t, data, decompressed)
}

func TestDecompress_Invalid(t *testing.T) {
	_, err := payload.Decompress([]byte("not gzip"))
	require.Error(t, err)
}

func TestTransformer_Transform(t *testing.T) {
	ones := func(n int) []byte { return bytes.Repeat([]byte{0x01}, n) }
	padded := func(n, pad int) []byte {
		return append(ones(n), bytes.Repeat([]byte{0xff}, pad)...)
	}

	tests := []struct {
		name                  string
		mode                  payload.Mode
		logicalName           string
		raw                   []byte
		expectedChecksumInput []byte
		expectedPadding       int
		expectedData          []byte
	}{
		{
			name:                  "uncompressed plain",
			mode:                  payload.ModeUncompressed,
			logicalName:           "a.bin",
			raw:                   []byte{1, 2, 3, 4},
			expectedChecksumInput: []byte{1, 2, 3, 4},
			expectedData:          []byte{1, 2, 3, 4, 0},
		},
		{
			name:                  "uncompressed already terminated",
			mode:                  payload.ModeUncompressed,
			logicalName:           "a.txt",
			raw:                   []byte("x\x00"),
			expectedChecksumInput: []byte("x\x00"),
			expectedData:          []byte("x\x00"),
		},
		{
			name:                  "uncompressed bootloader",
			mode:                  payload.ModeUncompressed,
			logicalName:           "boot/bootloader.bin",
			raw:                   ones(33),
			expectedChecksumInput: padded(33, 31),
			expectedPadding:       31,
			expectedData:          append(padded(33, 31), 0),
		},
		{
			name:                  "uncompressed aligned bootloader",
			mode:                  payload.ModeUncompressed,
			logicalName:           "bootloader.bin",
			raw:                   ones(64),
			expectedChecksumInput: ones(64),
			expectedData:          append(ones(64), 0),
		},
		{
			name:                  "non bootloader never padded",
			mode:                  payload.ModeUncompressed,
			logicalName:           "bootloader.bin.txt",
			raw:                   ones(33),
			expectedChecksumInput: ones(33),
			expectedData:          append(ones(33), 0),
		},
		{
			name:                  "compressed bootloader",
			mode:                  payload.ModeCompressed,
			logicalName:           "boot/bootloader.bin",
			raw:                   ones(33),
			expectedChecksumInput: padded(33, 31),
			expectedPadding:       31,
		},
		{
			name:                  "compressed plain",
			mode:                  payload.ModeCompressed,
			logicalName:           "a.bin",
			raw:                   []byte{1, 2, 3, 4},
			expectedChecksumInput: []byte{1, 2, 3, 4},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := bytes.Clone(tt.raw)

			actual, err := payload.NewTransformer(tt.mode).Transform(raw, tt.logicalName)
			require.NoError(t, err)

			assert.Equal(t, tt.expectedChecksumInput, actual.ChecksumInput, "checksum input")
			assert.Equal(t, tt.expectedPadding, actual.Padding, "padding")
			assert.Equal(t, tt.raw, raw, "raw untouched")

			if tt.mode == payload.ModeUncompressed {
				assert.Equal(t, tt.expectedData, actual.Data, "data")
				return
			}

			decompressed, err := payload.Decompress(actual.Data)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedChecksumInput, decompressed, "data")
		})
	}
}

func TestTransformer_ZeroValue(t *testing.T) {
	actual, err := payload.Transformer{}.Transform([]byte{1}, "bootloader.bin")
	require.NoError(t, err)

	assert.Equal(t, 31, actual.Padding, "default pad rules")

	_, err = payload.Decompress(actual.Data)
	require.NoError(t, err, "compressed by default")
}

func TestTransformer_CustomRules(t *testing.T) {
	transformer := payload.Transformer{
		Mode: payload.ModeUncompressed,
		PadRules: []payload.PadRule{
			{Suffix: ".img", Alignment: 4, Fill: 0xaa},
		},
	}

	actual, err := transformer.Transform([]byte{1}, "flash.img")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0xaa, 0xaa, 0xaa}, actual.ChecksumInput)

	actual, err = transformer.Transform([]byte{1}, "bootloader.bin")
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, actual.ChecksumInput, "rules replace defaults")

	transformer.PadRules[0].Alignment = 0
	_, err = transformer.Transform([]byte{1}, "flash.img")
	require.ErrorIs(t, err, payload.ErrInvalidAlignment)
}

func TestTransformer_UnknownMode(t *testing.T) {
	_, err := payload.Transformer{Mode: 7}.Transform([]byte{1}, "a")
	require.ErrorIs(t, err, payload.ErrUnknownMode)
}
