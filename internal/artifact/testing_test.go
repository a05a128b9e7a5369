// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package artifact_test

import (
	"io"

	"github.com/aibor/romfs/internal/romfs"
	"github.com/stretchr/testify/mock"
)

type MockEmitter struct {
	mock.Mock
}

func (m *MockEmitter) Emit(w io.Writer, resources []romfs.Resource) error {
	args := m.Called(w, resources)

	return args.Error(0)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrShortWrite
}

func testResources() []romfs.Resource {
	seq := make([]byte, 17)
	for idx := range seq {
		seq[idx] = byte(idx)
	}

	return []romfs.Resource{
		{
			Index:    0,
			Name:     "a.bin",
			Source:   "/src/a.bin",
			Data:     []byte{1, 2, 3, 4, 0},
			Checksum: 0x977824d1,
			RawSize:  4,
		},
		{
			Index:    1,
			Name:     `dir/"q".bin`,
			Source:   "/src/q.bin",
			Data:     seq,
			Checksum: 0xdeadbeef,
			RawSize:  1,
			Padding:  15,
		},
	}
}
