// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package payload

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/gzip"
)

// osUnknown is the gzip header OS value for "unknown". It is fixed so the
// output does not depend on the host.
const osUnknown = 255

// Compress compresses data with gzip at best compression. The gzip header
// has no name, no comment and a zero modification time, so the same input
// always results in the same output.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("new writer: %w", err)
	}

	zw.Header = gzip.Header{
		ModTime: time.Time{},
		OS:      osUnknown,
	}

	if _, err := zw.Write(data); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress reverses [Compress].
func Decompress(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("new reader: %w", err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	return out, nil
}
