// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package artifact

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/aibor/romfs/internal/romfs"
	"github.com/cavaliergopher/cpio"
)

const (
	dirLinks  = 2
	fileLinks = 1

	dirMode  = 0o555
	fileMode = 0o444
)

// CPIO emits a newc CPIO archive with each resource as regular file named by
// its logical name. The file content is the encoded payload, so compressed
// resources stay gzip compressed. Parent directories are added before their
// first file. All headers have fixed ownership and timestamps.
type CPIO struct{}

// Emit implements [Emitter].
func (*CPIO) Emit(w io.Writer, resources []romfs.Resource) error {
	writer := NewCPIOWriter(w)

	dirs := make(map[string]bool)

	for _, resource := range resources {
		name, err := archiveName(resource.Name)
		if err != nil {
			return err
		}

		for _, dir := range parentDirs(name) {
			if dirs[dir] {
				continue
			}

			if err := writer.WriteDirectory(dir); err != nil {
				return err
			}

			dirs[dir] = true
		}

		if err := writer.WriteRegular(name, resource.Data); err != nil {
			return err
		}
	}

	return writer.Close()
}

// archiveName returns the cleaned relative name for the archive.
func archiveName(name string) (string, error) {
	cleaned := strings.TrimPrefix(path.Clean("/"+name), "/")
	if cleaned == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return cleaned, nil
}

// parentDirs returns all parent directories of name, outermost first.
func parentDirs(name string) []string {
	var dirs []string

	for idx := range len(name) {
		if name[idx] == '/' {
			dirs = append(dirs, name[:idx])
		}
	}

	return dirs
}

// CPIOWriter writes entries into a [cpio.Writer].
type CPIOWriter struct {
	cpioWriter *cpio.Writer
}

// NewCPIOWriter creates a new archive writer.
func NewCPIOWriter(w io.Writer) *CPIOWriter {
	return &CPIOWriter{cpio.NewWriter(w)}
}

// Close writes the trailer. Flush is called by the underlying closer.
func (w *CPIOWriter) Close() error {
	err := w.cpioWriter.Close()
	if err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}

// writeHeader writes the cpio header.
func (w *CPIOWriter) writeHeader(hdr *cpio.Header) error {
	if err := w.cpioWriter.WriteHeader(hdr); err != nil {
		return fmt.Errorf("write header for %s: %w", hdr.Name, err)
	}

	return nil
}

// WriteDirectory adds a directory entry for the given path to the archive.
func (w *CPIOWriter) WriteDirectory(path string) error {
	header := &cpio.Header{
		Name:  path,
		Mode:  cpio.TypeDir | dirMode,
		Links: dirLinks,
	}

	return w.writeHeader(header)
}

// WriteRegular adds a read-only regular file with the given content.
func (w *CPIOWriter) WriteRegular(path string, data []byte) error {
	header := &cpio.Header{
		Name:  path,
		Mode:  cpio.TypeReg | fileMode,
		Links: fileLinks,
		Size:  int64(len(data)),
	}

	if err := w.writeHeader(header); err != nil {
		return err
	}

	if _, err := w.cpioWriter.Write(data); err != nil {
		return fmt.Errorf("write body for %s: %w", path, err)
	}

	return nil
}
