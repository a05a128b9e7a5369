// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package artifact

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aibor/romfs/internal/romfs"
)

const (
	// DefaultArrayPrefix is the default name prefix of the byte arrays.
	DefaultArrayPrefix = "resource_"
	// DefaultTableDecl is the default declaration of the lookup table.
	DefaultTableDecl = "const struct romfs_embedded_file romfs_files[]"

	headerComment = "// generated embedded files for ROMFS\n\n"
	bytesPerLine  = 16
)

// Header emits C source. For each resource a byte array named by index is
// declared, followed by a table with one row per resource:
//
//	{ "name", size, 0xchecksum, resource_N },
//
// The size is the size of the encoded payload.
type Header struct {
	// ArrayPrefix is prepended to the resource index to name the arrays.
	// If empty, [DefaultArrayPrefix] is used.
	ArrayPrefix string
	// Attribute is put in front of each array declaration, e.g. a macro
	// that places the data in a specific linker section.
	Attribute string
	// TableDecl is the declaration of the table. If empty,
	// [DefaultTableDecl] is used.
	TableDecl string
}

// ArrayName returns the name of the array for the resource with the given
// index.
func (h *Header) ArrayName(index int) string {
	prefix := h.ArrayPrefix
	if prefix == "" {
		prefix = DefaultArrayPrefix
	}

	return prefix + strconv.Itoa(index)
}

func (h *Header) tableDecl() string {
	if h.TableDecl == "" {
		return DefaultTableDecl
	}

	return h.TableDecl
}

// Emit implements [Emitter].
func (h *Header) Emit(w io.Writer, resources []romfs.Resource) error {
	bw := bufio.NewWriter(w)

	// Errors are sticky in [bufio.Writer] and returned by Flush.
	_, _ = bw.WriteString(headerComment)

	for _, resource := range resources {
		h.writeArray(bw, resource)
	}

	fmt.Fprintf(bw, "%s = {\n", h.tableDecl())

	for _, resource := range resources {
		fmt.Fprintf(bw, "{ %s, %d, 0x%08x, %s },\n",
			QuoteC(resource.Name),
			resource.Size(),
			resource.Checksum,
			h.ArrayName(resource.Index),
		)
	}

	_, _ = bw.WriteString("};\n")

	err := bw.Flush()
	if err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	return nil
}

func (h *Header) writeArray(bw *bufio.Writer, resource romfs.Resource) {
	if h.Attribute != "" {
		_, _ = bw.WriteString(h.Attribute + " ")
	}

	fmt.Fprintf(bw, "static const uint8_t %s[] = {\n", h.ArrayName(resource.Index))

	var line []byte

	for idx, b := range resource.Data {
		line = strconv.AppendUint(line, uint64(b), 10)
		line = append(line, ',')

		if (idx+1)%bytesPerLine == 0 || idx == len(resource.Data)-1 {
			_, _ = bw.Write(line)
			_ = bw.WriteByte('\n')
			line = line[:0]
		}
	}

	_, _ = bw.WriteString("};\n\n")
}

// QuoteC returns s as double-quoted C string literal. Characters outside of
// printable ASCII are written as 3 digit octal escapes.
func QuoteC(s string) string {
	var builder strings.Builder

	builder.WriteByte('"')

	for idx := range len(s) {
		c := s[idx]

		switch {
		case c == '"' || c == '\\':
			builder.WriteByte('\\')
			builder.WriteByte(c)
		case c == '?':
			// Prevent trigraphs.
			builder.WriteString(`\?`)
		case c < 0x20 || c > 0x7e:
			fmt.Fprintf(&builder, "\\%03o", c)
		default:
			builder.WriteByte(c)
		}
	}

	builder.WriteByte('"')

	return builder.String()
}
