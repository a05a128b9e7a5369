// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package romfs

// Resource is a single encoded entry of the ROMFS table.
type Resource struct {
	// Index is the position in the sorted table. Emitters derive array
	// names from it.
	Index int
	// Name is the logical name.
	Name string
	// Source is the path the content was read from.
	Source string
	// Data is the encoded payload that is embedded.
	Data []byte
	// Checksum is computed over the padded content before encoding.
	Checksum uint32
	// RawSize is the size of the source file.
	RawSize int
	// Padding is the number of fill bytes added to the source content.
	Padding int
}

// Size returns the size of the encoded payload.
func (r Resource) Size() int {
	return len(r.Data)
}
