// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package checksum

import (
	"hash"
	"hash/crc32"
)

// Polynomial is the reversed representation of the IEEE polynomial.
const Polynomial = crc32.IEEE

// Size of a checksum in bytes.
const Size = crc32.Size

// The table is the same as for IEEE. Only the inversion on entry and exit
// is left out in [Update].
var table = crc32.MakeTable(Polynomial)

// Checksum returns the checksum of data.
func Checksum(data []byte) uint32 {
	return Update(0, data)
}

// Update returns the result of adding the bytes in data to the crc.
func Update(crc uint32, data []byte) uint32 {
	for _, b := range data {
		crc = table[byte(crc)^b] ^ (crc >> 8)
	}

	return crc
}

var _ hash.Hash32 = (*digest)(nil)

type digest struct {
	crc uint32
}

// New creates a new [hash.Hash32] computing the checksum. Its Sum method lays
// the value out in big-endian byte order.
func New() hash.Hash32 {
	return &digest{}
}

func (*digest) Size() int { return Size }

func (*digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.crc = 0 }

func (d *digest) Write(p []byte) (int, error) {
	d.crc = Update(d.crc, p)
	return len(p), nil
}

func (d *digest) Sum32() uint32 { return d.crc }

func (d *digest) Sum(in []byte) []byte {
	s := d.Sum32()
	return append(in, byte(s>>24), byte(s>>16), byte(s>>8), byte(s))
}
