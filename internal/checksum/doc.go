// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package checksum implements the 32-bit cyclic redundancy check the firmware
// uses to verify embedded ROMFS files.
//
// It uses the reflected IEEE polynomial 0xEDB88320 like [hash/crc32], but
// starts with an accumulator of 0 and does not invert the result. So the
// values differ from [hash/crc32.ChecksumIEEE] for all non-empty inputs and
// must not be mixed up.
package checksum
