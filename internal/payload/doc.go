// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package payload turns raw file content into the bytes that are embedded into
// the ROMFS.
//
// Resources whose names match a [PadRule] are padded first. The padded bytes
// are what the firmware checksum is computed over. Afterwards, the payload is
// either gzip compressed or, in uncompressed mode, NUL terminated. Both
// encodings are a pure function of the input bytes.
package payload
