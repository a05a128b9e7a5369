// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package artifact

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aibor/romfs/internal/payload"
)

const (
	// FormatHeader is C source, see [Header].
	FormatHeader Format = "header"
	// FormatCPIO is a CPIO archive, see [CPIO].
	FormatCPIO Format = "cpio"
	// FormatManifest is a YAML document, see [Manifest].
	FormatManifest Format = "manifest"
)

var extensionFormats = map[string]Format{
	".h":    FormatHeader,
	".hpp":  FormatHeader,
	".c":    FormatHeader,
	".cpp":  FormatHeader,
	".cpio": FormatCPIO,
	".yaml": FormatManifest,
	".yml":  FormatManifest,
}

// Format is an artifact format.
type Format string

func (f *Format) isKnown() bool {
	knownFormats := []Format{
		FormatHeader,
		FormatCPIO,
		FormatManifest,
	}

	return slices.Contains(knownFormats, *f)
}

// String implements [fmt.Stringer].
func (f *Format) String() string {
	if !f.isKnown() {
		return ""
	}

	return string(*f)
}

// MarshalText implements [encoding.TextMarshaler].
func (f Format) MarshalText() ([]byte, error) {
	s := f.String()
	if s == "" {
		return nil, ErrUnknownFormat
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Format) UnmarshalText(text []byte) error {
	format := Format(text)

	if !format.isKnown() {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, text)
	}

	*f = format

	return nil
}

// FormatForPath returns the format matching the extension of path. Unknown
// extensions result in [FormatHeader].
func FormatForPath(path string) Format {
	ext := strings.ToLower(filepath.Ext(path))

	format, exists := extensionFormats[ext]
	if !exists {
		return FormatHeader
	}

	return format
}

// Config holds the emitter settings for all formats.
type Config struct {
	Header Header
	Mode   payload.Mode
}

// NewEmitter returns the [Emitter] for the given format.
//
//nolint:ireturn
func NewEmitter(format Format, cfg Config) (Emitter, error) {
	switch format {
	case FormatHeader:
		header := cfg.Header
		return &header, nil
	case FormatCPIO:
		return &CPIO{}, nil
	case FormatManifest:
		return &Manifest{Mode: cfg.Mode}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, string(format))
	}
}
