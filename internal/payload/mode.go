// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package payload

const (
	// ModeCompressed compresses payloads with gzip. It is the default.
	ModeCompressed Mode = iota
	// ModeUncompressed embeds payloads as they are with a terminating NUL
	// byte.
	ModeUncompressed
)

var modeNames = map[Mode]string{
	ModeCompressed:   "compressed",
	ModeUncompressed: "uncompressed",
}

// Mode is the encoding mode for payloads.
type Mode int

// String implements [fmt.Stringer].
func (m Mode) String() string {
	return modeNames[m]
}

// MarshalText implements [encoding.TextMarshaler].
func (m Mode) MarshalText() ([]byte, error) {
	s := m.String()
	if s == "" {
		return nil, ErrUnknownMode
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Mode) UnmarshalText(text []byte) error {
	for mode, name := range modeNames {
		if name == string(text) {
			*m = mode
			return nil
		}
	}

	return ErrUnknownMode
}
