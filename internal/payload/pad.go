// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package payload

import (
	"bytes"
	"fmt"
	"strings"
)

// PadRule describes a class of resources whose stored size must be a multiple
// of Alignment. Resources match by logical name suffix.
type PadRule struct {
	Suffix    string
	Alignment int
	Fill      byte
}

// Bootloader images must be 32 byte aligned in order to be programmable to
// the flash of STM32H7 chips.
var bootloaderRule = PadRule{
	Suffix:    "bootloader.bin",
	Alignment: 32,
	Fill:      0xff,
}

// DefaultPadRules returns the rules used if a [Transformer] has none set.
func DefaultPadRules() []PadRule {
	return []PadRule{bootloaderRule}
}

// Matches reports whether the rule applies to the given logical name.
func (r PadRule) Matches(name string) bool {
	return r.Suffix != "" && strings.HasSuffix(name, r.Suffix)
}

// Validate returns an error if the rule can not be applied.
func (r PadRule) Validate() error {
	if r.Alignment < 1 {
		return fmt.Errorf("%w: %d for suffix %q",
			ErrInvalidAlignment, r.Alignment, r.Suffix)
	}

	return nil
}

// Pad appends fill bytes to data up to the next multiple of alignment. It
// returns a new slice and the number of bytes added. The input is not
// modified. Data that is already aligned is returned as it is.
func Pad(data []byte, alignment int, fill byte) ([]byte, int) {
	if alignment < 2 {
		return data, 0
	}

	padding := (alignment - len(data)%alignment) % alignment
	if padding == 0 {
		return data, 0
	}

	padded := make([]byte, len(data), len(data)+padding)
	copy(padded, data)
	padded = append(padded, bytes.Repeat([]byte{fill}, padding)...)

	return padded, padding
}

func matchingRule(rules []PadRule, name string) (PadRule, bool) {
	for _, rule := range rules {
		if rule.Matches(name) {
			return rule, true
		}
	}

	return PadRule{}, false
}
