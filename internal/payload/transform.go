// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package payload

import (
	"fmt"
)

// Payload is the result of a [Transformer.Transform].
type Payload struct {
	// Data is what gets embedded.
	Data []byte
	// ChecksumInput is the padded content before encoding. The firmware
	// checksum is computed over it.
	ChecksumInput []byte
	// Padding is the number of fill bytes appended.
	Padding int
}

// Transformer encodes raw file content for embedding.
//
// The zero value compresses and applies [DefaultPadRules].
type Transformer struct {
	Mode     Mode
	PadRules []PadRule
}

// NewTransformer creates a [Transformer] for the given mode with the
// default pad rules.
func NewTransformer(mode Mode) Transformer {
	return Transformer{
		Mode:     mode,
		PadRules: DefaultPadRules(),
	}
}

func (t Transformer) padRules() []PadRule {
	if t.PadRules == nil {
		return DefaultPadRules()
	}

	return t.PadRules
}

// Transform pads raw according to the first pad rule matching name and encodes
// it according to the mode. raw is not modified.
func (t Transformer) Transform(raw []byte, name string) (Payload, error) {
	var payload Payload

	content := raw

	if rule, found := matchingRule(t.padRules(), name); found {
		if err := rule.Validate(); err != nil {
			return Payload{}, err
		}

		content, payload.Padding = Pad(raw, rule.Alignment, rule.Fill)
	}

	payload.ChecksumInput = content

	switch t.Mode {
	case ModeUncompressed:
		payload.Data = Terminate(content)
	case ModeCompressed:
		data, err := Compress(content)
		if err != nil {
			return Payload{}, fmt.Errorf("compress: %w", err)
		}

		payload.Data = data
	default:
		return Payload{}, fmt.Errorf("%w: %d", ErrUnknownMode, t.Mode)
	}

	return payload, nil
}

// Terminate returns data with a single NUL byte appended, unless it already
// ends with one. Empty data results in a single NUL byte. data is not
// modified.
func Terminate(data []byte) []byte {
	if len(data) > 0 && data[len(data)-1] == 0 {
		return data
	}

	terminated := make([]byte, len(data), len(data)+1)
	copy(terminated, data)

	return append(terminated, 0)
}
