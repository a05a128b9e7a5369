// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aibor/romfs/internal/artifact"
)

// Output is a requested artifact.
type Output struct {
	Format artifact.Format
	Path   string
}

// String implements [fmt.Stringer].
func (o Output) String() string {
	return string(o.Format) + "=" + o.Path
}

// OutputList is a [flag.Value] collecting artifacts. Each value is
// "format=path" or just "path", in which case the format is derived from the
// file extension by [artifact.FormatForPath]. An empty value clears the list.
type OutputList []Output

func (o *OutputList) String() string {
	outputs := make([]string, len(*o))
	for idx, output := range *o {
		outputs[idx] = output.String()
	}

	return strings.Join(outputs, ",")
}

func (o *OutputList) Set(s string) error {
	if s == "" {
		*o = nil
		return nil
	}

	output := Output{
		Format: artifact.FormatForPath(s),
		Path:   s,
	}

	prefix, path, found := strings.Cut(s, "=")
	if found && isFormatName(prefix) {
		err := output.Format.UnmarshalText([]byte(prefix))
		if err != nil {
			return err //nolint:wrapcheck
		}

		output.Path = path
	}

	if output.Path == "" {
		return fmt.Errorf("output %s: %w", s, ErrEmptyFilePath)
	}

	*o = append(*o, output)

	return nil
}

func isFormatName(s string) bool {
	return s != "" && strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r)
	}) < 0
}
