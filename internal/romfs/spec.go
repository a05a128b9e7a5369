// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package romfs

import (
	"cmp"
	"fmt"
	"path"
	"slices"
)

// ignoredNames are base names of host artifacts that are never embedded.
var ignoredNames = []string{".DS_Store"}

// Spec describes a single file to embed.
type Spec struct {
	// Name is the logical name the firmware looks the file up by.
	Name string `yaml:"name"`
	// Source is the path the content is read from at build time.
	Source string `yaml:"source"`
}

// String implements [fmt.Stringer].
func (s Spec) String() string {
	return s.Name + ":" + s.Source
}

// Compare orders specs by name first and source path second.
func (s Spec) Compare(other Spec) int {
	return cmp.Or(
		cmp.Compare(s.Name, other.Name),
		cmp.Compare(s.Source, other.Source),
	)
}

// Ignored reports whether the spec refers to a known junk file, like the
// Finder metadata on macOS.
func Ignored(spec Spec) bool {
	return slices.Contains(ignoredNames, path.Base(spec.Name)) ||
		slices.Contains(ignoredNames, path.Base(spec.Source))
}

// Normalize returns the specs that are not ignored, deduplicated and sorted.
// The input is not modified.
func Normalize(specs []Spec, ignore func(Spec) bool) []Spec {
	normalized := make([]Spec, 0, len(specs))

	for _, spec := range specs {
		if ignore != nil && ignore(spec) {
			continue
		}

		normalized = append(normalized, spec)
	}

	slices.SortFunc(normalized, Spec.Compare)

	return slices.Compact(normalized)
}

// Validate checks that all specs have a name and a source and that no
// logical name is used for more than one source. specs must be normalized.
func Validate(specs []Spec) error {
	for idx, spec := range specs {
		if spec.Name == "" {
			return fmt.Errorf("%w: source %s", ErrEmptyName, spec.Source)
		}

		if spec.Source == "" {
			return fmt.Errorf("%w: name %s", ErrEmptySource, spec.Name)
		}

		if idx > 0 && specs[idx-1].Name == spec.Name {
			return fmt.Errorf("%w: %s (%s, %s)", ErrDuplicateName,
				spec.Name, specs[idx-1].Source, spec.Source)
		}
	}

	return nil
}
