// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aibor/romfs/internal/romfs"
	"gopkg.in/yaml.v3"
)

type specList struct {
	Resources []romfs.Spec `yaml:"resources"`
}

// ReadSpecList reads resource specs from the YAML list file at path.
//
// Relative source paths are resolved against the directory of the list file.
func ReadSpecList(path string) ([]romfs.Spec, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read list: %w", err)
	}
	defer file.Close()

	specs, err := ParseSpecList(file, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", path, err)
	}

	return specs, nil
}

// ParseSpecList parses a YAML resource list:
//
//	resources:
//	  - name: scripts/init.lua
//	    source: lua/init.lua
//	  - source: bootloader.bin
//
// If name is omitted, the source path is used as name. Relative source paths
// are joined with baseDir. An empty document results in no specs.
func ParseSpecList(reader io.Reader, baseDir string) ([]romfs.Spec, error) {
	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true)

	var list specList

	err := decoder.Decode(&list)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("decode: %w", err)
	}

	specs := make([]romfs.Spec, 0, len(list.Resources))

	for idx, spec := range list.Resources {
		if spec.Source == "" {
			return nil, fmt.Errorf("resource %d: %w", idx, romfs.ErrEmptySource)
		}

		if spec.Name == "" {
			spec.Name = spec.Source
		}

		if !filepath.IsAbs(spec.Source) {
			spec.Source = filepath.Join(baseDir, spec.Source)
		}

		specs = append(specs, spec)
	}

	return specs, nil
}

// ParseResourceArg parses a positional resource argument. It is either
// "name=source" or just "source", in which case the source path is used as
// name as well. The source path is made absolute.
func ParseResourceArg(arg string) (romfs.Spec, error) {
	name, source, found := strings.Cut(arg, "=")
	if !found {
		source = name
	}

	if name == "" || source == "" {
		return romfs.Spec{}, fmt.Errorf("%w: %q", ErrInvalidResourceArg, arg)
	}

	path, err := AbsoluteFilePath(source)
	if err != nil {
		return romfs.Spec{}, err
	}

	return romfs.Spec{Name: name, Source: path}, nil
}
