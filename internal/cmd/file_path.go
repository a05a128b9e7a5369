// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
)

type FilePathList []string

func (f *FilePathList) String() string {
	return strings.Join(*f, ",")
}

// Set adds the comma separated paths as absolute paths. An empty value clears
// the list.
func (f *FilePathList) Set(s string) error {
	if s == "" {
		*f = nil
		return nil
	}

	for _, e := range strings.Split(s, ",") {
		path, err := AbsoluteFilePath(e)
		if err != nil {
			return err
		}

		*f = append(*f, path)
	}

	return nil
}

// AbsoluteFilePath returns the absolute path as resolved by [filepath.Abs].
//
// It returns [ErrEmptyFilePath] if the given path is empty.
func AbsoluteFilePath(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyFilePath
	}

	path, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}

	return path, nil
}
