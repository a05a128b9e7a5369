// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package artifact

import (
	"bufio"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aibor/romfs/internal/romfs"
	"golang.org/x/sync/errgroup"
)

// Output is a single artifact to write.
type Output struct {
	Path    string
	Emitter Emitter
}

// WriteAll writes all outputs concurrently. Each output is written with
// [WriteFile]. The resources must not be modified while WriteAll runs.
func WriteAll(outputs []Output, resources []romfs.Resource, perm fs.FileMode) error {
	seen := make(map[string]bool, len(outputs))

	for _, output := range outputs {
		abs, err := filepath.Abs(output.Path)
		if err != nil {
			return &WriteError{Path: output.Path, Err: err}
		}

		if seen[abs] {
			return fmt.Errorf("%w: %s", ErrDuplicateOutput, output.Path)
		}

		seen[abs] = true
	}

	var group errgroup.Group

	for _, output := range outputs {
		group.Go(func() error {
			return WriteFile(output.Path, output.Emitter, resources, perm)
		})
	}

	return group.Wait() //nolint:wrapcheck
}

// WriteFile emits the resources into the file at path.
//
// The content is written into a temporary file in the same directory first.
// Only if everything has been written successfully, the temporary file is
// renamed to path. On failure, the temporary file is removed and an existing
// file at path is left untouched. Errors are returned as [WriteError].
func WriteFile(
	path string,
	emitter Emitter,
	resources []romfs.Resource,
	perm fs.FileMode,
) error {
	err := writeFile(path, emitter, resources, perm)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	slog.Debug("Artifact written",
		slog.String("path", path),
		slog.Int("resources", len(resources)),
	)

	return nil
}

func writeFile(
	path string,
	emitter Emitter,
	resources []romfs.Resource,
	perm fs.FileMode,
) error {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	file, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpPath := file.Name()

	err = writeTo(file, emitter, resources, perm)
	if err != nil {
		_ = file.Close()
		_ = os.Remove(tmpPath)

		return err
	}

	err = file.Close()
	if err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close: %w", err)
	}

	err = os.Rename(tmpPath, path)
	if err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename: %w", err)
	}

	return nil
}

func writeTo(
	file *os.File,
	emitter Emitter,
	resources []romfs.Resource,
	perm fs.FileMode,
) error {
	writer := bufio.NewWriter(file)

	err := emitter.Emit(writer, resources)
	if err != nil {
		return fmt.Errorf("emit: %w", err)
	}

	err = writer.Flush()
	if err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	err = file.Sync()
	if err != nil {
		return fmt.Errorf("sync: %w", err)
	}

	err = file.Chmod(perm)
	if err != nil {
		return fmt.Errorf("chmod: %w", err)
	}

	return nil
}
