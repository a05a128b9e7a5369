// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aibor/romfs/internal/artifact"
	"github.com/aibor/romfs/internal/romfs"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// IO provides input and output details for the command.
type IO struct {
	Stdout io.Writer
	Stderr io.Writer
}

func collectSpecs(flags *flags) ([]romfs.Spec, error) {
	specs := flags.Specs

	for _, path := range flags.ListFiles {
		listSpecs, err := ReadSpecList(path)
		if err != nil {
			return nil, err
		}

		specs = append(specs, listSpecs...)
	}

	return specs, nil
}

func newOutputs(flags *flags) ([]artifact.Output, error) {
	cfg := flags.artifactConfig()
	outputs := make([]artifact.Output, 0, len(flags.Outputs))

	for _, output := range flags.Outputs {
		emitter, err := artifact.NewEmitter(output.Format, cfg)
		if err != nil {
			return nil, fmt.Errorf("output %s: %w", output.Path, err)
		}

		outputs = append(outputs, artifact.Output{
			Path:    output.Path,
			Emitter: emitter,
		})
	}

	return outputs, nil
}

func run(flags *flags) error {
	specs, err := collectSpecs(flags)
	if err != nil {
		return err
	}

	outputs, err := newOutputs(flags)
	if err != nil {
		return err
	}

	// Source paths are absolute, so the whole file system is the source.
	resources, err := romfs.Build(os.DirFS("/"), specs, flags.Mode)
	if err != nil {
		return fmt.Errorf("build: %w", err)
	}

	slog.Debug("Built resource table",
		slog.Int("resources", len(resources)),
		slog.String("mode", flags.Mode.String()),
	)

	// Must run before any writer starts, see [artifact.DefaultFileMode].
	perm := artifact.DefaultFileMode()

	err = artifact.WriteAll(outputs, resources, perm)
	if err != nil {
		return err //nolint:wrapcheck
	}

	for _, output := range flags.Outputs {
		slog.Info("Wrote artifact",
			slog.String("path", output.Path),
			slog.String("format", string(output.Format)),
		)
	}

	return nil
}

func handleRunError(err error, output io.Writer) int {
	if err == nil {
		return exitOK
	}

	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return exitOK
	}

	// Parse errors are printed by the flag set already.
	if errors.Is(err, &ParseArgsError{}) {
		return exitUsage
	}

	var readErr *romfs.SourceReadError
	if errors.As(err, &readErr) {
		fmt.Fprintf(output, "Error [%s]: failed to embed %s: %v\n",
			name, readErr.Path, readErr.Err)

		return exitFailure
	}

	fmt.Fprintf(output, "Error [%s]: %v\n", name, err)

	return exitFailure
}

// Run is the main entry point for the CLI command.
func Run(args []string, cfg IO) int {
	flags, err := parseArgs(args, cfg.Stderr)
	if err != nil {
		return handleRunError(err, cfg.Stderr)
	}

	setupLogging(cfg.Stderr, flags.Debug)

	if flags.Version {
		err := printVersionInformation(cfg.Stdout)
		return handleRunError(err, cfg.Stderr)
	}

	err = run(flags)

	return handleRunError(err, cfg.Stderr)
}
