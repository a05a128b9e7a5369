// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package romfs

import (
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/aibor/romfs/internal/checksum"
	"github.com/aibor/romfs/internal/payload"
)

// Builder builds ROMFS tables.
type Builder struct {
	// Fsys the source files are read from. Leading slashes of source paths
	// are cut, so absolute paths can be used with os.DirFS("/").
	Fsys fs.FS
	// Transformer encodes the file contents.
	Transformer payload.Transformer
	// Ignore reports specs that are skipped silently. If nil, [Ignored] is
	// used.
	Ignore func(Spec) bool
}

// Build reads the given files from fsys and builds the resource table with
// the default pad rules.
func Build(fsys fs.FS, specs []Spec, mode payload.Mode) ([]Resource, error) {
	builder := Builder{
		Fsys:        fsys,
		Transformer: payload.NewTransformer(mode),
	}

	return builder.Build(specs)
}

// Build returns the resources for the given specs in table order.
//
// If any file fails, no resources are returned. Read failures are returned as
// [SourceReadError].
func (b *Builder) Build(specs []Spec) ([]Resource, error) {
	ignore := b.Ignore
	if ignore == nil {
		ignore = Ignored
	}

	normalized := Normalize(specs, ignore)

	if skipped := len(specs) - len(normalized); skipped > 0 {
		slog.Debug("Skipped ignored or duplicate files",
			slog.Int("count", skipped))
	}

	if err := Validate(normalized); err != nil {
		return nil, err
	}

	resources := make([]Resource, 0, len(normalized))

	for idx, spec := range normalized {
		resource, err := b.build(idx, spec)
		if err != nil {
			return nil, err
		}

		resources = append(resources, resource)
	}

	return resources, nil
}

func (b *Builder) build(idx int, spec Spec) (Resource, error) {
	raw, err := b.read(spec.Source)
	if err != nil {
		return Resource{}, err
	}

	encoded, err := b.Transformer.Transform(raw, spec.Name)
	if err != nil {
		return Resource{}, fmt.Errorf("encode %s: %w", spec.Name, err)
	}

	if encoded.Padding > 0 {
		slog.Info("Padded file",
			slog.String("name", spec.Name),
			slog.Int("padding", encoded.Padding),
			slog.Int("size", len(encoded.ChecksumInput)),
		)
	}

	resource := Resource{
		Index:    idx,
		Name:     spec.Name,
		Source:   spec.Source,
		Data:     encoded.Data,
		Checksum: checksum.Checksum(encoded.ChecksumInput),
		RawSize:  len(raw),
		Padding:  encoded.Padding,
	}

	slog.Debug("Embedding file",
		slog.Int("index", idx),
		slog.String("name", spec.Name),
		slog.String("source", spec.Source),
		slog.String("mode", b.Transformer.Mode.String()),
	)

	return resource, nil
}

func (b *Builder) read(source string) ([]byte, error) {
	// Cut leading / since fs.FS considers it invalid.
	path := strings.TrimPrefix(source, "/")

	content, err := fs.ReadFile(b.Fsys, path)
	if err != nil {
		return nil, &SourceReadError{Path: source, Err: err}
	}

	return content, nil
}
