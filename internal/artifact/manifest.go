// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package artifact

import (
	"fmt"
	"io"

	"github.com/aibor/romfs/internal/payload"
	"github.com/aibor/romfs/internal/romfs"
	"gopkg.in/yaml.v3"
)

const yamlIndent = 2

// Manifest emits a YAML document describing the resource table.
type Manifest struct {
	Mode payload.Mode
}

// ManifestDocument is the document written by [Manifest].
type ManifestDocument struct {
	Mode      payload.Mode    `yaml:"mode"`
	Resources []ManifestEntry `yaml:"resources"`
}

// ManifestEntry describes a single resource.
type ManifestEntry struct {
	Index    int    `yaml:"index"`
	Name     string `yaml:"name"`
	Source   string `yaml:"source"`
	RawSize  int    `yaml:"raw_size"`
	Padding  int    `yaml:"padding"`
	Size     int    `yaml:"size"`
	Checksum string `yaml:"checksum"`
}

// Emit implements [Emitter].
func (m *Manifest) Emit(w io.Writer, resources []romfs.Resource) error {
	doc := ManifestDocument{
		Mode:      m.Mode,
		Resources: make([]ManifestEntry, 0, len(resources)),
	}

	for _, resource := range resources {
		doc.Resources = append(doc.Resources, ManifestEntry{
			Index:    resource.Index,
			Name:     resource.Name,
			Source:   resource.Source,
			RawSize:  resource.RawSize,
			Padding:  resource.Padding,
			Size:     resource.Size(),
			Checksum: fmt.Sprintf("0x%08x", resource.Checksum),
		})
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(yamlIndent)

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}
