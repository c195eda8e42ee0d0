// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package confstore

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/MKhiriev/go-conf-keeper/confmap"
)

// SaveMode selects how [Store.Save] builds the data written to disk.
type SaveMode string

const (
	// SaveAsIs persists the in-memory store exactly as it stands.
	SaveAsIs SaveMode = "asis"
	// SaveFull persists the defaults with the in-memory store merged on top.
	SaveFull SaveMode = "full"
	// SaveDelta persists only the values that differ from the defaults and
	// removes override files for sections that no longer differ.
	SaveDelta SaveMode = "delta"
)

// Save writes the given sections (or the schema's `config.sections` when
// omitted) to `<dir>/<section>.toml` files according to mode, and returns the
// number of sections written. Deletions are not counted.
//
// The working copy never aliases the live store or defaults: both are deep
// copied before any mode-specific reduction.
func (s *Store) Save(mode SaveMode, sections ...string) (int, error) {
	switch mode {
	case SaveAsIs, SaveFull, SaveDelta:
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSaveMode, mode)
	}

	secs := s.resolveSections(sections)

	data := confmap.New()
	if mode == SaveFull {
		if err := data.Merge(s.defaults); err != nil {
			return 0, err
		}
	}
	if err := data.Merge(s.store); err != nil {
		return 0, err
	}
	if mode == SaveDelta {
		data = confmap.Diff(data, s.defaults)
	}

	stored := 0
	for _, sec := range secs {
		path := filepath.Join(s.dir, sec+sectionFileExt)

		if _, ok := data[sec]; ok {
			doc, err := toml.Marshal(map[string]any(data.Subset(sec)))
			if err != nil {
				return stored, fmt.Errorf("error encoding section %q: %w", sec, err)
			}
			if err := os.WriteFile(path, doc, 0o644); err != nil {
				return stored, fmt.Errorf("error writing config file %q: %w", path, err)
			}
			stored++
			s.log.Debug().Str("section", sec).Msg("configuration section stored")
			continue
		}

		// An empty delta means nothing differs from defaults, so no
		// override file should remain.
		if mode == SaveDelta {
			if _, err := os.Stat(path); err == nil {
				if err := os.Remove(path); err != nil {
					return stored, fmt.Errorf("error removing config file %q: %w", path, err)
				}
				s.log.Debug().Str("section", sec).Msg("stale configuration file removed")
			}
		}
	}

	return stored, nil
}
