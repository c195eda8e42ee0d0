// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package confstore

import (
	"github.com/spf13/cast"

	"github.com/MKhiriev/go-conf-keeper/confmap"
)

// Validator reports whether a candidate configuration is structurally valid
// for one top-level part of the defaults: the part must be present and its
// sub-key set must equal the defaulted sub-key set.
type Validator func(conf confmap.Map) bool

// Schema bundles default configuration values with validators derived from
// them. It replaces a process-wide defaults registry: callers build a Schema
// explicitly and pass it (or a plain mapping) to [New].
//
// The zero base holds `config.file` and `config.directory`, so every schema
// can resolve a configuration directory even before being extended.
type Schema struct {
	defaults   confmap.Map
	validators map[string]Validator
}

// NewSchema builds a Schema from the base defaults extended with the given
// mapping. defaults may be a confmap.Map or any string-keyed map; anything
// else fails with [ErrInvalidDefaults]. Pass an empty map for a bare schema.
func NewSchema(defaults any) (*Schema, error) {
	s := &Schema{
		defaults: confmap.Map{
			"config": map[string]any{
				"file":      "config",
				"directory": "./conf",
			},
		},
		validators: make(map[string]Validator),
	}

	if err := s.Extend(defaults); err != nil {
		return nil, err
	}

	return s, nil
}

// Extend merges the given mapping into the schema defaults. Returns
// [ErrInvalidDefaults] when the argument is not a mapping.
func (s *Schema) Extend(defaults any) error {
	m, ok := confmap.From(defaults)
	if !ok {
		return ErrInvalidDefaults
	}

	return s.defaults.Merge(m)
}

// DeriveValidators registers one equality-based [Validator] per current
// top-level defaults key. Derived validators are a latent API: the store
// never invokes them on its own.
func (s *Schema) DeriveValidators() {
	for _, part := range s.defaults.Keys() {
		want := subKeySet(s.defaults, part)

		s.validators[part] = func(conf confmap.Map) bool {
			if _, ok := conf[part]; !ok {
				return false
			}
			return equalKeySets(want, subKeySet(conf, part))
		}
	}
}

// Validator returns the validator registered for the given part.
func (s *Schema) Validator(part string) (Validator, bool) {
	v, ok := s.validators[part]
	return v, ok
}

// Validate runs the validator registered for part against conf. Parts without
// a registered validator report false.
func (s *Schema) Validate(part string, conf confmap.Map) bool {
	v, ok := s.validators[part]
	if !ok {
		return false
	}

	return v(conf)
}

// Sections returns the recognized section names from `config.sections`, or
// nil when the defaults do not declare any.
func (s *Schema) Sections() []string {
	v, ok := s.defaults.Get("config.sections")
	if !ok {
		return nil
	}

	return cast.ToStringSlice(v)
}

// Defaults returns a deep copy of the schema defaults. Stores snapshot this
// at construction, so later Extend calls never leak into an existing store.
func (s *Schema) Defaults() confmap.Map {
	return s.defaults.Clone()
}

// subKeySet collects the sub-keys of a top-level part; non-table parts have
// an empty sub-key set.
func subKeySet(m confmap.Map, part string) map[string]struct{} {
	set := make(map[string]struct{})
	table, ok := m[part].(map[string]any)
	if !ok {
		return set
	}

	for key := range table {
		set[key] = struct{}{}
	}

	return set
}

func equalKeySets(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for key := range a {
		if _, ok := b[key]; !ok {
			return false
		}
	}

	return true
}
