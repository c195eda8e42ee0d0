// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package confmap

import (
	"reflect"
	"sort"
	"strings"
)

// FlattenSeparator joins key-path segments during flattening. The delta
// machinery relies on it being unlikely to occur inside real keys, where a
// plain dot could.
const FlattenSeparator = "$$"

// Flatten returns a flat mapping from sep-joined key paths to leaf values.
// Sequences and empty tables count as leaves.
func (m Map) Flatten(sep string) map[string]any {
	out := make(map[string]any)
	flattenInto(out, "", sep, map[string]any(m))

	return out
}

// Keypaths returns the sorted sep-joined paths of every leaf in the Map.
func (m Map) Keypaths(sep string) []string {
	flat := m.Flatten(sep)
	paths := make([]string, 0, len(flat))
	for path := range flat {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	return paths
}

// Diff returns the subtree of current whose leaves differ from defaults, or
// are absent from defaults entirely. The comparison runs on the flattened
// representation so values at any depth diff correctly.
func Diff(current, defaults Map) Map {
	flat := current.Flatten(FlattenSeparator)
	base := defaults.Flatten(FlattenSeparator)

	out := New()
	for path, value := range flat {
		if baseValue, ok := base[path]; ok && reflect.DeepEqual(value, baseValue) {
			continue
		}
		out.Set(strings.ReplaceAll(path, FlattenSeparator, pathSep), value)
	}

	return out
}

func flattenInto(out map[string]any, prefix, sep string, src map[string]any) {
	for key, value := range src {
		path := key
		if prefix != "" {
			path = prefix + sep + key
		}

		if table, ok := asTable(value); ok && len(table) > 0 {
			flattenInto(out, path, sep, table)
			continue
		}
		out[path] = value
	}
}
