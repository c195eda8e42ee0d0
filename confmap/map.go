// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package confmap

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// pathSep separates segments of a key path ("network.timeout").
const pathSep = "."

// Map is a nested string-keyed mapping. Nested tables are stored as
// map[string]any, sequences as []any, and integer values as int64, matching
// what the TOML decoder produces.
type Map map[string]any

// New returns an empty, ready-to-use Map.
func New() Map {
	return make(Map)
}

// From converts v into a Map. Any string-keyed map (Map, map[string]any,
// map[string]string, ...) is accepted and deep-normalized; for every other
// value From reports false.
func From(v any) (Map, bool) {
	if v == nil {
		return nil, false
	}

	table, ok := normalize(v).(map[string]any)
	if !ok {
		return nil, false
	}

	return Map(table), true
}

// Clone returns a deep copy of the Map. Mutating the copy never affects the
// original, including nested tables and sequences.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}

	return Map(normalize(map[string]any(m)).(map[string]any))
}

// Merge merges each source into m in order. Later sources win at the leaf
// level (empty values included), nested tables merge recursively, and
// sequences are replaced wholesale. Sources are cloned first so m never
// aliases their nested tables.
func (m Map) Merge(srcs ...Map) error {
	dst := map[string]any(m)
	for _, src := range srcs {
		mergeTables(dst, map[string]any(src.Clone()))
	}

	return nil
}

// mergeTables descends where both sides hold a table and overwrites
// everywhere else, so an empty table in src never wipes a populated one in
// dst but an empty leaf (false, 0, "") still wins.
func mergeTables(dst, src map[string]any) {
	for key, value := range src {
		srcTable, srcOK := asTable(value)
		dstTable, dstOK := asTable(dst[key])
		if srcOK && dstOK {
			mergeTables(dstTable, srcTable)
			continue
		}
		dst[key] = value
	}
}

// Get resolves a dotted key path and reports whether it exists.
// Get("network.timeout") walks the "network" table and returns its "timeout"
// entry.
func (m Map) Get(path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	segments := strings.Split(path, pathSep)
	current := map[string]any(m)
	for _, segment := range segments[:len(segments)-1] {
		next, ok := asTable(current[segment])
		if !ok {
			return nil, false
		}
		current = next
	}

	value, ok := current[segments[len(segments)-1]]
	return value, ok
}

// Set writes value at the dotted key path, creating intermediate tables as
// needed. An intermediate that exists but is not a table is replaced.
func (m Map) Set(path string, value any) {
	segments := strings.Split(path, pathSep)
	current := map[string]any(m)
	for _, segment := range segments[:len(segments)-1] {
		next, ok := asTable(current[segment])
		if !ok {
			next = make(map[string]any)
			current[segment] = next
		}
		current = next
	}

	current[segments[len(segments)-1]] = normalize(value)
}

// Delete removes the entry at the dotted key path and reports whether it
// existed. Intermediate tables emptied by the deletion are kept.
func (m Map) Delete(path string) bool {
	segments := strings.Split(path, pathSep)
	current := map[string]any(m)
	for _, segment := range segments[:len(segments)-1] {
		next, ok := asTable(current[segment])
		if !ok {
			return false
		}
		current = next
	}

	last := segments[len(segments)-1]
	if _, ok := current[last]; !ok {
		return false
	}

	delete(current, last)
	return true
}

// Subset returns a new Map holding deep copies of the given top-level keys.
// Keys absent from m are skipped.
func (m Map) Subset(keys ...string) Map {
	out := New()
	for _, key := range keys {
		if value, ok := m[key]; ok {
			out[key] = normalize(value)
		}
	}

	return out
}

// Keys returns the sorted top-level keys.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

// Len returns the number of top-level keys.
func (m Map) Len() int {
	return len(m)
}

// String renders the Map as a TOML document.
func (m Map) String() string {
	data, err := toml.Marshal(map[string]any(m))
	if err != nil {
		return fmt.Sprintf("%v", map[string]any(m))
	}

	return string(data)
}

// asTable reports v as a plain table when it is one.
func asTable(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case Map:
		return map[string]any(t), true
	default:
		return nil, false
	}
}

// normalize deep-copies v into the canonical in-memory representation:
// string-keyed maps become map[string]any, sequences []any, integers int64,
// and float32 widens to float64. []byte and non-string-keyed maps pass
// through untouched.
func normalize(v any) any {
	if v == nil {
		return nil
	}

	if b, ok := v.([]byte); ok {
		return b
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = normalize(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = normalize(rv.Index(i).Interface())
		}
		return out
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	default:
		return v
	}
}
