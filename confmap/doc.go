// Package confmap implements the nested key-value structure underlying the
// configuration store.
//
// A [Map] is a string-keyed tree of scalars, sequences, and nested tables.
// Values are normalized on entry (integers widen to int64, nested maps become
// map[string]any) so that values decoded from TOML documents compare equal to
// values supplied in code. The package defines the merge, flatten, and diff
// operations the store is built on, keeping the data model independent of any
// one serialization library.
package confmap
