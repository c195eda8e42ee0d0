// Package confstore provides a section-oriented configuration store backed by
// one TOML file per section.
//
// A [Schema] bundles default values with derived validators; a [Store] layers
// values loaded from `<section>.toml` files over a snapshot of those defaults
// and supports dotted key-path access, per-section accessors, typed getters,
// and as-is / full / delta persistence. Delta saves keep on disk only the
// values that differ from the defaults, removing override files that no
// longer differ.
//
// The main entry points are [NewSchema] and [New].
package confstore
