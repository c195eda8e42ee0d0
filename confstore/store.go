// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package confstore

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cast"

	"github.com/MKhiriev/go-conf-keeper/confmap"
	"github.com/MKhiriev/go-conf-keeper/internal/logger"
)

const (
	defaultConfigDir = "./conf"
	sectionFileExt   = ".toml"
)

// ConfirmFunc answers an interactive yes/no question, such as whether a
// section file may be deleted during [Store.Reset].
type ConfirmFunc func(prompt string) bool

// Accessor is a per-section lookup closure generated at store construction.
// An accessor for section "network" forwards to Get("network", path...).
type Accessor func(path ...string) any

// Store owns a nested key-value structure loaded from per-section TOML files,
// layered at read time over a snapshot of schema defaults.
//
// A Store is not safe for concurrent mutation; two processes writing the same
// section file are last-writer-wins at the filesystem level.
type Store struct {
	name      string
	dir       string
	schema    *Schema
	defaults  confmap.Map
	store     confmap.Map
	sections  []string
	accessors map[string]Accessor
	confirm   ConfirmFunc
	log       *logger.Logger
}

// New constructs a Store named name from the given defaults and configuration
// directory, then runs an initial [Store.Load] and generates the per-section
// accessors.
//
// defaults may be a *[Schema] or any string-keyed mapping; anything else
// fails with [ErrInvalidDefaults]. The effective directory is configDir when
// non-empty, else the defaults' `config.directory`, else "./conf", always
// made absolute relative to the working directory. A missing directory is
// created rather than reported as an error.
func New(name string, defaults any, configDir string, opts ...Option) (*Store, error) {
	schema, err := schemaFrom(defaults)
	if err != nil {
		return nil, err
	}

	s := &Store{
		name:     name,
		schema:   schema,
		defaults: schema.Defaults(),
		store:    confmap.New(),
		sections: schema.Sections(),
		confirm:  stdinConfirm,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.NewLogger("confstore")
	}
	s.log = logger.Wrap(s.log.With().
		Str("store", name).
		Str("store_id", newStoreID()).
		Logger())

	dir := configDir
	if dir == "" {
		if v, ok := s.defaults.Get("config.directory"); ok {
			dir = cast.ToString(v)
		}
	}
	if dir == "" {
		dir = defaultConfigDir
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("error resolving config directory %q: %w", dir, err)
	}
	s.dir = abs

	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		s.log.Warn().Str("dir", dir).Msg("configuration folder does not exist")
		if err := os.MkdirAll(s.dir, 0o755); err != nil {
			return nil, fmt.Errorf("error creating config directory %q: %w", s.dir, err)
		}
		s.log.Info().Str("dir", dir).Msg("configuration folder created")
	}

	if _, err := s.Load(); err != nil {
		return nil, err
	}

	s.generateAccessors()

	return s, nil
}

// Load empties the in-memory store and repopulates it from the given sections
// (or the schema's `config.sections` when omitted). Returns the store for
// chaining.
func (s *Store) Load(sections ...string) (*Store, error) {
	s.store = confmap.New()

	return s.Update(sections...)
}

// Reload is a pure alias for [Store.Load].
func (s *Store) Reload(sections ...string) (*Store, error) {
	return s.Load(sections...)
}

// Update scans the configuration directory for `<section>.toml` files of the
// given sections (or the schema's `config.sections` when omitted) and merges
// every parsed document, in directory-listing order, into the in-memory
// store. A malformed file aborts the whole merge with a *[ParseError].
func (s *Store) Update(sections ...string) (*Store, error) {
	secs := s.resolveSections(sections)
	if len(secs) == 0 {
		return s, nil
	}

	quoted := make([]string, len(secs))
	for i, sec := range secs {
		quoted[i] = regexp.QuoteMeta(sec)
	}
	pattern := regexp.MustCompile(`^(` + strings.Join(quoted, "|") + `)\.toml$`)

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("error scanning config directory %q: %w", s.dir, err)
	}

	var docs []confmap.Map
	for _, entry := range entries {
		if entry.IsDir() || !pattern.MatchString(entry.Name()) {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("error reading config file %q: %w", path, err)
		}

		raw := make(map[string]any)
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, &ParseError{File: path, Err: err}
		}

		doc, _ := confmap.From(raw)
		docs = append(docs, doc)
		s.log.Debug().Str("file", entry.Name()).Msg("configuration file parsed")
	}

	if len(docs) > 0 {
		if err := s.store.Merge(docs...); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Reset walks the recognized sections and deletes each section file after an
// interactive confirmation (see [WithConfirm]). Sections whose file is absent
// or was confirmed-deleted count as cleared; a declined deletion does not.
// When every section is cleared the in-memory store is emptied, otherwise the
// store reloads from whatever files remain.
func (s *Store) Reset() (*Store, error) {
	cleared := make(map[string]bool, len(s.sections))
	for _, sec := range s.sections {
		file := sec + sectionFileExt
		path := filepath.Join(s.dir, file)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			cleared[sec] = true
			continue
		}

		if !s.confirm(fmt.Sprintf("%s already exists. Are you sure that you want to delete it?", file)) {
			cleared[sec] = false
			continue
		}

		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("error deleting config file %q: %w", path, err)
		}
		cleared[sec] = true
	}

	for _, done := range cleared {
		if done {
			continue
		}

		if _, err := s.Reload(); err != nil {
			return nil, err
		}
		s.log.Debug().Msg("configuration has been partly deleted")

		return s, nil
	}

	s.store = confmap.New()
	s.log.Info().Msg("configuration has been fully deleted")

	return s, nil
}

// Get resolves a key path against the in-memory store, falling back to the
// defaults snapshot, and finally to nil, the absence sentinel.
//
// With no arguments Get returns the entire in-memory store. Multiple segments
// are joined with dots, so Get("a", "b", "c") and Get("a.b.c") are
// equivalent.
func (s *Store) Get(path ...string) any {
	if len(path) == 0 {
		return s.store
	}

	keypath := strings.Join(path, ".")
	if v, ok := s.store.Get(keypath); ok {
		return v
	}
	if v, ok := s.defaults.Get(keypath); ok {
		return v
	}

	return nil
}

// Find is an alias for [Store.Get].
func (s *Store) Find(path ...string) any {
	return s.Get(path...)
}

// GetDefault resolves a key path against the in-memory store only, returning
// fallback when the path is absent. Unlike [Store.Get] it never consults the
// defaults snapshot.
func (s *Store) GetDefault(fallback any, path ...string) any {
	if len(path) == 0 {
		return s.store
	}

	if v, ok := s.store.Get(strings.Join(path, ".")); ok {
		return v
	}

	return fallback
}

// Section forwards to Get(name, path...): Section("network") is equivalent
// to Get("network").
func (s *Store) Section(name string, path ...string) any {
	return s.Get(append([]string{name}, path...)...)
}

// Accessor returns the lookup closure generated for the given section at
// construction time. Accessors are scoped to this instance; constructing
// another store never redefines them.
func (s *Store) Accessor(name string) (Accessor, bool) {
	a, ok := s.accessors[name]
	return a, ok
}

// Set writes value at the key path formed by joining the given segments with
// dots, creating intermediate tables as needed. Fails with
// [ErrInvalidArguments] when no segment is given.
func (s *Store) Set(value any, path ...string) error {
	if len(path) == 0 {
		return ErrInvalidArguments
	}

	s.store.Set(strings.Join(path, "."), value)

	return nil
}

// Value looks up a key path directly in the in-memory store (not defaults,
// not a merged view) with a comma-ok result for callers storing literal nils.
func (s *Store) Value(path string) (any, bool) {
	return s.store.Get(path)
}

// SetValue writes directly into the in-memory store.
func (s *Store) SetValue(path string, value any) {
	s.store.Set(path, value)
}

// DeleteValue removes a key path from the in-memory store and reports whether
// it existed.
func (s *Store) DeleteValue(path string) bool {
	return s.store.Delete(path)
}

// Keys returns the sorted top-level keys of the in-memory store.
func (s *Store) Keys() []string {
	return s.store.Keys()
}

// Len returns the number of top-level keys in the in-memory store.
func (s *Store) Len() int {
	return s.store.Len()
}

// String renders the in-memory store as a TOML document.
func (s *Store) String() string {
	return s.store.String()
}

// Name returns the cosmetic store name given at construction.
func (s *Store) Name() string {
	return s.name
}

// Dir returns the absolute configuration directory.
func (s *Store) Dir() string {
	return s.dir
}

// Sections returns a copy of the recognized section names.
func (s *Store) Sections() []string {
	out := make([]string, len(s.sections))
	copy(out, s.sections)

	return out
}

func (s *Store) resolveSections(given []string) []string {
	if len(given) > 0 {
		return given
	}

	return s.sections
}

func (s *Store) generateAccessors() {
	names := s.sections
	if len(names) == 0 {
		names = s.defaults.Keys()
	}

	s.accessors = make(map[string]Accessor, len(names))
	for _, name := range names {
		section := name
		s.accessors[section] = func(path ...string) any {
			return s.Get(append([]string{section}, path...)...)
		}
	}
}

// schemaFrom accepts either a ready *Schema or a raw mapping to build one
// from.
func schemaFrom(defaults any) (*Schema, error) {
	if schema, ok := defaults.(*Schema); ok {
		return schema, nil
	}

	return NewSchema(defaults)
}

// newStoreID returns a UUIDv7 for log correlation, falling back to a random
// UUID when the clock-based generator fails.
func newStoreID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// stdinConfirm is the default [ConfirmFunc]: a blocking y/N prompt on
// standard input accepting only an exact "Y". All prompts share one reader,
// so piped answers queued ahead of time are not lost between questions.
var stdinConfirm = readerConfirm(os.Stdin)

// readerConfirm builds a [ConfirmFunc] over a single buffered reader reused
// across prompts.
func readerConfirm(in io.Reader) ConfirmFunc {
	reader := bufio.NewReader(in)

	return func(prompt string) bool {
		fmt.Fprintf(os.Stdout, "%s Y/[N] ", prompt)

		line, err := reader.ReadString('\n')
		if err != nil {
			return false
		}

		return strings.TrimSpace(line) == "Y"
	}
}
