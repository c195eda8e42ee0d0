// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package confstore

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDefaults indicates that the defaults supplied to [New] or
	// [NewSchema] are not a mapping type.
	ErrInvalidDefaults = errors.New("default config must be a mapping")
	// ErrInvalidArguments indicates that [Store.Set] was called without a
	// key path (setting a value requires at least a key and a value).
	ErrInvalidArguments = errors.New("setting a config value requires a key path and a value")
	// ErrUnknownSaveMode indicates an unrecognized mode passed to
	// [Store.Save].
	ErrUnknownSaveMode = errors.New("unknown save mode")
)

// ParseError reports a section file that could not be parsed as TOML. The
// whole update aborts on the first malformed file.
type ParseError struct {
	// File is the path of the offending section file.
	File string
	// Err is the underlying decoder error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing config file %s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
