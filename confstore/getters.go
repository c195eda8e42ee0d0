// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package confstore

import (
	"time"

	"github.com/spf13/cast"
)

// Typed getters resolve like [Store.Get] (store first, then defaults) and
// coerce the result with spf13/cast. Absent paths yield the type's zero
// value.

// GetString returns the value at the key path as a string.
func (s *Store) GetString(path ...string) string {
	return cast.ToString(s.Get(path...))
}

// GetInt returns the value at the key path as an int.
func (s *Store) GetInt(path ...string) int {
	return cast.ToInt(s.Get(path...))
}

// GetBool returns the value at the key path as a bool.
func (s *Store) GetBool(path ...string) bool {
	return cast.ToBool(s.Get(path...))
}

// GetFloat returns the value at the key path as a float64.
func (s *Store) GetFloat(path ...string) float64 {
	return cast.ToFloat64(s.Get(path...))
}

// GetStringSlice returns the value at the key path as a []string.
func (s *Store) GetStringSlice(path ...string) []string {
	return cast.ToStringSlice(s.Get(path...))
}

// GetDuration returns the value at the key path as a time.Duration, parsing
// strings like "30s" and treating bare numbers as nanoseconds.
func (s *Store) GetDuration(path ...string) time.Duration {
	return cast.ToDuration(s.Get(path...))
}
