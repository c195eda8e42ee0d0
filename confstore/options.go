// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package confstore

import (
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-conf-keeper/internal/logger"
)

// Option customizes a [Store] during [New].
type Option func(*Store)

// WithLogger routes the store's log output through the given zerolog logger.
// The store adds its own "store" and "store_id" fields on top.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Store) {
		s.log = logger.Wrap(l)
	}
}

// WithConfirm replaces the interactive stdin prompt used by [Store.Reset].
// Tests typically inject a func literal answering a fixed way.
func WithConfirm(fn ConfirmFunc) Option {
	return func(s *Store) {
		if fn != nil {
			s.confirm = fn
		}
	}
}
