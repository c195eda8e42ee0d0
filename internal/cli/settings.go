// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings carries process-level CLI configuration resolved from the
// environment. Flags registered in [Run] use these values as their defaults,
// so explicit flags always win.
type Settings struct {
	// Dir is the configuration directory holding the section files.
	// Env: CONFKEEPER_DIR
	Dir string `env:"DIR"`

	// Defaults is the path of a TOML file seeding the schema defaults.
	// Env: CONFKEEPER_DEFAULTS
	Defaults string `env:"DEFAULTS"`

	// Name is the cosmetic store name shown in output and log fields.
	// Env: CONFKEEPER_NAME
	Name string `env:"NAME" envDefault:"configuration"`

	// LogLevel is the zerolog level for CLI diagnostics ("debug", "info",
	// "warn", ...).
	// Env: CONFKEEPER_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func loadSettings() (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Prefix: "CONFKEEPER_"}); err != nil {
		return Settings{}, fmt.Errorf("error parsing environment settings: %w", err)
	}

	return s, nil
}
