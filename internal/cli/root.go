// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-conf-keeper/confstore"
	"github.com/MKhiriev/go-conf-keeper/internal/logger"
)

// Exit codes returned by [Run].
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitUsageError   = 2
)

var rootCmd = &cobra.Command{
	Use:   "confkeeper",
	Short: "Section-oriented configuration store CLI",
	Long: "Confkeeper inspects, edits, and persists configuration stores kept as\n" +
		"one TOML file per section, layered over a defaults schema.",
}

// opts holds the flag values shared by every subcommand.
var opts struct {
	dir      string
	defaults string
	name     string
	logLevel string
}

// build metadata injected by the entry point (linker flags).
var buildInfo struct {
	version string
	date    string
	commit  string
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// Run wires up the command set and executes it, returning the process exit
// code. Build metadata is injected by the caller via linker flags.
func Run(buildVersion, buildDate, buildCommit string) int {
	buildInfo.version = buildVersion
	buildInfo.date = buildDate
	buildInfo.commit = buildCommit

	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		return ExitUsageError
	}

	rootCmd.PersistentFlags().StringVar(&opts.dir, "dir", settings.Dir, "configuration directory (default: schema config.directory)")
	rootCmd.PersistentFlags().StringVar(&opts.defaults, "defaults", settings.Defaults, "TOML file seeding the schema defaults")
	rootCmd.PersistentFlags().StringVar(&opts.name, "name", settings.Name, "store name")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", settings.LogLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print confkeeper build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "Build version: %s\n", orNA(buildInfo.version))
		fmt.Fprintf(os.Stdout, "Build date: %s\n", orNA(buildInfo.date))
		fmt.Fprintf(os.Stdout, "Build commit: %s\n", orNA(buildInfo.commit))
	},
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}

	return v
}

// openStore builds the schema from the optional defaults file and constructs
// the store the subcommands operate on.
func openStore(extra ...confstore.Option) (*confstore.Store, error) {
	defaults := make(map[string]any)
	if opts.defaults != "" {
		data, err := os.ReadFile(opts.defaults)
		if err != nil {
			return nil, fmt.Errorf("error reading defaults file %q: %w", opts.defaults, err)
		}
		if err := toml.Unmarshal(data, &defaults); err != nil {
			return nil, fmt.Errorf("error parsing defaults file %q: %w", opts.defaults, err)
		}
	}

	schema, err := confstore.NewSchema(defaults)
	if err != nil {
		return nil, err
	}

	level, err := zerolog.ParseLevel(opts.logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := logger.NewLogger("confkeeper").Level(level)

	options := append([]confstore.Option{confstore.WithLogger(log)}, extra...)

	return confstore.New(opts.name, schema, opts.dir, options...)
}

// fail reports a runtime error and flags the process exit code.
func fail(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
	exitCode = ExitRuntimeError
}
