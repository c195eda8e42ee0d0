// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-conf-keeper/confstore"
)

var setMode string

var setCmd = &cobra.Command{
	Use:   "set <path> <value>",
	Short: "Set a value at a dotted key path and persist it",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore()
		if err != nil {
			fail(err)
			return
		}

		if err := store.Set(parseScalar(args[1]), args[0]); err != nil {
			fail(err)
			return
		}

		stored, err := store.Save(confstore.SaveMode(setMode))
		if err != nil {
			fail(err)
			return
		}

		fmt.Fprintf(os.Stdout, "%s = %s (%d section file(s) written)\n", args[0], args[1], stored)
	},
}

func init() {
	setCmd.Flags().StringVar(&setMode, "mode", string(confstore.SaveAsIs), "save mode: asis, full, or delta")
}

// parseScalar coerces a command-line literal into the narrowest
// TOML-compatible type: integer, float, bool, then string.
func parseScalar(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}

	return s
}
