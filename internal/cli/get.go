// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-conf-keeper/confmap"
)

var getCopy bool

var getCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Print the value at a dotted key path",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore()
		if err != nil {
			fail(err)
			return
		}

		rendered, ok := renderValue(store.Get(args[0]))
		if !ok {
			fmt.Fprintln(os.Stdout, helpStyle.Render("(not set)"))
			return
		}

		fmt.Fprintln(os.Stdout, rendered)

		if getCopy {
			if err := clipboard.WriteAll(rendered); err != nil {
				fail(fmt.Errorf("error copying value to clipboard: %w", err))
			}
		}
	},
}

func init() {
	getCmd.Flags().BoolVar(&getCopy, "copy", false, "copy the printed value to the clipboard")
}

// renderValue formats a looked-up value for output: tables render as TOML,
// scalars and sequences via fmt. The second result is false for the absence
// sentinel.
func renderValue(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case confmap.Map:
		return t.String(), true
	case map[string]any:
		return confmap.Map(t).String(), true
	default:
		return fmt.Sprintf("%v", t), true
	}
}
