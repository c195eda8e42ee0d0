// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-conf-keeper/confstore"
)

var saveMode string

var saveCmd = &cobra.Command{
	Use:   "save [sections...]",
	Short: "Persist the loaded configuration to section files",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore()
		if err != nil {
			fail(err)
			return
		}

		stored, err := store.Save(confstore.SaveMode(saveMode), args...)
		if err != nil {
			fail(err)
			return
		}

		fmt.Fprintf(os.Stdout, "%d section file(s) written to %s\n", stored, store.Dir())
	},
}

func init() {
	saveCmd.Flags().StringVar(&saveMode, "mode", string(confstore.SaveAsIs), "save mode: asis, full, or delta")
}
