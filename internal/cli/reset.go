// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-conf-keeper/confstore"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete section files after per-file confirmation",
	Run: func(cmd *cobra.Command, args []string) {
		confirm := confstore.ConfirmFunc(confirmPrompt)
		if resetYes {
			confirm = func(string) bool { return true }
		}

		store, err := openStore(confstore.WithConfirm(confirm))
		if err != nil {
			fail(err)
			return
		}

		if _, err := store.Reset(); err != nil {
			fail(err)
			return
		}

		if store.Len() == 0 {
			fmt.Fprintln(os.Stdout, "configuration fully deleted")
			return
		}
		fmt.Fprintln(os.Stdout, "configuration partly deleted; declined sections were reloaded")
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "delete without prompting")
}
