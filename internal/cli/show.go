// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the loaded configuration as TOML",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore()
		if err != nil {
			fail(err)
			return
		}

		fmt.Fprintln(os.Stdout, titleStyle.Render(store.Name()))
		if store.Len() == 0 {
			fmt.Fprintln(os.Stdout, helpStyle.Render("(no values loaded, defaults apply)"))
			return
		}
		fmt.Fprint(os.Stdout, store.String())
	},
}
