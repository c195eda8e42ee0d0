// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List recognized sections and their override files",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openStore()
		if err != nil {
			fail(err)
			return
		}

		sections := store.Sections()
		if len(sections) == 0 {
			fmt.Fprintln(os.Stdout, helpStyle.Render("(no sections declared in config.sections)"))
			return
		}

		for _, section := range sections {
			status := helpStyle.Render("defaults only")
			if _, err := os.Stat(filepath.Join(store.Dir(), section+".toml")); err == nil {
				status = "override on disk"
			}
			fmt.Fprintf(os.Stdout, "%s\t%s\n", section, status)
		}
	},
}
