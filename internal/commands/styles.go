// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/m-spangenberg/qrgen/internal/styles"
)

func registerStylesCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List predefined color palettes",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range styles.Names() {
				p, _ := styles.Lookup(name)
				fmt.Fprintf(w, "%s\t%s on %s\n", name, p.Foreground, p.Background)
			}
			return w.Flush()
		},
	}

	parent.AddCommand(cmd)
}
