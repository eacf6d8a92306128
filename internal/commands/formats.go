// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/m-spangenberg/qrgen/internal/payload"
)

func registerFormatsCmd(parent *cobra.Command, encoders payload.Register) {
	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List supported payload formats",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, name := range encoders.Available() {
				fmt.Fprintf(w, "%s\t%s\n", name, encoders[name].Title())
			}
			return w.Flush()
		},
	}

	parent.AddCommand(cmd)
}
