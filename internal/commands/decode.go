// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m-spangenberg/qrgen/internal/prompts"
	"github.com/m-spangenberg/qrgen/internal/scan"
)

func registerDecodeCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "decode <file>",
		Short: "Decode the payload of a QR code image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, args[0])
		},
	}

	parent.AddCommand(cmd)
}

func runDecode(cmd *cobra.Command, path string) error {
	text, err := scan.DecodeFile(path)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)

	if scan.IsVCard(text) {
		contact, err := scan.ParseVCard(text)
		if err != nil {
			// The raw payload already printed; a malformed card is not fatal.
			return nil
		}
		fields := make([]prompts.ResultField, 0, len(contact))
		for _, f := range contact {
			fields = append(fields, prompts.ResultField{Label: f.Name, Value: f.Value})
		}
		prompts.PrintResult(fields, "")
	}
	return nil
}
