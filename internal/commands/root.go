// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/m-spangenberg/qrgen/internal/payload"
	"github.com/m-spangenberg/qrgen/internal/payload/applink"
	"github.com/m-spangenberg/qrgen/internal/payload/email"
	"github.com/m-spangenberg/qrgen/internal/payload/event"
	"github.com/m-spangenberg/qrgen/internal/payload/geo"
	"github.com/m-spangenberg/qrgen/internal/payload/imagelink"
	"github.com/m-spangenberg/qrgen/internal/payload/mecard"
	"github.com/m-spangenberg/qrgen/internal/payload/payment"
	"github.com/m-spangenberg/qrgen/internal/payload/phone"
	"github.com/m-spangenberg/qrgen/internal/payload/plaintext"
	"github.com/m-spangenberg/qrgen/internal/payload/sms"
	"github.com/m-spangenberg/qrgen/internal/payload/vcard"
	"github.com/m-spangenberg/qrgen/internal/payload/weburl"
	"github.com/m-spangenberg/qrgen/internal/payload/wifi"
)

// NewRegister returns the full set of payload format encoders.
func NewRegister() payload.Register {
	r := payload.Register{}
	for _, e := range []payload.Encoder{
		vcard.New(),
		mecard.New(),
		weburl.New(),
		plaintext.New(),
		imagelink.New(),
		email.New(),
		phone.New(),
		sms.New(),
		wifi.New(),
		event.New(),
		geo.New(),
		applink.New(),
		payment.New(),
	} {
		r.Add(e)
	}
	return r
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(encoders payload.Register) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "qrgen",
		Short: "Generate styled QR codes for structured payloads",
	}

	registerGenerateCmd(rootCmd, encoders)
	registerDecodeCmd(rootCmd)
	registerFormatsCmd(rootCmd, encoders)
	registerStylesCmd(rootCmd)
	registerInitCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}
