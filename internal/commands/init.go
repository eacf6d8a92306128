// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/m-spangenberg/qrgen/internal/config"
	"github.com/m-spangenberg/qrgen/internal/prompts"
)

func registerInitCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a " + config.DefaultFileName + " defaults file",
		Long: `Write a ` + config.DefaultFileName + ` file with the built-in render
defaults (size, error correction level, palette, output path). Generate
commands pick it up from the working directory; flags always override it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit()
		},
	}

	parent.AddCommand(cmd)
}

func runInit() error {
	if _, err := os.Stat(config.DefaultFileName); err == nil {
		return errors.New(config.DefaultFileName + " already exists")
	}

	cfg := config.New()
	if err := cfg.Save(config.DefaultFileName); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.DefaultFileName, err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Config", Value: config.DefaultFileName},
		{Label: "Size", Value: fmt.Sprintf("%d", cfg.Defaults.Size)},
		{Label: "Level", Value: cfg.Defaults.Level},
		{Label: "Palette", Value: cfg.Defaults.Palette},
	}, "Defaults written")
	return nil
}
