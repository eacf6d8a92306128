// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QRGen Contributors

package commands

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/m-spangenberg/qrgen/internal/config"
	"github.com/m-spangenberg/qrgen/internal/payload"
	"github.com/m-spangenberg/qrgen/internal/prompts"
	"github.com/m-spangenberg/qrgen/internal/render"
	"github.com/m-spangenberg/qrgen/internal/styles"
)

type generateOptions struct {
	output      string
	payloadOnly bool
	noInput     bool

	size    int
	level   string
	palette string
	fg      string
	bg      string

	shape          string
	transparent    bool
	gradientStart  string
	gradientEnd    string
	gradientAngle  float64
	gradientTarget string

	border       int
	borderColor  string
	cornerRadius int
	header       string
	footer       string
	headerAlign  string
	footerAlign  string
	logo         string
	logoScale    float64
	logoOpacity  float64
	logoClip     string
}

func registerGenerateCmd(parent *cobra.Command, encoders payload.Register) {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a QR code for a payload format",
		Long: fmt.Sprintf(`Generate a QR code for a payload format.

Available formats: %s`, strings.Join(encoders.Available(), ", ")),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if err := prompts.RunFormatSelect(&name, encoders); err != nil {
				return err
			}
			enc, err := encoders.Get(name)
			if err != nil {
				return err
			}
			return runGenerate(cmd, enc, &generateOptions{})
		},
	}

	for _, name := range encoders.Available() {
		cmd.AddCommand(newGenerateFormatCmd(encoders[name]))
	}

	parent.AddCommand(cmd)
}

func newGenerateFormatCmd(enc payload.Encoder) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   enc.Name(),
		Short: "Generate a " + enc.Title() + " QR code",
		Example: fmt.Sprintf(`  # Interactive mode
  qrgen generate %[1]s

  # Non-interactive
  qrgen generate %[1]s %[2]s --no-input -o out.png

  # Print the payload string without rendering
  qrgen generate %[1]s %[2]s --payload-only`, enc.Name(), exampleFlags(enc)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, enc, opts)
		},
	}

	for _, spec := range enc.Fields() {
		cmd.Flags().String(flagName(spec.Key), "", spec.Label)
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output image path")
	cmd.Flags().BoolVar(&opts.payloadOnly, "payload-only", false, "Print the canonical payload string instead of rendering")
	cmd.Flags().BoolVar(&opts.noInput, "no-input", false, "Fail on missing fields instead of prompting")

	cmd.Flags().IntVar(&opts.size, "size", 0, "Image size in pixels")
	cmd.Flags().StringVar(&opts.level, "level", "", "Error correction level (L, M, Q, H)")
	cmd.Flags().StringVar(&opts.palette, "palette", "", "Color palette name (see 'qrgen styles')")
	cmd.Flags().StringVar(&opts.fg, "fg", "", "Foreground hex color")
	cmd.Flags().StringVar(&opts.bg, "bg", "", "Background hex color")

	cmd.Flags().StringVar(&opts.shape, "shape", "square", "Module shape (square, gapped, circle, rounded, vertical, horizontal)")
	cmd.Flags().BoolVar(&opts.transparent, "transparent", false, "Transparent background")
	cmd.Flags().StringVar(&opts.gradientStart, "gradient-start", "", "Gradient start hex color")
	cmd.Flags().StringVar(&opts.gradientEnd, "gradient-end", "", "Gradient end hex color")
	cmd.Flags().Float64Var(&opts.gradientAngle, "gradient-angle", 0, "Gradient angle in degrees (0 horizontal, 90 vertical)")
	cmd.Flags().StringVar(&opts.gradientTarget, "gradient-target", "foreground", "Gradient target (foreground, background)")

	cmd.Flags().IntVar(&opts.border, "border", 0, "Border width in pixels")
	cmd.Flags().StringVar(&opts.borderColor, "border-color", "", "Border hex color")
	cmd.Flags().IntVar(&opts.cornerRadius, "corner-radius", 0, "Corner radius in pixels")
	cmd.Flags().StringVar(&opts.header, "header", "", "Header text above the QR code")
	cmd.Flags().StringVar(&opts.footer, "footer", "", "Footer text below the QR code")
	cmd.Flags().StringVar(&opts.headerAlign, "header-align", "center", "Header alignment (left, center, right)")
	cmd.Flags().StringVar(&opts.footerAlign, "footer-align", "center", "Footer alignment (left, center, right)")
	cmd.Flags().StringVar(&opts.logo, "logo", "", "Logo image file to overlay")
	cmd.Flags().Float64Var(&opts.logoScale, "logo-scale", 0.2, "Logo size as a fraction of the QR side")
	cmd.Flags().Float64Var(&opts.logoOpacity, "logo-opacity", 1.0, "Logo opacity (0-1)")
	cmd.Flags().StringVar(&opts.logoClip, "logo-clip", "none", "Logo cutout shape (none, circle, box)")

	return cmd
}

func runGenerate(cmd *cobra.Command, enc payload.Encoder, opts *generateOptions) error {
	fields := payload.Fields{}
	for _, spec := range enc.Fields() {
		// Field flags only exist on the per-format subcommands; the bare
		// generate command goes straight to the interactive form.
		fl := cmd.Flags().Lookup(flagName(spec.Key))
		if fl == nil {
			continue
		}
		if v := fl.Value.String(); v != "" {
			fields[spec.Key] = v
		}
	}

	if missingRequired(enc, fields) {
		if opts.noInput {
			return payload.Require(fields, enc.Fields())
		}
		if err := prompts.RunPayloadForm(enc, fields); err != nil {
			return err
		}
	}

	text, err := enc.Encode(fields)
	if err != nil {
		return fmt.Errorf("cannot encode %s payload: %w", enc.Name(), err)
	}

	if opts.payloadOnly {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}

	cfg := loadDefaults()
	applyDefaults(opts, cfg)

	fg, bg := styles.Resolve(opts.palette, opts.fg, opts.bg)

	renderOpts := render.Options{
		Size:        opts.size,
		Level:       opts.level,
		Foreground:  fg,
		Background:  bg,
		Shape:       opts.shape,
		Transparent: opts.transparent,
	}
	if opts.gradientStart != "" || opts.gradientEnd != "" {
		renderOpts.Gradient = &render.Gradient{
			Start:  opts.gradientStart,
			End:    opts.gradientEnd,
			Angle:  opts.gradientAngle,
			Target: opts.gradientTarget,
		}
	}

	img, err := render.Render(text, renderOpts)
	if err != nil {
		var capErr *render.CapacityError
		if errors.As(err, &capErr) {
			return fmt.Errorf("%w; shorten the payload or lower --level", capErr)
		}
		return err
	}

	composeOpts := render.ComposeOptions{
		Border:       opts.border,
		BorderColor:  opts.borderColor,
		CornerRadius: opts.cornerRadius,
		Header:       opts.header,
		Footer:       opts.footer,
		HeaderAlign:  opts.headerAlign,
		FooterAlign:  opts.footerAlign,
		LogoScale:    opts.logoScale,
		LogoOpacity:  opts.logoOpacity,
		LogoClip:     opts.logoClip,
		Transparent:  opts.transparent,
		Foreground:   fg,
		Background:   bg,
	}
	if opts.logo != "" {
		logo, err := loadImage(opts.logo)
		if err != nil {
			return fmt.Errorf("failed to load logo: %w", err)
		}
		composeOpts.Logo = logo
	}

	if err := writePNG(opts.output, render.Compose(img, composeOpts)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	prompts.PrintResult([]prompts.ResultField{
		{Label: "Format", Value: enc.Title()},
		{Label: "Payload", Value: summarize(text)},
		{Label: "Output", Value: opts.output},
	}, "QR code generated")
	return nil
}

func missingRequired(enc payload.Encoder, fields payload.Fields) bool {
	return payload.Require(fields, enc.Fields()) != nil
}

// loadDefaults reads qrgen.yaml from the working directory when present.
// A missing file just means built-in defaults; a broken one is ignored
// the same way, since flags can always override it.
func loadDefaults() *config.Config {
	cfg, err := config.Load(config.DefaultFileName)
	if err != nil || cfg.Validate() != nil {
		return config.New()
	}
	return cfg
}

func applyDefaults(opts *generateOptions, cfg *config.Config) {
	if opts.size == 0 {
		opts.size = cfg.Defaults.Size
	}
	if opts.level == "" {
		opts.level = cfg.Defaults.Level
	}
	if opts.palette == "" && opts.fg == "" && opts.bg == "" {
		opts.palette = cfg.Defaults.Palette
	}
	if opts.output == "" {
		opts.output = cfg.Defaults.Output
		if opts.output == "" {
			opts.output = "qr.png"
		}
	}
}

func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// exampleFlags renders the required flags of a format for help text.
func exampleFlags(enc payload.Encoder) string {
	var parts []string
	for _, spec := range enc.Fields() {
		if spec.Required {
			parts = append(parts, fmt.Sprintf("--%s \"...\"", flagName(spec.Key)))
		}
	}
	return strings.Join(parts, " ")
}

func summarize(text string) string {
	text = strings.ReplaceAll(text, "\n", " ")
	// Truncate on rune boundaries so multibyte payloads stay valid UTF-8.
	runes := []rune(text)
	if len(runes) > 60 {
		return string(runes[:57]) + "..."
	}
	return text
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	img, _, err := image.Decode(f)
	return img, err
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	return png.Encode(f, img)
}
